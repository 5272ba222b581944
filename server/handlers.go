// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/poiesic/viralscope/core"
	"github.com/poiesic/viralscope/search"
	"github.com/poiesic/viralscope/storage"
)

// SearchService defines the interface required by the HTTP handlers.
// This keeps the delivery layer decoupled from the orchestrator implementation.
type SearchService interface {
	Run(ctx context.Context, req *core.SearchRequest) (*core.SearchResults, error)
	Results(ctx context.Context, id core.ID) (*core.SearchResults, error)
	Recent(ctx context.Context, limit int) ([]*core.SearchRecord, error)
}

// SearchHandlers holds dependencies for search-related HTTP handlers.
type SearchHandlers struct {
	service SearchService
	logger  *slog.Logger
}

// NewSearchHandlers creates a new handler struct.
func NewSearchHandlers(service SearchService) *SearchHandlers {
	return &SearchHandlers{
		service: service,
		logger:  slog.Default().With("component", "http-handlers"),
	}
}

type errorResponse struct {
	Error       string   `json:"error"`
	Details     string   `json:"details,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// RunSearch handles POST /api/search: runs a full search and returns the
// ranked results.
func (h *SearchHandlers) RunSearch(w http.ResponseWriter, r *http.Request) {
	var req core.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	results, err := h.service.Run(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// SearchResults handles GET /api/search/{id}: returns a past search with
// its ranked images and a recomputed summary.
func (h *SearchHandlers) SearchResults(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid search id"})
		return
	}

	results, err := h.service.Results(r.Context(), core.ID(id))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// RecentSearches handles GET /api/searches: lists recent search records,
// newest first. The optional limit query parameter caps the page size.
func (h *SearchHandlers) RecentSearches(w http.ResponseWriter, r *http.Request) {
	limit := core.DefaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
			return
		}
		limit = parsed
	}

	records, err := h.service.Recent(r.Context(), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if records == nil {
		records = []*core.SearchRecord{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"searches": records})
}

// writeError maps domain errors onto HTTP statuses. Fatal search errors
// keep their structured payload; everything else degrades to a generic
// internal error so internals never leak.
func (h *SearchHandlers) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidRequest):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, storage.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "search not found"})
	default:
		var searchErr *search.SearchError
		if errors.As(err, &searchErr) {
			writeJSON(w, http.StatusInternalServerError, searchErr)
			return
		}
		h.logger.Error("unhandled error", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
