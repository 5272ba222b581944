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


// Package server exposes the search pipeline over a small REST API.
package server

import (
	"context"
	"net/http"
	"time"
)

// Server is the HTTP server for the search API.
type Server struct {
	httpServer *http.Server
}

// NewServer creates and configures a new API server.
func NewServer(port string, service SearchService) *Server {
	handlers := NewSearchHandlers(service)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/search", handlers.RunSearch)
	mux.HandleFunc("GET /api/searches", handlers.RecentSearches)
	mux.HandleFunc("GET /api/search/{id}", handlers.SearchResults)

	return &Server{
		httpServer: &http.Server{
			Addr:        ":" + port,
			Handler:     mux,
			ReadTimeout: 10 * time.Second,
			// A search run includes upstream scraping and AI calls, so the
			// write timeout is generous.
			WriteTimeout: 180 * time.Second,
			IdleTimeout:  15 * time.Second,
		},
	}
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
