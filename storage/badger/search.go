package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/viralscope/core"
	"github.com/poiesic/viralscope/storage"
)

// SearchRepository implements storage.SearchRepository for BadgerDB.
type SearchRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.SearchRepository = (*SearchRepository)(nil)

// NewSearchRepository creates a new SearchRepository.
func NewSearchRepository(backend *Backend) (*SearchRepository, error) {
	idSeq, err := backend.GetSequence(searchRecordIDSeq)
	if err != nil {
		return nil, err
	}

	return &SearchRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *SearchRepository) Close() error {
	return r.idSeq.Release()
}

// CreateSearch creates a new search record in processing state.
func (r *SearchRepository) CreateSearch(ctx context.Context, query string) (*core.SearchRecord, error) {
	record := &core.SearchRecord{
		Query:  query,
		Status: core.StatusProcessing,
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Always generate new ID from sequence
		nextID, err := r.idSeq.Next()
		if err != nil {
			return err
		}
		// BadgerDB sequences can return 0 on first call, so we skip it
		if nextID == 0 {
			nextID, err = r.idSeq.Next()
			if err != nil {
				return err
			}
		}
		record.Id = core.ID(nextID)

		record.CreatedAt = time.Now().UTC()
		record.UpdatedAt = record.CreatedAt

		// Store primary record
		key := makeSearchRecordKey(record.Id)
		value := storage.MarshalSearchRecord(record)
		if err := tx.Set(key, value); err != nil {
			return err
		}

		// Update date index
		dateKey := makeSearchDateKey(record.CreatedAt, record.Id)
		if err := tx.Set(dateKey, storage.MarshalID(record.Id)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return record, nil
}

// FinalizeSearch transitions a search to a terminal status.
func (r *SearchRepository) FinalizeSearch(ctx context.Context, id core.ID, status core.SearchStatus, totalResults int) (*core.SearchRecord, error) {
	var record *core.SearchRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSearchRecordKey(id)
		var err error
		record, err = r.readSearchRecord(tx, key)
		if err != nil {
			return err
		}
		if record == nil {
			return storage.ErrNotFound
		}

		now := time.Now().UTC()
		record.Status = status
		record.TotalResults = totalResults
		record.UpdatedAt = now
		record.CompletedAt = &now

		// The date index keys off CreatedAt, which never changes.
		value := storage.MarshalSearchRecord(record)
		if err := tx.Set(key, value); err != nil {
			return err
		}

		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return record, nil
}

// GetSearch retrieves a single search record by ID.
func (r *SearchRepository) GetSearch(ctx context.Context, id core.ID) (*core.SearchRecord, error) {
	var result *core.SearchRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSearchRecordKey(id)
		var err error
		result, err = r.readSearchRecord(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetRecentSearches retrieves the N most recent search records, ordered by creation time descending.
func (r *SearchRepository) GetRecentSearches(ctx context.Context, limit int) ([]*core.SearchRecord, error) {
	var results []*core.SearchRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Use reverse iterator to get most recent records first
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek to the last possible key in the date index
		startKey := makePartialSearchDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))

		// Prefix for search date index keys
		prefix := []byte(searchRecordDatePrefix + ":")

		count := 0
		for iter.Seek(startKey); iter.Valid() && count < limit; iter.Next() {
			key := iter.Item().Key()

			// Check if we're still in the date index
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			// Read the ID from the index
			var recordID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				recordID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full record
			recordKey := makeSearchRecordKey(recordID)
			record, err := r.readSearchRecord(tx, recordKey)
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
				count++
			}
		}
		return nil
	}, false)

	return results, err
}

// readSearchRecord reads a search record from the transaction.
func (r *SearchRepository) readSearchRecord(tx *badger.Txn, key []byte) (*core.SearchRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.SearchRecord
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		record, unmarshalErr = storage.UnmarshalSearchRecord(val)
		return unmarshalErr
	})
	return record, err
}
