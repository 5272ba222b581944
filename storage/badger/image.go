package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/viralscope/core"
	"github.com/poiesic/viralscope/storage"
)

// ImageRepository implements storage.ImageRepository for BadgerDB.
type ImageRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.ImageRepository = (*ImageRepository)(nil)

// NewImageRepository creates a new ImageRepository.
func NewImageRepository(backend *Backend) (*ImageRepository, error) {
	idSeq, err := backend.GetSequence(imageRecordIDSeq)
	if err != nil {
		return nil, err
	}

	return &ImageRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *ImageRepository) Close() error {
	return r.idSeq.Release()
}

// AddImage persists an image under its parent search.
func (r *ImageRepository) AddImage(ctx context.Context, image *core.ViralImage) (*core.ViralImage, error) {
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
		image.Id = core.ID(nextID)
		image.CreatedAt = time.Now().UTC()

		// Store primary record
		key := makeImageKey(image.Id)
		value := storage.MarshalViralImage(image)
		if err := tx.Set(key, value); err != nil {
			return err
		}

		// Update score index
		scoreKey := makeImageScoreKey(image.SearchId, image.EngagementScore, image.Id)
		if err := tx.Set(scoreKey, storage.MarshalID(image.Id)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return image, nil
}

// GetImagesBySearch retrieves all images for a search, ordered by engagement
// score descending. The score index stores inverted scores, so a forward
// iteration yields the right order directly.
func (r *ImageRepository) GetImagesBySearch(ctx context.Context, searchID core.ID) ([]*core.ViralImage, error) {
	results := []*core.ViralImage{}
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialImageScoreKey(searchID)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			// Check if key still has our searchID prefix
			if len(key) < len(startKey) {
				break
			}
			if slices.Compare(key[:len(startKey)], startKey) != 0 {
				break
			}

			// Read the image ID from the index
			var imageID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				imageID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full record
			imageKey := makeImageKey(imageID)
			image, err := r.readImage(tx, imageKey)
			if err != nil {
				return err
			}
			if image != nil {
				results = append(results, image)
			}
		}
		return nil
	}, false)

	return results, err
}

// readImage reads a viral image from the transaction.
func (r *ImageRepository) readImage(tx *badger.Txn, key []byte) (*core.ViralImage, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var image *core.ViralImage
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		image, unmarshalErr = storage.UnmarshalViralImage(val)
		return unmarshalErr
	})
	return image, err
}
