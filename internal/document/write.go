package document

import (
	"context"

	"github.com/jpl-au/docdex/extension"
	"github.com/jpl-au/docdex/internal/store"
)

// Insert indexes a document and returns its assigned ID.
// If doc.ID is zero the engine assigns the next available ID.
// Returns store.ErrDuplicateID if doc.ID is already in use.
func (s *Service) Insert(ctx context.Context, doc store.Document) (int64, error) {
	id, err := s.store.Insert(ctx, doc, store.InsertOptions{MaxContent: s.maxContent})
	if err != nil {
		return 0, err
	}
	s.fireEvent(extension.DocumentInsertEvent{ID: id, Bytes: len(doc.Content)})
	return id, nil
}

// InsertMany indexes a batch of documents in a single transaction.
// If any insert fails, none of the documents are indexed.
func (s *Service) InsertMany(ctx context.Context, docs []store.Document) error {
	if err := s.store.InsertMany(ctx, docs); err != nil {
		return err
	}
	for _, doc := range docs {
		if doc.ID > 0 {
			s.fireEvent(extension.DocumentInsertEvent{ID: doc.ID, Bytes: len(doc.Content)})
		}
	}
	return nil
}

// Remove deletes a document from the index.
// Returns store.ErrNotFound if no document has that ID.
func (s *Service) Remove(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.fireEvent(extension.DocumentRemoveEvent{ID: id})
	return nil
}
