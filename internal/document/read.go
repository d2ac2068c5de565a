package document

import (
	"context"

	"github.com/jpl-au/docdex/internal/store"
)

// Get returns a document by ID.
// Returns store.ErrNotFound if no document has that ID.
func (s *Service) Get(ctx context.Context, id int64) (*store.Document, error) {
	return s.store.Get(ctx, id)
}

// List returns indexed documents in ID order.
// Set limit to 0 for all documents.
func (s *Service) List(ctx context.Context, limit int) ([]store.Document, error) {
	return s.store.List(ctx, limit)
}

// Count returns the number of indexed documents.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}

// Exists checks if a document exists without fetching content.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.store.Exists(ctx, id)
}

// Stats returns aggregate index statistics.
func (s *Service) Stats(ctx context.Context) (*store.Stats, error) {
	return s.store.Stats(ctx)
}
