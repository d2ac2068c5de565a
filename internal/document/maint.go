package document

import (
	"context"
	"fmt"

	"github.com/jpl-au/docdex/internal/diff"
)

// Diff compares the content of two indexed documents.
func (s *Service) Diff(ctx context.Context, id1, id2 int64) (diff.Result, error) {
	a, err := s.store.Get(ctx, id1)
	if err != nil {
		return diff.Result{}, err
	}
	b, err := s.store.Get(ctx, id2)
	if err != nil {
		return diff.Result{}, err
	}
	return diff.Compute(a.Content, b.Content,
		fmt.Sprintf("doc %d", id1), fmt.Sprintf("doc %d", id2)), nil
}

// Checkpoint flushes the WAL to the main database file.
func (s *Service) Checkpoint(ctx context.Context) error {
	return s.store.Checkpoint(ctx)
}

// Vacuum rebuilds the database file, reclaiming space freed by removed
// documents.
func (s *Service) Vacuum(ctx context.Context) error {
	return s.store.Vacuum(ctx)
}
