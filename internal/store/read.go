// read.go implements document retrieval operations for the SQLite store.
//
// Separated from the main store file to isolate read-only query logic. These
// operations never modify data, enabling clearer reasoning about side effects.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jpl-au/docdex/internal/validate"
)

// Get returns the document with the given identifier.
// Returns ErrNotFound if no such document exists.
func (s *SQLiteStore) Get(ctx context.Context, id int64) (*Document, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	if err := validate.ID(id); err != nil {
		return nil, err
	}
	return s.scanDocument(s.db.QueryRowContext(ctx,
		`SELECT rowid, content FROM documents WHERE rowid = ?`, id))
}

// List returns documents ordered by identifier. A limit of 0 returns all.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]Document, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	q := `SELECT rowid, content FROM documents ORDER BY rowid`
	var args []any
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	return s.scanDocuments(rows)
}

// Count returns the number of stored documents.
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	if err := s.guard(); err != nil {
		return 0, err
	}
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&count)
	return count, err
}

// Exists checks if a document exists under the given identifier.
// Uses SELECT 1 ... LIMIT 1 for efficiency - we only need to know if at
// least one row exists, not fetch data.
func (s *SQLiteStore) Exists(ctx context.Context, id int64) (bool, error) {
	if err := s.guard(); err != nil {
		return false, err
	}
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM documents WHERE rowid = ? LIMIT 1`, id).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check exists %d: %w", id, err)
	}
	return true, nil
}
