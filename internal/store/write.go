// write.go implements document insertion and removal operations.
//
// Separated from the main store file to isolate mutating operations.
//
// Design: FTS5 virtual tables do not enforce rowid uniqueness on
// explicit-rowid inserts - a reused identifier silently creates a second
// row under it. The declared policy here is reject: explicit identifiers
// are checked for presence inside the insert transaction and collisions
// fail with ErrDuplicateID. Bulk inserts run in a single transaction so
// either all documents become visible to subsequent searches or none do.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jpl-au/docdex/internal/validate"
)

// Insert adds one document and returns its final identifier. An ID <= 0
// requests auto-assignment via SQLite's rowid auto-increment; an explicit
// ID already present fails with ErrDuplicateID.
func (s *SQLiteStore) Insert(ctx context.Context, doc Document, opts InsertOptions) (int64, error) {
	if err := s.guard(); err != nil {
		return 0, err
	}
	if err := validate.Content(doc.Content, opts.MaxContent); err != nil {
		return 0, err
	}

	var id int64
	err := s.Tx(ctx, func(tx *sql.Tx) error {
		var err error
		id, err = insertDoc(ctx, tx, doc)
		return err
	})
	return id, err
}

// InsertMany adds documents in a single transaction. A failure anywhere
// (including a duplicate identifier) rolls back the whole batch.
func (s *SQLiteStore) InsertMany(ctx context.Context, docs []Document) error {
	if err := s.guard(); err != nil {
		return err
	}
	return s.Tx(ctx, func(tx *sql.Tx) error {
		for _, d := range docs {
			if _, err := insertDoc(ctx, tx, d); err != nil {
				return err
			}
		}
		return nil
	})
}

// insertDoc inserts one document within a transaction, returning the
// assigned identifier. The duplicate check must run inside the same
// transaction as the insert: FTS5 accepts reused rowids without complaint.
func insertDoc(ctx context.Context, tx *sql.Tx, doc Document) (int64, error) {
	if doc.ID > 0 {
		var n int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM documents WHERE rowid = ?`, doc.ID).Scan(&n)
		if err == nil {
			return 0, fmt.Errorf("%w: %d", ErrDuplicateID, doc.ID)
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("check id %d: %w", doc.ID, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO documents (rowid, content) VALUES (?, ?)`,
			doc.ID, doc.Content); err != nil {
			return 0, fmt.Errorf("insert document %d: %w", doc.ID, err)
		}
		return doc.ID, nil
	}

	res, err := tx.ExecContext(ctx, `INSERT INTO documents (content) VALUES (?)`, doc.Content)
	if err != nil {
		return 0, fmt.Errorf("insert document: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("assigned id: %w", err)
	}
	return id, nil
}

// Delete removes a document. Returns ErrNotFound if the identifier is absent.
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	if err := s.guard(); err != nil {
		return err
	}
	if err := validate.ID(id); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE rowid = ?`, id)
	if err != nil {
		return fmt.Errorf("delete document %d: %w", id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete document %d: %w", id, err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
