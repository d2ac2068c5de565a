// sqlite_ops.go provides SQLite connection management and low-level operations.
//
// Separated to isolate SQLite-specific concerns (pragmas, connection lifecycle,
// driver registration) from business logic. This is the only file that imports
// the SQLite driver, making it easier to swap implementations if needed.
//
// Design: WAL mode with busy timeout balances concurrency and durability.
// WAL allows concurrent readers during writes (useful for MCP scenarios).
// The 5-second busy timeout prevents "database is locked" errors without
// waiting forever on stuck connections.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Register sqlite driver
	_ "modernc.org/sqlite"
)

// SQLiteStore implements document storage over an FTS5 virtual table.
//
// A SQLiteStore is NOT safe for unsynchronised concurrent use: the closed
// flag is unguarded and the connection is a single synchronous handle.
// Callers needing concurrency must serialise access (one mutex around the
// store) or open one store per worker with no shared state. Every operation
// is synchronous and blocking; there is no cancellation beyond the context
// passed to individual calls, and no retries at this layer.
type SQLiteStore struct {
	db     *sql.DB
	closed bool
}

// Open opens the SQLite database at path (":memory:" for an ephemeral
// store), configures pragmas, executes the FTS5 schema, and bulk-inserts
// any initial documents atomically before returning. The caller should
// defer Close on the returned store.
//
// A schema failure surfaces as ErrEngineUnavailable: the virtual table
// cannot be created when the SQLite build lacks the FTS5 extension, which
// is a deployment problem distinct from every usage error.
func Open(path string, initial ...Document) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	// WAL mode: Allows concurrent readers while writing. Trade-off: creates
	// -wal and -shm files alongside the database.
	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	// Busy timeout: How long to wait when another connection holds a lock.
	// 5 seconds is generous - most operations complete in milliseconds.
	if _, err := db.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	// Synchronous NORMAL: With WAL mode, NORMAL is safe against corruption.
	// FULL would fsync on every commit, ~10x slower, for no benefit here.
	if _, err := db.Exec(`PRAGMA synchronous=NORMAL`); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting synchronous mode: %w", err)
	}

	if err := execSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}

	s := &SQLiteStore{db: db}

	if len(initial) > 0 {
		if err := s.InsertMany(context.Background(), initial); err != nil {
			db.Close()
			return nil, fmt.Errorf("seed documents: %w", err)
		}
	}

	return s, nil
}

// Close releases the database connection and marks the store unusable.
// Close is not idempotent: a second Close, like any other operation after
// the first, fails with ErrClosed rather than exhibiting undefined behaviour.
func (s *SQLiteStore) Close() error {
	if err := s.guard(); err != nil {
		return err
	}
	s.closed = true
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

// guard returns ErrClosed once the store has been closed. Every operation
// calls this first so post-Close use fails immediately and uniformly.
func (s *SQLiteStore) guard() error {
	if s.closed {
		return ErrClosed
	}
	return nil
}

// DB exposes the underlying connection for extensions that need custom tables.
// Extensions should not modify the documents table directly.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// scanner abstracts sql.Row and sql.Rows, enabling a single scan function
// to handle both single-row and multi-row queries.
type scanner interface {
	Scan(dest ...any) error
}

// scanDoc extracts a Document from a database row.
func scanDoc(sc scanner) (Document, error) {
	var d Document
	err := sc.Scan(&d.ID, &d.Content)
	return d, err
}

// scanDocument converts sql.ErrNoRows to ErrNotFound for consistent error handling.
func (s *SQLiteStore) scanDocument(row *sql.Row) (*Document, error) {
	d, err := scanDoc(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan document: %w", err)
	}
	return &d, nil
}

// scanDocuments iterates over query results, collecting documents into a slice.
func (s *SQLiteStore) scanDocuments(rows *sql.Rows) ([]Document, error) {
	var docs []Document
	for rows.Next() {
		d, err := scanDoc(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Tx executes fn within a database transaction, handling Begin/Commit/Rollback
// automatically. This eliminates a class of bugs where callers forget to commit,
// forget to rollback on error, or fail to check commit errors.
//
// The transaction lifecycle:
//  1. BeginTx is called to start the transaction with context
//  2. fn executes with the transaction
//  3. If fn returns an error, the transaction is rolled back
//  4. If fn succeeds, the transaction is committed
//  5. Rollback is deferred to handle panics and early returns
//
// Context cancellation will abort the transaction at the next database call.
func (s *SQLiteStore) Tx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	if err := s.guard(); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
