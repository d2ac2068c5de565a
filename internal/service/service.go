// Package service defines the shared interface for document operations.
// Commands and extensions depend on this interface rather than concrete
// implementations, enabling testing with mocks and future backend changes.
package service

import (
	"context"
	"database/sql"

	"github.com/jpl-au/docdex/internal/diff"
	"github.com/jpl-au/docdex/internal/store"
)

// Service defines all document operations.
//
// Extensions should use document.New() to obtain a Service implementation.
// Always call Close() when done (use defer).
//
// Example:
//
//	svc, err := document.New("")
//	if err != nil {
//	    return err
//	}
//	defer svc.Close()
//	matches, err := svc.SearchPhrase(ctx, "lazy dog", svc.SearchOptions())
type Service interface {
	// Close releases database resources. Always defer this after New().
	// The store cannot be used after Close; a second Close returns
	// store.ErrClosed.
	Close() error

	// Insert indexes a document and returns its assigned ID.
	// If doc.ID is zero the engine assigns the next available ID.
	// Returns store.ErrDuplicateID if doc.ID is already in use.
	Insert(ctx context.Context, doc store.Document) (int64, error)

	// InsertMany indexes a batch of documents in a single transaction.
	// If any insert fails, none of the documents are indexed.
	InsertMany(ctx context.Context, docs []store.Document) error

	// Get returns a document by ID.
	// Returns store.ErrNotFound if no document has that ID.
	Get(ctx context.Context, id int64) (*store.Document, error)

	// List returns indexed documents in ID order.
	// Set limit to 0 for all documents.
	List(ctx context.Context, limit int) ([]store.Document, error)

	// Remove deletes a document from the index.
	// Returns store.ErrNotFound if no document has that ID.
	Remove(ctx context.Context, id int64) error

	// Count returns the number of indexed documents.
	Count(ctx context.Context) (int64, error)

	// Exists checks if a document exists without fetching content.
	// More efficient than Get() when you only need to check presence.
	Exists(ctx context.Context, id int64) (bool, error)

	// Search runs a raw FTS5 query string against the index, best match
	// first. Returns store.ErrQueryRejected (wrapping the offending query)
	// if the engine cannot parse it. Prefer the typed Search* helpers for
	// user input; Search exists for callers that compose queries with the
	// query package directly.
	Search(ctx context.Context, query string, opts store.SearchOptions) ([]store.Match, error)

	// SearchPhrase matches documents containing the words of text adjacent
	// and in order. Operator words inside text are matched literally.
	SearchPhrase(ctx context.Context, text string, opts store.SearchOptions) ([]store.Match, error)

	// SearchPrefix matches documents containing any token starting with
	// the given token.
	SearchPrefix(ctx context.Context, token string, opts store.SearchOptions) ([]store.Match, error)

	// SearchAnd matches documents containing every one of the terms.
	SearchAnd(ctx context.Context, terms []string, opts store.SearchOptions) ([]store.Match, error)

	// SearchOr matches documents containing at least one of the terms.
	SearchOr(ctx context.Context, terms []string, opts store.SearchOptions) ([]store.Match, error)

	// SearchNot matches documents containing include but not exclude.
	SearchNot(ctx context.Context, include, exclude string, opts store.SearchOptions) ([]store.Match, error)

	// SearchNear matches documents where all terms appear within
	// maxDistance tokens of each other.
	SearchNear(ctx context.Context, terms []string, maxDistance int, opts store.SearchOptions) ([]store.Match, error)

	// SearchOptions returns options seeded from configuration:
	// highlight markers and the default result limit.
	SearchOptions() store.SearchOptions

	// Diff compares the content of two indexed documents.
	Diff(ctx context.Context, id1, id2 int64) (diff.Result, error)

	// Stats returns aggregate index statistics for capacity planning
	// and operational visibility.
	Stats(ctx context.Context) (*store.Stats, error)

	// Checkpoint flushes the WAL to the main database file, removing
	// the -wal and -shm files. Useful before backup or distribution.
	Checkpoint(ctx context.Context) error

	// Vacuum rebuilds the database file, reclaiming space freed by
	// removed documents.
	Vacuum(ctx context.Context) error

	// DB returns the underlying SQLite connection.
	// Extensions use this to create custom tables.
	// Do not close this connection directly; use Service.Close().
	DB() *sql.DB

	// Tx runs a function within a database transaction.
	// If fn returns nil, the transaction is committed.
	// If fn returns an error, the transaction is rolled back.
	//
	// Example:
	//
	//	err := svc.Tx(ctx, func(tx *sql.Tx) error {
	//	    _, err := tx.Exec("INSERT INTO notes (body) VALUES (?)", "draft")
	//	    return err // nil commits, error rolls back
	//	})
	Tx(ctx context.Context, fn func(tx *sql.Tx) error) error

	// DBPath returns the filesystem path of the open database.
	DBPath() string
}
