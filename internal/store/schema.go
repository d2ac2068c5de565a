// schema.go loads and executes the embedded SQLite schema. The statements
// live as individual files under sql/ with numeric prefixes (001_ and up)
// and run in name order, so each table stays reviewable on its own and the
// execution order is deterministic.
//
// Extensions can create their own embedded schemas:
//
//	//go:embed sql/*.sql
//	var extensionSchemas embed.FS
//
//	func (e *Extension) Init(ctx extension.Context) error {
//	    if err := store.ExecEmbedded(ctx.DB(), extensionSchemas, "sql"); err != nil {
//	        return err
//	    }
//	    return nil
//	}

package store

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed sql/*.sql
var schemas embed.FS

var (
	// ErrEngineUnavailable indicates the full-text capability could not be
	// initialised at Open - typically an SQLite build without the FTS5
	// extension. This is an environment/deployment problem, fatal to the
	// store instance; no retry helps without an environment change.
	ErrEngineUnavailable = errors.New("full-text engine unavailable")
	// ErrQueryRejected indicates the engine rejected a canonical query string
	// (malformed boolean expression, illegal proximity usage). The wrapped
	// message carries the offending query.
	ErrQueryRejected = errors.New("query rejected by engine")
	// ErrClosed is returned by every operation attempted after Close.
	ErrClosed = errors.New("store closed")
	// ErrDuplicateID prevents inserting a second document under an identifier
	// already present. Duplicates are rejected, never silently created.
	ErrDuplicateID = errors.New("duplicate document id")
	// ErrNotFound indicates the requested document does not exist.
	ErrNotFound = errors.New("document not found")
)

// ExecEmbedded executes all .sql files from an embedded filesystem in alphabetical order.
// The dir parameter specifies the directory within the embed.FS to read from.
//
// This function is exported so extensions can use the same pattern for their own
// embedded schemas. Each .sql file should use IF NOT EXISTS clauses for idempotency.
func ExecEmbedded(db *sql.DB, fsys embed.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read schema directory: %w", err)
	}

	// Sort entries to ensure deterministic order (should already be sorted, but be explicit)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := dir + "/" + entry.Name()
		data, err := fsys.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if _, err := db.Exec(string(data)); err != nil {
			return fmt.Errorf("exec %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// execSchema executes the embedded core schema files.
func execSchema(db *sql.DB) error {
	return ExecEmbedded(db, schemas, "sql")
}
