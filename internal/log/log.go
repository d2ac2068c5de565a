// Package log records an audit trail of docdex operations. Every CLI command
// and MCP tool invocation, across all projects, is written to a single SQLite
// database at ~/.docdex/log/docdex-log.db.
//
// # Fluent API
//
// Entries are built with a fluent builder and written in one chain:
//
//	log.Event("document:add", "insert").
//		Author(cmd.Author()).
//		Doc(id).
//		Write(err)
//
//	log.Event("search:search", "search").
//		Author(cmd.Author()).
//		Detail("query", q).
//		Detail("count", len(matches)).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools. Examples: "document:add",
// "search:search", "mcp:docdex_search".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "document:add", "mcp:docdex_search"
	Author string // who performed the action
	Action string // verb: insert, search, remove, etc.
	DocID  int64  // input: document identifier requested (0 if none)

	// ResultID is populated after the operation succeeds: the identifier
	// assigned or affected (may differ from DocID when auto-assigned).
	ResultID int64

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "document:add", "search:search")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:docdex_add")
//
// The action describes what operation was performed:
//   - "insert", "search", "remove", "list", "export", "import", etc.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Author sets who performed the operation.
//
// For CLI commands, use cmd.Author() which returns the configured author.
// For MCP tools, use "mcp" as the author.
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// Doc sets the document identifier this operation targets.
// Leave unset for operations that don't target a document (e.g., config).
func (b *Builder) Doc(id int64) *Builder {
	b.entry.DocID = id
	return b
}

// ResultDoc sets the identifier that resulted from the operation (output).
// For inserts this is the assigned identifier, which may differ from the
// input when auto-assignment was requested.
func (b *Builder) ResultDoc(id int64) *Builder {
	b.entry.ResultID = id
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// search queries, match counts, import paths, etc.
// Can be called multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
//
// This is the standard way to complete a log entry after an operation:
//
//	id, err := svc.Insert(ctx, doc)
//	log.Event("document:add", "insert").ResultDoc(id).Write(err)
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the absolute path to the .docdex directory.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
