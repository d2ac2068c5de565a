// Package document provides higher-level document operations backed by a
// Store implementation. It exposes a `Service` which wraps a `store.SQLiteStore`
// and offers convenience methods for indexing, fetching and searching
// documents.
package document

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jpl-au/docdex/extension"
	"github.com/jpl-au/docdex/internal/config"
	"github.com/jpl-au/docdex/internal/log"
	"github.com/jpl-au/docdex/internal/repo"
	"github.com/jpl-au/docdex/internal/store"
)

// Service provides higher-level document operations backed by a Store.
type Service struct {
	store       *store.SQLiteStore
	dbPath      string
	hlPrefix    string
	hlSuffix    string
	searchLimit int
	maxContent  int64
	extCtx      extension.Context // for firing events to extensions
}

// New creates a new Service, discovering the DB by walking up the directory tree.
// The db parameter specifies which database to use (empty for default).
// Returns ErrNotInitialised if no matching database is found.
func New(db string) (*Service, error) {
	dbPath, err := repo.Discover(db)
	if err != nil {
		return nil, err
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err // config.Load provides detailed, actionable error messages
	}

	return &Service{
		store:       s,
		dbPath:      dbPath,
		hlPrefix:    cfg.HighlightPrefix(),
		hlSuffix:    cfg.HighlightSuffix(),
		searchLimit: cfg.SearchLimit(),
		maxContent:  cfg.MaxContent(),
	}, nil
}

// Init initialises a new docdex index.
// If dir is empty, uses current directory; otherwise uses dir.
// The db parameter specifies which database to create (empty for default).
// If local is true, the database is added to .gitignore (not committed).
//
// Note: Init does not write config. Config is managed separately via "docdex config".
func Init(force bool, db string, local bool, dir string) error {
	return repo.Init(force, db, local, dir)
}

// Close checkpoints the WAL and closes the database connection.
func (s *Service) Close() error {
	if err := s.store.Checkpoint(context.Background()); err != nil {
		log.Event("service:close", "checkpoint").
			Detail("error", err.Error()).
			Write(err)
	}
	return s.store.Close()
}

// ReloadConfig reloads configuration from disk and updates cached values.
// Call this after modifying config to ensure the service uses new settings.
func (s *Service) ReloadConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	s.hlPrefix = cfg.HighlightPrefix()
	s.hlSuffix = cfg.HighlightSuffix()
	s.searchLimit = cfg.SearchLimit()
	s.maxContent = cfg.MaxContent()
	return nil
}

// SetExtensionContext sets the extension context for firing events.
// Called from cmd/root.go after creating the context.
func (s *Service) SetExtensionContext(ctx extension.Context) {
	s.extCtx = ctx
}

// SearchOptions returns options seeded from configuration: highlight
// markers and the default result limit. Callers adjust from there.
func (s *Service) SearchOptions() store.SearchOptions {
	return store.NewSearchOptions().
		WithMarkers(s.hlPrefix, s.hlSuffix).
		WithLimit(s.searchLimit)
}

// fireEvent delivers an event to every registered extension that handles
// events. Handler errors are written to the audit log and otherwise dropped;
// an event is a notification, not a veto, so a failing handler cannot block
// the operation that fired it. extension.All() hands back a snapshot, and
// extensions only register during init(), so iterating here is safe.
func (s *Service) fireEvent(e extension.Event) {
	if s.extCtx == nil {
		return
	}
	for _, ext := range extension.All() {
		if h, ok := ext.(extension.EventHandler); ok {
			if err := h.HandleEvent(s.extCtx, e); err != nil {
				log.Event("event:error", "error").
					Detail("ext", ext.Name()).
					Detail("event", string(e.EventType())).
					Write(err)
			}
		}
	}
}

// DB returns the underlying database connection for extensions.
func (s *Service) DB() *sql.DB {
	return s.store.DB()
}

// MaxContent returns the configured maximum document size in bytes.
func (s *Service) MaxContent() int64 {
	return s.maxContent
}

// DBPath returns the path to the database file.
func (s *Service) DBPath() string {
	return s.dbPath
}

// Tx runs fn inside a database transaction, committing if fn returns nil and
// rolling back otherwise. Rollback is deferred unconditionally; after a
// successful Commit it is a no-op, and on a panic inside fn it still undoes
// any partial writes.
//
// The raw *sql.Tx is exposed so extensions can run multi-step atomic
// operations the Service API does not cover.
func (s *Service) Tx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.store.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // no-op after commit

	if err := fn(tx); err != nil {
		return fmt.Errorf("transaction rolled back: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
