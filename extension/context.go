// context.go defines the Context through which extensions reach docdex
// internals.
//
// Kept separate from extension.go because this is the dependency-injection
// seam: extensions see a narrow surface rather than arbitrary internals,
// and tests can substitute a mock. Extensions receive the Context in
// Init(), not at construction, because registration happens before the
// service exists (two-phase initialisation).

package extension

import (
	"database/sql"

	"github.com/jpl-au/docdex/internal/config"
	"github.com/jpl-au/docdex/internal/service"
)

// Context gives extensions access to the shared docdex resources.
type Context interface {
	// Service returns the document service for indexing and search.
	Service() service.Service

	// DB exposes the database for extensions keeping custom tables.
	// The documents table itself belongs to the store.
	DB() *sql.DB

	// Config returns the loaded user configuration.
	Config() *config.Config
}

type extContext struct {
	svc service.Service
	db  *sql.DB
	cfg *config.Config
}

// NewContext bundles the shared service, database handle, and config into
// a Context for injection.
func NewContext(svc service.Service, db *sql.DB, cfg *config.Config) Context {
	return &extContext{
		svc: svc,
		db:  db,
		cfg: cfg,
	}
}

func (c *extContext) Service() service.Service { return c.svc }
func (c *extContext) DB() *sql.DB              { return c.db }
func (c *extContext) Config() *config.Config   { return c.cfg }
