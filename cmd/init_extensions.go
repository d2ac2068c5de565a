/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go wires extensions to the shared document service.
//
// Extensions register during init() but are only initialised when a
// command actually needs the index: discovery, store open, and config load
// all happen here, once, and the resulting Context is injected into every
// Initializable extension.

package cmd

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/jpl-au/docdex/extension"
	"github.com/jpl-au/docdex/internal/config"
	"github.com/jpl-au/docdex/internal/document"
	"github.com/jpl-au/docdex/internal/log"
)

// noStoreCommands lists commands that bypass automatic index initialisation.
// Built dynamically from bootstrap commands plus extension-declared storeless commands.
var noStoreCommands map[string]bool

// buildNoStoreCommands collects the commands that skip index initialisation.
// Two sources: the fixed bootstrap set (init, guide, config must work before
// an index exists), and whatever extensions declare through the Storeless
// interface (serve manages its own service lifecycle). New commands needing
// this behaviour implement Storeless rather than editing the map.
func buildNoStoreCommands() map[string]bool {
	cmds := map[string]bool{
		"init":   true,
		"guide":  true,
		"config": true,
	}

	for _, ext := range extension.All() {
		if s, ok := ext.(extension.Storeless); ok {
			for _, name := range s.NoStoreCommands() {
				cmds[name] = true
			}
		}
	}

	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	extService *document.Service
	initOnce   sync.Once
	initErr    error
)

// initExtensions creates the shared document service and injects it into
// every Initializable extension. sync.Once guards it because opening the
// database is expensive and must happen exactly once per process.
func initExtensions() error {
	initOnce.Do(func() {
		svc, err := document.New(DB())
		if err != nil {
			initErr = fmt.Errorf("opening database: %w", err)
			return
		}
		extService = svc

		// Set project identifier for audit logging
		log.SetProject(filepath.Dir(svc.DBPath()))

		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		extContext = extension.NewContext(svc, svc.DB(), cfg)
		svc.SetExtensionContext(extContext)

		// Extensions receive the service rather than creating their own,
		// so there is one store handle to close on exit.
		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}

		// Build noStoreCommands after all extensions are registered
		noStoreCommands = buildNoStoreCommands()
	})
}
