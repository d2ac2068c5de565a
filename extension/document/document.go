// Package document is the extension for core document operations. It
// registers the add, cat, ls, rm, import, export, diff, and stats commands.
//
// The command names borrow from Unix filesystem utilities so both humans and
// LLMs get familiar semantics. Each command lives in its own file with its
// flag handling and output formatting.

package document

import (
	"github.com/jpl-au/docdex/extension"
	"github.com/jpl-au/docdex/internal/config"
	"github.com/jpl-au/docdex/internal/service"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the document extension.
type Extension struct {
	svc service.Service
	cfg *config.Config
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "document" - this extension handles core document CRUD operations.
func (e *Extension) Name() string { return "document" }

// Init connects to the shared service for document operations.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	e.cfg = ctx.Config()
	return nil
}

// Commands returns Unix-like document manipulation commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newAddCmd(),
		e.newCatCmd(),
		e.newLsCmd(),
		e.newRmCmd(),
		e.newImportCmd(),
		e.newExportCmd(),
		e.newDiffCmd(),
		e.newStatsCmd(),
	}
}

// MCPTools returns nil - document MCP tools are provided by internal/mcp package.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}
