// serve.go implements the "docdex serve" command.
//
// Unlike the other commands, serve blocks indefinitely handling MCP
// requests over stdio. It is a NoStoreCommand: the server opens and closes
// its own database connection rather than using the shared service, since
// it must be able to start before an index exists.

package core

import (
	"github.com/jpl-au/docdex/cmd"
	"github.com/jpl-au/docdex/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Use --db to serve a specific database:
  docdex serve --db notes    # serve docdex-notes.db`,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	return mcp.Serve(cmd.DB())
}
