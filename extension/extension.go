// Package extension provides docdex's plugin architecture. Each extension
// bundles a related set of CLI commands and MCP tools and registers itself
// at init time, so features can be added without touching core wiring.
package extension

import "github.com/spf13/cobra"

// Extension is the contract every docdex extension implements.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to attach to the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to expose through the server.
	MCPTools() []MCPTool
}

// Initializable extensions receive the shared Context before first use,
// for service access or their own setup.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Storeless marks commands that must run without an open index. Commands
// named by NoStoreCommands() skip store initialisation in
// PersistentPreRunE: bootstrap commands that run before an index exists,
// and commands that manage their own service lifecycle.
type Storeless interface {
	NoStoreCommands() []string
}
