// mcp.go defines the types extensions use to contribute MCP tools.
//
// Kept out of extension.go because MCP is optional surface area: an
// extension that only provides CLI commands never touches these types.
//
// Design: MCPTool pairs the tool definition with its handler so an
// extension hands over a complete, ready-to-register implementation. The
// handler receives both the Go context (cancellation) and the extension
// Context (service and database access).

package extension

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTool pairs an MCP tool definition with its handler.
type MCPTool struct {
	Tool    mcp.Tool
	Handler MCPHandler
}

// MCPHandler processes one MCP tool request.
type MCPHandler func(ctx context.Context, extCtx Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
