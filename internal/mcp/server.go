// Package mcp implements the Model Context Protocol server, exposing docdex
// operations to LLMs. This enables AI assistants to index, fetch, and search
// documents through a standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/docdex/internal/document"
	"github.com/jpl-au/docdex/internal/repo"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// ErrNotInitialised is returned by tools when the index has not been initialised.
// The LLM should call docdex_init to create an index before using other tools.
const ErrNotInitialised = "index not initialised - call docdex_init first"

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other MCP clients.
//
// Design: The server starts successfully even if no index exists. This allows
// LLMs to call docdex_init to create an index, rather than failing with an
// opaque error. Tools that require an index return ErrNotInitialised with
// clear guidance.
func Serve(db string) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	h := &handlers{db: db}

	// Try to open existing index; nil service is OK (uninitialised mode)
	svc, err := document.New(db)
	if err != nil && !errors.Is(err, repo.ErrNotInitialised) {
		// Real error (not just uninitialised)
		slog.Error("failed to open index", "error", err)
		return err
	}
	if err == nil {
		h.svc = svc
		defer svc.Close()
	} else {
		slog.Info("docdex not initialised, starting in uninitialised mode - call docdex_init to create index")
	}

	s := server.NewMCPServer(
		"docdex",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, h)
	registerTools(s, h)

	slog.Info("docdex MCP server ready", "version", Version, "transport", "stdio")

	err = server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers with access to the document index.
// The svc field may be nil if the index has not been initialised.
type handlers struct {
	db  string            // database name for init
	svc *document.Service // nil if not initialised
}

// requireInit returns an error result if the index is not initialised.
// Tools that require an index should call this first.
func (h *handlers) requireInit() *mcp.CallToolResult {
	if h.svc == nil {
		return mcp.NewToolResultError(ErrNotInitialised)
	}
	return nil
}

// registerResources adds URI-based resource access for direct document reading.
func registerResources(s *server.MCPServer, h *handlers) {
	// Document content by ID
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"docdex://documents/{id}",
			"Document",
			mcp.WithTemplateDescription("Read document content by ID"),
			mcp.WithTemplateMIMEType("text/plain"),
		),
		h.readDocument,
	)
}

// registerTools exposes docdex operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	// Init - works without existing index
	s.AddTool(
		mcp.NewTool("docdex_init",
			mcp.WithDescription("Initialise a new docdex index. Call this first if other tools return 'index not initialised'."),
			mcp.WithBoolean("local", mcp.Description("If true, database is gitignored (not committed to version control)")),
		),
		h.initIndex,
	)

	// Add document
	s.AddTool(
		mcp.NewTool("docdex_add",
			mcp.WithDescription("Index a document and return its assigned ID"),
			mcp.WithString("content", mcp.Required(), mcp.Description("Document content")),
			mcp.WithNumber("id", mcp.Description("Explicit document ID (default: auto-assigned)")),
		),
		h.addDocument,
	)

	// Get document
	s.AddTool(
		mcp.NewTool("docdex_get",
			mcp.WithDescription("Fetch a document's content by ID"),
			mcp.WithNumber("id", mcp.Required(), mcp.Description("Document ID")),
		),
		h.getDocument,
	)

	// Remove document
	s.AddTool(
		mcp.NewTool("docdex_remove",
			mcp.WithDescription("Remove a document from the index"),
			mcp.WithNumber("id", mcp.Required(), mcp.Description("Document ID")),
		),
		h.removeDocument,
	)

	// List documents
	s.AddTool(
		mcp.NewTool("docdex_list",
			mcp.WithDescription("List indexed documents in ID order"),
			mcp.WithNumber("limit", mcp.Description("Maximum documents to return (default: all)")),
			mcp.WithBoolean("content", mcp.Description("Include document content in results")),
		),
		h.listDocuments,
	)

	// Search
	s.AddTool(
		mcp.NewTool("docdex_search",
			mcp.WithDescription("Full-text search. Terms are matched as words; use mode to combine multiple terms: 'all' (every term), 'any' (at least one), 'not' (first term without the second)"),
			mcp.WithString("terms", mcp.Required(), mcp.Description("Space-separated search terms")),
			mcp.WithString("mode", mcp.Description("How to combine terms: all, any, or not (default: all)")),
			mcp.WithBoolean("highlight", mcp.Description("Mark matched terms in results")),
			mcp.WithNumber("limit", mcp.Description("Maximum results (default: configured search.limit)")),
		),
		h.searchDocuments,
	)

	// Phrase search
	s.AddTool(
		mcp.NewTool("docdex_search_phrase",
			mcp.WithDescription("Search for documents containing an exact phrase (words adjacent and in order)"),
			mcp.WithString("text", mcp.Required(), mcp.Description("Phrase to search for")),
			mcp.WithBoolean("highlight", mcp.Description("Mark matched terms in results")),
			mcp.WithNumber("limit", mcp.Description("Maximum results (default: configured search.limit)")),
		),
		h.searchPhrase,
	)

	// Proximity search
	s.AddTool(
		mcp.NewTool("docdex_search_near",
			mcp.WithDescription("Search for documents where all terms appear close together"),
			mcp.WithString("terms", mcp.Required(), mcp.Description("Space-separated search terms")),
			mcp.WithNumber("distance", mcp.Description("Maximum tokens between terms (default: 10)")),
			mcp.WithBoolean("highlight", mcp.Description("Mark matched terms in results")),
			mcp.WithNumber("limit", mcp.Description("Maximum results (default: configured search.limit)")),
		),
		h.searchNear,
	)

	// Config
	s.AddTool(
		mcp.NewTool("docdex_config_get",
			mcp.WithDescription("Get configuration values. Omit key to list all settings."),
			mcp.WithString("key", mcp.Description("Config key (e.g. search.limit, highlight.prefix)")),
		),
		h.configGet,
	)
	s.AddTool(
		mcp.NewTool("docdex_config_set",
			mcp.WithDescription("Set a configuration value. Takes effect immediately."),
			mcp.WithString("key", mcp.Required(), mcp.Description("Config key (e.g. search.limit, highlight.prefix)")),
			mcp.WithString("value", mcp.Required(), mcp.Description("New value")),
		),
		h.configSet,
	)

	// Stats
	s.AddTool(
		mcp.NewTool("docdex_stats",
			mcp.WithDescription("Get index statistics: document count, content size, ID range"),
		),
		h.statsTool,
	)
}

// readDocument handles docdex://documents/{id} resource requests.
func (h *handlers) readDocument(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return h.readDocumentResource(ctx, req.Params.URI)
}
