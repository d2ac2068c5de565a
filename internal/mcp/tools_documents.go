// tools_documents.go implements MCP tools for document CRUD operations.
//
// Separated from server.go to isolate document-specific tool implementations
// and keep file sizes manageable. These tools mirror the CLI commands (add,
// cat, ls, rm, stats) but return structured JSON for LLM consumption rather
// than human-readable text.
//
// Design principles:
//
//  1. Error handling: Errors return MCP tool error results rather than Go
//     errors. This ensures the LLM receives actionable feedback it can parse
//     and potentially retry, rather than causing the entire tool call to fail
//     at the protocol level.
//
//  2. Identity: Documents are addressed by their integer ID everywhere. The
//     add tool returns the assigned ID so the LLM can reference the document
//     in later calls.

package mcp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jpl-au/docdex/internal/document"
	"github.com/jpl-au/docdex/internal/log"
	"github.com/jpl-au/docdex/internal/store"
	"github.com/mark3labs/mcp-go/mcp"
)

// initIndex handles docdex_init tool calls.
func (h *handlers) initIndex(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.svc != nil {
		return mcp.NewToolResultError("index already initialised"), nil
	}

	local := getBool(req, "local", false)

	err := document.Init(false, h.db, local, "")

	log.Event("mcp:init", "init").Author("mcp").Detail("local", local).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Open the newly created index
	svc, err := document.New(h.db)
	if err != nil {
		return mcp.NewToolResultError("init succeeded but failed to open index: " + err.Error()), nil
	}
	h.svc = svc

	slog.Info("index initialised", "local", local)

	if local {
		return mcp.NewToolResultText("index initialised (local - gitignored)"), nil
	}
	return mcp.NewToolResultText("index initialised"), nil
}

// addDocument handles docdex_add tool calls.
func (h *handlers) addDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if result := h.requireInit(); result != nil {
		return result, nil
	}

	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("content is required"), nil //nolint:nilerr
	}

	doc := store.Document{ID: getID(req, "id", 0), Content: content}

	id, err := h.svc.Insert(ctx, doc)

	log.Event("mcp:add", "add").Author("mcp").ResultDoc(id).Detail("bytes", len(content)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]int64{"id": id})
}

// getDocument handles docdex_get tool calls.
func (h *handlers) getDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if result := h.requireInit(); result != nil {
		return result, nil
	}

	id := getID(req, "id", 0)
	if id == 0 {
		return mcp.NewToolResultError("id is required"), nil
	}

	doc, err := h.svc.Get(ctx, id)

	log.Event("mcp:get", "get").Author("mcp").Doc(id).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(doc.ToJSON(true))
}

// removeDocument handles docdex_remove tool calls.
func (h *handlers) removeDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if result := h.requireInit(); result != nil {
		return result, nil
	}

	id := getID(req, "id", 0)
	if id == 0 {
		return mcp.NewToolResultError("id is required"), nil
	}

	err := h.svc.Remove(ctx, id)

	log.Event("mcp:remove", "remove").Author("mcp").Doc(id).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("removed document %d", id)), nil
}

// listDocuments handles docdex_list tool calls.
func (h *handlers) listDocuments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if result := h.requireInit(); result != nil {
		return result, nil
	}

	limit := getInt(req, "limit", 0)
	withContent := getBool(req, "content", false)

	docs, err := h.svc.List(ctx, limit)

	log.Event("mcp:list", "list").Author("mcp").Detail("count", len(docs)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := make([]store.DocJSON, len(docs))
	for i := range docs {
		result[i] = docs[i].ToJSON(withContent)
	}

	return jsonResult(result)
}

// statsTool handles docdex_stats tool calls.
func (h *handlers) statsTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if result := h.requireInit(); result != nil {
		return result, nil
	}

	stats, err := h.svc.Stats(ctx)

	log.Event("mcp:stats", "stats").Author("mcp").Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(stats)
}
