// tools_search.go implements MCP tools for search operations.
//
// Separated from tools_documents.go because search operations have different
// semantics - they return ranked match lists and compose queries rather than
// addressing documents by ID.
//
// Design: Search results are returned as JSON arrays for easy LLM parsing.
// Terms are passed through the query builder so operator words in LLM input
// are matched literally instead of being interpreted as query syntax.

package mcp

import (
	"context"
	"strings"

	"github.com/jpl-au/docdex/internal/log"
	"github.com/jpl-au/docdex/internal/store"
	"github.com/mark3labs/mcp-go/mcp"
)

// searchOpts builds search options from common tool parameters.
func (h *handlers) searchOpts(req mcp.CallToolRequest) store.SearchOptions {
	opts := h.svc.SearchOptions()
	if getBool(req, "highlight", false) {
		opts = opts.WithHighlight()
	}
	if limit := getInt(req, "limit", -1); limit >= 0 {
		opts = opts.WithLimit(limit)
	}
	return opts
}

// matchesResult converts matches to their JSON form.
func matchesResult(matches []store.Match) (*mcp.CallToolResult, error) {
	result := make([]store.MatchJSON, len(matches))
	for i := range matches {
		result[i] = matches[i].ToJSON()
	}
	return jsonResult(result)
}

// searchDocuments handles docdex_search tool calls.
func (h *handlers) searchDocuments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if result := h.requireInit(); result != nil {
		return result, nil
	}

	raw, err := req.RequireString("terms")
	if err != nil {
		return mcp.NewToolResultError("terms is required"), nil //nolint:nilerr
	}
	terms := strings.Fields(raw)
	mode := getString(req, "mode", "all")
	opts := h.searchOpts(req)

	var matches []store.Match
	switch mode {
	case "all", "":
		matches, err = h.svc.SearchAnd(ctx, terms, opts)
	case "any":
		matches, err = h.svc.SearchOr(ctx, terms, opts)
	case "not":
		if len(terms) != 2 {
			return mcp.NewToolResultError("mode 'not' requires exactly two terms: include exclude"), nil
		}
		matches, err = h.svc.SearchNot(ctx, terms[0], terms[1], opts)
	default:
		return mcp.NewToolResultError("invalid mode: must be all, any, or not"), nil
	}

	log.Event("mcp:search", "search").Author("mcp").Detail("terms", raw).Detail("mode", mode).Detail("count", len(matches)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return matchesResult(matches)
}

// searchPhrase handles docdex_search_phrase tool calls.
func (h *handlers) searchPhrase(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if result := h.requireInit(); result != nil {
		return result, nil
	}

	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text is required"), nil //nolint:nilerr
	}

	matches, err := h.svc.SearchPhrase(ctx, text, h.searchOpts(req))

	log.Event("mcp:search", "search").Author("mcp").Detail("phrase", text).Detail("count", len(matches)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return matchesResult(matches)
}

// searchNear handles docdex_search_near tool calls.
func (h *handlers) searchNear(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if result := h.requireInit(); result != nil {
		return result, nil
	}

	raw, err := req.RequireString("terms")
	if err != nil {
		return mcp.NewToolResultError("terms is required"), nil //nolint:nilerr
	}
	terms := strings.Fields(raw)
	distance := getInt(req, "distance", 10)

	matches, err := h.svc.SearchNear(ctx, terms, distance, h.searchOpts(req))

	log.Event("mcp:search", "search").Author("mcp").Detail("terms", raw).Detail("distance", distance).Detail("count", len(matches)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return matchesResult(matches)
}
