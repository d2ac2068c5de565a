// resources.go exposes documents as MCP resources so clients can load
// content by URI without invoking a tool. URIs take the form
// docdex://documents/{id} and return the same raw content as the CLI's
// cat command.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

var (
	// ErrInvalidURI indicates a malformed resource URI, helping clients
	// debug URI construction issues.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrEmptyID indicates a missing document ID in a resource URI.
	ErrEmptyID = errors.New("empty document ID")
)

// readDocumentResource reads a document and returns it as resource contents.
func (h *handlers) readDocumentResource(ctx context.Context, uri string) ([]mcp.ResourceContents, error) {
	if h.svc == nil {
		return nil, errors.New(ErrNotInitialised)
	}

	id, err := parseDocumentURI(uri)
	if err != nil {
		return nil, err
	}

	doc, err := h.svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     doc.Content,
		},
	}, nil
}

// parseDocumentURI extracts the document ID from a docdex://documents/{id} URI.
func parseDocumentURI(uri string) (int64, error) {
	const prefix = "docdex://documents/"
	if !strings.HasPrefix(uri, prefix) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}

	rest := strings.TrimPrefix(uri, prefix)
	if rest == "" {
		return 0, ErrEmptyID
	}

	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid ID %s", ErrInvalidURI, rest)
	}
	return id, nil
}
