// Package store implements document persistence and full-text search over
// SQLite's FTS5 extension. It owns document identity (64-bit rowid
// identifiers) and the raw search primitive; it is the only package that
// talks to the database.
//
// Matching semantics are delegated entirely to FTS5's query grammar: this
// package passes canonical query strings through and imposes no ranking of
// its own beyond FTS5's relevance order.
package store

import "encoding/json"

// Document is a single stored document. ID is the FTS5 rowid: stable,
// unique within a store, immutable once assigned. An ID <= 0 on insert
// requests auto-assignment via SQLite's rowid auto-increment.
type Document struct {
	ID      int64  // 64-bit identifier (FTS5 rowid)
	Content string // Full document text, the sole indexed field
}

// Match is one full-text search hit. Highlighted is populated only when the
// search ran in highlight mode; the two row shapes are never mixed within
// one call.
type Match struct {
	ID          int64  // Matching document identifier
	Content     string // Plain document content, unchanged
	Highlighted string // Content with matched terms wrapped in markers (highlight mode only)
}

// DocJSON is the API-friendly representation of a Document.
type DocJSON struct {
	ID      int64  `json:"id"`
	Content string `json:"content,omitempty"`
}

// ToJSON converts a Document to its API representation. The content
// parameter controls whether to include document content, allowing
// efficient listings.
func (d *Document) ToJSON(content bool) DocJSON {
	j := DocJSON{ID: d.ID}
	if content {
		j.Content = d.Content
	}
	return j
}

// MatchJSON is the API-friendly representation of a search Match.
type MatchJSON struct {
	ID          int64  `json:"id"`
	Content     string `json:"content"`
	Highlighted string `json:"highlighted,omitempty"`
}

// ToJSON converts a Match to its API representation.
func (m *Match) ToJSON() MatchJSON {
	return MatchJSON{ID: m.ID, Content: m.Content, Highlighted: m.Highlighted}
}

// Default highlight markers inserted around matched terms.
const (
	DefaultHighlightPrefix = "<b>"
	DefaultHighlightSuffix = "</b>"
)

// SearchOptions configures a search operation.
type SearchOptions struct {
	Highlight bool   // Return highlighted renderings alongside plain content
	Prefix    string // Marker inserted before each matched term
	Suffix    string // Marker inserted after each matched term
	Limit     int    // Max results (0 means no limit)
}

// NewSearchOptions returns SearchOptions with the default highlight markers.
// Markers are inserted verbatim by FTS5's highlight(); no escaping is
// performed, so markers can collide with content that already contains them.
func NewSearchOptions() SearchOptions {
	return SearchOptions{
		Prefix: DefaultHighlightPrefix,
		Suffix: DefaultHighlightSuffix,
	}
}

// WithHighlight enables highlight mode.
func (o SearchOptions) WithHighlight() SearchOptions {
	o.Highlight = true
	return o
}

// WithMarkers sets the highlight markers.
func (o SearchOptions) WithMarkers(prefix, suffix string) SearchOptions {
	o.Prefix = prefix
	o.Suffix = suffix
	return o
}

// WithLimit caps the number of returned matches.
func (o SearchOptions) WithLimit(n int) SearchOptions {
	o.Limit = n
	return o
}

// InsertOptions configures an insert operation.
type InsertOptions struct {
	MaxContent int64 // 0 means no limit
}

// Stats provides aggregate store statistics for operational visibility.
type Stats struct {
	Documents  int64 `json:"documents"`   // Stored document count
	TotalBytes int64 `json:"total_bytes"` // Sum of content lengths
	LowestID   int64 `json:"lowest_id"`   // Smallest assigned identifier (0 if empty)
	HighestID  int64 `json:"highest_id"`  // Largest assigned identifier (0 if empty)
}

// MarshalJSON encodes a value with indentation for human-readable CLI output.
// Use this instead of json.Marshal when the output will be displayed to users.
func MarshalJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
