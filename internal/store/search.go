// search.go implements the raw full-text search primitive over FTS5.
//
// Separated from read.go because FTS5 has fundamentally different query
// semantics. Regular reads use exact rowid matching; FTS5 uses tokenised
// search with its own query grammar (AND, OR, NOT, prefix*, "phrase",
// NEAR(...)). This store is a pass-through for matching logic, not a
// reimplementation of it.
//
// Design: Results are ordered by FTS5's rank (bm25 relevance); the store
// imposes no ranking of its own. Highlight markers are bound as SQL
// parameters to FTS5's highlight() auxiliary function and inserted verbatim
// around matched terms - the markers themselves are never escaped.

package store

import (
	"context"
	"fmt"
	"strings"
)

// Search executes a canonical FTS5 query and returns every matching
// document's identifier and content, in relevance order. In highlight mode
// each match additionally carries a rendering with matched terms wrapped in
// the configured markers; the plain content rides along unchanged.
//
// An engine rejection of the query string (malformed boolean expression,
// illegal proximity usage) surfaces as ErrQueryRejected carrying the
// offending query.
func (s *SQLiteStore) Search(ctx context.Context, query string, opts SearchOptions) ([]Match, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	var b strings.Builder
	var args []any

	b.WriteString(`SELECT rowid, `)
	if opts.Highlight {
		b.WriteString(`highlight(documents, 0, ?, ?), `)
		args = append(args, opts.Prefix, opts.Suffix)
	}
	b.WriteString(`content FROM documents WHERE documents MATCH ? ORDER BY rank`)
	args = append(args, query)

	if opts.Limit > 0 {
		b.WriteString(` LIMIT ?`)
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		// FTS5 reports grammar errors at query time; anything SQLite
		// rejects on a MATCH is a malformed canonical query.
		return nil, fmt.Errorf("%w: %q: %v", ErrQueryRejected, query, err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		if opts.Highlight {
			err = rows.Scan(&m.ID, &m.Highlighted, &m.Content)
		} else {
			err = rows.Scan(&m.ID, &m.Content)
		}
		if err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
