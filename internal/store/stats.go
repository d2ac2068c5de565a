// stats.go implements statistics queries for operational visibility.
//
// Separated to collect "read-only, aggregate" operations distinct from CRUD.
// These queries power the stats command and MCP tooling without loading
// document content into memory - they use COUNT(), SUM(length()) and
// MIN/MAX directly in SQL.

package store

import "context"

// Stats returns aggregate store statistics: document count, total content
// bytes, and the identifier range currently in use.
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	var st Stats
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(length(content)), 0),
		       COALESCE(MIN(rowid), 0),
		       COALESCE(MAX(rowid), 0)
		FROM documents
	`).Scan(&st.Documents, &st.TotalBytes, &st.LowestID, &st.HighestID)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
