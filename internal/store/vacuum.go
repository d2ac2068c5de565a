// vacuum.go implements database compaction.
//
// Separated because vacuuming is a maintenance operation, not part of the
// document lifecycle. FTS5 deletions leave free pages in the database file;
// VACUUM rebuilds it to reclaim the space. Typically run after bulk removals.

package store

import (
	"context"
	"fmt"
)

// Vacuum rebuilds the database file, reclaiming space left by removed
// documents. This can be slow on large stores and requires free disk space
// up to the size of the database.
func (s *SQLiteStore) Vacuum(ctx context.Context) error {
	if err := s.guard(); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `VACUUM`); err != nil {
		return fmt.Errorf("vacuum: %w", err)
	}
	return nil
}
