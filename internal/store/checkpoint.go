// checkpoint.go handles WAL checkpointing. A checkpoint runs on graceful
// shutdown and may also be requested by long-running processes. TRUNCATE
// mode is used so the -wal and -shm sidecar files are flushed and removed
// rather than left behind.

package store

import (
	"context"
	"fmt"
)

// Checkpoint writes all WAL data back to the main database file and truncates
// the WAL. This removes the -wal and -shm files from the filesystem.
func (s *SQLiteStore) Checkpoint(ctx context.Context) error {
	if err := s.guard(); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `PRAGMA wal_checkpoint(TRUNCATE)`); err != nil {
		return fmt.Errorf("WAL checkpoint: %w", err)
	}
	return nil
}
