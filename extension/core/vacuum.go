// vacuum.go implements the "docdex vacuum" command for space reclamation.
//
// Removing documents from an FTS5 table leaves free pages in the database
// file. Vacuum rebuilds the file to return that space to the filesystem.

package core

import (
	"fmt"
	"time"

	"github.com/jpl-au/docdex/cmd"
	"github.com/jpl-au/docdex/internal/log"
	"github.com/jpl-au/docdex/internal/progress"
	"github.com/spf13/cobra"
)

func (e *Extension) newVacuumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vacuum",
		Short: "Reclaim space from removed documents",
		Long: `Rebuilds the database file, reclaiming space freed by removed documents.

Safe to run at any time; the index contents are unchanged.`,
		RunE: e.runVacuum,
	}
}

func (e *Extension) runVacuum(c *cobra.Command, _ []string) error {
	// VACUUM rewrites the whole database file, which can take a while on a
	// large index. Spinner only shows on a TTY.
	spin := progress.NewSpinner("Vacuuming")
	spin.Start()

	done := make(chan error, 1)
	go func() { done <- e.svc.Vacuum(c.Context()) }()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	var err error
wait:
	for {
		select {
		case err = <-done:
			break wait
		case <-ticker.C:
			spin.Tick()
		}
	}
	spin.Stop()

	log.Event("core:vacuum", "vacuum").Author(cmd.Author()).Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("vacuum: %w", err))
	}
	fmt.Fprintln(cmd.Out(), "Vacuumed database")
	return nil
}
