// stats.go implements the "docdex stats" command for index statistics.

package document

import (
	"fmt"

	"github.com/jpl-au/docdex/cmd"
	"github.com/jpl-au/docdex/internal/format"
	"github.com/jpl-au/docdex/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show index statistics",
		Long:  `Show document count, total content size, and ID range.`,
		RunE:  e.runStats,
	}
}

func (e *Extension) runStats(c *cobra.Command, _ []string) error {
	stats, err := e.svc.Stats(c.Context())

	log.Event("document:stats", "stats").Author(cmd.Author()).Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("stats: %w", err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(stats)
	}
	return format.Stats(cmd.Out(), stats)
}
