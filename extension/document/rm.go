// rm.go implements the "docdex rm" command for removing documents.
//
// Design: Removal is permanent - the document leaves the index immediately.
// The freed ID is only reused if a later add names it explicitly.

package document

import (
	"fmt"
	"strconv"

	"github.com/jpl-au/docdex/cmd"
	"github.com/jpl-au/docdex/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>...",
		Short: "Remove documents",
		Long:  `Remove one or more documents from the index.`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  e.runRm,
	}
}

func (e *Extension) runRm(c *cobra.Command, args []string) error {
	ctx := c.Context()

	var removed []int64
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("invalid ID %q", arg))
		}

		err = e.svc.Remove(ctx, id)

		log.Event("document:rm", "remove").Author(cmd.Author()).Doc(id).Write(err)

		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("rm %d: %w", id, err))
		}
		removed = append(removed, id)

		if !cmd.JSON() {
			fmt.Fprintf(cmd.Out(), "Removed %d\n", id)
		}
	}

	return cmd.PrintJSON(map[string][]int64{"removed": removed})
}
