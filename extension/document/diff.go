// diff.go implements the "docdex diff" command for comparing two documents.

package document

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jpl-au/docdex/cmd"
	"github.com/jpl-au/docdex/internal/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (e *Extension) newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <id1> <id2>",
		Short: "Compare two documents",
		Long:  `Show a unified diff between the content of two documents.`,
		Args:  cobra.ExactArgs(2),
		RunE:  e.runDiff,
	}
}

func (e *Extension) runDiff(c *cobra.Command, args []string) error {
	ctx := c.Context()

	id1, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("invalid ID %q", args[0]))
	}
	id2, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("invalid ID %q", args[1]))
	}

	result, err := e.svc.Diff(ctx, id1, id2)

	log.Event("document:diff", "diff").Author(cmd.Author()).Doc(id1).ResultDoc(id2).Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("diff %d %d: %w", id1, id2, err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{
			"old":  result.Old,
			"new":  result.New,
			"diff": result.Format(false),
		})
	}

	colour := term.IsTerminal(int(os.Stdout.Fd()))
	fmt.Fprint(cmd.Out(), result.Format(colour))
	return nil
}
