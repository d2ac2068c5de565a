// cat.go implements the "docdex cat" command for reading document contents.
//
// Separated from document.go to isolate output formatting logic including
// terminal rendering with glamour.
//
// Design: Cat behaves like Unix cat. Terminal output gets glamour markdown
// rendering (useful when indexed documents are markdown); pipe/redirect gets
// raw content. Use --raw to force raw output on a terminal.

package document

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/docdex/cmd"
	"github.com/jpl-au/docdex/extension"
	"github.com/jpl-au/docdex/internal/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (e *Extension) newCatCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "cat <id>...",
		Short: "Read documents",
		Long:  `Output the contents of one or more documents to stdout.`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  e.runCat,
	}
	c.Flags().Bool(extension.FlagRender, false, "Render content as markdown even when piped")
	c.Flags().Bool(extension.FlagRaw, false, "Output raw content without rendering")
	c.MarkFlagsMutuallyExclusive(extension.FlagRender, extension.FlagRaw)
	return c
}

func (e *Extension) runCat(c *cobra.Command, args []string) error {
	ctx := c.Context()
	render, _ := c.Flags().GetBool(extension.FlagRender)
	raw, _ := c.Flags().GetBool(extension.FlagRaw)

	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("invalid ID %q", arg))
		}

		doc, err := e.svc.Get(ctx, id)

		log.Event("document:cat", "read").Author(cmd.Author()).Doc(id).Write(err)

		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("cat %d: %w", id, err))
		}

		if cmd.JSON() {
			if err := cmd.PrintJSON(doc.ToJSON(true)); err != nil {
				return err
			}
			continue
		}

		// Render with glamour if TTY (or --render) and not --raw
		if !raw && (render || term.IsTerminal(int(os.Stdout.Fd()))) {
			rendered, renderErr := glamour.Render(doc.Content, "dark")
			if renderErr == nil {
				fmt.Fprint(cmd.Out(), rendered)
				continue
			}
		}

		fmt.Fprint(cmd.Out(), doc.Content)
	}
	return nil
}
