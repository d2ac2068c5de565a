// ls.go implements the "docdex ls" command for listing indexed documents.

package document

import (
	"fmt"

	"github.com/jpl-au/docdex/cmd"
	"github.com/jpl-au/docdex/extension"
	"github.com/jpl-au/docdex/internal/format"
	"github.com/jpl-au/docdex/internal/log"
	"github.com/jpl-au/docdex/internal/store"
	"github.com/spf13/cobra"
)

func (e *Extension) newLsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "ls",
		Short: "List indexed documents",
		Long: `List indexed documents in ID order.

  docdex ls          # ID and first line of each document
  docdex ls -l       # long format with sizes
  docdex ls -n 10    # first 10 documents`,
		RunE: e.runLs,
	}
	c.Flags().BoolP(extension.FlagLong, "l", false, "Long format with sizes")
	c.Flags().IntP(extension.FlagLimit, "n", 0, "Maximum documents to list (0 = all)")
	return c
}

func (e *Extension) runLs(c *cobra.Command, _ []string) error {
	ctx := c.Context()
	long, _ := c.Flags().GetBool(extension.FlagLong)
	limit, _ := c.Flags().GetInt(extension.FlagLimit)

	docs, err := e.svc.List(ctx, limit)

	log.Event("document:ls", "list").Author(cmd.Author()).Detail("count", len(docs)).Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("ls: %w", err))
	}

	if cmd.JSON() {
		result := make([]store.DocJSON, len(docs))
		for i := range docs {
			result[i] = docs[i].ToJSON(false)
		}
		return cmd.PrintJSON(result)
	}

	if long {
		return format.Long(cmd.Out(), docs)
	}
	return format.List(cmd.Out(), docs)
}
