// add.go implements the "docdex add" command for indexing documents.
//
// Separated from document.go to isolate input source handling: content can
// arrive as an argument, from a file, or from stdin.
//
// Design: Add prints the assigned ID on success so scripts can capture it
// (docdex add "text" | tail -1). With --id the engine uses the given ID
// instead of assigning one; an ID collision fails without touching the
// existing document.

package document

import (
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/docdex/cmd"
	"github.com/jpl-au/docdex/extension"
	"github.com/jpl-au/docdex/internal/log"
	"github.com/jpl-au/docdex/internal/store"
	"github.com/spf13/cobra"
)

func (e *Extension) newAddCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "add [content]",
		Short: "Index a document",
		Long: `Index a document and print its assigned ID.

Content comes from the argument, --file, or stdin:
  docdex add "some text"
  docdex add -f notes.txt
  cat notes.txt | docdex add

Use --id to choose the ID explicitly:
  docdex add --id 42 "the answer"`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.runAdd,
	}
	c.Flags().StringP(extension.FlagFile, "f", "", "Read content from file")
	c.Flags().Int64(extension.FlagID, 0, "Explicit document ID (default: auto-assigned)")
	return c
}

func (e *Extension) runAdd(c *cobra.Command, args []string) error {
	ctx := c.Context()
	file, _ := c.Flags().GetString(extension.FlagFile)
	id, _ := c.Flags().GetInt64(extension.FlagID)

	content, err := readContent(args, file, c.InOrStdin())
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	newID, err := e.svc.Insert(ctx, store.Document{ID: id, Content: content})

	log.Event("document:add", "add").
		Author(cmd.Author()).
		ResultDoc(newID).
		Detail("bytes", len(content)).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("add: %w", err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]int64{"id": newID})
	}
	fmt.Fprintln(cmd.Out(), newID)
	return nil
}

// readContent resolves document content from argument, file, or stdin,
// in that order of precedence.
func readContent(args []string, file string, stdin io.Reader) (string, error) {
	if len(args) > 0 && file != "" {
		return "", fmt.Errorf("cannot combine a content argument with --file")
	}
	if len(args) > 0 {
		return args[0], nil
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", file, err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("no content: pass an argument, --file, or pipe to stdin")
	}
	return string(data), nil
}
