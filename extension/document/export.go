// export.go implements the "docdex export" command for writing documents
// back out as files.

package document

import (
	"fmt"
	"io"

	"github.com/jpl-au/docdex/cmd"
	"github.com/jpl-au/docdex/extension"
	"github.com/jpl-au/docdex/internal/exporter"
	"github.com/jpl-au/docdex/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newExportCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "export <dest>",
		Short: "Export documents to the filesystem",
		Long: `Write documents to <dest>/<id>.<ext>, one file per document.

  docdex export out/             # export every document
  docdex export out/ --id 1,2    # export documents 1 and 2
  docdex export out/ --ext md    # use .md instead of .txt

Use --force to overwrite files that already exist.`,
		Args: cobra.ExactArgs(1),
		RunE: e.runExport,
	}
	c.Flags().Int64Slice(extension.FlagID, nil, "Document IDs to export (default: all)")
	c.Flags().String(extension.FlagExt, "txt", "File extension for exported files")
	return c
}

func (e *Extension) runExport(c *cobra.Command, args []string) error {
	ctx := c.Context()
	ids, _ := c.Flags().GetInt64Slice(extension.FlagID)
	ext, _ := c.Flags().GetString(extension.FlagExt)

	opts := exporter.Options{
		IDs:   ids,
		Ext:   ext,
		Force: cmd.Force(),
	}

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	result, err := exporter.Run(ctx, w, e.svc, args[0], opts)

	log.Event("document:export", "export").
		Author(cmd.Author()).
		Detail("dest", args[0]).
		Detail("count", result.Exported).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("export to %q: %w", args[0], err))
	}

	if !cmd.JSON() {
		fmt.Fprintf(cmd.Out(), "Exported %d documents\n", result.Exported)
	}
	return cmd.PrintJSON(result)
}
