// import.go implements the "docdex import" command for batch indexing.
//
// Design: The whole directory is indexed in one transaction via the importer
// package, so a failure part-way leaves the index unchanged. --dry-run lists
// the files that would be indexed without touching the database.

package document

import (
	"fmt"
	"io"

	"github.com/jpl-au/docdex/cmd"
	"github.com/jpl-au/docdex/extension"
	"github.com/jpl-au/docdex/internal/importer"
	"github.com/jpl-au/docdex/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newImportCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "import <path>",
		Short: "Index files from the filesystem",
		Long: `Index a file or every file under a directory, one document per file.

  docdex import notes/              # index all files under notes/
  docdex import notes/ --ext md,txt # only .md and .txt files
  docdex import notes/ --dry-run    # show what would be indexed`,
		Args: cobra.ExactArgs(1),
		RunE: e.runImport,
	}
	c.Flags().StringSlice(extension.FlagExt, nil, "File extensions to import (default: all)")
	c.Flags().Bool(extension.FlagIncludeHidden, false, "Include hidden files and directories")
	c.Flags().Bool(extension.FlagDryRun, false, "Show what would be imported without importing")
	return c
}

func (e *Extension) runImport(c *cobra.Command, args []string) error {
	ctx := c.Context()
	exts, _ := c.Flags().GetStringSlice(extension.FlagExt)
	hidden, _ := c.Flags().GetBool(extension.FlagIncludeHidden)
	dryRun, _ := c.Flags().GetBool(extension.FlagDryRun)

	opts := importer.Options{
		Extensions: exts,
		Hidden:     hidden,
		DryRun:     dryRun,
	}

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	result, err := importer.Run(ctx, w, e.svc, args[0], opts)

	log.Event("document:import", "import").
		Author(cmd.Author()).
		Detail("src", args[0]).
		Detail("count", result.Imported).
		Detail("dry_run", dryRun).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("import %q: %w", args[0], err))
	}

	if !cmd.JSON() && !dryRun {
		fmt.Fprintf(cmd.Out(), "Imported %d documents\n", result.Imported)
	}
	return cmd.PrintJSON(result)
}
