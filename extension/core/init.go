// init.go implements the "docdex init" command, the one command that runs
// before an index exists.
//
// Like git init, it only creates the repository structure; config is
// managed separately through "docdex config". --local decides whether the
// new database file is committed or gitignored.

package core

import (
	"fmt"

	"github.com/jpl-au/docdex/cmd"
	"github.com/jpl-au/docdex/extension"
	"github.com/jpl-au/docdex/internal/document"
	"github.com/jpl-au/docdex/internal/log"
	"github.com/jpl-au/docdex/internal/repo"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "init",
		Short: "Initialise a new docdex index",
		Long: `Creates a .docdex/docdex.db database in the current directory.

Use --db to create additional databases:
  docdex init --db notes    # creates .docdex/docdex-notes.db

Use --dir to create in a different directory:
  docdex init --dir /path/to/project    # creates /path/to/project/.docdex/docdex.db

Use --local to exclude from git:
  docdex init --db scratch --local    # creates docdex-scratch.db, not committed

Note: init does not create config. Use "docdex config" to set up configuration.`,
		RunE: runInit,
	}
	c.Flags().BoolP(extension.FlagLocal, "l", false, "Mark database as local (gitignored)")
	return c
}

func runInit(c *cobra.Command, _ []string) error {
	local, _ := c.Flags().GetBool(extension.FlagLocal)
	db, dir := cmd.DB(), cmd.Dir()

	// --local edits the current project's .gitignore, but --dir puts the
	// database elsewhere; the combination would ignore a file that isn't here.
	if local && dir != "" {
		return cmd.PrintJSONError(fmt.Errorf("cannot use --local with --dir: --local modifies the current project's .gitignore, but --dir creates the database elsewhere"))
	}

	err := document.Init(cmd.Force(), db, local, dir)

	log.Event("core:init", "init").
		Author(cmd.Author()).
		Detail("db", db).
		Detail("dir", dir).
		Detail("local", local).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("init: %w", err))
	}

	dbFile := repo.DBFileName(db)
	loc := ".docdex/" + dbFile
	if dir != "" {
		loc = dir + "/.docdex/" + dbFile
	}
	fmt.Fprintf(cmd.Out(), "Initialised docdex index in %s\n", loc)
	return nil
}
