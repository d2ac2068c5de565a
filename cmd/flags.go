/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go holds the persistent CLI flags and their accessors.
//
// Kept apart from root.go so flag state stays in one file. Extensions read
// flag values through the exported accessor functions, never the variables,
// which keeps them decoupled from cobra and lets the env-var fallbacks
// (DOCDEX_DB, DOCDEX_DIR) live in one place. JSON() and the PrintJSON
// helpers give every command the same -o json behaviour.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/docdex/internal/config"
	"github.com/spf13/cobra"
)

var validOutputFormats = []string{"json"}

var (
	output string
	author string
	force  bool
	db     string
	dir    string
)

// out is where commands write. Tests swap it to capture output.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// Output returns the output format flag value.
func Output() string { return output }

// Author returns the author flag value, used for audit log attribution.
func Author() string { return author }

// Force returns the force flag value.
func Force() bool { return force }

// DB returns the resolved database name.
// Priority: --db flag > DOCDEX_DB env var > empty (default).
func DB() string {
	if db != "" {
		return db
	}
	return os.Getenv("DOCDEX_DB")
}

// Dir returns the explicit database directory if set.
// Priority: --dir flag > DOCDEX_DIR env var > empty (use discovery).
func Dir() string {
	if dir != "" {
		return dir
	}
	return os.Getenv("DOCDEX_DIR")
}

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError renders an error as a JSON object in JSON mode, returning
// nil so cobra doesn't print it a second time. Outside JSON mode the error
// passes through unchanged.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	// Nothing useful to do if printing the error itself fails.
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}

// detectAuthor resolves the default author for audit attribution.
// Returns empty string when config is missing or has no author set.
func detectAuthor() string {
	if cfg, err := config.Load(); err == nil && cfg.Author.Name != "" {
		return cfg.Author.Name
	}
	return ""
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().StringVarP(&author, "author", "a", "", "Audit log attribution")
	rootCmd.PersistentFlags().BoolVar(&force, "force", false, "Skip confirmations, overwrite existing files")
	rootCmd.PersistentFlags().StringVar(&db, "db", "", "Database name (e.g., notes for docdex-notes.db)")
	rootCmd.PersistentFlags().StringVar(&dir, "dir", "", "Database directory (skip discovery, use explicit path)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
