// find.go implements the "docdex search" command for FTS5 full-text search.
//
// Separated from search.go to isolate the query-mode flag handling. Each
// mode maps to one query builder function; the modes are mutually exclusive
// so a search always means exactly one thing.

package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/jpl-au/docdex/cmd"
	"github.com/jpl-au/docdex/extension"
	"github.com/jpl-au/docdex/internal/format"
	"github.com/jpl-au/docdex/internal/log"
	"github.com/jpl-au/docdex/internal/store"
	"github.com/spf13/cobra"
)

func (e *Extension) newSearchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "search <term>...",
		Short: "Full-text search across documents",
		Long: `Full-text search across indexed documents, best match first.

Modes (mutually exclusive; default is --all):
  docdex search quick fox            # documents with every term
  docdex search --any quick fox      # documents with at least one term
  docdex search --phrase "lazy dog"  # exact phrase, adjacent and in order
  docdex search --prefix qui         # any word starting with "qui"
  docdex search lazy --not fox       # "lazy" but not "fox"
  docdex search --near quick fox     # terms within --distance tokens (default 10)

Terms are matched as whole words; operator words like AND inside a
phrase are matched literally. See "docdex guide search" for details.`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runSearch,
	}
	c.Flags().Bool(extension.FlagAll, false, "Match documents containing every term (default)")
	c.Flags().Bool(extension.FlagAny, false, "Match documents containing at least one term")
	c.Flags().Bool(extension.FlagPhrase, false, "Match terms as an exact phrase")
	c.Flags().Bool(extension.FlagPrefix, false, "Match any word starting with the term")
	c.Flags().String(extension.FlagNot, "", "Exclude documents containing this term")
	c.Flags().Bool(extension.FlagNear, false, "Match terms appearing close together")
	c.Flags().Int(extension.FlagDistance, 10, "Maximum tokens between terms for --near")
	c.Flags().BoolP(extension.FlagHighlight, "H", false, "Mark matched terms in results")
	c.Flags().String(extension.FlagHlPrefix, "", "Highlight opening marker (default from config)")
	c.Flags().String(extension.FlagHlSuffix, "", "Highlight closing marker (default from config)")
	c.Flags().IntP(extension.FlagLimit, "n", -1, "Maximum results (default from config, 0 = all)")
	c.Flags().Bool(extension.FlagCount, false, "Print only the number of matches")
	c.MarkFlagsMutuallyExclusive(
		extension.FlagAll, extension.FlagAny, extension.FlagPhrase,
		extension.FlagPrefix, extension.FlagNear,
	)
	return c
}

func (e *Extension) runSearch(c *cobra.Command, args []string) error {
	ctx := c.Context()

	opts, err := e.buildOptions(c)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	mode, matches, err := e.dispatch(ctx, c, args, opts)

	log.Event("search:search", "search").
		Author(cmd.Author()).
		Detail("mode", mode).
		Detail("terms", strings.Join(args, " ")).
		Detail("count", len(matches)).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("search: %w", err))
	}

	countOnly, _ := c.Flags().GetBool(extension.FlagCount)
	if countOnly {
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]int{"count": len(matches)})
		}
		fmt.Fprintln(cmd.Out(), len(matches))
		return nil
	}

	if cmd.JSON() {
		items := make([]store.MatchJSON, len(matches))
		for i := range matches {
			items[i] = matches[i].ToJSON()
		}
		return cmd.PrintJSON(items)
	}
	return format.SearchResults(cmd.Out(), matches)
}

// buildOptions assembles search options from config defaults and flags.
func (e *Extension) buildOptions(c *cobra.Command) (store.SearchOptions, error) {
	opts := e.svc.SearchOptions()

	if hl, _ := c.Flags().GetBool(extension.FlagHighlight); hl {
		opts = opts.WithHighlight()
	}
	prefix, _ := c.Flags().GetString(extension.FlagHlPrefix)
	suffix, _ := c.Flags().GetString(extension.FlagHlSuffix)
	if prefix != "" || suffix != "" {
		if prefix == "" {
			prefix = opts.Prefix
		}
		if suffix == "" {
			suffix = opts.Suffix
		}
		opts = opts.WithMarkers(prefix, suffix)
	}
	// -1 means the flag was not given; keep the configured default.
	if limit, _ := c.Flags().GetInt(extension.FlagLimit); limit >= 0 {
		opts = opts.WithLimit(limit)
	}
	return opts, nil
}

// dispatch routes the search to the builder matching the selected mode.
func (e *Extension) dispatch(ctx context.Context, c *cobra.Command, args []string, opts store.SearchOptions) (string, []store.Match, error) {
	anyMode, _ := c.Flags().GetBool(extension.FlagAny)
	phrase, _ := c.Flags().GetBool(extension.FlagPhrase)
	prefix, _ := c.Flags().GetBool(extension.FlagPrefix)
	near, _ := c.Flags().GetBool(extension.FlagNear)
	not, _ := c.Flags().GetString(extension.FlagNot)
	distance, _ := c.Flags().GetInt(extension.FlagDistance)

	switch {
	case phrase:
		matches, err := e.svc.SearchPhrase(ctx, strings.Join(args, " "), opts)
		return "phrase", matches, err
	case prefix:
		if len(args) != 1 {
			return "prefix", nil, fmt.Errorf("--prefix takes exactly one term")
		}
		matches, err := e.svc.SearchPrefix(ctx, args[0], opts)
		return "prefix", matches, err
	case near:
		matches, err := e.svc.SearchNear(ctx, args, distance, opts)
		return "near", matches, err
	case not != "":
		if len(args) != 1 {
			return "not", nil, fmt.Errorf("--not takes exactly one include term")
		}
		matches, err := e.svc.SearchNot(ctx, args[0], not, opts)
		return "not", matches, err
	case anyMode:
		matches, err := e.svc.SearchOr(ctx, args, opts)
		return "any", matches, err
	default:
		matches, err := e.svc.SearchAnd(ctx, args, opts)
		return "all", matches, err
	}
}
