// flags.go defines shared flag name constants used across extensions.
//
// Centralising the names keeps command surfaces consistent: a flag that
// means the same thing in two commands is spelled the same way in both.

package extension

const (
	// Search mode flags.
	FlagAll      = "all"
	FlagAny      = "any"
	FlagPhrase   = "phrase"
	FlagPrefix   = "prefix"
	FlagNot      = "not"
	FlagNear     = "near"
	FlagDistance = "distance"

	// Search presentation flags.
	FlagHighlight = "highlight"
	FlagHlPrefix  = "hl-prefix"
	FlagHlSuffix  = "hl-suffix"
	FlagLimit     = "limit"
	FlagCount     = "count"

	// Listing flags.
	FlagLong = "long"

	// Config flags.
	FlagLocal = "local"

	// Import/export flags.
	FlagDryRun        = "dry-run"
	FlagExt           = "ext"
	FlagIncludeHidden = "include-hidden"

	// Document flags.
	FlagFile = "file"
	FlagID   = "id"

	// Rendering flags.
	FlagRender = "render"
	FlagRaw    = "raw"

	// Init flags.
	FlagShare = "share"
)
