// Package diff compares the content of two indexed documents and renders
// the differences as unified-style text.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is how many unchanged lines are kept around a change.
// Longer equal runs collapse to "...".
const contextLines = 3

// ANSI colours for terminal output.
const (
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
	ansiReset = "\033[0m"
)

// Result holds a computed diff and the labels of its two sides.
type Result struct {
	Old  string // old label
	New  string // new label
	Diff string // plain diff text
}

// Compute diffs two content strings, labelled for the header. Semantic
// cleanup merges trivial character-level churn into readable line edits.
func Compute(oldContent, newContent, oldLabel, newLabel string) Result {
	dmp := diffmatchpatch.New()
	edits := dmp.DiffCleanupSemantic(dmp.DiffMain(oldContent, newContent, false))

	var b strings.Builder
	for _, edit := range edits {
		renderEdit(&b, edit)
	}

	return Result{Old: oldLabel, New: newLabel, Diff: b.String()}
}

// renderEdit writes one edit's lines with its "- ", "+ ", or "  " prefix,
// collapsing long unchanged runs.
func renderEdit(b *strings.Builder, edit diffmatchpatch.Diff) {
	// Trailing newline would split into a phantom empty line
	text := strings.TrimSuffix(edit.Text, "\n")
	if text == "" {
		return
	}
	lines := strings.Split(text, "\n")

	switch edit.Type {
	case diffmatchpatch.DiffDelete:
		writeLines(b, "- ", lines)
	case diffmatchpatch.DiffInsert:
		writeLines(b, "+ ", lines)
	case diffmatchpatch.DiffEqual:
		if len(lines) <= 2*contextLines {
			writeLines(b, "  ", lines)
			return
		}
		writeLines(b, "  ", lines[:contextLines])
		b.WriteString("  ...\n")
		writeLines(b, "  ", lines[len(lines)-contextLines:])
	}
}

func writeLines(b *strings.Builder, prefix string, lines []string) {
	for _, l := range lines {
		b.WriteString(prefix + l + "\n")
	}
}

// colourise wraps removed lines in red and added lines in green.
func colourise(d string) string {
	var b strings.Builder
	for _, line := range strings.Split(d, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "- "):
			b.WriteString(ansiRed + line + ansiReset + "\n")
		case strings.HasPrefix(line, "+ "):
			b.WriteString(ansiGreen + line + ansiReset + "\n")
		default:
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// Format returns the diff with a ---/+++ label header, optionally coloured
// for terminal display.
func (r Result) Format(colour bool) string {
	header := fmt.Sprintf("--- %s\n+++ %s\n", r.Old, r.New)
	if colour {
		return header + colourise(r.Diff)
	}
	return header + r.Diff
}
