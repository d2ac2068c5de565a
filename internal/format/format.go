// Package format provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// business logic while this package handles presentation concerns like
// column alignment and result previews.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/jpl-au/docdex/internal/store"
)

// previewWidth caps the content preview in listings and search results.
const previewWidth = 80

// humanSize formats a byte count as human-readable (e.g., "1.2K", "3.4M").
func humanSize(bytes int64) string {
	const (
		_        = iota
		KB int64 = 1 << (10 * iota)
		MB
		GB
	)
	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1fG", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1fM", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1fK", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

// preview collapses content to a single truncated line.
func preview(content string) string {
	line := content
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if len(line) > previewWidth {
		line = line[:previewWidth-3] + "..."
	}
	return line
}

// List prints documents in simple list format: ID and first line.
func List(w io.Writer, docs []store.Document) error {
	for _, doc := range docs {
		fmt.Fprintf(w, "%d  %s\n", doc.ID, preview(doc.Content))
	}
	return nil
}

// Long prints documents in long format with ID, size, and preview.
func Long(w io.Writer, docs []store.Document) error {
	if len(docs) == 0 {
		return nil
	}

	// Find max ID width for alignment
	maxID := 2 // minimum "ID"
	for _, doc := range docs {
		if n := len(fmt.Sprint(doc.ID)); n > maxID {
			maxID = n
		}
	}

	// Print header
	fmt.Fprintf(w, "%*s  %6s  %s\n", maxID, "ID", "SIZE", "CONTENT")

	for _, doc := range docs {
		fmt.Fprintf(w, "%*d  %6s  %s\n", maxID, doc.ID, humanSize(int64(len(doc.Content))), preview(doc.Content))
	}
	return nil
}

// SearchResults prints matches best first, one per line. When highlighting
// is on, the marked-up excerpt is shown instead of the raw content.
func SearchResults(w io.Writer, matches []store.Match) error {
	for _, m := range matches {
		text := m.Content
		if m.Highlighted != "" {
			text = m.Highlighted
		}
		fmt.Fprintf(w, "%d: %s\n", m.ID, preview(text))
	}
	return nil
}

// Stats prints index statistics as aligned label/value pairs.
func Stats(w io.Writer, stats *store.Stats) error {
	fmt.Fprintf(w, "%-12s %d\n", "Documents:", stats.Documents)
	fmt.Fprintf(w, "%-12s %s\n", "Content:", humanSize(stats.TotalBytes))
	if stats.Documents > 0 {
		fmt.Fprintf(w, "%-12s %d\n", "Lowest ID:", stats.LowestID)
		fmt.Fprintf(w, "%-12s %d\n", "Highest ID:", stats.HighestID)
	}
	return nil
}
