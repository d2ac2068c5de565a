// Package exporter provides utilities for exporting indexed documents to the filesystem.
package exporter

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jpl-au/docdex/internal/progress"
	"github.com/jpl-au/docdex/internal/service"
)

// Options configures an export operation.
type Options struct {
	IDs   []int64 // Specific documents to export (empty = all)
	Ext   string  // File extension for exported files (default "txt")
	Force bool    // Overwrite existing files
}

// Result contains the outcome of an export operation.
type Result struct {
	Exported int      // Number of files exported
	Paths    []string // Filesystem paths that were written
}

// Run exports documents to <dst>/<id>.<ext>, one file per document.
// Uses os.Root for safe file operations within the destination directory.
func Run(ctx context.Context, w io.Writer, svc service.Service, dst string, opts Options) (Result, error) {
	var result Result

	docs, err := collect(ctx, svc, opts.IDs)
	if err != nil {
		return result, err
	}
	if len(docs) == 0 {
		return result, fmt.Errorf("no documents to export")
	}

	ext := opts.Ext
	if ext == "" {
		ext = "txt"
	}

	// Create destination directory
	if err := os.MkdirAll(dst, 0755); err != nil {
		return result, fmt.Errorf("creating destination directory: %w", err)
	}

	// Open destination as root for safe file operations
	root, err := os.OpenRoot(dst)
	if err != nil {
		return result, fmt.Errorf("opening destination root: %w", err)
	}
	defer root.Close()

	prog := progress.New("Exporting", len(docs))
	defer prog.Done()

	for _, d := range docs {
		name := strconv.FormatInt(d.id, 10) + "." + ext

		if err := writeFileInRoot(root, name, d.content, opts.Force); err != nil {
			return result, err
		}

		prog.Increment()
		prog.Print()
		outPath := filepath.Join(dst, name)
		result.Paths = append(result.Paths, outPath)
		result.Exported++
		fmt.Fprintf(w, "Exported: %d -> %s\n", d.id, outPath)
	}

	return result, nil
}

type exportDoc struct {
	id      int64
	content string
}

// collect fetches the documents to export: the requested IDs, or every
// indexed document when none are given.
func collect(ctx context.Context, svc service.Service, ids []int64) ([]exportDoc, error) {
	if len(ids) == 0 {
		docs, err := svc.List(ctx, 0)
		if err != nil {
			return nil, err
		}
		out := make([]exportDoc, 0, len(docs))
		for _, d := range docs {
			out = append(out, exportDoc{id: d.ID, content: d.Content})
		}
		return out, nil
	}

	out := make([]exportDoc, 0, len(ids))
	for _, id := range ids {
		doc, err := svc.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("getting %d: %w", id, err)
		}
		out = append(out, exportDoc{id: id, content: doc.Content})
	}
	return out, nil
}

// writeFileInRoot writes content to a file within an os.Root, safely
// preventing path traversal.
func writeFileInRoot(root *os.Root, name, content string, force bool) error {
	// Check if file exists when not forcing
	if !force {
		if _, err := root.Stat(name); err == nil {
			return fmt.Errorf("file exists: %s (use --force to overwrite)", name)
		}
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	f, err := root.OpenFile(name, flags, 0644)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", name, err)
	}
	defer f.Close()

	_, err = f.WriteString(content)
	return err
}
