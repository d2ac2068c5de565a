// Package importer provides utilities for importing files into the docdex index.
package importer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jpl-au/docdex/internal/progress"
	"github.com/jpl-au/docdex/internal/service"
	"github.com/jpl-au/docdex/internal/store"
)

// Options configures an import operation.
type Options struct {
	Extensions []string // File extensions to import (empty = all files)
	Hidden     bool     // Include hidden files/directories
	DryRun     bool     // Show what would be imported without importing
}

// Result contains the outcome of an import operation.
type Result struct {
	Imported int      // Number of files imported
	IDs      []int64  // IDs assigned to imported documents, in file order
	Files    []string // Files that were/would be imported
}

// Run executes the import operation. All files are indexed in one batch so
// a failure part-way leaves the index unchanged.
// Uses os.Root for safe path traversal within the source directory.
func Run(ctx context.Context, w io.Writer, svc service.Service, src string, opts Options) (Result, error) {
	var result Result

	info, err := os.Stat(src)
	if err != nil {
		return result, err
	}

	// Single file import
	if !info.IsDir() {
		return importSingleFile(ctx, w, svc, src, opts)
	}

	// Directory import using os.Root for safe traversal
	root, err := os.OpenRoot(src)
	if err != nil {
		return result, fmt.Errorf("opening source root: %w", err)
	}
	defer root.Close()

	files, err := scanRoot(root, "", opts)
	if err != nil {
		return result, fmt.Errorf("scanning %s: %w", src, err)
	}
	sort.Strings(files)

	if len(files) == 0 {
		return result, nil
	}

	if opts.DryRun {
		for _, rel := range files {
			fmt.Fprintf(w, "Would import: %s\n", filepath.Join(src, rel))
			result.Files = append(result.Files, rel)
		}
		return result, nil
	}

	prog := progress.New("Reading", len(files))
	defer prog.Done()

	docs := make([]store.Document, 0, len(files))
	for _, rel := range files {
		content, err := readFileInRoot(root, rel)
		if err != nil {
			return result, fmt.Errorf("reading %s: %w", rel, err)
		}
		docs = append(docs, store.Document{Content: content})
		result.Files = append(result.Files, rel)
		prog.Increment()
		prog.Print()
	}

	// IDs are assigned sequentially from the current high water mark, so
	// record the count before the batch to report the assigned range.
	before, err := highestID(ctx, svc)
	if err != nil {
		return result, err
	}

	if err := svc.InsertMany(ctx, docs); err != nil {
		return result, fmt.Errorf("indexing batch: %w", err)
	}

	for i, rel := range result.Files {
		id := before + int64(i) + 1
		result.IDs = append(result.IDs, id)
		fmt.Fprintf(w, "Imported: %s -> %d\n", filepath.Join(src, rel), id)
	}
	result.Imported = len(docs)

	return result, nil
}

// importSingleFile imports a single file.
func importSingleFile(ctx context.Context, w io.Writer, svc service.Service, file string, opts Options) (Result, error) {
	var result Result

	if !matchExt(filepath.Base(file), opts.Extensions) {
		return result, nil
	}

	result.Files = append(result.Files, file)

	if opts.DryRun {
		fmt.Fprintf(w, "Would import: %s\n", file)
		return result, nil
	}

	content, err := os.ReadFile(file)
	if err != nil {
		return result, fmt.Errorf("reading %s: %w", file, err)
	}

	id, err := svc.Insert(ctx, store.Document{Content: string(content)})
	if err != nil {
		return result, fmt.Errorf("indexing %s: %w", file, err)
	}

	fmt.Fprintf(w, "Imported: %s -> %d\n", file, id)
	result.Imported = 1
	result.IDs = []int64{id}
	return result, nil
}

// highestID returns the largest ID in the index, or 0 when empty.
func highestID(ctx context.Context, svc service.Service) (int64, error) {
	stats, err := svc.Stats(ctx)
	if err != nil {
		return 0, err
	}
	return stats.HighestID, nil
}

// scanRoot recursively finds all importable files within an os.Root.
// Returns relative paths from the root.
func scanRoot(root *os.Root, dir string, opts Options) ([]string, error) {
	var files []string

	path := dir
	if path == "" {
		path = "."
	}

	f, err := root.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		name := entry.Name()

		// Skip hidden files/dirs unless requested
		if !opts.Hidden && strings.HasPrefix(name, ".") {
			continue
		}

		rel := name
		if dir != "" {
			rel = filepath.Join(dir, name)
		}

		if entry.IsDir() {
			subfiles, err := scanRoot(root, rel, opts)
			if err != nil {
				return nil, err
			}
			files = append(files, subfiles...)
		} else if matchExt(name, opts.Extensions) {
			files = append(files, rel)
		}
	}

	return files, nil
}

// matchExt reports whether a filename matches the extension filter.
// An empty filter matches everything.
func matchExt(name string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	for _, ext := range exts {
		if strings.HasSuffix(strings.ToLower(name), "."+strings.TrimPrefix(strings.ToLower(ext), ".")) {
			return true
		}
	}
	return false
}

// readFileInRoot reads a file's content within an os.Root.
func readFileInRoot(root *os.Root, name string) (string, error) {
	f, err := root.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}

	content := make([]byte, info.Size())
	_, err = io.ReadFull(f, content)
	if err != nil {
		return "", err
	}

	return string(content), nil
}
