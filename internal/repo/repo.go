// Package repo provides repository initialisation and discovery for docdex.
//
// A repository is a .docdex directory holding one or more SQLite databases.
// This package creates repositories, locates them, and manages the databases
// inside them:
//   - Init creates .docdex/ alongside a default database and .gitignore
//   - Find walks up from the working directory, git-style, until it hits a
//     .docdex directory containing the requested database or the root
//   - Named databases (docdex-notes.db and friends) live beside the default
//   - .gitignore entries mark individual databases as local or shared
package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jpl-au/docdex/internal/store"
)

const (
	// Dir is the directory name for the docdex repository.
	Dir = ".docdex"
	// DBFile is the default database filename.
	DBFile = "docdex.db"
)

// DBFileName returns the database filename for a given name.
// Empty name returns the default "docdex.db".
// A name like "notes" returns "docdex-notes.db".
// A name already ending in ".db" is returned as-is.
func DBFileName(name string) string {
	if name == "" {
		return DBFile
	}
	if strings.HasSuffix(name, ".db") {
		return name
	}
	return "docdex-" + name + ".db"
}

// ErrNotInitialised is returned when no docdex repository is found.
var ErrNotInitialised = errors.New("docdex not initialised (run 'docdex init')")

// Init initialises a new docdex repository.
//
// Following the git model, init only creates the database. Config is a
// separate concern managed via "docdex config":
//   - init: create the database
//   - --local: mark database as gitignored
//   - config command: manage settings (global ~/.docdex/config.yaml or local .docdex/config.yaml)
//
// Parameters:
//   - force: reinitialise existing repository
//   - db: database name (empty for default "docdex.db")
//   - local: add database to .gitignore (not committed)
//   - dir: target directory (empty for current directory)
func Init(force bool, db string, local bool, dir string) error {
	if dir == "" {
		dir = "."
	}
	docdexDir := filepath.Join(dir, Dir)
	dbPath := filepath.Join(docdexDir, DBFileName(db))

	// Check if already exists
	if _, err := os.Stat(dbPath); err == nil {
		if !force {
			return fmt.Errorf("database %s already exists (use --force to reinitialise)", DBFileName(db))
		}
		// Remove existing DB for reinit
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("remove database: %w", err)
		}
	}

	// Create directory
	if err := os.MkdirAll(docdexDir, 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	// Create the database. Open executes the FTS5 schema, so a missing
	// engine capability surfaces here rather than on first use.
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	// Create .gitignore if it doesn't exist.
	// Only create on first init - subsequent inits (for additional databases)
	// should not overwrite and lose custom entries like local database markers.
	gitignore := filepath.Join(docdexDir, ".gitignore")
	if _, err := os.Stat(gitignore); os.IsNotExist(err) {
		s := `# docdex - ignore local config and WAL artefacts
# Database files (*.db) are the source of truth and should be committed
config.yaml
*.db-wal
*.db-shm
`
		if err := os.WriteFile(gitignore, []byte(s), 0644); err != nil {
			return fmt.Errorf("write gitignore: %w", err)
		}
	}

	// Mark database as local if requested (add to gitignore). The --local
	// flag controls only whether the database file is committed to git.
	if local {
		if err := IgnoreDB(db, docdexDir); err != nil {
			return fmt.Errorf("ignore database: %w", err)
		}
	}

	return nil
}

// Discover walks up the directory tree looking for a .docdex database.
// The db parameter specifies which database to find (empty for default).
// Returns the full path to the database if found.
func Discover(db string) (string, error) {
	dbFile := DBFileName(db)
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		dbPath := filepath.Join(dir, Dir, dbFile)
		if _, err := os.Stat(dbPath); err == nil {
			return dbPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotInitialised
		}
		dir = parent
	}
}

// DiscoverDir finds the .docdex directory, walking up the tree.
// Returns the full path to the .docdex directory.
func DiscoverDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		docdexDir := filepath.Join(dir, Dir)
		if info, err := os.Stat(docdexDir); err == nil && info.IsDir() {
			return docdexDir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotInitialised
		}
		dir = parent
	}
}

// DBInfo holds database metadata.
type DBInfo struct {
	Name  string // Short name (empty for default, "notes" for docdex-notes.db)
	File  string // Filename (docdex.db, docdex-notes.db)
	Path  string // Full path
	Local bool   // True if gitignored
}

// ListDBs returns all databases in the .docdex directory with their status.
// If dir is empty, discovers .docdex directory from current working directory.
func ListDBs(dir string) ([]DBInfo, error) {
	if dir == "" {
		var err error
		dir, err = DiscoverDir()
		if err != nil {
			return nil, fmt.Errorf("discover .docdex directory: %w", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read .docdex directory: %w", err)
	}

	var dbs []DBInfo
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".db") {
			continue
		}

		// Extract short name from filename
		name := ""
		if e.Name() == DBFile {
			name = ""
		} else if strings.HasPrefix(e.Name(), "docdex-") {
			name = strings.TrimSuffix(strings.TrimPrefix(e.Name(), "docdex-"), ".db")
		} else {
			continue // Not a docdex database
		}

		ignored, err := IsIgnored(name, dir)
		if err != nil {
			// If we can't determine ignored status, default to false (shared).
			// This can happen if .gitignore is malformed or unreadable.
			ignored = false
		}
		dbs = append(dbs, DBInfo{
			Name:  name,
			File:  e.Name(),
			Path:  filepath.Join(dir, e.Name()),
			Local: ignored,
		})
	}

	return dbs, nil
}
