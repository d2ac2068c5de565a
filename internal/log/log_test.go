package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupLog points the logger at a temp database and opens it.
func setupLog(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	p := filepath.Join(dir, "test-log.db")
	orig := dbPathFunc
	dbPathFunc = func() string { return p }
	t.Cleanup(func() {
		Close()
		dbPathFunc = orig
	})

	require.NoError(t, Open())
	return p
}

// countEntries queries the log table directly.
func countEntries(t *testing.T, path string) int {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM log`).Scan(&n))
	return n
}

func TestLog_WriteEntry(t *testing.T) {
	p := setupLog(t)

	Event("document:add", "insert").
		Author("alice").
		ResultDoc(101).
		Detail("bytes", 42).
		Write(nil)
	Close()

	assert.Equal(t, 1, countEntries(t, p))
}

func TestLog_WriteFailureRecorded(t *testing.T) {
	p := setupLog(t)

	Event("search:search", "search").
		Detail("query", "quick AND dog").
		Write(os.ErrNotExist)
	Close()

	db, err := sql.Open("sqlite", p)
	require.NoError(t, err)
	defer db.Close()

	var success int
	var errMsg string
	require.NoError(t, db.QueryRow(`SELECT success, error FROM log`).Scan(&success, &errMsg))
	assert.Equal(t, 0, success)
	assert.Contains(t, errMsg, "file does not exist")
}

func TestLog_NoOpWhenClosed(t *testing.T) {
	// Logging without Open must be a silent no-op, never a panic.
	Log(Entry{Source: "document:add", Action: "insert"})
	Event("document:add", "insert").Write(nil)
}
