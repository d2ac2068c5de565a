package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file under the test directory, creating parents as needed.
func writeFile(e *testEnv, rel, content string) {
	e.t.Helper()
	path := filepath.Join(e.dir, rel)
	require.NoError(e.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0o644))
}

func TestImport(t *testing.T) {
	env := newTestEnv(t)
	writeFile(env, "notes/fox.txt", testDocFox)
	writeFile(env, "notes/never.txt", testDocNever)

	out := env.run("import", "notes")
	env.contains(out, "Imported: ")
	env.contains(out, "Imported 2 documents")

	env.equals(env.run("search", "--count", "fox"), "1")
	env.equals(env.run("search", "--count", "lazy"), "2")
}

func TestImport_SingleFile(t *testing.T) {
	env := newTestEnv(t)
	writeFile(env, "fox.txt", testDocFox)

	out := env.run("import", "fox.txt")
	env.contains(out, "Imported: fox.txt -> 1")

	env.contains(env.run("cat", "1"), "fox")
}

func TestImport_ExtFilter(t *testing.T) {
	env := newTestEnv(t)
	writeFile(env, "notes/fox.md", testDocFox)
	writeFile(env, "notes/never.txt", testDocNever)
	writeFile(env, "notes/debug.log", "nothing interesting")

	env.contains(env.run("import", "notes", "--ext", "md,txt"), "Imported 2 documents")

	env.equals(env.run("search", "--count", "interesting"), "0")
}

func TestImport_DryRun(t *testing.T) {
	env := newTestEnv(t)
	writeFile(env, "notes/fox.txt", testDocFox)

	out := env.run("import", "notes", "--dry-run")
	env.contains(out, "Would import:")
	env.contains(out, "fox.txt")

	// Nothing was indexed
	env.contains(env.run("stats"), "Documents:   0")
}

func TestImport_HiddenSkipped(t *testing.T) {
	env := newTestEnv(t)
	writeFile(env, "notes/fox.txt", testDocFox)
	writeFile(env, "notes/.secret/never.txt", testDocNever)

	env.contains(env.run("import", "notes"), "Imported 1 documents")

	env.run("rm", "1")
	env.contains(env.run("import", "notes", "--include-hidden"), "Imported 2 documents")
}

func TestImport_Recursive(t *testing.T) {
	env := newTestEnv(t)
	writeFile(env, "notes/a/fox.txt", testDocFox)
	writeFile(env, "notes/b/deep/never.txt", testDocNever)

	out := env.run("import", "notes")
	env.contains(out, "Imported 2 documents")
	env.contains(out, filepath.Join("a", "fox.txt"))
}

func TestImport_SequentialIDs(t *testing.T) {
	env := newTestEnv(t)
	env.run("add", "--id", "10", testDocGunboats)
	writeFile(env, "notes/a.txt", testDocFox)
	writeFile(env, "notes/b.txt", testDocNever)

	// IDs continue from the current high water mark.
	out := env.run("import", "notes")
	env.contains(out, "-> 11")
	env.contains(out, "-> 12")
}

func TestImport_MissingSource(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("import", "nope")
	require.Error(t, err)
	assert.Contains(t, out, "nope")
}

func TestImport_JSON(t *testing.T) {
	env := newTestEnv(t)
	writeFile(env, "notes/fox.txt", testDocFox)

	out := env.run("import", "-o", "json", "notes")
	env.contains(out, `"Imported":1`)
	env.contains(out, "fox.txt")
}
