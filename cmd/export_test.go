package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readExported returns the content of an exported file.
func readExported(e *testEnv, rel string) string {
	e.t.Helper()
	b, err := os.ReadFile(filepath.Join(e.dir, rel))
	require.NoError(e.t, err)
	return string(b)
}

func TestExport(t *testing.T) {
	env := newTestEnv(t)
	seedCorpus(env)

	env.contains(env.run("export", "out"), "Exported 3 documents")

	assert.Equal(t, testDocFox, readExported(env, filepath.Join("out", "1.txt")))
	assert.Equal(t, testDocNever, readExported(env, filepath.Join("out", "2.txt")))
	assert.Equal(t, testDocGunboats, readExported(env, filepath.Join("out", "3.txt")))
}

func TestExport_SelectedIDs(t *testing.T) {
	env := newTestEnv(t)
	seedCorpus(env)

	env.contains(env.run("export", "out", "--id", "1,3"), "Exported 2 documents")

	assert.NoFileExists(t, filepath.Join(env.dir, "out", "2.txt"))
	assert.FileExists(t, filepath.Join(env.dir, "out", "3.txt"))
}

func TestExport_Extension(t *testing.T) {
	env := newTestEnv(t)
	env.addDoc(testDocFox)

	env.run("export", "out", "--ext", "md")

	assert.FileExists(t, filepath.Join(env.dir, "out", "1.md"))
}

func TestExport_ExistingFile(t *testing.T) {
	env := newTestEnv(t)
	env.addDoc(testDocFox)
	writeFile(env, filepath.Join("out", "1.txt"), "keep me")

	// Without --force the existing file wins.
	out, err := env.runErr("export", "out")
	require.Error(t, err)
	assert.Contains(t, out, "exists")
	assert.Equal(t, "keep me", readExported(env, filepath.Join("out", "1.txt")))

	env.run("export", "out", "--force")
	assert.Equal(t, testDocFox, readExported(env, filepath.Join("out", "1.txt")))
}

func TestExport_NotFound(t *testing.T) {
	env := newTestEnv(t)
	env.addDoc(testDocFox)

	out, err := env.runErr("export", "out", "--id", "99")
	require.Error(t, err)
	assert.Contains(t, out, "not found")
}

func TestExport_JSON(t *testing.T) {
	env := newTestEnv(t)
	env.addDoc(testDocFox)

	out := env.run("export", "-o", "json", "out")
	env.contains(out, `"Exported":1`)
	env.contains(out, "1.txt")
}
