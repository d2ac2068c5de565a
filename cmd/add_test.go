package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	env := newTestEnv(t)

	id := env.addDoc(testDocFox)
	assert.Equal(t, "1", id)

	// Sequential assignment
	id = env.addDoc(testDocNever)
	assert.Equal(t, "2", id)

	env.contains(env.run("cat", "--raw", "1"), testDocFox)
}

func TestAdd_ExplicitID(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("add", "--id", "42", "the answer")
	env.equals(out, "42")

	// Auto-assignment continues after the highest ID
	id := env.addDoc("next")
	assert.Equal(t, "43", id)
}

func TestAdd_DuplicateID(t *testing.T) {
	env := newTestEnv(t)

	env.run("add", "--id", "7", "original")

	out, err := env.runErr("add", "--id", "7", "usurper")
	require.Error(t, err)
	assert.Contains(t, out, "duplicate")

	// Original untouched
	env.contains(env.run("cat", "--raw", "7"), "original")
}

func TestAdd_FromFile(t *testing.T) {
	env := newTestEnv(t)

	path := filepath.Join(env.dir, "note.txt")
	require.NoError(t, os.WriteFile(path, []byte(testDocGunboats), 0644))

	id := strings.TrimSpace(env.run("add", "-f", "note.txt"))
	env.contains(env.run("cat", "--raw", id), "gunboats")
}

func TestAdd_FromStdin(t *testing.T) {
	env := newTestEnv(t)

	id := strings.TrimSpace(env.runStdin(testDocFox, "add"))
	env.contains(env.run("cat", "--raw", id), "quick brown fox")
}

func TestAdd_NoContent(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runStdinErr("", "add")
	require.Error(t, err)
	assert.Contains(t, out, "no content")
}

func TestAdd_JSON(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("add", "-o", "json", testDocFox)
	env.contains(out, `"id":1`)
}
