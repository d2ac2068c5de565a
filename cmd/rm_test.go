package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRm(t *testing.T) {
	env := newTestEnv(t)
	seedCorpus(env)

	env.contains(env.run("rm", "1"), "Removed 1")

	// The document is gone; the others keep their IDs.
	_, err := env.runErr("cat", "1")
	require.Error(t, err)
	env.contains(env.run("cat", "2"), "Never")
}

func TestRm_Multiple(t *testing.T) {
	env := newTestEnv(t)
	seedCorpus(env)

	out := env.run("rm", "1", "3")
	env.contains(out, "Removed 1")
	env.contains(out, "Removed 3")

	env.equals(env.run("search", "--count", "the"), "1")
}

func TestRm_NotFound(t *testing.T) {
	env := newTestEnv(t)
	seedCorpus(env)

	out, err := env.runErr("rm", "99")
	require.Error(t, err)
	assert.Contains(t, out, "not found")
}

func TestRm_IDReuse(t *testing.T) {
	env := newTestEnv(t)
	env.addDoc(testDocFox)

	env.run("rm", "1")

	// Explicit re-insert at a removed ID is allowed.
	env.equals(env.run("add", "--id", "1", testDocNever), "1")
	env.contains(env.run("cat", "1"), "Never")
}

func TestRm_JSON(t *testing.T) {
	env := newTestEnv(t)
	seedCorpus(env)

	out := env.run("rm", "-o", "json", "2")
	env.contains(out, `"removed":[2]`)
}
