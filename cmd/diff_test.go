package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	env := newTestEnv(t)
	env.addDoc(testDocFox)
	env.addDoc(testDocNever)

	out := env.run("diff", "1", "2")
	env.contains(out, "--- doc 1")
	env.contains(out, "+++ doc 2")
	env.contains(out, "- ")
	env.contains(out, "+ ")
}

func TestDiff_Identical(t *testing.T) {
	env := newTestEnv(t)
	env.addDoc(testDocFox)
	env.addDoc(testDocFox)

	out := env.run("diff", "1", "2")
	env.contains(out, "--- doc 1")
	assert.NotContains(t, out, "\n- ")
	assert.NotContains(t, out, "\n+ ")
}

func TestDiff_NotFound(t *testing.T) {
	env := newTestEnv(t)
	env.addDoc(testDocFox)

	out, err := env.runErr("diff", "1", "99")
	require.Error(t, err)
	assert.Contains(t, out, "not found")
}

func TestDiff_JSON(t *testing.T) {
	env := newTestEnv(t)
	env.addDoc(testDocFox)
	env.addDoc(testDocNever)

	out := env.run("diff", "-o", "json", "1", "2")
	env.contains(out, `"old":"doc 1"`)
	env.contains(out, `"new":"doc 2"`)
	env.contains(out, `"diff":`)
}
