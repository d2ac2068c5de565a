package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Empty(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("stats")
	env.contains(out, "Documents:")
	env.contains(out, "0")
	assert.NotContains(t, out, "Lowest ID:")
}

func TestStats(t *testing.T) {
	env := newTestEnv(t)
	env.run("add", "--id", "5", testDocFox)
	env.run("add", "--id", "9", testDocNever)

	out := env.run("stats")
	env.contains(out, "Documents:")
	env.contains(out, "Lowest ID:")
	env.contains(out, "Highest ID:")
	env.contains(out, "5")
	env.contains(out, "9")
}

func TestStats_JSON(t *testing.T) {
	env := newTestEnv(t)
	seedCorpus(env)

	out := env.run("stats", "-o", "json")
	env.contains(out, `"documents":3`)
	env.contains(out, `"lowest_id":1`)
	env.contains(out, `"highest_id":3`)
}
