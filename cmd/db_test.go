package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDB_List(t *testing.T) {
	env := newTestEnv(t)
	env.run("init", "--db", "notes")

	out := env.run("db")
	env.contains(out, "docdex.db")
	env.contains(out, "docdex-notes.db")
}

func TestDB_LocalShare(t *testing.T) {
	env := newTestEnv(t)

	env.contains(env.run("db", "--local"), "docdex.db marked as local")
	env.contains(env.run("db"), "docdex.db  local")

	env.contains(env.run("db", "--share"), "docdex.db marked as shared")
	env.contains(env.run("db"), "docdex.db  shared")
}

func TestDB_NamedStatus(t *testing.T) {
	env := newTestEnv(t)
	env.run("init", "--db", "notes")

	env.run("db", "notes", "--local")

	env.contains(env.run("db", "notes"), "docdex-notes.db: local")
	// The default database is untouched
	env.contains(env.run("db"), "docdex.db  shared")
}

func TestDB_SeparateIndexes(t *testing.T) {
	env := newTestEnv(t)
	env.run("init", "--db", "notes")

	env.run("add", testDocFox)
	env.run("add", "--db", "notes", testDocGunboats)

	// Each database is its own index.
	env.equals(env.run("search", "--count", "gunboats"), "0")
	env.equals(env.run("search", "--db", "notes", "--count", "gunboats"), "1")
}

func TestDB_MutuallyExclusiveFlags(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.runErr("db", "--local", "--share")
	assert.Error(t, err)
}
