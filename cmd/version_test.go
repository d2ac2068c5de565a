package cmd

import (
	"testing"
)

func TestVersion(t *testing.T) {
	env := &testEnv{t: t, dir: t.TempDir(), binary: buildBinary(t)}

	// version works without an index
	out := env.run("version")
	env.contains(out, "Build Tag:")
	env.contains(out, "Go Version:")
}

func TestVersion_JSON(t *testing.T) {
	env := &testEnv{t: t, dir: t.TempDir(), binary: buildBinary(t)}

	out := env.run("version", "-o", "json")
	env.contains(out, `"build_tag"`)
	env.contains(out, `"go_version"`)
}

func TestVacuum(t *testing.T) {
	env := newTestEnv(t)
	seedCorpus(env)
	env.run("rm", "1", "2", "3")

	env.contains(env.run("vacuum"), "Vacuumed database")

	// The index is intact afterwards
	env.contains(env.run("stats"), "Documents:   0")
}
