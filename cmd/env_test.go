// The cmd/ package holds CLI integration tests that drive the compiled
// binary end to end: flag parsing through the service and store layers down
// to SQLite FTS5.
//
// A few internal packages carry no unit tests of their own. Their behaviour
// is asserted here instead: importer and exporter through the import/export
// tests, format through the ls, search, and stats output assertions. A break
// anywhere in that stack surfaces as a failing CLI test.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the docdex binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		// Build to a temp location
		tmpDir, err := os.MkdirTemp("", "docdex-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "docdex"
		if os.PathSeparator == '\\' {
			binaryName = "docdex.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	binary string
}

// newTestEnv creates a temporary directory with an initialised docdex index.
//
// Note: init does not create config. Config is managed separately via
// "docdex config". This follows the git model where init just creates the
// repository structure.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	binary := buildBinary(t)
	dir := t.TempDir()

	env := &testEnv{t: t, dir: dir, binary: binary}

	env.run("init")

	return env
}

// run executes docdex with the given args and returns stdout.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("docdex %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes docdex and returns stdout and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// runStdin executes docdex with stdin input.
func (e *testEnv) runStdin(input string, args ...string) string {
	e.t.Helper()
	out, err := e.runStdinErr(input, args...)
	if err != nil {
		e.t.Fatalf("docdex %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runStdinErr executes docdex with stdin input and returns any error.
func (e *testEnv) runStdinErr(input string, args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Stdin = strings.NewReader(input)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// addDoc indexes content and returns the printed ID.
func (e *testEnv) addDoc(content string) string {
	e.t.Helper()
	return strings.TrimSpace(e.run("add", content))
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}

// Test corpus - pangram-style content exercising the FTS5 query modes.
const (
	testDocFox      = "The quick brown fox jumps over the lazy dog"
	testDocNever    = "Never jump over the lazy dog quickly"
	testDocGunboats = "A quick movement of the enemy will jeopardize six gunboats"
)
