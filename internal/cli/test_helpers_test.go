package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/runnerr0/browserhist/internal/fixture"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// run executes the CLI with args against an empty home directory, so no
// user config file is picked up, and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var err error
	out := captureOutput(t, func() {
		err = RunWithArgs("test", args)
	})
	return out, err
}

func chromeFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "History")
	require.NoError(t, fixture.WriteChrome(path, fixture.SampleChrome()))
	return path
}

func firefoxFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "places.sqlite")
	require.NoError(t, fixture.WriteFirefox(path, fixture.SampleFirefox()))
	return path
}
