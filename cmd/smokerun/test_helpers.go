// test_helpers.go
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Shared fixtures
// -----------------------------------------------------------------------------

// cppTranscript is the canonical expected output of a default run.
const cppTranscript = "⚡ Hello from C++!\n" +
	"==============================\n" +
	"Welcome to AI-IDE!\n" +
	"Numbers: 1, 2, 3, 4, 5\n" +
	"Squares: 1, 4, 9, 16, 25\n" +
	"Message: C++ execution in AI-IDE works great!\n" +
	"Length: 36\n" +
	"\n" +
	"✅ C++ execution complete!\n"

// minimalManifestYAML returns a manifest defining one custom sample.
func minimalManifestYAML() []byte {
	return []byte(`samples:
  - name: custom
    steps:
      - banner: "hi"
      - ints: {label: Squares, values: [1, 2, 3], squares: true}
      - completion: "custom complete!"
`)
}

//
// -----------------------------------------------------------------------------
// Small helpers
// -----------------------------------------------------------------------------

// runCLI invokes run with capture buffers and returns (exitCode, stdout, stderr).
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// writeTempFile writes a file under dir/name and returns its full path.
func writeTempFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, content, 0o644))
	return p
}

// readFileString reads a file and returns its contents as string (fatal on error).
func readFileString(t *testing.T, p string) string {
	t.Helper()
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	return string(b)
}

//
// -----------------------------------------------------------------------------
// writeFileAtomic() seam helpers
// -----------------------------------------------------------------------------

// fakeTempFile is a controllable file-like object for writeFileAtomic tests.
// It lets tests force errors on Write and Close without touching real files.
type fakeTempFile struct {
	fileName string
	writeErr error
	closeErr error
}

func (f *fakeTempFile) Name() string { return f.fileName }

func (f *fakeTempFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return len(p), nil
}

func (f *fakeTempFile) Close() error { return f.closeErr }

// restoreWriteSeams resets the global file-op hooks after a test overrides them.
func restoreWriteSeams(t *testing.T) {
	t.Helper()

	origCreate, origChmod, origRename, origRemove := createTempFile, chmodFile, renameFile, removeFile
	t.Cleanup(func() {
		createTempFile = origCreate
		chmodFile = origChmod
		renameFile = origRename
		removeFile = origRemove
	})
}
