package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Default run — the canonical contract
// -----------------------------------------------------------------------------

// TestRun_DefaultPrintsCppTranscript verifies a bare invocation prints exactly
// the canonical cpp transcript to stdout and exits 0.
func TestRun_DefaultPrintsCppTranscript(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t)

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)
	if diff := cmp.Diff(cppTranscript, stdout); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
}

// TestRun_Deterministic verifies two identical invocations produce
// byte-identical output.
func TestRun_Deterministic(t *testing.T) {
	t.Parallel()

	_, first, _ := runCLI(t)
	_, second, _ := runCLI(t)
	assert.Equal(t, first, second)
}

// TestRun_ExplicitSampleFlag verifies -sample cpp matches the default run.
func TestRun_ExplicitSampleFlag(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "-sample", "cpp")
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)
	assert.Equal(t, cppTranscript, stdout)
}

//
// -----------------------------------------------------------------------------
// Sample selection / listing
// -----------------------------------------------------------------------------

// TestRun_OtherBuiltins verifies each builtin renders through the CLI with a
// recognizable banner and exit 0.
func TestRun_OtherBuiltins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sample string
		banner string
	}{
		{sample: "go", banner: "Hello from Go!\n"},
		{sample: "python", banner: "🐍 Hello from Python!\n"},
		{sample: "rust", banner: "🦀 Hello from Rust!\n"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.sample, func(t *testing.T) {
			t.Parallel()

			code, stdout, stderr := runCLI(t, "-sample", tc.sample)
			assert.Equal(t, 0, code)
			assert.Empty(t, stderr)
			assert.Contains(t, stdout, tc.banner)
		})
	}
}

// TestRun_List verifies -list prints the sorted builtin names, one per line.
func TestRun_List(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "-list")
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)
	assert.Equal(t, "cpp\ngo\npython\nrust\n", stdout)
}

// TestRun_UnknownSample verifies unknown names report on stderr and exit 1
// without touching stdout.
func TestRun_UnknownSample(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "-sample", "cobol")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `unknown sample "cobol"`)
}

// TestRun_BadFlag verifies flag errors exit 2 with usage on stderr.
func TestRun_BadFlag(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "-definitely-not-a-flag")
	assert.Equal(t, 2, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "flag provided but not defined")
}

//
// -----------------------------------------------------------------------------
// Manifest loading
// -----------------------------------------------------------------------------

// TestRun_ManifestSample verifies a manifest-defined sample is selectable and
// renders its steps, squares derivation included.
func TestRun_ManifestSample(t *testing.T) {
	t.Parallel()

	manifest := writeTempFile(t, t.TempDir(), "extra.yaml", minimalManifestYAML())

	code, stdout, stderr := runCLI(t, "-manifest", manifest, "-sample", "custom")
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)
	assert.Equal(t, "hi\nSquares: 1, 4, 9\n\n✅ custom complete!\n", stdout)
}

// TestRun_ManifestExtendsList verifies -list includes manifest samples in
// sorted position.
func TestRun_ManifestExtendsList(t *testing.T) {
	t.Parallel()

	manifest := writeTempFile(t, t.TempDir(), "extra.yaml", minimalManifestYAML())

	code, stdout, _ := runCLI(t, "-manifest", manifest, "-list")
	assert.Equal(t, 0, code)
	assert.Equal(t, "cpp\ncustom\ngo\npython\nrust\n", stdout)
}

// TestRun_ManifestMissing verifies an unreadable manifest exits 1.
func TestRun_ManifestMissing(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "-manifest", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "read manifest")
}

// TestRun_ManifestInvalid verifies a manifest validation failure exits 1 with
// the typed error's message.
func TestRun_ManifestInvalid(t *testing.T) {
	t.Parallel()

	manifest := writeTempFile(t, t.TempDir(), "bad.yaml",
		[]byte("samples:\n  - name: s\n    steps:\n      - {}\n"))

	code, _, stderr := runCLI(t, "-manifest", manifest)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "no step kind set")
}

// TestRun_ManifestDuplicateBuiltin verifies shadowing a builtin exits 1.
func TestRun_ManifestDuplicateBuiltin(t *testing.T) {
	t.Parallel()

	manifest := writeTempFile(t, t.TempDir(), "dup.yaml",
		[]byte("samples:\n  - name: cpp\n    steps:\n      - plain: shadowed\n"))

	code, _, stderr := runCLI(t, "-manifest", manifest)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `duplicate sample "cpp"`)
}

//
// -----------------------------------------------------------------------------
// -out golden-file writing
// -----------------------------------------------------------------------------

// TestRun_OutWritesGoldenFile verifies -out writes exactly the bytes a stdout
// run would print, and keeps stdout empty.
func TestRun_OutWritesGoldenFile(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "cpp.golden")

	code, stdout, stderr := runCLI(t, "-out", out)
	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
	assert.Equal(t, cppTranscript, readFileString(t, out))
}

// TestRun_OutOverwritesExisting verifies -out replaces a stale golden file.
func TestRun_OutOverwritesExisting(t *testing.T) {
	t.Parallel()

	out := writeTempFile(t, t.TempDir(), "cpp.golden", []byte("stale\n"))

	code, _, _ := runCLI(t, "-out", out)
	assert.Equal(t, 0, code)
	assert.Equal(t, cppTranscript, readFileString(t, out))
}

// TestRun_OutWriteFailure verifies a write failure reports on stderr and
// exits 1.
func TestRun_OutWriteFailure(t *testing.T) {
	t.Parallel()

	// A directory cannot be created inside a missing parent.
	out := filepath.Join(t.TempDir(), "missing-dir", "cpp.golden")

	code, _, stderr := runCLI(t, "-out", out)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "smokerun: write")
}

//
// -----------------------------------------------------------------------------
// writeFileAtomic
// -----------------------------------------------------------------------------

// TestWriteFileAtomic_Writes verifies the happy path lands the exact bytes at
// the target with no temp files left behind.
func TestWriteFileAtomic_Writes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")

	require.NoError(t, writeFileAtomic(target, []byte("payload"), 0o644))
	assert.Equal(t, "payload", readFileString(t, target))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.txt", entries[0].Name())
}

// TestWriteFileAtomic_CreateTempFails verifies a temp-create failure surfaces
// and nothing is removed.
func TestWriteFileAtomic_CreateTempFails(t *testing.T) {
	restoreWriteSeams(t)

	wantErr := errors.New("create failed")
	createTempFile = func(string, string) (tempFile, error) { return nil, wantErr }

	removed := false
	removeFile = func(string) error { removed = true; return nil }

	err := writeFileAtomic("/tmp/never-written", []byte("x"), 0o644)
	require.ErrorIs(t, err, wantErr)
	assert.False(t, removed)
}

// TestWriteFileAtomic_WriteFails verifies a write failure removes the temp
// file.
func TestWriteFileAtomic_WriteFails(t *testing.T) {
	restoreWriteSeams(t)

	wantErr := errors.New("write failed")
	createTempFile = func(string, string) (tempFile, error) {
		return &fakeTempFile{fileName: "/tmp/fake-tmp", writeErr: wantErr}, nil
	}

	var removedPath string
	removeFile = func(p string) error { removedPath = p; return nil }

	err := writeFileAtomic("/tmp/never-written", []byte("x"), 0o644)
	require.ErrorIs(t, err, wantErr)
	assert.Equal(t, "/tmp/fake-tmp", removedPath)
}

// TestWriteFileAtomic_CloseFails verifies a close failure removes the temp
// file.
func TestWriteFileAtomic_CloseFails(t *testing.T) {
	restoreWriteSeams(t)

	wantErr := errors.New("close failed")
	createTempFile = func(string, string) (tempFile, error) {
		return &fakeTempFile{fileName: "/tmp/fake-tmp", closeErr: wantErr}, nil
	}

	removed := false
	removeFile = func(string) error { removed = true; return nil }

	err := writeFileAtomic("/tmp/never-written", []byte("x"), 0o644)
	require.ErrorIs(t, err, wantErr)
	assert.True(t, removed)
}

// TestWriteFileAtomic_ChmodFails verifies a chmod failure removes the temp
// file.
func TestWriteFileAtomic_ChmodFails(t *testing.T) {
	restoreWriteSeams(t)

	wantErr := errors.New("chmod failed")
	createTempFile = func(string, string) (tempFile, error) {
		return &fakeTempFile{fileName: "/tmp/fake-tmp"}, nil
	}
	chmodFile = func(string, os.FileMode) error { return wantErr }

	removed := false
	removeFile = func(string) error { removed = true; return nil }

	err := writeFileAtomic("/tmp/never-written", []byte("x"), 0o644)
	require.ErrorIs(t, err, wantErr)
	assert.True(t, removed)
}

// TestWriteFileAtomic_RenameFails verifies a rename failure removes the temp
// file.
func TestWriteFileAtomic_RenameFails(t *testing.T) {
	restoreWriteSeams(t)

	wantErr := errors.New("rename failed")
	createTempFile = func(string, string) (tempFile, error) {
		return &fakeTempFile{fileName: "/tmp/fake-tmp"}, nil
	}
	chmodFile = func(string, os.FileMode) error { return nil }
	renameFile = func(string, string) error { return wantErr }

	removed := false
	removeFile = func(string) error { removed = true; return nil }

	err := writeFileAtomic("/tmp/never-written", []byte("x"), 0o644)
	require.ErrorIs(t, err, wantErr)
	assert.True(t, removed)
}
