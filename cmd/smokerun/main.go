// cmd/smokerun/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arksenu/smokerun/sample"
)

// This binary prints the expected transcript of an execution verification
// sample.
//
// Key behaviors:
// - Renders a builtin sample (default "cpp") or one defined in a YAML manifest
// - Writes transcript bytes to stdout only; diagnostics go to stderr
// - -out writes the transcript to a file atomically (temp file + rename),
//   the usual way golden expectation files are refreshed
// - Exit codes: 0 success, 1 runtime failure, 2 usage error

// run executes the CLI and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("smokerun", flag.ContinueOnError)
	flags.SetOutput(stderr)

	sampleName := flags.String("sample", "cpp", "sample transcript to render")
	list := flags.Bool("list", false, "list known sample names and exit")
	manifestPath := flags.String("manifest", "", "YAML manifest with extra sample definitions")
	outPath := flags.String("out", "", "write the transcript to a file instead of stdout")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	registry := sample.Builtins()

	if strings.TrimSpace(*manifestPath) != "" {
		manifest, err := sample.LoadManifest(*manifestPath)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "smokerun: %v\n", err)
			return 1
		}
		if err := manifest.RegisterInto(registry); err != nil {
			_, _ = fmt.Fprintf(stderr, "smokerun: %v\n", err)
			return 1
		}
	}

	if *list {
		for _, name := range registry.Names() {
			_, _ = fmt.Fprintln(stdout, name)
		}
		return 0
	}

	fn, err := registry.Get(*sampleName)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "smokerun: %v\n", err)
		return 1
	}

	transcriptText := fn().String()

	if strings.TrimSpace(*outPath) != "" {
		if err := writeFileAtomic(filepath.Clean(*outPath), []byte(transcriptText), 0o644); err != nil {
			_, _ = fmt.Fprintf(stderr, "smokerun: write %s: %v\n", *outPath, err)
			return 1
		}
		return 0
	}

	if _, err := io.WriteString(stdout, transcriptText); err != nil {
		_, _ = fmt.Fprintf(stderr, "smokerun: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes a file atomically.
//
// It writes to a temporary file in the same directory and then renames it
// over the target path, ensuring readers never observe a partial golden file.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	targetDir := filepath.Dir(targetPath)

	tmpFile, err := createTempFile(targetDir, filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	if err = renameFile(tmpPath, targetPath); err != nil {
		return err
	}
	return nil
}
