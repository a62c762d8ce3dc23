// Package smokerun renders the expected transcripts of execution
// verification samples.
//
// An execution environment (an IDE runner, a sandbox, a CI image) is usually
// smoke-tested by running a tiny sample program and comparing its output to a
// known-good transcript. This module is the source of truth for those
// transcripts: each sample is modelled as a deterministic sequence of typed
// steps, rendered byte-for-byte identically on every run.
//
// See subpackages:
//   - transcript: the step/line model and rendering
//   - sample: builtin samples, the sample registry, and YAML manifests for
//     user-defined samples
//   - cmd/smokerun: CLI that prints a transcript or writes it to a golden file
//
// The canonical sample is "cpp"; printing it is the default behavior of the
// smokerun binary.
package smokerun
