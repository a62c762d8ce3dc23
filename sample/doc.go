// Package sample holds the verification samples a harness can render.
//
// A sample is a function producing a deterministic transcript. Builtin
// samples reproduce the stock IDE verification programs (cpp, go, python,
// rust); additional samples can be defined in a YAML manifest and registered
// next to the builtins.
//
// The java sample is deliberately not a builtin: its transcript embeds the
// host JVM version, which cannot be pinned down to a deterministic golden
// expectation. Environments that pin a runtime can define it via a manifest.
package sample
