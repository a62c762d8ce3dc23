package sample

import (
	"encoding/json"

	"github.com/arksenu/smokerun/transcript"
)

// sampleNumbers is the fixed input sequence every sample program declares.
var sampleNumbers = []int{1, 2, 3, 4, 5}

// Cpp is the canonical verification sample.
//
// Its transcript is the first thing an execution harness checks: a greeting
// banner, a separator, the welcome line, the numbers and their squares
// comma-joined, the fixed message with its character count, and the
// completion line.
func Cpp() *transcript.Transcript {
	var b transcript.Builder
	b.Banner("⚡ Hello from C++!").
		Separator(30).
		Welcome("AI-IDE").
		IntList("Numbers", sampleNumbers, transcript.CommaJoin).
		IntList("Squares", transcript.Squares(sampleNumbers), transcript.CommaJoin).
		Message("C++ execution in AI-IDE works great!").
		Completion("C++ execution complete!")
	return b.Build()
}

// Go reproduces the Go verification sample's output.
func Go() *transcript.Transcript {
	var b transcript.Builder
	b.Banner("Hello from Go!").
		Plain("Message: Go is awesome!").
		Plain("Number: 42").
		IntList("Numbers", sampleNumbers, transcript.GoSlice).
		Plainf("10 + 20 = %d", 10+20)
	return b.Build()
}

// Rust reproduces the Rust verification sample's output.
func Rust() *transcript.Transcript {
	var b transcript.Builder
	b.Banner("🦀 Hello from Rust!").
		Plain("Message: Rust is blazingly fast!").
		Plain("Number: 42").
		IntList("Numbers", sampleNumbers, transcript.Bracketed).
		Plainf("10 + 20 = %d", 10+20).
		Plainf("Got value: %d", 5)
	return b.Build()
}

// pythonPayload is the fixed object the Python sample dumps as JSON.
// Field order matches the source program's insertion order.
type pythonPayload struct {
	Project  string   `json:"project"`
	Language string   `json:"language"`
	Version  string   `json:"version"`
	Features []string `json:"features"`
}

// Python reproduces the Python verification sample's output, including the
// two-space-indented JSON block.
func Python() *transcript.Transcript {
	payload := pythonPayload{
		Project:  "AI-IDE",
		Language: "Python",
		Version:  "3.11",
		Features: []string{"execution", "terminal", "file management"},
	}

	blob, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		// A fixed struct of strings cannot fail to marshal.
		panic(err)
	}

	var b transcript.Builder
	b.Banner("🐍 Hello from Python!").
		Separator(30).
		Plainf("Math: 10 + 5 * 2 = %d", 10+5*2).
		Welcome("AI-IDE").
		IntList("Squares", transcript.Squares(sampleNumbers), transcript.Bracketed).
		Plain("JSON: " + string(blob)).
		Completion("Python execution complete!")
	return b.Build()
}
