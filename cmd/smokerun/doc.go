// Command smokerun prints the expected transcript of an execution
// verification sample.
//
// Execution environments are smoke-tested by running a tiny sample program
// and diffing its output against a known-good transcript. smokerun is the
// source of those transcripts: it renders them deterministically, so the same
// invocation always produces the same bytes.
//
// Usage
//
//	smokerun                       # print the canonical cpp transcript
//	smokerun -sample python        # print another builtin sample
//	smokerun -list                 # list known sample names, sorted
//	smokerun -out cpp.golden       # refresh a golden file (atomic write)
//	smokerun -manifest extra.yaml -sample java
//
// Builtin samples
//
//   - cpp:    the canonical sample (greeting, separator, welcome, numbers,
//     squares, message + length, completion)
//   - go, python, rust: the sibling samples
//
// java is not builtin because its transcript embeds the host JVM version;
// define it in a manifest if your environment pins a runtime.
//
// Manifest format
//
// A YAML file listing samples, each a name plus ordered steps:
//
//	samples:
//	  - name: java
//	    steps:
//	      - banner: "☕ Hello from Java!"
//	      - separator: 30
//	      - welcome: AI-IDE
//	      - ints: {label: Numbers, values: [1, 2, 3, 4, 5]}
//	      - ints: {label: Squares, values: [1, 2, 3, 4, 5], squares: true}
//	      - completion: "Java execution complete!"
//
// Step kinds: banner, separator (count of '='), plain, welcome, ints
// (label/values/style/squares; styles comma, bracketed, goslice), message
// (also emits the Length line), blank, completion. Exactly one kind per step.
//
// Exit codes
//
//	0  transcript printed or written
//	1  unknown sample, invalid manifest, or write failure
//	2  flag/usage error
//
// stdout carries only transcript bytes; everything else goes to stderr.
package main
