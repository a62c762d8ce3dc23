// Package transcript models the expected output of an execution verification
// sample as an ordered sequence of lines.
//
// A transcript is built through a Builder from typed steps (banner, separator,
// integer-list line, message + length pair, completion) and is immutable after
// Build. Rendering is pure: the same Transcript renders to the same bytes on
// every call, which is what lets harnesses diff live program output against it.
//
// Design goals:
//   - Deterministic: no time, environment, or locale dependence anywhere.
//   - Small surface: steps cover exactly what the sample programs print.
//   - Test-friendly: Lines/String for assertions, Render for streaming.
package transcript

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ListStyle selects how an integer sequence is rendered on a transcript line.
//
// Each style mirrors how one of the sample languages prints a list, so a
// transcript can reproduce that language's output exactly.
type ListStyle int

const (
	// CommaJoin renders "1, 2, 3" with no trailing separator — the manual
	// print loops in the C++ and Java samples.
	CommaJoin ListStyle = iota

	// Bracketed renders "[1, 2, 3]" — Python's list repr and Rust's {:?}.
	Bracketed

	// GoSlice renders "[1 2 3]" — Go's fmt.Println form for an int slice.
	GoSlice
)

// Squares returns the elementwise squares of nums.
//
// The result has the same length and order as nums, and nums itself is never
// modified: squares[i] == nums[i]*nums[i] for all i.
func Squares(nums []int) []int {
	squares := make([]int, len(nums))
	for i, n := range nums {
		squares[i] = n * n
	}
	return squares
}

// FormatInts renders nums in the given style.
//
// There is never a trailing separator. An empty slice renders as "" for
// CommaJoin and "[]" for the bracketed styles. Unknown styles fall back to
// CommaJoin.
func FormatInts(nums []int, style ListStyle) string {
	open, sep, end := "", ", ", ""
	switch style {
	case Bracketed:
		open, end = "[", "]"
	case GoSlice:
		open, sep, end = "[", " ", "]"
	}

	var sb strings.Builder
	sb.WriteString(open)
	for i, n := range nums {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(strconv.Itoa(n))
	}
	sb.WriteString(end)
	return sb.String()
}

// Transcript is an ordered sequence of output lines, immutable after Build.
//
// None of the stored lines contains a newline; line termination is added by
// String and Render.
type Transcript struct {
	lines []string
}

// Lines returns a copy of the transcript lines, without line terminators.
func (t *Transcript) Lines() []string {
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

// String renders the transcript, each line terminated by '\n'.
func (t *Transcript) String() string {
	var sb strings.Builder
	for _, line := range t.lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Render writes the transcript to w.
//
// Rendering itself cannot fail; only writer errors are returned. Two renders
// of the same Transcript always produce identical bytes.
func (t *Transcript) Render(w io.Writer) error {
	for _, line := range t.lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Builder accumulates transcript steps.
//
// The zero value is ready to use. All step methods return the Builder for
// chaining.
type Builder struct {
	lines []string
}

// push appends text as one or more lines; embedded newlines split into
// separate lines so Transcript never stores a line terminator.
func (b *Builder) push(text string) *Builder {
	b.lines = append(b.lines, strings.Split(text, "\n")...)
	return b
}

// Banner appends the opening line of a sample transcript.
func (b *Builder) Banner(text string) *Builder { return b.push(text) }

// Separator appends a line of count '=' characters.
func (b *Builder) Separator(count int) *Builder {
	return b.push(strings.Repeat("=", count))
}

// Plain appends text verbatim. Multi-line text becomes multiple lines.
func (b *Builder) Plain(text string) *Builder { return b.push(text) }

// Plainf appends a fmt.Sprintf-formatted line.
func (b *Builder) Plainf(format string, args ...any) *Builder {
	return b.push(fmt.Sprintf(format, args...))
}

// Welcome appends "Welcome to <project>!".
func (b *Builder) Welcome(project string) *Builder {
	return b.push("Welcome to " + project + "!")
}

// IntList appends "<label>: <nums rendered in style>".
func (b *Builder) IntList(label string, nums []int, style ListStyle) *Builder {
	return b.push(label + ": " + FormatInts(nums, style))
}

// Message appends "Message: <text>" followed by "Length: <n>".
//
// n is the byte length of text. The builtin sample messages are plain ASCII,
// so the count equals the character count the original programs report.
func (b *Builder) Message(text string) *Builder {
	b.push("Message: " + text)
	return b.push("Length: " + strconv.Itoa(len(text)))
}

// Blank appends an empty line.
func (b *Builder) Blank() *Builder { return b.push("") }

// Completion appends a blank line followed by "✅ <text>".
func (b *Builder) Completion(text string) *Builder {
	b.Blank()
	return b.push("✅ " + text)
}

// Build returns the accumulated Transcript.
//
// The Transcript holds its own copy of the lines, so the Builder may keep
// being used (or appended to) without affecting transcripts already built.
func (b *Builder) Build() *Transcript {
	lines := make([]string, len(b.lines))
	copy(lines, b.lines)
	return &Transcript{lines: lines}
}
