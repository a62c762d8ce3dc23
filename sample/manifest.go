package sample

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arksenu/smokerun/transcript"
)

// Manifest is the on-disk schema for user-defined samples.
//
// Example:
//
//	samples:
//	  - name: java
//	    steps:
//	      - banner: "☕ Hello from Java!"
//	      - separator: 30
//	      - plain: "Java version: 21.0.1"
//	      - welcome: AI-IDE
//	      - ints: {label: Numbers, values: [1, 2, 3, 4, 5]}
//	      - ints: {label: Squares, values: [1, 2, 3, 4, 5], squares: true}
//	      - completion: "Java execution complete!"
type Manifest struct {
	Samples []ManifestSample `yaml:"samples"`
}

// ManifestSample defines one named sample as an ordered list of steps.
type ManifestSample struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one transcript step. Exactly one field must be set.
type Step struct {
	Banner     *string   `yaml:"banner"`
	Separator  *int      `yaml:"separator"`
	Plain      *string   `yaml:"plain"`
	Welcome    *string   `yaml:"welcome"`
	Ints       *IntsStep `yaml:"ints"`
	Message    *string   `yaml:"message"`
	Blank      bool      `yaml:"blank"`
	Completion *string   `yaml:"completion"`
}

// IntsStep renders "<label>: <values>" in the given style.
type IntsStep struct {
	Label  string `yaml:"label"`
	Values []int  `yaml:"values"`

	// Style is "comma" (default), "bracketed", or "goslice".
	Style string `yaml:"style"`

	// Squares renders the elementwise squares of Values instead of Values.
	Squares bool `yaml:"squares"`
}

// UnnamedSampleError is returned when a manifest sample has a blank name.
type UnnamedSampleError struct{ Index int }

// Error implements the error interface.
func (e UnnamedSampleError) Error() string {
	// Example: sample: manifest sample #0 has no name
	return "sample: manifest sample #" + strconv.Itoa(e.Index) + " has no name"
}

// EmptySampleError is returned when a manifest sample declares no steps.
type EmptySampleError struct{ Name string }

// Error implements the error interface.
func (e EmptySampleError) Error() string {
	// Example: sample: "java" has no steps
	return "sample: " + strconv.Quote(e.Name) + " has no steps"
}

// BadStepError is returned when a step inside a manifest sample is invalid.
type BadStepError struct {
	Sample string
	Index  int
	Reason string
}

// Error implements the error interface.
func (e BadStepError) Error() string {
	// Example: sample: "java" step #2: more than one step kind set
	return "sample: " + strconv.Quote(e.Sample) +
		" step #" + strconv.Itoa(e.Index) + ": " + e.Reason
}

// LoadManifest reads and validates a YAML manifest file.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sample: read manifest: %w", err)
	}
	return ParseManifest(raw)
}

// ParseManifest parses and validates manifest bytes.
func ParseManifest(raw []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("sample: parse manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// RegisterInto builds each manifest sample and registers it in r.
//
// Registration stops at the first duplicate name (including collisions with
// builtins); earlier samples stay registered.
func (m *Manifest) RegisterInto(r *Registry) error {
	for _, s := range m.Samples {
		s := s
		fn := func() *transcript.Transcript { return s.build() }
		if err := r.Provide(s.Name, fn); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manifest) validate() error {
	for i, s := range m.Samples {
		if strings.TrimSpace(s.Name) == "" {
			return UnnamedSampleError{Index: i}
		}
		if len(s.Steps) == 0 {
			return EmptySampleError{Name: s.Name}
		}
		for j, step := range s.Steps {
			if err := step.validate(s.Name, j); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s Step) validate(sample string, index int) error {
	kinds := 0
	for _, set := range []bool{
		s.Banner != nil,
		s.Separator != nil,
		s.Plain != nil,
		s.Welcome != nil,
		s.Ints != nil,
		s.Message != nil,
		s.Blank,
		s.Completion != nil,
	} {
		if set {
			kinds++
		}
	}

	if kinds == 0 {
		return BadStepError{Sample: sample, Index: index, Reason: "no step kind set"}
	}
	if kinds > 1 {
		return BadStepError{Sample: sample, Index: index, Reason: "more than one step kind set"}
	}

	if s.Separator != nil && *s.Separator <= 0 {
		return BadStepError{Sample: sample, Index: index, Reason: "separator count must be > 0"}
	}
	if s.Ints != nil {
		if _, err := parseStyle(s.Ints.Style); err != nil {
			return BadStepError{Sample: sample, Index: index, Reason: err.Error()}
		}
	}
	return nil
}

// parseStyle maps a manifest style name to a transcript.ListStyle.
func parseStyle(name string) (transcript.ListStyle, error) {
	switch name {
	case "", "comma":
		return transcript.CommaJoin, nil
	case "bracketed":
		return transcript.Bracketed, nil
	case "goslice":
		return transcript.GoSlice, nil
	default:
		return 0, fmt.Errorf("unknown int list style %q", name)
	}
}

// build assumes the sample already passed validation.
func (s ManifestSample) build() *transcript.Transcript {
	var b transcript.Builder
	for _, step := range s.Steps {
		switch {
		case step.Banner != nil:
			b.Banner(*step.Banner)
		case step.Separator != nil:
			b.Separator(*step.Separator)
		case step.Plain != nil:
			b.Plain(*step.Plain)
		case step.Welcome != nil:
			b.Welcome(*step.Welcome)
		case step.Ints != nil:
			style, _ := parseStyle(step.Ints.Style)
			values := step.Ints.Values
			if step.Ints.Squares {
				values = transcript.Squares(values)
			}
			b.IntList(step.Ints.Label, values, style)
		case step.Message != nil:
			b.Message(*step.Message)
		case step.Blank:
			b.Blank()
		case step.Completion != nil:
			b.Completion(*step.Completion)
		}
	}
	return b.Build()
}
