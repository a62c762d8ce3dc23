package sample

import (
	"sort"
	"strconv"

	"github.com/arksenu/smokerun/transcript"
)

// Func produces a sample's expected transcript.
//
// Funcs must be deterministic: the harness diffs live program output against
// the rendered transcript, so two calls must yield byte-identical renders.
type Func func() *transcript.Transcript

// UnknownSampleError is returned when a requested sample name is not registered.
type UnknownSampleError struct{ Name string }

// Error implements the error interface.
func (e UnknownSampleError) Error() string {
	// Example: sample: unknown sample "java"
	return "sample: unknown sample " + strconv.Quote(e.Name)
}

// DuplicateSampleError is returned when a sample name is registered twice,
// including a manifest sample colliding with a builtin.
type DuplicateSampleError struct{ Name string }

// Error implements the error interface.
func (e DuplicateSampleError) Error() string {
	// Example: sample: duplicate sample "cpp"
	return "sample: duplicate sample " + strconv.Quote(e.Name)
}

// Registry is a simple in-memory name-to-sample map.
//
// It is read-mostly: populated once at startup (builtins plus any manifest
// samples), then only resolved. It is not safe for concurrent mutation.
type Registry struct {
	items map[string]Func
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: map[string]Func{}}
}

// Builtins returns a registry pre-populated with the builtin samples.
func Builtins() *Registry {
	r := NewRegistry()
	// Builtin names are distinct; Provide cannot fail here.
	_ = r.Provide("cpp", Cpp)
	_ = r.Provide("go", Go)
	_ = r.Provide("python", Python)
	_ = r.Provide("rust", Rust)
	return r
}

// Provide registers fn under name.
//
// It returns DuplicateSampleError if the name is already taken.
func (r *Registry) Provide(name string, fn Func) error {
	if _, exists := r.items[name]; exists {
		return DuplicateSampleError{Name: name}
	}
	r.items[name] = fn
	return nil
}

// Get returns the sample registered under name.
//
// It returns UnknownSampleError if no such sample exists.
func (r *Registry) Get(name string) (Func, error) {
	fn, ok := r.items[name]
	if !ok {
		return nil, UnknownSampleError{Name: name}
	}
	return fn, nil
}

// MustGet returns the sample or panics with the lookup error.
// Useful in tests and examples where a missing sample should fail fast.
func (r *Registry) MustGet(name string) Func {
	fn, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return fn
}

// Names returns the registered sample names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
