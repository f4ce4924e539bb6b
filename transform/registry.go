// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/katalvlaran/harmonic/sequence"
)

// pipelineSep separates stage names in composed names and pipeline specs.
const pipelineSep = ","

// Registry maps names to transforms. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	items map[string]Transform
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]Transform)}
}

// Standard returns a registry preloaded with every standard transform:
// identity, square, reciprocal, double, half, digital_root, base_lookup over
// seq, and scale<k>.
func Standard(seq sequence.Base, k int64) *Registry {
	r := NewRegistry()
	for _, t := range []Transform{
		Identity, Square, Reciprocal, Double, Half, DigitalRoot,
		BaseLookup(seq), Scale(k),
	} {
		r.items[t.name] = t
	}

	return r
}

// Register adds t under t.Name().
//
// Errors:
//   - ErrNilOperation for the zero Transform.
//   - ErrDuplicate when the name is taken.
func (r *Registry) Register(t Transform) error {
	if t.op == nil {
		return transformErrorf("Register", ErrNilOperation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[t.name]; ok {
		return transformErrorf("Register", fmt.Errorf("%q: %w", t.name, ErrDuplicate))
	}
	r.items[t.name] = t

	return nil
}

// Lookup returns the transform registered under name.
func (r *Registry) Lookup(name string) (Transform, error) {
	r.mu.RLock()
	t, ok := r.items[name]
	r.mu.RUnlock()
	if !ok {
		return Transform{}, transformErrorf("Lookup", fmt.Errorf("%q: %w", name, ErrUnknownTransform))
	}

	return t, nil
}

// Names returns the registered names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.items))
	for name := range r.items {
		out = append(out, name)
	}
	r.mu.RUnlock()
	sort.Strings(out)

	return out
}

// Pipeline parses a comma-separated list of names ("double, square") and
// composes the looked-up transforms left to right. Blank entries are
// ignored; it is the inverse of the naming used by Compose.
//
// Errors:
//   - ErrEmptyPipeline when list names no stage.
//   - ErrUnknownTransform for any unregistered name.
func (r *Registry) Pipeline(list string) (Transform, error) {
	var stages []Transform
	for _, part := range strings.Split(list, pipelineSep) {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		t, err := r.Lookup(name)
		if err != nil {
			return Transform{}, err
		}
		stages = append(stages, t)
	}

	return Compose(stages...)
}
