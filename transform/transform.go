// SPDX-License-Identifier: MIT

package transform

import (
	"strings"

	"github.com/katalvlaran/harmonic/fraction"
	"github.com/katalvlaran/harmonic/matrix"
)

// Func is the operation of a Transform. It must be pure.
type Func func(fraction.Fraction) (fraction.Fraction, error)

// Transform is a named Func. The zero value has no operation and fails on
// Apply with ErrNilOperation.
type Transform struct {
	name string
	op   Func
}

// New returns a Transform named name running op.
//
// Errors:
//   - ErrEmptyName when name is blank after trimming.
//   - ErrNilOperation when op is nil.
func New(name string, op Func) (Transform, error) {
	if strings.TrimSpace(name) == "" {
		return Transform{}, transformErrorf("New", ErrEmptyName)
	}
	if op == nil {
		return Transform{}, transformErrorf("New", ErrNilOperation)
	}

	return Transform{name: name, op: op}, nil
}

// MustNew is like New but panics on error. Intended for package-level values.
func MustNew(name string, op Func) Transform {
	t, err := New(name, op)
	if err != nil {
		panic(err)
	}

	return t
}

// Name returns the transform name; composed transforms use the comma-joined
// names of their stages.
func (t Transform) Name() string { return t.name }

// Apply runs the operation on f.
func (t Transform) Apply(f fraction.Fraction) (fraction.Fraction, error) {
	if t.op == nil {
		return fraction.Fraction{}, transformErrorf("Apply", ErrNilOperation)
	}

	return t.op(f)
}

// Compose chains ts left to right: the result of ts[0] feeds ts[1], and so on.
// The composed name is the stage names joined by ",".
//
// Errors:
//   - ErrEmptyPipeline when ts is empty.
//   - ErrNilOperation when any stage is the zero Transform.
//   - At apply time, a stage failure is wrapped with that stage's name.
//
// Complexity: O(len(ts)) per application.
func Compose(ts ...Transform) (Transform, error) {
	if len(ts) == 0 {
		return Transform{}, transformErrorf("Compose", ErrEmptyPipeline)
	}
	stages := make([]Transform, len(ts))
	names := make([]string, len(ts))
	for i, t := range ts {
		if t.op == nil {
			return Transform{}, transformErrorf("Compose", ErrNilOperation)
		}
		stages[i], names[i] = t, t.name
	}

	op := func(f fraction.Fraction) (fraction.Fraction, error) {
		var err error
		for _, s := range stages {
			if f, err = s.op(f); err != nil {
				return fraction.Fraction{}, transformErrorf(s.name, err)
			}
		}

		return f, nil
	}

	return Transform{name: strings.Join(names, pipelineSep), op: op}, nil
}

// ApplyToMatrix applies t to every cell of m and rebuilds the result from the
// numeric cell values, so determinant and trace are recomputed.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrNilOperation.
//   - Any error from t, wrapped with the cell coordinates.
func ApplyToMatrix(m *matrix.Matrix, t Transform) (*matrix.Matrix, error) {
	if t.op == nil {
		return nil, transformErrorf("ApplyToMatrix", ErrNilOperation)
	}
	out, err := m.Map(t.op)
	if err != nil {
		return nil, transformErrorf("ApplyToMatrix("+t.name+")", err)
	}

	return out, nil
}
