// SPDX-License-Identifier: MIT
// Package sequence holds the read-only base sequence shared by the digit
// generator, the transition analyzer and the base-lookup transform.
//
// The default sequence is the doubling cycle 1, 2, 4, 8, 16→7, 32→5 reduced by
// digital root. It is passed around as a value and never stored in a mutable
// package-level variable; Default returns a fresh copy on every call.
package sequence

import (
	"errors"
	"fmt"
)

// ErrEmptySequence is returned by New when no values are given.
var ErrEmptySequence = errors.New("sequence: base sequence must be non-empty")

// defaultValues backs Default. Never handed out directly.
var defaultValues = [...]int64{1, 2, 4, 8, 7, 5}

// Base is an immutable cyclic sequence of integers.
type Base struct {
	values []int64
}

// Default returns the sequence [1 2 4 8 7 5].
func Default() Base {
	return Base{values: append([]int64(nil), defaultValues[:]...)}
}

// New copies values into a Base.
func New(values ...int64) (Base, error) {
	if len(values) == 0 {
		return Base{}, ErrEmptySequence
	}

	return Base{values: append([]int64(nil), values...)}, nil
}

// Len returns the cycle length (0 for the zero value).
func (b Base) Len() int { return len(b.values) }

// IsZero reports whether b carries no values.
func (b Base) IsZero() bool { return len(b.values) == 0 }

// At returns the element at i mod Len, wrapping negative i into range.
// Panics on the zero value, which is a programmer error.
func (b Base) At(i int64) int64 {
	if len(b.values) == 0 {
		panic("sequence: At on empty Base")
	}
	n := int64(len(b.values))

	return b.values[((i%n)+n)%n]
}

// Values returns a copy of the sequence.
func (b Base) Values() []int64 {
	return append([]int64(nil), b.values...)
}

// String renders the sequence as "[1 2 4 8 7 5]".
func (b Base) String() string {
	return fmt.Sprint(b.values)
}

// DigitalRoot reduces v modulo 9 and maps a zero remainder to 9.
// It is the "mod 9, 0 becomes 9" rule used when filling matrix cells.
func DigitalRoot(v int64) int64 {
	r := v % 9
	if r == 0 {
		return 9
	}

	return r
}
