// SPDX-License-Identifier: MIT
// Package fraction: sentinel error set.
// Callers MUST branch on these via errors.Is; arithmetic never panics on
// user input.

package fraction

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned when a denominator would become zero:
	// New(n, 0), Reciprocal of a zero numerator, or Div by a zero value.
	ErrDivisionByZero = errors.New("fraction: division by zero")

	// ErrOverflow indicates that an intermediate numerator or denominator no
	// longer fits in int64.
	ErrOverflow = errors.New("fraction: int64 overflow")

	// ErrNaNInf signals a NaN or ±Inf input to FromFloat.
	ErrNaNInf = errors.New("fraction: NaN or Inf encountered")
)

// Operation tags used in wrapped errors.
const (
	opNew        = "New"
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opDiv        = "Div"
	opReciprocal = "Reciprocal"
	opFromFloat  = "FromFloat"
)

// fractionErrorf wraps err with an operation tag, preserving it for errors.Is.
func fractionErrorf(tag string, err error) error {
	return fmt.Errorf("fraction.%s: %w", tag, err)
}
