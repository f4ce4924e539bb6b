// SPDX-License-Identifier: MIT

package pattern

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/harmonic/matrix"
	"github.com/katalvlaran/harmonic/sequence"
)

const panicEmptyBase = "pattern: WithBaseSequence: empty sequence"

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithBaseSequence replaces the default [1 2 4 8 7 5] lookup sequence.
// Panics on the zero Base.
func WithBaseSequence(b sequence.Base) Option {
	if b.IsZero() {
		panic(panicEmptyBase)
	}

	return func(a *Analyzer) {
		a.base = b
	}
}

// WithLogger sets the logger for parse diagnostics. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.log = l
		}
	}
}

// WithMatrixOptions forwards construction options to every built matrix.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(a *Analyzer) {
		a.matrixOpts = append(a.matrixOpts, opts...)
	}
}
