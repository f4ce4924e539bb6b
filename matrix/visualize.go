// SPDX-License-Identifier: MIT

package matrix

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ---------- Formatting literals ----------
const (
	_fmtHeaderPrefix = "Harmonic Matrix ("
	_fmtTimes        = "×"
	_fmtHeaderClose  = ")\n"
	_fmtDeterminant  = "Determinant: "
	_fmtTrace        = "Trace: "
	_fmtHarmonic     = "Harmonic: "
	_fmtYes          = "YES"
	_fmtNo           = "NO"
	_fmtNotAvailable = "n/a"
	_fmtInexact      = "inexact"
	_fmtCellSep      = " "
	_fmtNil          = "Harmonic Matrix (nil)\n"
)

// Visualize renders m in the stable text layout consumed by report tooling:
//
//	Harmonic Matrix (2×2)
//	Determinant: -2/1 (-2)
//	Trace: 5/1 (5)
//	Harmonic: YES
//	1/1 2/1
//	3/1 4/1
//
// Every line ends with '\n'. Cells are "num/den" separated by single spaces.
// Non-square matrices print "n/a" for determinant and trace and are never
// harmonic. A determinant or trace known only as float64 prints as
// "inexact (<decimal>)".
//
// Complexity: O(r*c).
func Visualize(m *Matrix) string {
	if m == nil {
		return _fmtNil
	}

	var sb strings.Builder
	sb.WriteString(_fmtHeaderPrefix)
	sb.WriteString(strconv.Itoa(m.r))
	sb.WriteString(_fmtTimes)
	sb.WriteString(strconv.Itoa(m.c))
	sb.WriteString(_fmtHeaderClose)

	sb.WriteString(_fmtDeterminant)
	if m.IsSquare() {
		sb.WriteString(formatScalar(m.det))
	} else {
		sb.WriteString(_fmtNotAvailable)
	}
	sb.WriteByte('\n')

	sb.WriteString(_fmtTrace)
	if m.IsSquare() {
		sb.WriteString(formatScalar(m.trace))
	} else {
		sb.WriteString(_fmtNotAvailable)
	}
	sb.WriteByte('\n')

	sb.WriteString(_fmtHarmonic)
	if m.IsNonSingular() {
		sb.WriteString(_fmtYes)
	} else {
		sb.WriteString(_fmtNo)
	}
	sb.WriteByte('\n')

	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtCellSep)
			}
			sb.WriteString(m.data[i*m.c+j].String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// formatScalar renders "n/d (decimal)" or "inexact (decimal)".
func formatScalar(s scalar) string {
	if !s.exact {
		return _fmtInexact + " (" + decimal.NewFromFloat(s.value).String() + ")"
	}

	return s.frac.String() + " (" + s.frac.Decimal().String() + ")"
}

// String implements fmt.Stringer via Visualize.
func (m *Matrix) String() string { return Visualize(m) }
