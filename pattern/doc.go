// SPDX-License-Identifier: MIT

// Package pattern parses digit-transition lists such as
//
//	"0 → 1 | 3 → 8 | 6 → 1"
//
// and classifies them through the matrices they induce:
//
//   - one 2×2 matrix per transition: [[from, to], [derived, root(from+to+derived)]],
//   - one 3×3 matrix per window of three consecutive transitions, rows
//     [from, to, derived],
//   - one 9×9 complete matrix holding derived values at (from, to) and the
//     base sequence at (i+j) mod len elsewhere.
//
// derived is the base sequence value at from mod len, and root is the
// mod-9 digital root with 0 mapped to 9. A pattern is a vortex when every
// 3×3 window is singular; with fewer than three transitions there is no
// window and the pattern is a vortex by vacuity.
//
// Tokens that do not look like "<int> → <int>" (or "->") are skipped and
// reported at debug level on the configured zap logger.
package pattern
