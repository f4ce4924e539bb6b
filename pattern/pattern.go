// SPDX-License-Identifier: MIT

package pattern

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/harmonic/fraction"
	"github.com/katalvlaran/harmonic/matrix"
	"github.com/katalvlaran/harmonic/sequence"
)

// Fixed geometry of the built matrices.
const (
	WindowSize   = 3
	CompleteSize = 9

	tokenSep = "|"
)

var transitionRE = regexp.MustCompile(`(\d+)\s*(?:→|->)\s*(\d+)`)

// Transition is one parsed "from → to" step.
type Transition struct {
	From        int64
	To          int64
	Derived     int64  // base sequence value at From mod len
	Description string // trimmed source token
}

// Result is the full analysis of a transition list.
type Result struct {
	Transitions        []Transition
	TransitionMatrices []*matrix.Matrix // 2×2, one per transition
	SubMatrices        []*matrix.Matrix // 3×3, one per window
	CompleteMatrix     *matrix.Matrix   // 9×9
	IsVortex           bool             // every window singular
}

// SingularWindows counts the sub-matrices with a zero determinant.
func (r *Result) SingularWindows() int {
	n := 0
	for _, m := range r.SubMatrices {
		if !m.IsNonSingular() {
			n++
		}
	}

	return n
}

// Summary renders a one-line overview:
// "transitions=3 windows=1 singular=1 complete_det=0/1 vortex=true".
func (r *Result) Summary() string {
	det := "n/a"
	if d, err := r.CompleteMatrix.Determinant(); err == nil {
		det = d.String()
	}

	return fmt.Sprintf("transitions=%d windows=%d singular=%d complete_det=%s vortex=%t",
		len(r.Transitions), len(r.SubMatrices), r.SingularWindows(), det, r.IsVortex)
}

// Analyzer parses and classifies transition lists. It is immutable after
// NewAnalyzer and safe for concurrent use.
type Analyzer struct {
	base       sequence.Base
	log        *zap.Logger
	matrixOpts []matrix.Option
}

// NewAnalyzer returns an Analyzer over sequence.Default() unless overridden.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		base: sequence.Default(),
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	return a
}

// Parse splits text on "|" and extracts one Transition per matching token.
// Non-matching tokens are skipped and logged at debug level; Parse never fails.
func (a *Analyzer) Parse(text string) []Transition {
	var out []Transition
	for i, raw := range strings.Split(text, tokenSep) {
		token := strings.TrimSpace(raw)
		m := transitionRE.FindStringSubmatch(token)
		if m == nil {
			if token != "" {
				a.log.Debug("skipping transition token",
					zap.Int("index", i), zap.String("token", token), zap.String("reason", "no match"))
			}
			continue
		}
		from, errFrom := strconv.ParseInt(m[1], 10, 64)
		to, errTo := strconv.ParseInt(m[2], 10, 64)
		if errFrom != nil || errTo != nil {
			a.log.Debug("skipping transition token",
				zap.Int("index", i), zap.String("token", token), zap.String("reason", "int64 range"))
			continue
		}
		out = append(out, Transition{
			From:        from,
			To:          to,
			Derived:     a.base.At(from),
			Description: token,
		})
	}

	return out
}

// Analyze parses text and builds every matrix of the Result.
//
// Implementation:
//   - Stage 1: Parse.
//   - Stage 2: 2×2 transition matrices.
//   - Stage 3: 3×3 windows over consecutive transitions.
//   - Stage 4: 9×9 complete matrix with base-sequence backfill.
//   - Stage 5: IsVortex = no window is non-singular.
//
// Errors:
//   - Matrix construction errors (fraction.ErrOverflow for very large
//     transition values), wrapped with the failing stage.
func (a *Analyzer) Analyze(text string) (*Result, error) {
	res := &Result{Transitions: a.Parse(text)}

	res.TransitionMatrices = make([]*matrix.Matrix, 0, len(res.Transitions))
	for i, t := range res.Transitions {
		m, err := a.transitionMatrix(t)
		if err != nil {
			return nil, fmt.Errorf("pattern.Analyze: transition %d: %w", i, err)
		}
		res.TransitionMatrices = append(res.TransitionMatrices, m)
	}

	if n := len(res.Transitions) - WindowSize + 1; n > 0 {
		res.SubMatrices = make([]*matrix.Matrix, 0, n)
		for i := 0; i < n; i++ {
			m, err := a.window(res.Transitions[i : i+WindowSize])
			if err != nil {
				return nil, fmt.Errorf("pattern.Analyze: window %d: %w", i, err)
			}
			res.SubMatrices = append(res.SubMatrices, m)
		}
	}

	complete, err := a.complete(res.Transitions)
	if err != nil {
		return nil, fmt.Errorf("pattern.Analyze: complete matrix: %w", err)
	}
	res.CompleteMatrix = complete

	res.IsVortex = true
	for _, m := range res.SubMatrices {
		if m.IsNonSingular() {
			res.IsVortex = false
			break
		}
	}

	a.log.Debug("pattern analyzed",
		zap.Int("transitions", len(res.Transitions)),
		zap.Int("windows", len(res.SubMatrices)),
		zap.Bool("vortex", res.IsVortex))

	return res, nil
}

func (a *Analyzer) transitionMatrix(t Transition) (*matrix.Matrix, error) {
	sum, err := addInt64(t.From, t.To)
	if err == nil {
		sum, err = addInt64(sum, t.Derived)
	}
	if err != nil {
		return nil, err
	}

	return matrix.FromFractions([][]fraction.Fraction{
		{fraction.FromInt(t.From), fraction.FromInt(t.To)},
		{fraction.FromInt(t.Derived), fraction.FromInt(sequence.DigitalRoot(sum))},
	}, a.matrixOpts...)
}

// addInt64 returns a+b or fraction.ErrOverflow when it leaves int64.
func addInt64(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%d + %d: %w", a, b, fraction.ErrOverflow)
	}

	return a + b, nil
}

func (a *Analyzer) window(ts []Transition) (*matrix.Matrix, error) {
	rows := make([][]fraction.Fraction, len(ts))
	for i, t := range ts {
		rows[i] = []fraction.Fraction{
			fraction.FromInt(t.From), fraction.FromInt(t.To), fraction.FromInt(t.Derived),
		}
	}

	return matrix.FromFractions(rows, a.matrixOpts...)
}

func (a *Analyzer) complete(ts []Transition) (*matrix.Matrix, error) {
	var grid [CompleteSize][CompleteSize]int64
	for _, t := range ts {
		if t.From < CompleteSize && t.To < CompleteSize {
			grid[t.From][t.To] = t.Derived
		}
	}

	rows := make([][]fraction.Fraction, CompleteSize)
	for i := 0; i < CompleteSize; i++ {
		rows[i] = make([]fraction.Fraction, CompleteSize)
		for j := 0; j < CompleteSize; j++ {
			v := grid[i][j]
			if v == 0 {
				v = a.base.At(int64(i + j))
			}
			rows[i][j] = fraction.FromInt(v)
		}
	}

	return matrix.FromFractions(rows, a.matrixOpts...)
}
