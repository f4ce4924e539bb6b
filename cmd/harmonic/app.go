// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.uber.org/zap"

	"github.com/katalvlaran/harmonic/config"
	"github.com/katalvlaran/harmonic/digit"
	"github.com/katalvlaran/harmonic/fraction"
	"github.com/katalvlaran/harmonic/matrix"
	"github.com/katalvlaran/harmonic/pattern"
	"github.com/katalvlaran/harmonic/transform"
)

var borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF"))

// app holds the collaborators shared by every command.
type app struct {
	cfg      config.Config
	log      *zap.Logger
	out      io.Writer
	errOut   io.Writer
	gen      *digit.Generator
	analyzer *pattern.Analyzer
	registry *transform.Registry
}

func newApp(cfg config.Config, log *zap.Logger, out, errOut io.Writer) (*app, error) {
	base, err := cfg.Base()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.MatrixOptions()
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		log:    log,
		out:    out,
		errOut: errOut,
		gen:    digit.New(digit.WithMatrixOptions(opts...)),
		analyzer: pattern.NewAnalyzer(
			pattern.WithBaseSequence(base),
			pattern.WithLogger(log.Named("pattern")),
			pattern.WithMatrixOptions(opts...),
		),
		registry: transform.Standard(base, cfg.Multiplier),
	}, nil
}

func (a *app) dispatch(ctx context.Context, name string, args []string) error {
	switch name {
	case "digits":
		return a.digits(ctx, args)
	case "analyze":
		return a.analyze(args)
	case "transform":
		return a.transform(args)
	case "multiply":
		return a.multiply(args)
	case "config":
		return a.printConfig()
	default:
		fmt.Fprintf(a.errOut, "unknown command %q\n", name)
		return errUsage
	}
}

func (a *app) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)

	return fs
}

func (a *app) digits(ctx context.Context, args []string) error {
	fs := a.flagSet("digits")
	concurrent := fs.Bool("concurrent", false, "generate the ten matrices in parallel")
	show := fs.Bool("show", false, "print every matrix after the summary")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	var (
		all map[int]*matrix.Matrix
		err error
	)
	if *concurrent {
		all, err = a.gen.GenerateAllConcurrent(ctx)
	} else {
		all, err = a.gen.GenerateAll()
	}
	if err != nil {
		return err
	}
	a.log.Info("digit matrices generated", zap.Int("count", len(all)), zap.Bool("concurrent", *concurrent))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("Digit", "Determinant", "Trace", "Harmonic")
	for d := digit.MinDigit; d <= digit.MaxDigit; d++ {
		m := all[d]
		det, tr := scalarText(m.Determinant, m.DeterminantValue), scalarText(m.Trace, m.TraceValue)
		t.Row(strconv.Itoa(d), det, tr, yesNo(m.IsNonSingular()))
	}
	fmt.Fprintln(a.out, t.Render())

	if *show {
		for d := digit.MinDigit; d <= digit.MaxDigit; d++ {
			fmt.Fprintf(a.out, "\nDigit %d\n%s", d, matrix.Visualize(all[d]))
		}
	}

	return nil
}

func (a *app) analyze(args []string) error {
	fs := a.flagSet("analyze")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	text := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(a.errOut, `usage: harmonic analyze "0 → 1 | 3 → 8 | 6 → 1"`)
		return errUsage
	}

	res, err := a.analyzer.Analyze(text)
	if err != nil {
		return err
	}
	a.log.Info("pattern analyzed",
		zap.Int("transitions", len(res.Transitions)),
		zap.Int("windows", len(res.SubMatrices)),
		zap.Bool("vortex", res.IsVortex))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("From", "To", "Derived", "Determinant")
	for i, tr := range res.Transitions {
		m := res.TransitionMatrices[i]
		t.Row(strconv.FormatInt(tr.From, 10), strconv.FormatInt(tr.To, 10),
			strconv.FormatInt(tr.Derived, 10), scalarText(m.Determinant, m.DeterminantValue))
	}
	fmt.Fprintln(a.out, res.Summary())
	fmt.Fprintln(a.out, t.Render())
	fmt.Fprintf(a.out, "Vortex: %s\n\n", yesNo(res.IsVortex))
	fmt.Fprint(a.out, matrix.Visualize(res.CompleteMatrix))

	return nil
}

func (a *app) transform(args []string) error {
	fs := a.flagSet("transform")
	names := fs.String("pipeline", transform.NameIdentity, "comma-separated transform names: "+
		strings.Join(a.registry.Names(), ", "))
	d := fs.Int("digit", 1, "digit matrix to transform (0-9)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	p, err := a.registry.Pipeline(*names)
	if err != nil {
		return err
	}
	m, err := a.gen.Generate(*d)
	if err != nil {
		return err
	}
	out, err := transform.ApplyToMatrix(m, p)
	if err != nil {
		return err
	}
	a.log.Info("pipeline applied", zap.String("pipeline", p.Name()), zap.Int("digit", *d))

	fmt.Fprintf(a.out, "Pipeline: %s\n", p.Name())
	fmt.Fprint(a.out, matrix.Visualize(out))

	return nil
}

func (a *app) multiply(args []string) error {
	fs := a.flagSet("multiply")
	left := fs.Int("digit", 1, "left digit matrix (0-9)")
	right := fs.Int("with", 0, "right digit matrix (0-9)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	x, err := a.gen.Generate(*left)
	if err != nil {
		return err
	}
	y, err := a.gen.Generate(*right)
	if err != nil {
		return err
	}
	p, err := matrix.Mul(x, y)
	if err != nil {
		return err
	}
	a.log.Info("digit matrices multiplied", zap.Int("left", *left), zap.Int("right", *right))

	fmt.Fprintf(a.out, "Digit %d × Digit %d\n", *left, *right)
	fmt.Fprint(a.out, matrix.Visualize(p))

	return nil
}

func (a *app) printConfig() error {
	data, err := a.cfg.YAML()
	if err != nil {
		return err
	}
	_, err = a.out.Write(data)

	return err
}

// scalarText prints the exact fraction, or "~value" when only the float64
// value survived overflow.
func scalarText(exact func() (fraction.Fraction, error), value func() (float64, error)) string {
	if f, err := exact(); err == nil {
		return f.String()
	}
	if v, err := value(); err == nil {
		return "~" + strconv.FormatFloat(v, 'g', -1, 64)
	}

	return "n/a"
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}

	return "NO"
}

