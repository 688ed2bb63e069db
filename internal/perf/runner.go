// Package perf is a small timing harness. Cases are registered with a
// label and a work function; RunAll warms every case up, then times a
// fixed number of executions of each and reports the average.
package perf

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/lambda-basics/flow/core"
)

const (
	// DefaultWarmUpCycles is the number of unmeasured executions per case.
	DefaultWarmUpCycles = 200
	// DefaultExecutionCycles is the number of measured executions per case.
	DefaultExecutionCycles = 100

	// maxProgressTicks bounds the dots printed during one warm-up.
	maxProgressTicks = 20
)

// Case is a labelled unit of work.
type Case struct {
	Label string
	Work  func()
}

// Measurement is the result of timing one case.
type Measurement struct {
	Label        string
	Iterations   int
	Total        time.Duration
	PerIteration time.Duration
	// Err is set when the case failed under SkipFailed.
	Err error
}

// Settings carries cycle counts through a context with core.WithConfig.
// Positive values override the runner's own.
type Settings struct {
	WarmUpCycles    int
	ExecutionCycles int
}

// Runner holds registered cases in registration order.
type Runner struct {
	cases     []Case
	warmUp    int
	execution int
	out       io.Writer
	logger    *slog.Logger
	meter     metric.Meter
	policy    FailurePolicy
	now       func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithWarmUpCycles sets the warm-up executions per case. Non-positive
// values are ignored.
func WithWarmUpCycles(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.warmUp = n
		}
	}
}

// WithExecutionCycles sets the measured executions per case. Non-positive
// values are ignored.
func WithExecutionCycles(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.execution = n
		}
	}
}

// WithOutput sets where the progress and report lines go.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.out = w }
}

// WithLogger sets the logger for run progress and skipped cases. A nil
// logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMeter records per-case durations and execution counts on meter.
func WithMeter(meter metric.Meter) Option {
	return func(r *Runner) { r.meter = meter }
}

// WithFailurePolicy sets what RunAll does when a case panics.
func WithFailurePolicy(p FailurePolicy) Option {
	return func(r *Runner) { r.policy = p }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// NewRunner returns an empty Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		warmUp:    DefaultWarmUpCycles,
		execution: DefaultExecutionCycles,
		out:       os.Stdout,
		logger:    slog.New(slog.DiscardHandler),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register appends a case.
func (r *Runner) Register(label string, work func()) {
	r.cases = append(r.cases, Case{Label: label, Work: work})
}

// Cases returns the registered cases in order.
func (r *Runner) Cases() []Case {
	return slices.Clone(r.cases)
}

// RunAll warms up every case, then measures every case, both in
// registration order. It returns one Measurement per case. The context is
// checked between cases.
func (r *Runner) RunAll(ctx context.Context) ([]Measurement, error) {
	warmUp, execution := r.cycles(ctx)
	inst, err := newInstruments(r.meter)
	if err != nil {
		return nil, err
	}

	results := make([]Measurement, len(r.cases))
	for i, c := range r.cases {
		results[i].Label = c.Label
	}
	r.logger.Info("starting timing run",
		"cases", len(r.cases), "warm_up_cycles", warmUp, "execution_cycles", execution, "policy", r.policy)

	fmt.Fprintln(r.out)
	for i, c := range r.cases {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if err := r.warm(c, warmUp); err != nil {
			if err := r.fail(&results[i], err); err != nil {
				return results, err
			}
		}
	}

	fmt.Fprintln(r.out)
	for i, c := range r.cases {
		if results[i].Err != nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return results, err
		}
		m, err := r.measure(c, execution)
		if err != nil {
			if err := r.fail(&results[i], err); err != nil {
				return results, err
			}
			continue
		}
		results[i] = m
		inst.record(ctx, m)
	}
	return results, nil
}

func (r *Runner) cycles(ctx context.Context) (warmUp, execution int) {
	warmUp, execution = r.warmUp, r.execution
	if s, ok := core.GetConfig[Settings](ctx); ok {
		if s.WarmUpCycles > 0 {
			warmUp = s.WarmUpCycles
		}
		if s.ExecutionCycles > 0 {
			execution = s.ExecutionCycles
		}
	}
	return warmUp, execution
}

func (r *Runner) warm(c Case, cycles int) error {
	fmt.Fprintf(r.out, "test case '%s' warm-up ", c.Label)

	tick := cycles / min(maxProgressTicks, cycles)
	err := invoke(c, PhaseWarmUp, cycles, func(count int) {
		if count%tick == 0 {
			fmt.Fprint(r.out, ".")
		}
	})
	if err != nil {
		fmt.Fprintln(r.out, " failed")
		return err
	}

	fmt.Fprintln(r.out, " ready")
	r.logger.Debug("warm-up complete", "case", c.Label, "cycles", cycles)
	return nil
}

func (r *Runner) measure(c Case, cycles int) (Measurement, error) {
	start := r.now()
	err := invoke(c, PhaseMeasurement, cycles, nil)
	total := max(r.now().Sub(start), 0)
	if err != nil {
		return Measurement{}, err
	}

	per := total / time.Duration(cycles)
	fmt.Fprintf(r.out, "test case '%s' elapsed time per execution %s ms\n", c.Label, millis(per))
	r.logger.Debug("case measured", "case", c.Label, "per_iteration", per)

	return Measurement{
		Label:        c.Label,
		Iterations:   cycles,
		Total:        total,
		PerIteration: per,
	}, nil
}

func (r *Runner) fail(m *Measurement, err error) error {
	if r.policy == FailFast {
		return err
	}
	m.Err = err
	r.logger.Warn("skipping failed test case", "case", m.Label, "error", err)
	return nil
}

// invoke runs c.Work n times, calling after (if set) with each completed
// count. A panic becomes a *CaseError.
func invoke(c Case, phase Phase, n int, after func(count int)) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &CaseError{
				Label: c.Label,
				Phase: phase,
				Value: v,
				Stack: core.NewPanicError(v).Stack,
			}
		}
	}()

	for count := 0; count < n; count++ {
		c.Work()
		if after != nil {
			after(count)
		}
	}
	return nil
}

func millis(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', -1, 64)
}
