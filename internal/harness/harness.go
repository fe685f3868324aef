package harness

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/roach88/formatkit/internal/ops"
	"github.com/roach88/formatkit/internal/testutil"
)

// Harness executes the steps of one scenario.
type Harness struct {
	catalog *ops.Catalog
	clock   *testutil.FixedClock
	env     ops.Env
	logger  *slog.Logger
}

// Option configures a Run.
type Option func(*Harness)

// WithCatalog runs scenarios against c instead of the full catalog.
func WithCatalog(c *ops.Catalog) Option {
	return func(h *Harness) { h.catalog = c }
}

// WithLogger sets the logger for step-level debug output.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) { h.logger = l }
}

// Run executes a scenario and returns the result.
//
// Each scenario gets its own frozen clock and seeded random source, so two
// runs of the same scenario produce identical traces. The returned error is
// reserved for scenarios that cannot run at all; failed expectations are
// reported in Result.Errors.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	now := testutil.DefaultNow
	if scenario.Now != "" {
		t, err := time.Parse(time.RFC3339, scenario.Now)
		if err != nil {
			return nil, fmt.Errorf("invalid now %q: %w", scenario.Now, err)
		}
		now = t
	}

	clock := testutil.NewFixedClock(now)
	h := &Harness{
		clock:  clock,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.catalog == nil {
		h.catalog = ops.NewCatalog()
	}
	h.env = ops.Env{
		Clock:    clock,
		Random:   testutil.NewSeededReader(scenario.Seed),
		Locale:   ops.DefaultEnv().Locale,
		Currency: ops.DefaultEnv().Currency,
	}

	result := NewResult()
	if err := h.executeSteps(scenario.Steps, result); err != nil {
		return nil, fmt.Errorf("failed to execute steps: %w", err)
	}

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}

// executeSteps runs every step, records it in the trace and checks its
// expectation. A failing step does not stop the scenario.
func (h *Harness) executeSteps(steps []Step, result *Result) error {
	for i, step := range steps {
		if step.Advance != "" {
			d, err := time.ParseDuration(step.Advance)
			if err != nil {
				return fmt.Errorf("step %d: invalid advance: %w", i, err)
			}
			h.clock.Advance(d)
		}

		value, callErr := h.catalog.Invoke(h.env, step.Op, ops.Args(step.Args))

		event := TraceEvent{Seq: i + 1, Op: step.Op, Args: step.Args}
		if callErr != nil {
			event.Error = callErr.Error()
		} else {
			event.Value = value
		}
		result.AddTrace(event)

		h.logger.Debug("step executed",
			"seq", event.Seq,
			"op", step.Op,
			"error", event.Error,
		)

		if msg := checkExpect(step, value, callErr); msg != "" {
			result.AddError(fmt.Sprintf("steps[%d] %s: %s", i, step.Op, msg))
		}
	}
	return nil
}

// checkExpect returns a failure message, or "" when the step behaved as expected.
func checkExpect(step Step, value any, callErr error) string {
	e := step.Expect
	if e != nil && e.Error != "" {
		if callErr == nil {
			return fmt.Sprintf("expected error containing %q, got value %s", e.Error, render(value))
		}
		if !strings.Contains(callErr.Error(), e.Error) {
			return fmt.Sprintf("expected error containing %q, got %q", e.Error, callErr.Error())
		}
		return ""
	}

	if callErr != nil {
		return fmt.Sprintf("unexpected error: %v", callErr)
	}
	if e == nil {
		return ""
	}

	if e.Value != nil {
		eq, err := CanonicalEqual(value, e.Value)
		if err != nil {
			return fmt.Sprintf("cannot compare values: %v", err)
		}
		if !eq {
			return fmt.Sprintf("expected %s, got %s", render(e.Value), render(value))
		}
	}

	if e.Match != "" {
		re, err := regexp.Compile(e.Match)
		if err != nil {
			return fmt.Sprintf("invalid match pattern: %v", err)
		}
		if text := Text(value); !re.MatchString(text) {
			return fmt.Sprintf("%q does not match %q", text, e.Match)
		}
	}

	return ""
}

// Text renders a result the way match expectations see it: strings as-is,
// everything else as canonical JSON.
func Text(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return render(value)
}

func render(v any) string {
	b, err := MarshalCanonical(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
