package harness

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/formatkit/internal/ops"
)

func TestRun_Testdata(t *testing.T) {
	fsys := afero.NewOsFs()
	files, err := FindScenarioFiles(fsys, "testdata/scenarios", "")
	require.NoError(t, err)

	for _, path := range files {
		t.Run(path, func(t *testing.T) {
			scenario, err := LoadScenario(fsys, path)
			require.NoError(t, err)

			result, err := Run(scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
			assert.Len(t, result.Trace, len(scenario.Steps))
		})
	}
}

func TestRun_RecordsTrace(t *testing.T) {
	scenario := &Scenario{
		Name:        "trace",
		Description: "trace shape",
		Steps: []Step{
			{Op: "number.isPrime", Args: map[string]any{"n": 7}},
			{Op: "number.factorial", Args: map[string]any{"n": -2}, Expect: &Expect{Error: "negative"}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	require.True(t, result.Pass, "errors: %v", result.Errors)
	require.Len(t, result.Trace, 2)

	assert.Equal(t, TraceEvent{Seq: 1, Op: "number.isPrime", Args: map[string]any{"n": 7}, Value: true}, result.Trace[0])
	assert.Equal(t, 2, result.Trace[1].Seq)
	assert.True(t, result.Trace[1].Failed())
	assert.Nil(t, result.Trace[1].Value)
}

func TestRun_ValueMismatch(t *testing.T) {
	scenario := &Scenario{
		Name:        "mismatch",
		Description: "wrong expectation",
		Steps: []Step{
			{Op: "number.format", Args: map[string]any{"value": 2000}, Expect: &Expect{Value: "2.0K"}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], `steps[0] number.format: expected "2.0K", got "2K"`)
}

func TestRun_NumericValuesCompareCanonically(t *testing.T) {
	scenario := &Scenario{
		Name:        "numeric",
		Description: "int64 result against a float expectation",
		Steps: []Step{
			{Op: "number.gcd", Args: map[string]any{"a": 12, "b": 18}, Expect: &Expect{Value: 6.0}},
			{Op: "number.round", Args: map[string]any{"value": 2.5, "decimals": 0}, Expect: &Expect{Value: 3}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestRun_UnexpectedError(t *testing.T) {
	scenario := &Scenario{
		Name:        "unexpected",
		Description: "unknown op without error expectation",
		Steps:       []Step{{Op: "number.nope"}},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "unexpected error: unknown operation")
}

func TestRun_ExpectedErrorMissing(t *testing.T) {
	scenario := &Scenario{
		Name:        "missing_error",
		Description: "error expected but value returned",
		Steps: []Step{
			{Op: "number.factorial", Args: map[string]any{"n": 3}, Expect: &Expect{Error: "negative"}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Contains(t, result.Errors[0], `expected error containing "negative", got value 6`)
}

func TestRun_Match(t *testing.T) {
	scenario := &Scenario{
		Name:        "match",
		Description: "regular expression expectations",
		Steps: []Step{
			{Op: "string.uuid", Expect: &Expect{Match: `^[0-9a-f-]{36}$`}},
			{Op: "number.random", Args: map[string]any{"min": 1, "max": 3}, Expect: &Expect{Match: `^[1-3]$`}},
			{Op: "string.kebabCase", Args: map[string]any{"text": "Hello"}, Expect: &Expect{Match: `^HELLO$`}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], `steps[2] string.kebabCase: "hello" does not match "^HELLO$"`)
}

func TestRun_SeedMakesUUIDsReproducible(t *testing.T) {
	scenario := &Scenario{
		Name:        "uuids",
		Description: "seeded uuids",
		Seed:        "fixed",
		Steps:       []Step{{Op: "string.uuid"}, {Op: "string.uuid"}},
	}

	first, err := Run(scenario)
	require.NoError(t, err)
	second, err := Run(scenario)
	require.NoError(t, err)

	assert.Equal(t, first.Trace, second.Trace)
	assert.NotEqual(t, first.Trace[0].Value, first.Trace[1].Value)

	scenario.Seed = "other"
	third, err := Run(scenario)
	require.NoError(t, err)
	assert.NotEqual(t, first.Trace[0].Value, third.Trace[0].Value)
}

func TestRun_ClockAdvance(t *testing.T) {
	scenario := &Scenario{
		Name:        "advance",
		Description: "clock moves between steps",
		Now:         "2024-06-01T12:00:00Z",
		Steps: []Step{
			{Op: "time.timeAgo", Args: map[string]any{"date": "2024-06-01T12:00:00Z"}, Expect: &Expect{Value: "just now"}},
			{Op: "time.timeAgo", Advance: "90s", Args: map[string]any{"date": "2024-06-01T12:00:00Z"}, Expect: &Expect{Value: "1 minute ago"}},
			{Op: "time.timeAgo", Advance: "-3h", Args: map[string]any{"date": "2024-06-01T12:00:00Z"}, Expect: &Expect{Value: "in 2 hours"}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestRun_InvalidNow(t *testing.T) {
	_, err := Run(&Scenario{Name: "n", Description: "d", Now: "later", Steps: []Step{{Op: "number.isOdd"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid now")
}

func TestRun_WithCatalog(t *testing.T) {
	catalog := ops.NewCatalog()
	require.NoError(t, catalog.Register(ops.Operation{
		Name:    "custom.echo",
		Summary: "echo",
		Params:  []ops.Param{{Name: "text", Required: true}},
		Call: func(_ ops.Env, a ops.Args) (any, error) {
			return a.String("text")
		},
	}))

	scenario := &Scenario{
		Name:        "custom",
		Description: "custom catalog",
		Steps:       []Step{{Op: "custom.echo", Args: map[string]any{"text": "hi"}, Expect: &Expect{Value: "hi"}}},
	}

	result, err := Run(scenario, WithCatalog(catalog))
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestRun_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Run(&Scenario{Name: "n", Description: "d", Steps: []Step{{Op: "number.isOdd", Args: map[string]any{"n": 1}}}}, WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "step executed")
	assert.Contains(t, buf.String(), "op=number.isOdd")
}

func TestText(t *testing.T) {
	assert.Equal(t, "abc", Text("abc"))
	assert.Equal(t, "true", Text(true))
	assert.Equal(t, `["a","b"]`, Text([]string{"a", "b"}))
}
