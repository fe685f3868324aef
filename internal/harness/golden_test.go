package harness

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_Testdata(t *testing.T) {
	fsys := afero.NewOsFs()
	for _, name := range []string{"number_basics", "time_basics"} {
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario(fsys, "testdata/scenarios/"+name+".yaml")
			require.NoError(t, err)
			require.NoError(t, RunWithGolden(t, scenario))
		})
	}
}

func TestSnapshot_Deterministic(t *testing.T) {
	scenario := &Scenario{
		Name:        "determinism",
		Description: "same scenario, same bytes",
		Seed:        "s",
		Steps: []Step{
			{Op: "string.uuid"},
			{Op: "number.addCommas", Args: map[string]any{"value": 1234567.891}},
			{Op: "string.emails", Args: map[string]any{"text": "x@a.io <y@b.io>"}},
		},
	}

	var snapshots [][]byte
	for range 3 {
		result, err := Run(scenario)
		require.NoError(t, err)
		snap, err := Snapshot(scenario.Name, result)
		require.NoError(t, err)
		snapshots = append(snapshots, snap)
	}

	assert.Equal(t, snapshots[0], snapshots[1])
	assert.Equal(t, snapshots[1], snapshots[2])
	assert.Contains(t, string(snapshots[0]), `"value":"1,234,567.891"`)
	assert.Contains(t, string(snapshots[0]), `"text":"x@a.io <y@b.io>"`)
}

func TestSnapshot_OmitsPassState(t *testing.T) {
	result := NewResult()
	result.AddTrace(TraceEvent{Seq: 1, Op: "number.isOdd", Args: map[string]any{"n": 3}, Value: true})
	result.AddError("boom")

	snap, err := Snapshot("s", result)
	require.NoError(t, err)
	assert.Equal(t, `{"scenario_name":"s","trace":[{"args":{"n":3},"op":"number.isOdd","seq":1,"value":true}]}`, string(snap))
}
