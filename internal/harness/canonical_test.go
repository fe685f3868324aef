package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/formatkit/datetime"
)

func TestMarshalCanonical_SortsKeys(t *testing.T) {
	out, err := MarshalCanonical(map[string]any{"b": 1, "a": map[string]any{"z": true, "y": "x"}})
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"y":"x","z":true},"b":1}`, string(out))
}

func TestMarshalCanonical_NoHTMLEscaping(t *testing.T) {
	out, err := MarshalCanonical("<a&b>")
	require.NoError(t, err)
	assert.Equal(t, `"<a&b>"`, string(out))
}

func TestMarshalCanonical_NFC(t *testing.T) {
	decomposed, err := MarshalCanonical("cafe\u0301")
	require.NoError(t, err)
	composed, err := MarshalCanonical("caf\u00e9")
	require.NoError(t, err)
	assert.Equal(t, composed, decomposed)
}

func TestMarshalCanonical_StructMatchesMap(t *testing.T) {
	eq, err := CanonicalEqual(
		datetime.Breakdown{Days: 1, Hours: 2, Minutes: 3, Seconds: 4},
		map[string]any{"seconds": 4, "minutes": 3, "hours": 2, "days": 1},
	)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestMarshalCanonical_Numbers(t *testing.T) {
	eq, err := CanonicalEqual(int64(3), 3.0)
	require.NoError(t, err)
	assert.True(t, eq)

	out, err := MarshalCanonical([]any{1.01, 120, -1})
	require.NoError(t, err)
	assert.Equal(t, `[1.01,120,-1]`, string(out))
}

func TestMarshalCanonical_RejectsNaN(t *testing.T) {
	_, err := MarshalCanonical(map[string]any{"x": nan()})
	require.Error(t, err)
}

func nan() float64 {
	zero := 0.0
	return zero / zero
}
