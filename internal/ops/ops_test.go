package ops

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/roach88/formatkit/datetime"
	"github.com/roach88/formatkit/internal/testutil"
	"github.com/roach88/formatkit/number"
)

func testEnv() Env {
	return Env{
		Clock:    testutil.NewFixedClock(testutil.DefaultNow),
		Random:   testutil.NewSeededReader(""),
		Locale:   language.English,
		Currency: "$",
	}
}

func invoke(t *testing.T, name string, args Args) any {
	t.Helper()
	v, err := NewCatalog().Invoke(testEnv(), name, args)
	require.NoError(t, err, name)
	return v
}

func TestInvoke_Values(t *testing.T) {
	tests := []struct {
		name string
		op   string
		args Args
		want any
	}{
		{"format auto", "number.format", Args{"value": 1500.0}, "1.5K"},
		{"format unit", "number.format", Args{"value": 2500000.0, "unit": "k"}, "2500K"},
		{"currency default", "number.abbreviateCurrency", Args{"value": 2e6}, "$2M"},
		{"currency symbol", "number.abbreviateCurrency", Args{"value": 1500.0, "symbol": "€"}, "€1.5K"},
		{"round default", "number.round", Args{"value": 1.005}, 1.01},
		{"round decimals", "number.round", Args{"value": 2.5, "decimals": 0.0}, 3.0},
		{"commas", "number.addCommas", Args{"value": 1234567.891}, "1,234,567.891"},
		{"commas locale", "number.addCommas", Args{"value": 1234567.5, "locale": "de"}, "1.234.567,5"},
		{"prime", "number.isPrime", Args{"n": 97.0}, true},
		{"even", "number.isEven", Args{"n": 3.0}, false},
		{"odd", "number.isOdd", Args{"n": -3.0}, true},
		{"square", "number.isPerfectSquare", Args{"n": 144.0}, true},
		{"gcd", "number.gcd", Args{"a": 12.0, "b": 18.0}, int64(6)},
		{"lcm", "number.lcm", Args{"a": 4.0, "b": 6.0}, int64(12)},
		{"factorial", "number.factorial", Args{"n": 5.0}, int64(120)},
		{"fibonacci", "number.fibonacci", Args{"n": 10.0}, int64(55)},
		{"to roman", "number.toRoman", Args{"n": 1994.0}, "MCMXCIV"},
		{"from roman", "number.fromRoman", Args{"roman": "mcmxciv"}, 1994},
		{"convert base", "number.convertBase", Args{"digits": "ff", "from": 16.0, "to": 2.0}, "11111111"},
		{"convert base numeric digits", "number.convertBase", Args{"digits": 255.0, "from": 10.0, "to": 16.0}, "ff"},
		{"convert base malformed", "number.convertBase", Args{"digits": "zz", "from": 10.0, "to": 2.0}, number.NaN},
		{"sum of digits", "number.sumOfDigits", Args{"n": -123.0}, 6},
		{"count digits", "number.countDigits", Args{"n": 0.0}, 1},
		{"reverse", "number.reverse", Args{"n": -120.0}, int64(-21)},
		{"kebab", "string.kebabCase", Args{"text": "helloWorld Example"}, "hello-world-example"},
		{"snake", "string.snakeCase", Args{"text": "Hello World"}, "hello_world"},
		{"camel", "string.camelCase", Args{"text": "hello_world-example"}, "helloWorldExample"},
		{"emails", "string.emails", Args{"text": "a@x.com b@y.org", "domains": []any{"y.org"}}, []string{"b@y.org"}},
		{"emails none", "string.emails", Args{"text": "nothing here"}, []string{}},
		{"parse", "time.parse", Args{"date": "2024-03-10T12:00:00Z"}, "2024-03-10T12:00:00Z"},
		{"parse invalid", "time.parse", Args{"date": "soon"}, datetime.InvalidDate},
		{"format", "time.format", Args{"date": "2024-03-10T08:05:09", "layout": "DD/MM/YYYY HH:mm:ss"}, "10/03/2024 08:05:09"},
		{"format default", "time.format", Args{"date": "2024-03-10T08:05:09"}, "2024-03-10"},
		{"time ago", "time.timeAgo", Args{"date": "2023-12-31T23:00:00Z"}, "1 hour ago"},
		{"time ago future", "time.timeAgo", Args{"date": "2024-01-03T00:00:00Z"}, "in 2 days"},
		{"leap year", "time.isLeapYear", Args{"year": 2000.0}, true},
		{"leap year of date", "time.isLeapYear", Args{"date": "2023-05-01"}, false},
		{"leap year invalid date", "time.isLeapYear", Args{"date": "nope"}, false},
		{"days in month", "time.daysInMonth", Args{"year": 2024.0, "month": 2.0}, 29},
		{"days in month out of range", "time.daysInMonth", Args{"year": 2024.0, "month": 13.0}, 0},
		{"days in month of date", "time.daysInMonth", Args{"date": "2023-04-15"}, 30},
		{"add days", "time.addDays", Args{"date": "2024-02-28T00:00:00Z", "days": 1.0}, "2024-02-29T00:00:00Z"},
		{"add days invalid", "time.addDays", Args{"date": "nope", "days": 1.0}, datetime.InvalidDate},
		{"difference", "time.timeDifference", Args{"from": "2024-01-01T00:00:00Z", "to": "2024-01-02T01:02:03Z"}, datetime.Breakdown{Days: 1, Hours: 1, Minutes: 2, Seconds: 3}},
		{"difference invalid", "time.timeDifference", Args{"from": "x", "to": "2024-01-02T01:02:03Z"}, datetime.InvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, invoke(t, tt.op, tt.args))
		})
	}
}

func TestInvoke_DomainErrors(t *testing.T) {
	c := NewCatalog()

	_, err := c.Invoke(testEnv(), "number.factorial", Args{"n": -1.0})
	assert.ErrorIs(t, err, number.ErrNegative)

	_, err = c.Invoke(testEnv(), "number.fibonacci", Args{"n": 93.0})
	assert.ErrorIs(t, err, number.ErrOverflow)

	_, err = c.Invoke(testEnv(), "number.convertBase", Args{"digits": "1", "from": 10.0, "to": 40.0})
	assert.ErrorIs(t, err, number.ErrInvalidBase)

	_, err = c.Invoke(testEnv(), "number.fromRoman", Args{"roman": "XIQ"})
	assert.ErrorIs(t, err, number.ErrInvalidRoman)

	_, err = c.Invoke(testEnv(), "number.lcm", Args{"a": json.Number("9223372036854775807"), "b": 2.0})
	assert.ErrorIs(t, err, number.ErrOverflow)

	_, err = c.Invoke(testEnv(), "number.gcd", Args{"a": json.Number("-9223372036854775808"), "b": 0.0})
	assert.ErrorIs(t, err, number.ErrOverflow)
}

func TestInvoke_ArgumentErrors(t *testing.T) {
	tests := []struct {
		op    string
		args  Args
		param string
	}{
		{"number.format", Args{"value": 1.0, "unit": "T"}, "unit"},
		{"number.addCommas", Args{"value": 1.0, "locale": "not a locale!"}, "locale"},
		{"number.random", Args{"min": 5.0, "max": 1.0}, "max"},
		{"number.factorial", Args{}, "n"},
		{"number.factorial", Args{"n": 1e19}, "n"},
		{"number.isEven", Args{"n": -1e19}, "n"},
		{"time.isLeapYear", Args{}, "year"},
		{"time.daysInMonth", Args{"month": 2.0}, "year"},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			_, err := NewCatalog().Invoke(testEnv(), tt.op, tt.args)
			var argErr *ArgError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tt.param, argErr.Param)
		})
	}
}

func TestInvoke_ExactJSONNumbers(t *testing.T) {
	// 2^53+1 is not representable as a float64.
	assert.Equal(t, false, invoke(t, "number.isEven", Args{"n": json.Number("9007199254740993")}))
	assert.Equal(t, true, invoke(t, "number.isOdd", Args{"n": json.Number("9007199254740993")}))
	assert.Equal(t, "1.5K", invoke(t, "number.format", Args{"value": json.Number("1500")}))
}

func TestInvoke_TimesRenderInUTC(t *testing.T) {
	testutil.SetLocal(t, time.FixedZone("UTC+14", 14*3600))

	assert.Equal(t, "2024-03-06T04:00:00Z", invoke(t, "time.parse", Args{"date": "2024-03-05T23:00:00-05:00"}))
	assert.Equal(t, "2024-03-06 18:00", invoke(t, "time.format", Args{"date": "2024-03-05T23:00:00-05:00", "layout": "YYYY-MM-DD HH:mm"}))
	assert.Equal(t, "2024-03-07T04:00:00Z", invoke(t, "time.addDays", Args{"date": "2024-03-05T23:00:00-05:00", "days": 1.0}))
}

func TestInvoke_RandomInRange(t *testing.T) {
	for range 50 {
		v := invoke(t, "number.random", Args{"min": 1.0, "max": 6.0})
		n, ok := v.(int)
		require.True(t, ok)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 6)
	}
}

func TestInvoke_UUIDDeterministicWithSeededReader(t *testing.T) {
	c := NewCatalog()
	a, err := c.Invoke(testEnv(), "string.uuid", nil)
	require.NoError(t, err)
	b, err := c.Invoke(testEnv(), "string.uuid", nil)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`, a)
}

func TestInvoke_TimeAgoFollowsClock(t *testing.T) {
	clock := testutil.NewFixedClock(testutil.DefaultNow)
	env := testEnv()
	env.Clock = clock
	c := NewCatalog()

	v, err := c.Invoke(env, "time.timeAgo", Args{"date": testutil.DefaultNow})
	require.NoError(t, err)
	assert.Equal(t, datetime.JustNow, v)

	clock.Advance(3 * 7 * 24 * time.Hour)
	v, err = c.Invoke(env, "time.timeAgo", Args{"date": testutil.DefaultNow})
	require.NoError(t, err)
	assert.Equal(t, "3 weeks ago", v)
}

func TestInvoke_ZeroEnvUsesDefaults(t *testing.T) {
	v, err := NewCatalog().Invoke(Env{}, "number.abbreviateCurrency", Args{"value": 1500.0})
	require.NoError(t, err)
	assert.Equal(t, "$1.5K", v)

	v, err = NewCatalog().Invoke(Env{}, "string.uuid", nil)
	require.NoError(t, err)
	assert.Len(t, v, 36)
}
