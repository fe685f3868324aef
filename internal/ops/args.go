package ops

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"time"

	"github.com/spf13/cast"

	"github.com/roach88/formatkit/datetime"
)

// Args holds the named arguments of one invocation.
type Args map[string]any

// ArgError reports a missing, unknown or ill-typed argument.
type ArgError struct {
	Param string
	Err   error
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("argument %q: %v", e.Param, e.Err)
}

func (e *ArgError) Unwrap() error {
	return e.Err
}

var (
	errRequired   = errors.New("is required")
	errUnknown    = errors.New("unknown parameter")
	errNotInteger = errors.New("must be an integer")
	errOutOfRange = errors.New("is out of range for a 64-bit integer")
)

// Float64 bounds of int64: -2^63 is exact, 2^63 is the first value past MaxInt64.
const (
	minInt64Float = -9223372036854775808.0
	maxInt64Float = 9223372036854775808.0
)

func argErr(param string, err error) error {
	return &ArgError{Param: param, Err: err}
}

// Has reports whether name is present with a non-nil value.
func (a Args) Has(name string) bool {
	v, ok := a[name]
	return ok && v != nil
}

// Raw returns the argument as given. Missing arguments are an *ArgError.
func (a Args) Raw(name string) (any, error) {
	if !a.Has(name) {
		return nil, argErr(name, errRequired)
	}
	return a[name], nil
}

// Float returns a required numeric argument.
func (a Args) Float(name string) (float64, error) {
	v, err := a.Raw(name)
	if err != nil {
		return 0, err
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, argErr(name, err)
	}
	return f, nil
}

// Int64 returns a required integer argument. Fractional numbers are rejected
// rather than truncated, and values outside the int64 range are rejected
// rather than wrapped. json.Number input is read exactly.
func (a Args) Int64(name string) (int64, error) {
	v, err := a.Raw(name)
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case float64:
		if err := checkIntegral(x); err != nil {
			return 0, argErr(name, err)
		}
		return int64(x), nil
	case float32:
		if err := checkIntegral(float64(x)); err != nil {
			return 0, argErr(name, err)
		}
		return int64(x), nil
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n, nil
		}
		// Exponent forms such as "1e3", or magnitudes past int64.
		f, err := x.Float64()
		if err != nil {
			return 0, argErr(name, errOutOfRange)
		}
		if err := checkIntegral(f); err != nil {
			return 0, argErr(name, err)
		}
		return int64(f), nil
	}
	n, err := cast.ToInt64E(v)
	if err != nil {
		return 0, argErr(name, err)
	}
	return n, nil
}

func checkIntegral(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return errNotInteger
	}
	if f < minInt64Float || f >= maxInt64Float {
		return errOutOfRange
	}
	return nil
}

// Int is Int64 narrowed to int.
func (a Args) Int(name string) (int, error) {
	n, err := a.Int64(name)
	return int(n), err
}

// IntOr returns an optional integer argument, def when absent.
func (a Args) IntOr(name string, def int) (int, error) {
	if !a.Has(name) {
		return def, nil
	}
	return a.Int(name)
}

// String returns a required argument rendered as a string; numbers are
// accepted ("255" and 255 are the same digits).
func (a Args) String(name string) (string, error) {
	v, err := a.Raw(name)
	if err != nil {
		return "", err
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", argErr(name, err)
	}
	return s, nil
}

// StringOr returns an optional string argument, def when absent.
func (a Args) StringOr(name, def string) (string, error) {
	if !a.Has(name) {
		return def, nil
	}
	return a.String(name)
}

// Strings returns an optional list argument; absent means nil. A single
// string is split on whitespace.
func (a Args) Strings(name string) ([]string, error) {
	if !a.Has(name) {
		return nil, nil
	}
	ss, err := cast.ToStringSliceE(a[name])
	if err != nil {
		return nil, argErr(name, err)
	}
	return ss, nil
}

// Time returns a required date argument parsed with datetime.Parse. ok is
// false when the value is present but does not parse; the caller decides
// which sentinel to return.
func (a Args) Time(name string) (t time.Time, ok bool, err error) {
	v, err := a.Raw(name)
	if err != nil {
		return time.Time{}, false, err
	}
	t, ok = datetime.Parse(v)
	return t, ok, nil
}

// checkKnown rejects argument names the operation does not declare.
func (a Args) checkKnown(params []Param) error {
	for _, name := range slices.Sorted(maps.Keys(a)) {
		known := false
		for _, p := range params {
			if p.Name == name {
				known = true
				break
			}
		}
		if !known {
			return argErr(name, errUnknown)
		}
	}
	return nil
}
