package datetime

import (
	"encoding/json"
	"math"
	"strings"
	"time"
)

// InvalidDate is returned in place of a formatted value when an input cannot
// be parsed.
const InvalidDate = "Invalid date"

// maxEpochMillis bounds epoch inputs to ±100,000,000 days around 1970.
const maxEpochMillis = 8.64e15

// Layouts that carry their own offset or zone. The offset fixes the instant;
// the result is still read on the local calendar.
var zonedLayouts = []string{
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
}

// Layouts read in the host's local zone. Fractional seconds are accepted after
// any seconds field.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
	"2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006",
}

// Parse normalizes input into an instant.
//
// Accepted inputs are time.Time and *time.Time (the zero time is invalid),
// integer or integral-valued float epoch milliseconds (including
// json.Number), and strings in ISO-like layouts such as "2024-03-05",
// "2024-03-05T14:07:09", "2024-03-05T14:07:09Z" or "March 5, 2024".
// ok is false for anything else.
func Parse(input any) (t time.Time, ok bool) {
	switch v := input.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, !v.IsZero()
	case string:
		return parseString(v)
	case json.Number:
		if ms, err := v.Int64(); err == nil {
			return fromMillis(float64(ms))
		}
		f, err := v.Float64()
		if err != nil {
			return time.Time{}, false
		}
		return fromMillis(f)
	case int:
		return fromMillis(float64(v))
	case int32:
		return fromMillis(float64(v))
	case int64:
		return fromMillis(float64(v))
	case uint:
		return fromMillis(float64(v))
	case uint32:
		return fromMillis(float64(v))
	case uint64:
		return fromMillis(float64(v))
	case float32:
		return fromMillis(float64(v))
	case float64:
		return fromMillis(v)
	default:
		return time.Time{}, false
	}
}

func parseString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Local(), true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func fromMillis(ms float64) (time.Time, bool) {
	if math.IsNaN(ms) || math.Abs(ms) > maxEpochMillis {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)), true
}
