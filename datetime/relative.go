package datetime

import (
	"fmt"
	"time"
)

// JustNow is returned by RelativeTime when both instants fall in the same second.
const JustNow = "just now"

// Unit lengths in seconds, largest first. Months and years are fixed at 30
// and 365 days.
var relativeUnits = []struct {
	name    string
	seconds int64
}{
	{"year", 31536000},
	{"month", 2592000},
	{"week", 604800},
	{"day", 86400},
	{"hour", 3600},
	{"minute", 60},
	{"second", 1},
}

// TimeAgo describes input relative to the system clock.
func TimeAgo(input any) string {
	return TimeAgoFrom(input, SystemClock{})
}

// TimeAgoFrom describes input relative to clock.Now().
// Unparseable input yields InvalidDate.
func TimeAgoFrom(input any, clock Clock) string {
	t, ok := Parse(input)
	if !ok {
		return InvalidDate
	}
	return RelativeTime(t, clock.Now())
}

// RelativeTime describes t relative to now using the largest whole unit:
// "1 hour ago", "in 2 days", "just now".
//
// The delta is measured in epoch milliseconds and floored to whole seconds,
// so half a second in the past is already "1 second ago" while anything
// less than a second ahead is JustNow. Deltas are not bounded by
// time.Duration; any pair of instants Parse accepts is described correctly.
func RelativeTime(t, now time.Time) string {
	delta := floorDiv(t.UnixMilli()-now.UnixMilli(), 1000)
	abs := delta
	if abs < 0 {
		abs = -abs
	}

	for _, u := range relativeUnits {
		count := abs / u.seconds
		if count < 1 {
			continue
		}
		label := u.name
		if count != 1 {
			label += "s"
		}
		if delta > 0 {
			return fmt.Sprintf("in %d %s", count, label)
		}
		return fmt.Sprintf("%d %s ago", count, label)
	}
	return JustNow
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
