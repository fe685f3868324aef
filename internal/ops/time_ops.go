package ops

import (
	"errors"
	"time"

	"github.com/roach88/formatkit/datetime"
)

// TimeLayout is how operations render time values. Times are rendered in UTC
// so results do not depend on the host zone.
const TimeLayout = time.RFC3339Nano

func timeOps() []Operation {
	return []Operation{
		{
			Name:    "time.parse",
			Summary: "Normalize a date to RFC 3339",
			Params:  []Param{required("date", "date string, epoch milliseconds or time")},
			Call: func(_ Env, a Args) (any, error) {
				t, ok, err := a.Time("date")
				if err != nil {
					return nil, err
				}
				if !ok {
					return datetime.InvalidDate, nil
				}
				return t.UTC().Format(TimeLayout), nil
			},
		},
		{
			Name:    "time.format",
			Summary: "Format a date with YYYY, MM, DD, HH, mm and ss tokens",
			Params:  []Param{required("date", "date to format"), optional("layout", "token layout, default YYYY-MM-DD")},
			Call: func(_ Env, a Args) (any, error) {
				v, err := a.Raw("date")
				if err != nil {
					return nil, err
				}
				layout, err := a.StringOr("layout", datetime.DefaultLayout)
				if err != nil {
					return nil, err
				}
				return datetime.FormatDate(v, layout), nil
			},
		},
		{
			Name:    "time.timeAgo",
			Summary: "Describe a date relative to now",
			Params:  []Param{required("date", "date to describe")},
			Call: func(env Env, a Args) (any, error) {
				v, err := a.Raw("date")
				if err != nil {
					return nil, err
				}
				return datetime.TimeAgoFrom(v, env.Clock), nil
			},
		},
		{
			Name:    "time.isLeapYear",
			Summary: "Report whether a year, or the year of a date, is a leap year",
			Params:  []Param{optional("year", "calendar year"), optional("date", "date whose year is checked")},
			Call: func(_ Env, a Args) (any, error) {
				if a.Has("year") {
					y, err := a.Int("year")
					if err != nil {
						return nil, err
					}
					return datetime.IsLeapYear(y), nil
				}
				t, ok, err := a.Time("date")
				if err != nil {
					return nil, argErr("year", errYearOrDate)
				}
				return ok && datetime.IsLeapYearOf(t), nil
			},
		},
		{
			Name:    "time.daysInMonth",
			Summary: "Number of days in a month; 0 for months outside 1-12",
			Params:  []Param{optional("year", "calendar year"), optional("month", "month 1-12"), optional("date", "date whose month is used")},
			Call: func(_ Env, a Args) (any, error) {
				if a.Has("date") {
					t, ok, err := a.Time("date")
					if err != nil {
						return nil, err
					}
					if !ok {
						return 0, nil
					}
					return datetime.DaysInMonthOf(t), nil
				}
				y, err := a.Int("year")
				if err != nil {
					return nil, err
				}
				m, err := a.Int("month")
				if err != nil {
					return nil, err
				}
				return datetime.DaysInMonth(y, m), nil
			},
		},
		{
			Name:    "time.addDays",
			Summary: "Move a date by a number of calendar days",
			Params:  []Param{required("date", "start date"), required("days", "days to add, may be negative")},
			Call: func(_ Env, a Args) (any, error) {
				v, err := a.Raw("date")
				if err != nil {
					return nil, err
				}
				n, err := a.Int("days")
				if err != nil {
					return nil, err
				}
				t, ok := datetime.AddDays(v, n)
				if !ok {
					return datetime.InvalidDate, nil
				}
				return t.UTC().Format(TimeLayout), nil
			},
		},
		{
			Name:    "time.timeDifference",
			Summary: "Absolute span between two dates in days, hours, minutes and seconds",
			Params:  []Param{required("from", "first date"), required("to", "second date")},
			Call: func(_ Env, a Args) (any, error) {
				from, err := a.Raw("from")
				if err != nil {
					return nil, err
				}
				to, err := a.Raw("to")
				if err != nil {
					return nil, err
				}
				b, ok := datetime.TimeDifference(from, to)
				if !ok {
					return datetime.InvalidDate, nil
				}
				return b, nil
			},
		},
	}
}

var errYearOrDate = errors.New("year or date is required")
