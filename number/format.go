package number

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	textnumber "golang.org/x/text/number"
)

// Unit is a magnitude suffix used by Format.
type Unit string

// Supported abbreviation units. UnitAuto lets Format pick the largest one.
const (
	UnitAuto     Unit = ""
	UnitThousand Unit = "K"
	UnitMillion  Unit = "M"
	UnitBillion  Unit = "B"
)

const (
	// DefaultCurrencySymbol prefixes AbbreviateCurrency output when no symbol is given.
	DefaultCurrencySymbol = "$"

	// DefaultDecimals is the conventional precision for Round.
	DefaultDecimals = 2
)

// Threshold returns the value one unit represents, or 0 for UnitAuto and
// unknown units.
func (u Unit) Threshold() float64 {
	switch u {
	case UnitThousand:
		return 1e3
	case UnitMillion:
		return 1e6
	case UnitBillion:
		return 1e9
	default:
		return 0
	}
}

// ParseUnit reads a unit name. The empty string selects UnitAuto.
func ParseUnit(s string) (Unit, error) {
	u := Unit(strings.ToUpper(strings.TrimSpace(s)))
	if u != UnitAuto && u.Threshold() == 0 {
		return UnitAuto, fmt.Errorf("%w: got %q", ErrInvalidUnit, s)
	}
	return u, nil
}

// Format abbreviates value with a K, M or B suffix.
//
// With UnitAuto the largest unit not exceeding value is used and values below
// 1000 are rendered as-is. With an explicit unit, values below that unit's
// threshold are rendered as-is (Format never falls back to a smaller unit);
// larger values are always expressed in the requested unit. The scaled value is
// rounded to one decimal, half away from zero, and a trailing ".0" is dropped:
//
//	Format(1500, UnitAuto)        // "1.5K"
//	Format(2000, UnitAuto)        // "2K"
//	Format(2500000, UnitThousand) // "2500K"
//	Format(999, UnitMillion)      // "999"
func Format(value float64, unit Unit) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return plain(value)
	}

	if t := unit.Threshold(); t > 0 {
		if value < t {
			return plain(value)
		}
		return scale(value, unit)
	}

	for _, u := range []Unit{UnitBillion, UnitMillion, UnitThousand} {
		if value >= u.Threshold() {
			return scale(value, u)
		}
	}
	return plain(value)
}

func scale(value float64, u Unit) string {
	scaled := decimal.NewFromFloat(value).Div(decimal.NewFromFloat(u.Threshold()))
	s := strings.TrimSuffix(scaled.StringFixed(1), ".0")
	return s + string(u)
}

func plain(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// AbbreviateCurrency prefixes Format(value, UnitAuto) with symbol.
// An empty symbol selects DefaultCurrencySymbol.
func AbbreviateCurrency(value float64, symbol string) string {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	return symbol + Format(value, UnitAuto)
}

// Round rounds value to the given number of decimal places, half away from
// zero, working on the shortest decimal representation of value (so 1.005
// rounds to 1.01). Negative decimals round to tens, hundreds and so on.
func Round(value float64, decimals int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	return decimal.NewFromFloat(value).Round(int32(decimals)).InexactFloat64()
}

// AddCommas renders value with English thousands separators and at most three
// fraction digits: 1234567.891 becomes "1,234,567.891".
func AddCommas(value float64) string {
	return AddCommasIn(language.English, value)
}

// AddCommasIn is AddCommas with the grouping and decimal symbols of tag.
func AddCommasIn(tag language.Tag, value float64) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", textnumber.Decimal(value, textnumber.MaxFractionDigits(3)))
}
