package number

import (
	"fmt"
	"strconv"
	"strings"
)

// NaN is the sentinel ConvertBase returns alongside an error.
const NaN = "NaN"

var romanNumerals = []struct {
	value   int
	numeral string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

var romanValues = map[rune]int{
	'M': 1000, 'D': 500, 'C': 100, 'L': 50,
	'X': 10, 'V': 5, 'I': 1,
}

// ToRoman encodes n in subtractive Roman notation (1994 -> "MCMXCIV").
// Non-positive input yields the empty string.
func ToRoman(n int) string {
	var b strings.Builder
	for _, rn := range romanNumerals {
		for n >= rn.value {
			b.WriteString(rn.numeral)
			n -= rn.value
		}
	}
	return b.String()
}

// FromRoman decodes a Roman numeral, case-insensitively.
//
// Symbols are accumulated left to right; when a symbol is larger than its
// predecessor, twice the predecessor is subtracted. The structure of s is not
// validated, so "IIII" decodes to 4 and "IC" to 99.
func FromRoman(s string) (int, error) {
	total, prev := 0, 0
	for i, r := range strings.ToUpper(s) {
		v, ok := romanValues[r]
		if !ok {
			return 0, fmt.Errorf("%w: %q at offset %d", ErrInvalidRoman, r, i)
		}
		if v > prev {
			total += v - 2*prev
		} else {
			total += v
		}
		prev = v
	}
	return total, nil
}

// ConvertBase reads digits in base from and renders the value in base to,
// using lower-case letters for digits above 9.
//
// Invalid digits return NaN together with an error wrapping ErrInvalidNumber.
func ConvertBase(digits string, from, to int) (string, error) {
	if !validBase(from) || !validBase(to) {
		return NaN, fmt.Errorf("%w: got %d -> %d", ErrInvalidBase, from, to)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(digits), from, 64)
	if err != nil {
		return NaN, fmt.Errorf("%w: %q in base %d", ErrInvalidNumber, digits, from)
	}
	return strconv.FormatInt(n, to), nil
}

func validBase(b int) bool {
	return b >= 2 && b <= 36
}
