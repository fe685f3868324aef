package number

import (
	"fmt"
	"strconv"
	"strings"
)

// SumOfDigits returns the sum of the decimal digits of |n|.
func SumOfDigits(n int64) int {
	sum := 0
	for _, d := range digitsOf(n) {
		sum += int(d - '0')
	}
	return sum
}

// CountDigits returns the number of decimal digits of |n|.
func CountDigits(n int64) int {
	return len(digitsOf(n))
}

// ReverseNumber reverses the decimal digits of n, keeping its sign.
// Trailing zeros disappear (1200 -> 21). ErrOverflow is returned when the
// reversed magnitude does not fit in an int64.
func ReverseNumber(n int64) (int64, error) {
	d := []byte(digitsOf(n))
	for i, j := 0, len(d)-1; i < j; i, j = i+1, j-1 {
		d[i], d[j] = d[j], d[i]
	}
	v, err := strconv.ParseInt(string(d), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("reverse of %d: %w", n, ErrOverflow)
	}
	if n < 0 {
		v = -v
	}
	return v, nil
}

func digitsOf(n int64) string {
	return strings.TrimPrefix(strconv.FormatInt(n, 10), "-")
}
