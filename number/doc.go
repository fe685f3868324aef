// Package number provides numeric formatting, arithmetic predicates and
// conversions: magnitude abbreviation (1.5K, 2M), decimal rounding, thousands
// separators, primality, GCD/LCM, factorial and Fibonacci, Roman numerals,
// base conversion and decimal-digit helpers.
//
// Every function is pure and safe for concurrent use. Functions defined only on
// non-negative integers (Factorial, Fibonacci) return ErrNegative for negative
// input and ErrOverflow when the result does not fit in an int64; they never
// wrap silently.
package number
