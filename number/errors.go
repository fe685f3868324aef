package number

import "errors"

var (
	// ErrNegative is returned by functions that are not defined for negative input.
	ErrNegative = errors.New("not defined for negative numbers")

	// ErrOverflow is returned when a result does not fit in an int64.
	ErrOverflow = errors.New("result overflows int64")

	// ErrInvalidNumber is returned when a digit string cannot be read in its base.
	ErrInvalidNumber = errors.New("not a number")

	// ErrInvalidBase is returned for radixes outside 2..36.
	ErrInvalidBase = errors.New("base must be between 2 and 36")

	// ErrInvalidRoman is returned when a string contains a non-Roman symbol.
	ErrInvalidRoman = errors.New("invalid roman numeral symbol")

	// ErrInvalidUnit is returned by ParseUnit for unknown abbreviation units.
	ErrInvalidUnit = errors.New("unit must be one of K, M, B")
)
