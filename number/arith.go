package number

import (
	"fmt"
	"math"
	"math/bits"
	"math/rand/v2"
)

// Largest inputs whose results still fit in an int64.
const (
	maxFactorial = 20
	maxFibonacci = 92
)

// RandomNumber returns a uniformly distributed integer in [min, max].
// The caller must ensure max >= min; RandomNumber panics otherwise.
func RandomNumber(min, max int) int {
	return rand.IntN(max-min+1) + min
}

// IsPrime reports whether n is prime using 6k±1 trial division.
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := int64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// GCD returns the non-negative greatest common divisor of a and b.
//
// The only result that does not fit is 2^63, from GCD(math.MinInt64, 0) or
// GCD(math.MinInt64, math.MinInt64); it comes back as math.MinInt64. Use
// CheckedGCD to get ErrOverflow instead.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return abs(a)
}

// CheckedGCD is GCD that reports ErrOverflow when the result is 2^63.
func CheckedGCD(a, b int64) (int64, error) {
	g := GCD(a, b)
	if g < 0 {
		return 0, fmt.Errorf("gcd of %d and %d: %w", a, b, ErrOverflow)
	}
	return g, nil
}

// LCM returns the least common multiple of a and b, or 0 when either is 0.
// Results beyond math.MaxInt64 wrap; use CheckedLCM to detect them.
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	return abs(a / GCD(a, b) * b)
}

// CheckedLCM is LCM that reports ErrOverflow instead of wrapping.
func CheckedLCM(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	g, err := CheckedGCD(a, b)
	if err != nil {
		return 0, fmt.Errorf("lcm of %d and %d: %w", a, b, ErrOverflow)
	}
	hi, lo := bits.Mul64(magnitude(a/g), magnitude(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, fmt.Errorf("lcm of %d and %d: %w", a, b, ErrOverflow)
	}
	return int64(lo), nil
}

// Factorial returns n!. It fails with ErrNegative for n < 0 and ErrOverflow
// for n > 20.
func Factorial(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("factorial of %d: %w", n, ErrNegative)
	}
	if n > maxFactorial {
		return 0, fmt.Errorf("factorial of %d: %w", n, ErrOverflow)
	}
	return factorial(int64(n)), nil
}

func factorial(n int64) int64 {
	if n == 0 {
		return 1
	}
	return n * factorial(n-1)
}

// Fibonacci returns the n-th Fibonacci number with F(0)=0 and F(1)=1.
// It fails with ErrNegative for n < 0 and ErrOverflow for n > 92.
func Fibonacci(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("fibonacci of %d: %w", n, ErrNegative)
	}
	if n > maxFibonacci {
		return 0, fmt.Errorf("fibonacci of %d: %w", n, ErrOverflow)
	}
	var a, b int64 = 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a, nil
}

// IsEven reports whether n is divisible by two.
func IsEven(n int64) bool {
	return n%2 == 0
}

// IsOdd reports whether n is not divisible by two.
func IsOdd(n int64) bool {
	return n%2 != 0
}

// IsPerfectSquare reports whether the floating-point square root of n has no
// fractional part.
//
// The check goes through float64, so above 2^53 neighbouring integers share a
// square root and the answer may be wrong.
func IsPerfectSquare(n int64) bool {
	if n < 0 {
		return false
	}
	r := math.Sqrt(float64(n))
	return r == math.Trunc(r)
}

// magnitude is |n| as a uint64, exact for math.MinInt64.
func magnitude(n int64) uint64 {
	u := uint64(n)
	if n < 0 {
		u = -u
	}
	return u
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
