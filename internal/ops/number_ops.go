package ops

import (
	"errors"

	"golang.org/x/text/language"

	"github.com/roach88/formatkit/number"
)

func numberOps() []Operation {
	return []Operation{
		{
			Name:    "number.format",
			Summary: "Abbreviate a number with a K, M or B suffix",
			Params:  []Param{required("value", "number to abbreviate"), optional("unit", "K, M or B; automatic when empty")},
			Call: func(_ Env, a Args) (any, error) {
				v, err := a.Float("value")
				if err != nil {
					return nil, err
				}
				s, err := a.StringOr("unit", "")
				if err != nil {
					return nil, err
				}
				unit, err := number.ParseUnit(s)
				if err != nil {
					return nil, argErr("unit", err)
				}
				return number.Format(v, unit), nil
			},
		},
		{
			Name:    "number.abbreviateCurrency",
			Summary: "Abbreviate a number and prefix a currency symbol",
			Params:  []Param{required("value", "amount"), optional("symbol", "currency symbol; the configured currency when empty")},
			Call: func(env Env, a Args) (any, error) {
				v, err := a.Float("value")
				if err != nil {
					return nil, err
				}
				symbol, err := a.StringOr("symbol", env.Currency)
				if err != nil {
					return nil, err
				}
				return number.AbbreviateCurrency(v, symbol), nil
			},
		},
		{
			Name:    "number.round",
			Summary: "Round half away from zero to a number of decimals",
			Params:  []Param{required("value", "number to round"), optional("decimals", "fraction digits, default 2")},
			Call: func(_ Env, a Args) (any, error) {
				v, err := a.Float("value")
				if err != nil {
					return nil, err
				}
				d, err := a.IntOr("decimals", number.DefaultDecimals)
				if err != nil {
					return nil, err
				}
				return number.Round(v, d), nil
			},
		},
		{
			Name:    "number.addCommas",
			Summary: "Insert locale thousands separators",
			Params:  []Param{required("value", "number to format"), optional("locale", "BCP 47 tag; the configured locale when empty")},
			Call: func(env Env, a Args) (any, error) {
				v, err := a.Float("value")
				if err != nil {
					return nil, err
				}
				tag := env.Locale
				if a.Has("locale") {
					s, err := a.String("locale")
					if err != nil {
						return nil, err
					}
					if tag, err = language.Parse(s); err != nil {
						return nil, argErr("locale", err)
					}
				}
				return number.AddCommasIn(tag, v), nil
			},
		},
		{
			Name:    "number.random",
			Summary: "Uniform random integer in [min, max]",
			Params:  []Param{required("min", "lower bound, inclusive"), required("max", "upper bound, inclusive")},
			Call: func(_ Env, a Args) (any, error) {
				lo, err := a.Int("min")
				if err != nil {
					return nil, err
				}
				hi, err := a.Int("max")
				if err != nil {
					return nil, err
				}
				if hi < lo {
					return nil, argErr("max", errors.New("must not be less than min"))
				}
				return number.RandomNumber(lo, hi), nil
			},
		},
		int64Predicate("number.isPrime", "Report whether n is prime", number.IsPrime),
		int64Predicate("number.isEven", "Report whether n is even", number.IsEven),
		int64Predicate("number.isOdd", "Report whether n is odd", number.IsOdd),
		int64Predicate("number.isPerfectSquare", "Report whether n is a perfect square", number.IsPerfectSquare),
		int64Pair("number.gcd", "Greatest common divisor", number.CheckedGCD),
		int64Pair("number.lcm", "Least common multiple; 0 when either input is 0", number.CheckedLCM),
		{
			Name:    "number.factorial",
			Summary: "n! for 0 <= n <= 20",
			Params:  []Param{required("n", "non-negative integer")},
			Call: func(_ Env, a Args) (any, error) {
				n, err := a.Int("n")
				if err != nil {
					return nil, err
				}
				return number.Factorial(n)
			},
		},
		{
			Name:    "number.fibonacci",
			Summary: "The n-th Fibonacci number for 0 <= n <= 92",
			Params:  []Param{required("n", "non-negative index")},
			Call: func(_ Env, a Args) (any, error) {
				n, err := a.Int("n")
				if err != nil {
					return nil, err
				}
				return number.Fibonacci(n)
			},
		},
		{
			Name:    "number.toRoman",
			Summary: "Roman numeral for a positive integer",
			Params:  []Param{required("n", "positive integer")},
			Call: func(_ Env, a Args) (any, error) {
				n, err := a.Int("n")
				if err != nil {
					return nil, err
				}
				return number.ToRoman(n), nil
			},
		},
		{
			Name:    "number.fromRoman",
			Summary: "Integer value of a Roman numeral",
			Params:  []Param{required("roman", "numeral, any case")},
			Call: func(_ Env, a Args) (any, error) {
				s, err := a.String("roman")
				if err != nil {
					return nil, err
				}
				return number.FromRoman(s)
			},
		},
		{
			Name:    "number.convertBase",
			Summary: "Re-encode digits from one base to another; NaN for malformed digits",
			Params:  []Param{required("digits", "digits in the source base"), required("from", "source base 2-36"), required("to", "target base 2-36")},
			Call: func(_ Env, a Args) (any, error) {
				digits, err := a.String("digits")
				if err != nil {
					return nil, err
				}
				from, err := a.Int("from")
				if err != nil {
					return nil, err
				}
				to, err := a.Int("to")
				if err != nil {
					return nil, err
				}
				out, err := number.ConvertBase(digits, from, to)
				if errors.Is(err, number.ErrInvalidNumber) {
					return out, nil
				}
				if err != nil {
					return nil, err
				}
				return out, nil
			},
		},
		{
			Name:    "number.sumOfDigits",
			Summary: "Sum of the decimal digits of |n|",
			Params:  []Param{required("n", "integer")},
			Call: func(_ Env, a Args) (any, error) {
				n, err := a.Int64("n")
				if err != nil {
					return nil, err
				}
				return number.SumOfDigits(n), nil
			},
		},
		{
			Name:    "number.countDigits",
			Summary: "Number of decimal digits of |n|",
			Params:  []Param{required("n", "integer")},
			Call: func(_ Env, a Args) (any, error) {
				n, err := a.Int64("n")
				if err != nil {
					return nil, err
				}
				return number.CountDigits(n), nil
			},
		},
		{
			Name:    "number.reverse",
			Summary: "Reverse the decimal digits of n, keeping its sign",
			Params:  []Param{required("n", "integer")},
			Call: func(_ Env, a Args) (any, error) {
				n, err := a.Int64("n")
				if err != nil {
					return nil, err
				}
				return number.ReverseNumber(n)
			},
		},
	}
}

func int64Predicate(name, summary string, fn func(int64) bool) Operation {
	return Operation{
		Name:    name,
		Summary: summary,
		Params:  []Param{required("n", "integer")},
		Call: func(_ Env, a Args) (any, error) {
			n, err := a.Int64("n")
			if err != nil {
				return nil, err
			}
			return fn(n), nil
		},
	}
}

func int64Pair(name, summary string, fn func(a, b int64) (int64, error)) Operation {
	return Operation{
		Name:    name,
		Summary: summary,
		Params:  []Param{required("a", "integer"), required("b", "integer")},
		Call: func(_ Env, a Args) (any, error) {
			x, err := a.Int64("a")
			if err != nil {
				return nil, err
			}
			y, err := a.Int64("b")
			if err != nil {
				return nil, err
			}
			return fn(x, y)
		},
	}
}
