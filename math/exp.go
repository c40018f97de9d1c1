package math

import (
	decimal "github.com/db47h/decmath"
)

// Pow returns x**y.
//
// Integral powers are computed by repeated squaring and are exact whenever
// the result can be represented. For a fractional y, Pow computes
// x**trunc(y) × e**(frac(y)×ln(x)), so x must be positive unless it is 0, in
// which case the result is 0.
//
// A negative y yields 1/x**|y|. Pow returns an OverflowError if x is 0 and y
// is negative or if the result does not fit in a Decimal, and a DomainError
// if y is fractional and x < 0.
func Pow(x, y decimal.Decimal) (r decimal.Decimal, err error) {
	defer catch(&err)
	return pow(x, y), nil
}

func pow(x, y decimal.Decimal) decimal.Decimal {
	inverse := y.Sign() < 0
	y = y.Abs()

	var r decimal.Decimal
	switch {
	case y.IsZero():
		r = one
	case y.Equal(one):
		r = x
	default:
		t := y.Truncate()
		if y.Equal(t) {
			r = expBySquaring(x, y)
		} else if x.IsZero() {
			r = decimal.Zero
		} else {
			// x**t × e**(f×ln x) keeps more digits than e**(y×ln x).
			r = expBySquaring(x, t).Mul(exp(y.Sub(t).Mul(ln(x))))
		}
	}

	if inverse {
		if r.IsZero() {
			panic(OverflowError.New("negative power of 0"))
		}
		r = one.Quo(r)
	}
	return r
}

// ExpBySquaring returns x**y by repeated squaring. y must be an integer >= 0,
// otherwise ExpBySquaring returns a DomainError.
func ExpBySquaring(x, y decimal.Decimal) (r decimal.Decimal, err error) {
	defer catch(&err)
	return expBySquaring(x, y), nil
}

// Exp returns e**d.
//
// The integral part of d is evaluated by squaring E and the fractional part
// by its Taylor series. Exp returns an OverflowError if e**d does not fit in
// a Decimal. For negative d, results too small to be represented are 0.
func Exp(d decimal.Decimal) (r decimal.Decimal, err error) {
	defer catch(&err)
	return exp(d), nil
}

func exp(d decimal.Decimal) decimal.Decimal {
	if d.Sign() < 0 {
		var r decimal.Decimal
		if !tryOverflow(func() { r = exp(d.Abs()) }) {
			return decimal.Zero
		}
		return one.Quo(r)
	}

	t := d.Truncate()
	switch {
	case d.IsZero():
		return one
	case d.Equal(one):
		return E
	case d.Cmp(one) > 0 && !d.Equal(t):
		return exp(t).Mul(exp(d.Sub(t)))
	case d.Equal(t):
		return expBySquaring(E, d)
	}

	// 0 < d < 1
	result := one
	next := one
	for i := int64(1); i < maxIter; i++ {
		next = next.Mul(d.Quo(decimal.NewFromInt64(i)))
		if next.IsZero() {
			break
		}
		result = result.Add(next)
	}
	return result
}

// Pow10 returns 10**y. See Pow.
func Pow10(y decimal.Decimal) (decimal.Decimal, error) {
	return Pow(ten, y)
}

// Pow2 returns 2**y. See Pow.
func Pow2(y decimal.Decimal) (decimal.Decimal, error) {
	return Pow(two, y)
}

// Factorial returns n!. It returns a DomainError if n is negative or not an
// integer and an OverflowError if n! does not fit in a Decimal, which is the
// case for any n > 27.
func Factorial(n decimal.Decimal) (r decimal.Decimal, err error) {
	defer catch(&err)
	if n.Sign() < 0 {
		return decimal.Zero, DomainError.New("factorial of negative number %s", n)
	}
	if !n.IsInt() {
		return decimal.Zero, DomainError.New("factorial of non integral number %s", n)
	}
	r = one
	for i := n.Truncate(); i.Cmp(two) >= 0; i = i.Sub(one) {
		r = r.Mul(i)
	}
	return r, nil
}
