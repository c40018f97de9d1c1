package math

import (
	decimal "github.com/db47h/decmath"
)

// constants
var (
	one         = decimal.One
	two         = decimal.NewFromInt64(2)
	four        = decimal.NewFromInt64(4)
	ten         = decimal.NewFromInt64(10)
	half        = decimal.MustNew(5, 1)
	tenth       = decimal.MustNew(1, 1)
	minusOne    = decimal.NewFromInt64(-1)
	n180        = decimal.NewFromInt64(180)
	n360        = decimal.NewFromInt64(360)
	negSmallest = SmallestNonZeroDec.Neg()

	piThreeHalves = Pi.Add(PiHalf)
	degPerRad     = n180.Quo(Pi)
)

// maxIter caps every series and Newton loop. Convergence at 28 digits takes
// far fewer steps; the cap only guards against cycling between two values.
const maxIter = 1 << 12

// expBySquaring returns x**y for an integral y >= 0.
func expBySquaring(x, y decimal.Decimal) decimal.Decimal {
	if y.Sign() < 0 {
		panic(DomainError.New("negative exponent %s", y))
	}
	if !y.IsInt() {
		panic(DomainError.New("non integral exponent %s", y))
	}
	if y.IsZero() {
		return one
	}
	if y.Equal(one) {
		return x
	}

	result := one
	mult := x
	y = y.Truncate()
	for {
		if y.Rem(two).Equal(one) {
			result = result.Mul(mult)
			y = y.Sub(one)
			if y.IsZero() {
				break
			}
		}
		mult = mult.Mul(mult)
		y = y.Quo(two)
	}
	return result
}

// isOverflow reports whether r, a recovered panic value, is a decimal
// overflow.
func isOverflow(r interface{}) bool {
	err, ok := r.(error)
	return ok && (decimal.ErrOverflow.Has(err) || OverflowError.Has(err))
}

// tryOverflow calls f and reports false if it panicked with an overflow.
// Any other panic is propagated.
func tryOverflow(f func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if !isOverflow(r) {
				panic(r)
			}
			ok = false
		}
	}()
	f()
	return true
}
