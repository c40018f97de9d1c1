package math

import (
	gomath "math"

	decimal "github.com/db47h/decmath"
)

// Sqrt returns the square root of s.
//
// The result is seeded with the float64 square root of s, then refined by
// Newton's iteration until it stops changing. Sqrt returns a DomainError if
// s < 0.
func Sqrt(s decimal.Decimal) (r decimal.Decimal, err error) {
	defer catch(&err)
	return sqrt(s), nil
}

func sqrt(s decimal.Decimal) decimal.Decimal {
	if s.Sign() < 0 {
		panic(DomainError.New("square root of negative number %s", s))
	}
	// halfS/x converges to 0 for these and the iteration would divide by
	// zero.
	if s.IsZero() || s.Equal(SmallestNonZeroDec) {
		return decimal.Zero
	}

	halfS := s.Quo(two)
	x, err := decimal.NewFromFloat64(gomath.Sqrt(s.Float64()))
	if err != nil || x.IsZero() {
		x = halfS
	}
	lastX := minusOne
	var next decimal.Decimal
	for i := 0; i < maxIter; i++ {
		next = x.Quo(two).Add(halfS.Quo(x))
		// out of precision
		if next.Equal(x) || next.Equal(lastX) {
			break
		}
		lastX, x = x, next
	}
	return next
}
