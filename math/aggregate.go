package math

import (
	decimal "github.com/db47h/decmath"
)

// GCF returns the greatest common factor of a, b and values, that is the
// largest d such that each argument is an integral multiple of d. It works
// on fractional values too: GCF(1.2, 0.42) is 0.06. The result is
// non-negative.
func GCF(a, b decimal.Decimal, values ...decimal.Decimal) (r decimal.Decimal, err error) {
	defer catch(&err)
	r = gcf(a, b)
	for _, v := range values {
		r = gcf(r, v)
	}
	return r, nil
}

// Euclid's algorithm
func gcf(a, b decimal.Decimal) decimal.Decimal {
	for !b.IsZero() {
		a, b = b, a.Rem(b)
	}
	return a.Abs()
}

// AGMean returns the arithmetic-geometric mean of x and y.
//
// AGMean returns 0 if either argument is 0 and a DomainError if x and y have
// different signs, in which case the mean is complex. The mean of two
// negative numbers is the opposite of the mean of their absolute values.
func AGMean(x, y decimal.Decimal) (r decimal.Decimal, err error) {
	defer catch(&err)
	if x.IsZero() || y.IsZero() {
		return decimal.Zero, nil
	}
	sign := x.Sign()
	if sign != y.Sign() {
		return decimal.Zero, DomainError.New("arithmetic-geometric mean of %s and %s is complex", x, y)
	}
	if sign < 0 {
		x, y = x.Neg(), y.Neg()
	}

	var a decimal.Decimal
	for i := 0; i < maxIter; i++ {
		a = x.Quo(two).Add(y.Quo(two))
		g := sqrt(x.Mul(y))
		if a.Equal(g) || (g.Equal(y) && a.Equal(x)) {
			break
		}
		x, y = a, g
	}
	if sign < 0 {
		a = a.Neg()
	}
	return a, nil
}

// Average returns the arithmetic mean of values. If the sum of values
// overflows, Average falls back to the less accurate sum of v/len(values).
// It returns a RangeError if values is empty.
func Average(values ...decimal.Decimal) (r decimal.Decimal, err error) {
	defer catch(&err)
	if len(values) == 0 {
		return decimal.Zero, RangeError.New("average of empty list")
	}
	n := decimal.NewFromInt64(int64(len(values)))
	if tryOverflow(func() {
		sum := decimal.Zero
		for _, v := range values {
			sum = sum.Add(v)
		}
		r = sum.Quo(n)
	}) {
		return r, nil
	}
	r = decimal.Zero
	for _, v := range values {
		r = r.Add(v.Quo(n))
	}
	return r, nil
}

// Max returns the largest of values. It returns a RangeError if values is
// empty.
func Max(values ...decimal.Decimal) (decimal.Decimal, error) {
	return pick(values, 1)
}

// Min returns the smallest of values. It returns a RangeError if values is
// empty.
func Min(values ...decimal.Decimal) (decimal.Decimal, error) {
	return pick(values, -1)
}

func pick(values []decimal.Decimal, c int) (decimal.Decimal, error) {
	if len(values) == 0 {
		return decimal.Zero, RangeError.New("empty list")
	}
	r := values[0]
	for _, v := range values[1:] {
		if v.Cmp(r) == c {
			r = v
		}
	}
	return r, nil
}
