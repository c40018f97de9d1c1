package math

import (
	"sort"

	decimal "github.com/db47h/decmath"
)

// Ln returns the natural logarithm of d.
//
// d is first scaled by a power of ten into (0.1, 1]. The logarithm of the
// scaled value is computed with the series ln x = 2×atanh((x-1)/(x+1)), which
// converges on the whole interval, and the scale is added back as multiples
// of Ln10.
//
// Ln returns a DomainError if d < 0 and an OverflowError if d == 0, since
// ln 0 = -∞ cannot be represented.
func Ln(d decimal.Decimal) (r decimal.Decimal, err error) {
	defer catch(&err)
	return ln(d), nil
}

func ln(d decimal.Decimal) decimal.Decimal {
	switch d.Sign() {
	case -1:
		panic(DomainError.New("logarithm of negative number %s", d))
	case 0:
		panic(OverflowError.New("logarithm of 0"))
	}
	switch {
	case d.Equal(one):
		return decimal.Zero
	case d.Equal(two):
		return Ln2
	case d.Equal(ten):
		return Ln10
	case d.Equal(E):
		return one
	}

	x := d
	p := int64(0)
	for x.Cmp(one) > 0 {
		x = x.Quo(ten)
		p++
	}
	for x.Cmp(tenth) <= 0 {
		x = x.Mul(ten)
		p--
	}

	y := x.Sub(one).Quo(x.Add(one))
	y2 := y.Mul(y)
	pw := y.Mul(two) // 2×y**(2i+1)
	sum := decimal.Zero
	for i := int64(0); i < maxIter; i++ {
		term := pw.Quo(decimal.NewFromInt64(2*i + 1))
		if term.IsZero() {
			break
		}
		sum = sum.Add(term)
		pw = pw.Mul(y2)
	}
	if p == 0 {
		return sum
	}
	return sum.Add(decimal.NewFromInt64(p).Mul(Ln10))
}

// Log returns the logarithm of d in base b.
//
// Log(1, b) is 0 for any b. Otherwise Log returns an UndefinedBaseError if
// b == 1, a DomainError if b <= 0 or d < 0, and an OverflowError if d == 0.
func Log(d, b decimal.Decimal) (r decimal.Decimal, err error) {
	defer catch(&err)
	return logb(d, b), nil
}

func logb(d, b decimal.Decimal) decimal.Decimal {
	if d.Equal(one) {
		return decimal.Zero
	}
	if b.Equal(one) {
		panic(UndefinedBaseError.New("logarithm in base 1"))
	}
	if b.Sign() <= 0 {
		panic(DomainError.New("logarithm in base %s", b))
	}
	return ln(d).Quo(ln(b))
}

// Log10 returns the decimal logarithm of d. The result is exact for integral
// powers of ten. Errors are as for Ln.
func Log10(d decimal.Decimal) (r decimal.Decimal, err error) {
	defer catch(&err)
	if n, ok := exactLog(d, powersOf10[:]); ok {
		return n, nil
	}
	if d.Sign() > 0 && d.Cmp(one) < 0 {
		// invPowersOf10 is in descending order.
		i := sort.Search(len(invPowersOf10), func(i int) bool { return invPowersOf10[i].Cmp(d) <= 0 })
		if i < len(invPowersOf10) && invPowersOf10[i].Equal(d) {
			return decimal.NewFromInt64(-int64(i)), nil
		}
	}
	return ln(d).Quo(Ln10), nil
}

// Log2 returns the binary logarithm of d. The result is exact for positive
// integral powers of two. Errors are as for Ln.
func Log2(d decimal.Decimal) (r decimal.Decimal, err error) {
	defer catch(&err)
	if n, ok := exactLog(d, powersOf2); ok {
		return n, nil
	}
	return ln(d).Quo(Ln2), nil
}

// exactLog looks up d in the ascending table pows of successive powers of
// some base and returns its index.
func exactLog(d decimal.Decimal, pows []decimal.Decimal) (decimal.Decimal, bool) {
	if d.Cmp(one) < 0 {
		return decimal.Zero, false
	}
	i := sort.Search(len(pows), func(i int) bool { return pows[i].Cmp(d) >= 0 })
	if i < len(pows) && pows[i].Equal(d) {
		return decimal.NewFromInt64(int64(i)), true
	}
	return decimal.Zero, false
}
