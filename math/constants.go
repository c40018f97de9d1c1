package math

import (
	decimal "github.com/db47h/decmath"
)

// Mathematical constants, rounded to the full precision of a Decimal.
var (
	Pi        = decimal.MustParse("3.1415926535897932384626433833") // 180°
	PiHalf    = decimal.MustParse("1.5707963267948966192313216916") // 90°
	PiQuarter = decimal.MustParse("0.7853981633974483096156608458") // 45°
	PiTwelfth = decimal.MustParse("0.2617993877991494365385536153") // 15°
	TwoPi     = decimal.MustParse("6.2831853071795864769252867666") // 360°

	E    = decimal.MustParse("2.7182818284590452353602874714")
	Ln10 = decimal.MustParse("2.3025850929940456840179914547")
	Ln2  = decimal.MustParse("0.6931471805599453094172321215")

	// SmallestNonZeroDec is the smallest positive Decimal, 1e-28.
	SmallestNonZeroDec = decimal.MustNew(1, decimal.MaxScale)
)

// powersOf10[i] = 10**i and invPowersOf10[i] = 10**-i for 0 <= i <= 28.
var powersOf10, invPowersOf10 = func() (p, q [decimal.MaxScale + 1]decimal.Decimal) {
	p[0] = decimal.One
	for i := 0; i <= decimal.MaxScale; i++ {
		if i > 0 {
			p[i] = p[i-1].Mul(ten)
		}
		q[i] = decimal.MustNew(1, i)
	}
	return p, q
}()

// powersOf2[i] = 2**i for every power of two that fits in a Decimal.
var powersOf2 = func() []decimal.Decimal {
	p := []decimal.Decimal{decimal.One}
	for i := 1; i < 96; i++ {
		p = append(p, p[i-1].Mul(two))
	}
	return p
}()

// Pow10Table returns 10**n for 0 <= n <= 28 from a precomputed table. It
// returns a RangeError if n is out of range.
func Pow10Table(n int) (decimal.Decimal, error) {
	if n < 0 || n >= len(powersOf10) {
		return decimal.Zero, RangeError.New("power of ten %d out of [0, %d]", n, decimal.MaxScale)
	}
	return powersOf10[n], nil
}
