// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"math/big"
)

// MaxScale is the largest number of digits after the decimal point.
const MaxScale = 28

// A Decimal represents the value ±coef×10**-scale where coef is an unsigned
// 96 bits integer and 0 <= scale <= MaxScale.
//
// Decimals are values: operations never modify their operands and the zero
// value is 0.
type Decimal struct {
	lo    uint64
	hi    uint32
	scale uint8
	neg   bool
}

// Some useful values.
var (
	Zero     = Decimal{}
	One      = Decimal{lo: 1}
	MaxValue = Decimal{lo: ^uint64(0), hi: ^uint32(0)}
	MinValue = Decimal{lo: ^uint64(0), hi: ^uint32(0), neg: true}
)

// New returns the Decimal coef×10**-scale. It returns an error if scale is
// outside the range [0, MaxScale].
func New(coef int64, scale int) (Decimal, error) {
	if scale < 0 || scale > MaxScale {
		return Decimal{}, Error.New("scale %d out of range [0, %d]", scale, MaxScale)
	}
	d := Decimal{scale: uint8(scale)}
	if coef < 0 {
		d.neg = true
		d.lo = uint64(-coef) // -math.MinInt64 wraps to the correct magnitude
	} else {
		d.lo = uint64(coef)
	}
	return d, nil
}

// MustNew is like New but panics if the scale is out of range.
func MustNew(coef int64, scale int) Decimal {
	d, err := New(coef, scale)
	if err != nil {
		panic(err)
	}
	return d
}

// NewFromInt64 returns the integral Decimal x.
func NewFromInt64(x int64) Decimal {
	return MustNew(x, 0)
}

// NewFromBigInt returns coef×10**-scale, rounded half to even if it holds
// more than MaxScale fractional digits or more digits than fit in the
// coefficient. A negative scale multiplies coef by 10**-scale.
func NewFromBigInt(coef *big.Int, scale int) (Decimal, error) {
	d, ok := round(coef, scale)
	if !ok {
		return Decimal{}, Error.New("%se%d overflows", coef.String(), -scale)
	}
	return d, nil
}

// mag returns the coefficient of x in a new big.Int.
func (x Decimal) mag() *big.Int {
	z := new(big.Int).SetUint64(uint64(x.hi))
	z.Lsh(z, 64)
	return z.Or(z, new(big.Int).SetUint64(x.lo))
}

// signed returns the signed coefficient of x aligned to the given scale,
// which must be >= x.scale.
func (x Decimal) signed(scale int) *big.Int {
	z := x.mag()
	if s := scale - int(x.scale); s > 0 {
		z.Mul(z, pow10(s))
	}
	if x.neg {
		z.Neg(z)
	}
	return z
}

// Coef returns the coefficient of x, that is |x|×10**x.Scale().
func (x Decimal) Coef() *big.Int {
	return x.mag()
}

// Scale returns the number of digits after the decimal point.
func (x Decimal) Scale() int {
	return int(x.scale)
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Decimal) Sign() int {
	switch {
	case x.lo == 0 && x.hi == 0:
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// IsZero reports whether x == 0.
func (x Decimal) IsZero() bool {
	return x.lo == 0 && x.hi == 0
}

// IsInt reports whether x has no fractional part.
func (x Decimal) IsInt() bool {
	if x.scale == 0 || x.IsZero() {
		return true
	}
	var r big.Int
	r.Rem(x.mag(), pow10(int(x.scale)))
	return r.Sign() == 0
}

// Neg returns -x.
func (x Decimal) Neg() Decimal {
	if !x.IsZero() {
		x.neg = !x.neg
	}
	return x
}

// Abs returns |x|.
func (x Decimal) Abs() Decimal {
	x.neg = false
	return x
}

// CmpAbs compares the absolute values of x and y and returns -1 if |x| < |y|,
// 0 if |x| == |y| and +1 if |x| > |y|.
func (x Decimal) CmpAbs(y Decimal) int {
	if x.scale == y.scale {
		switch {
		case x.hi < y.hi:
			return -1
		case x.hi > y.hi:
			return 1
		case x.lo < y.lo:
			return -1
		case x.lo > y.lo:
			return 1
		}
		return 0
	}
	s := int(x.scale)
	if int(y.scale) > s {
		s = int(y.scale)
	}
	return x.Abs().signed(s).Cmp(y.Abs().signed(s))
}

// Cmp compares x and y numerically and returns -1 if x < y, 0 if x == y and
// +1 if x > y. The scale of the operands is irrelevant: 1.0 == 1.
func (x Decimal) Cmp(y Decimal) int {
	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs < ys:
		return -1
	case xs > ys:
		return 1
	case xs == 0:
		return 0
	}
	return xs * x.CmpAbs(y)
}

// Equal reports whether x and y represent the same number.
func (x Decimal) Equal(y Decimal) bool {
	return x.Cmp(y) == 0
}

// Trim returns x with trailing fractional zeros removed. The value is
// unchanged.
func (x Decimal) Trim() Decimal {
	if x.scale == 0 {
		return x
	}
	m := x.mag()
	n := trailingZeroDigits(m, int(x.scale))
	if n == 0 {
		return x
	}
	return newCoef(m.Quo(m, pow10(n)), int(x.scale)-n, x.neg)
}
