// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"math/big"
)

// Arithmetic operations return the exact result whenever it can be
// represented. Otherwise the result is rounded half to even to the largest
// scale that holds the coefficient in 96 bits.
//
// Operations panic with an ErrOverflow error if the integral part of the
// result cannot be represented, and division by zero panics with an
// ErrDivisionByZero error.

func maxScale(x, y Decimal) int {
	if x.scale > y.scale {
		return int(x.scale)
	}
	return int(y.scale)
}

// Add returns the sum x+y.
func (x Decimal) Add(y Decimal) Decimal {
	s := maxScale(x, y)
	z := x.signed(s)
	return mustRound(z.Add(z, y.signed(s)), s, "addition")
}

// Sub returns the difference x-y.
func (x Decimal) Sub(y Decimal) Decimal {
	s := maxScale(x, y)
	z := x.signed(s)
	return mustRound(z.Sub(z, y.signed(s)), s, "subtraction")
}

// Mul returns the product x×y.
func (x Decimal) Mul(y Decimal) Decimal {
	z := x.signed(int(x.scale))
	return mustRound(z.Mul(z, y.signed(int(y.scale))), int(x.scale)+int(y.scale), "multiplication")
}

// Quo returns the quotient x/y.
//
// An exact quotient keeps the scale x.Scale()-y.Scale() when it is
// non-negative and needs no more digits; other quotients are computed to as
// many digits as the result can hold.
func (x Decimal) Quo(y Decimal) Decimal {
	if y.IsZero() {
		panic(ErrDivisionByZero.New("%s / %s", x, y))
	}
	pref := int(x.scale) - int(y.scale)
	if pref < 0 {
		pref = 0
	}
	neg := x.neg != y.neg
	if x.IsZero() {
		return Decimal{scale: uint8(pref)}
	}

	n, m := x.mag(), y.mag()
	num, den, q, r := new(big.Int), new(big.Int), new(big.Int), new(big.Int)
	for t := MaxScale; ; {
		// q = n×10**(t-xs+ys) / m
		if e := t - int(x.scale) + int(y.scale); e >= 0 {
			num.Mul(n, pow10(e))
			den.Set(m)
		} else {
			num.Set(n)
			den.Mul(m, pow10(-e))
		}
		q.QuoRem(num, den, r)

		if !fits(q) {
			e := bigDigits(q) - coefDigits
			if e < 1 {
				e = 1
			}
			if t == 0 {
				panic(ErrOverflow.New("division"))
			}
			if t -= e; t < 0 {
				t = 0
			}
			continue
		}

		if r.Sign() == 0 {
			if z := t - pref; z > 0 {
				if k := trailingZeroDigits(q, z); k > 0 {
					q.Quo(q, pow10(k))
					t -= k
				}
			}
			return newCoef(q, t, neg)
		}

		up := false
		switch r.Lsh(r, 1).Cmp(den) {
		case 1:
			up = true
		case 0:
			up = q.Bit(0) == 1
		}
		if up {
			q.Add(q, bigOne)
			if !fits(q) {
				if t == 0 {
					panic(ErrOverflow.New("division"))
				}
				t--
				continue
			}
		}
		return newCoef(q, t, neg)
	}
}

// Rem returns the remainder x - y×trunc(x/y). The result is exact and has the
// sign of x.
func (x Decimal) Rem(y Decimal) Decimal {
	if y.IsZero() {
		panic(ErrDivisionByZero.New("%s %% %s", x, y))
	}
	s := maxScale(x, y)
	z := x.signed(s)
	return mustRound(z.Rem(z, y.signed(s)), s, "remainder")
}

// Truncate returns the integral part of x.
func (x Decimal) Truncate() Decimal {
	if x.scale == 0 {
		return x
	}
	m := x.mag()
	return newCoef(m.Quo(m, pow10(int(x.scale))), 0, x.neg)
}

// Floor returns the greatest integer value less than or equal to x.
func (x Decimal) Floor() Decimal {
	return x.toInt(x.neg)
}

// Ceil returns the least integer value greater than or equal to x.
func (x Decimal) Ceil() Decimal {
	return x.toInt(!x.neg)
}

// toInt returns the integral part of x, incremented in magnitude if x has a
// fractional part and away is set.
func (x Decimal) toInt(away bool) Decimal {
	if x.scale == 0 {
		return x
	}
	q, r := new(big.Int).QuoRem(x.mag(), pow10(int(x.scale)), new(big.Int))
	if away && r.Sign() != 0 {
		q.Add(q, bigOne)
	}
	return newCoef(q, 0, x.neg)
}

// Round returns x rounded half to even to the given number of fractional
// digits. Negative values of places are treated as 0. If x already has no
// more than places fractional digits it is returned unchanged.
func (x Decimal) Round(places int) Decimal {
	if places < 0 {
		places = 0
	}
	if places >= int(x.scale) {
		return x
	}
	return newCoef(shrHalfEven(x.mag(), int(x.scale)-places), places, x.neg)
}
