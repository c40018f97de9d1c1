// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"math/big"
	"math/bits"
)

// Coefficient helpers. A coefficient is an unsigned integer of at most 96 bits
// held in a big.Int while an operation is in progress.

const (
	// coefBits is the width of a coefficient.
	coefBits = 96
	// coefDigits is the number of decimal digits of the largest coefficient.
	coefDigits = 29
)

var pow10tab = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000, 10000000000000000000,
}

var pow2digitsTab = [...]uint{
	1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5,
	5, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10,
	10, 10, 11, 11, 11, 12, 12, 12, 13, 13, 13, 13, 14, 14, 14, 15,
	15, 15, 16, 16, 16, 16, 17, 17, 17, 18, 18, 18, 19, 19, 19, 20, 20,
}

// bigPow10tab holds 10**n for 0 <= n < len(bigPow10tab). It covers every
// power needed to align two scales or to widen a dividend to 28 digits.
var bigPow10tab = func() []*big.Int {
	t := make([]*big.Int, 2*coefDigits+MaxScale+1)
	ten := big.NewInt(10)
	t[0] = big.NewInt(1)
	for i := 1; i < len(t); i++ {
		t[i] = new(big.Int).Mul(t[i-1], ten)
	}
	return t
}()

var (
	coefLimit = new(big.Int).Lsh(big.NewInt(1), coefBits) // 2**96
	mask64    = new(big.Int).SetUint64(^uint64(0))
	bigOne    = big.NewInt(1)
	bigTen    = big.NewInt(10)
)

// pow10 returns 10**n. The result must not be modified.
func pow10(n int) *big.Int {
	if n < len(bigPow10tab) {
		return bigPow10tab[n]
	}
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// decDigits64 returns n such that 10**(n-1) <= x < 10**n.
// Returns 0 for x == 0.
func decDigits64(x uint64) (n uint) {
	if x == 0 {
		return 0
	}
	n = pow2digitsTab[bits.Len64(x)]
	if x < pow10tab[n-1] {
		n--
	}
	return n
}

// bigDigits returns the number of decimal digits of |x|.
func bigDigits(x *big.Int) int {
	if x.IsUint64() {
		return int(decDigits64(x.Uint64()))
	}
	// x < 2**l so x has at most floor(l*log10(2))+1 digits, and at least one
	// less than that.
	l := x.BitLen()
	n := l*30103/100000 + 1
	var a big.Int
	if a.Abs(x).Cmp(pow10(n-1)) < 0 {
		n--
	}
	return n
}

// fits reports whether the unsigned value x is a valid coefficient.
func fits(x *big.Int) bool {
	return x.BitLen() <= coefBits
}

// shrHalfEven returns x/10**n rounded half to even. x must be non-negative.
func shrHalfEven(x *big.Int, n int) *big.Int {
	if n <= 0 {
		return new(big.Int).Set(x)
	}
	d := pow10(n)
	q, r := new(big.Int).QuoRem(x, d, new(big.Int))
	if r.Sign() == 0 {
		return q
	}
	switch r.Lsh(r, 1).Cmp(d) {
	case 1:
		q.Add(q, bigOne)
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, bigOne)
		}
	}
	return q
}

// trailingZeroDigits returns the number of trailing decimal zeros of x, but
// no more than max.
func trailingZeroDigits(x *big.Int, max int) int {
	if x.Sign() == 0 {
		return max
	}
	var q, r big.Int
	t := new(big.Int).Set(x)
	n := 0
	for n < max {
		q.QuoRem(t, bigTen, &r)
		if r.Sign() != 0 {
			break
		}
		t.Set(&q)
		n++
	}
	return n
}

// newCoef packs a non-negative coefficient that satisfies fits(x).
func newCoef(x *big.Int, scale int, neg bool) Decimal {
	var lo big.Int
	lo.And(x, mask64)
	var hi big.Int
	hi.Rsh(x, 64)
	d := Decimal{lo: lo.Uint64(), hi: uint32(hi.Uint64()), scale: uint8(scale)}
	d.neg = neg && (d.lo != 0 || d.hi != 0)
	return d
}

// round packs the signed coefficient x at the given scale, rounding half to
// even to the largest scale <= MaxScale that holds the coefficient in 96
// bits. It reports false if the integral part of the value does not fit.
func round(x *big.Int, scale int) (Decimal, bool) {
	neg := x.Sign() < 0
	m := new(big.Int).Abs(x)
	if scale < 0 {
		m.Mul(m, pow10(-scale))
		scale = 0
	}
	k := 0
	if scale > MaxScale {
		k = scale - MaxScale
	}
	if !fits(m) {
		if e := bigDigits(m) - coefDigits; e > k {
			k = e
		}
	}
	for ; k <= scale; k++ {
		q := shrHalfEven(m, k)
		if fits(q) {
			return newCoef(q, scale-k, neg), true
		}
	}
	return Decimal{}, false
}

// mustRound is like round but panics with ErrOverflow if the value cannot be
// represented.
func mustRound(x *big.Int, scale int, op string) Decimal {
	d, ok := round(x, scale)
	if !ok {
		panic(ErrOverflow.New("%s", op))
	}
	return d
}
