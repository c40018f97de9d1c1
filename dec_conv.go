// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// maxExp bounds the exponent accepted by Parse. Anything beyond either
// overflows or rounds to zero long before.
const maxExp = 1 << 16

// Parse parses s as a decimal number of the form
//
//	[+-]digits[.digits][(e|E)[+-]digits]
//
// Digits may be separated by single underscores. Fractional digits beyond
// what the result can hold are rounded half to even. Parse returns an error
// if s is malformed or if its integral part does not fit in 96 bits.
func Parse(s string) (Decimal, error) {
	d, err := parse(s)
	if err != nil {
		return Decimal{}, Error.New("cannot parse %q: %v", s, err)
	}
	return d, nil
}

// MustParse is like Parse but panics if s cannot be parsed. It simplifies
// the initialization of package level variables.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func parse(s string) (Decimal, error) {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	// prev encodes the previously seen char: it is one of '_', '0' (a digit),
	// or '.' (anything else). A valid separator '_' may only occur after a
	// digit.
	prev := '.'
	var (
		digits   strings.Builder
		dp       = -1 // position of the decimal point in digits
		count    = 0
		invalSep = false
	)
	for ; i < len(s); i++ {
		ch := s[i]
		switch {
		case '0' <= ch && ch <= '9':
			digits.WriteByte(ch)
			count++
			prev = '0'
			continue
		case ch == '.' && dp < 0:
			if prev == '_' {
				invalSep = true
			}
			dp = count
			prev = '.'
			continue
		case ch == '_':
			if prev != '0' {
				invalSep = true
			}
			prev = '_'
			continue
		}
		break
	}
	if count == 0 {
		return Decimal{}, errNoDigits
	}
	if prev == '_' {
		invalSep = true
	}
	if invalSep {
		return Decimal{}, errInvalSep
	}

	exp := 0
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		e, err := strconv.Atoi(s[i+1:])
		if err != nil {
			if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
				return Decimal{}, errExpRange
			}
			return Decimal{}, err
		}
		if e > maxExp || e < -maxExp {
			return Decimal{}, errExpRange
		}
		exp = e
		i = len(s)
	}
	if i != len(s) {
		return Decimal{}, strconv.ErrSyntax
	}

	scale := -exp
	if dp >= 0 {
		scale += count - dp
	}
	coef, _ := new(big.Int).SetString(digits.String(), 10)
	if neg {
		coef.Neg(coef)
	}
	d, ok := round(coef, scale)
	if !ok {
		return Decimal{}, strconv.ErrRange
	}
	return d, nil
}

// NewFromFloat64 returns the value of f rounded to 15 significant digits. It
// returns an error if f is not finite or its magnitude is too large.
func NewFromFloat64(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, Error.New("cannot convert %v", f)
	}
	d, err := parse(strconv.FormatFloat(f, 'e', 14, 64))
	if err != nil {
		return Decimal{}, Error.New("cannot convert %v: %v", f, err)
	}
	return d.Trim(), nil
}

// Float64 returns the float64 value nearest to x.
func (x Decimal) Float64() float64 {
	f, _ := strconv.ParseFloat(x.String(), 64)
	return f
}

// Int64 returns the integral part of x and reports whether it fits in an
// int64.
func (x Decimal) Int64() (int64, bool) {
	m := x.Truncate().mag()
	if x.neg {
		m.Neg(m)
	}
	if !m.IsInt64() {
		return 0, false
	}
	return m.Int64(), true
}

// String returns x in plain decimal notation with exactly x.Scale()
// fractional digits.
func (x Decimal) String() string {
	return string(x.Append(nil))
}

// Append appends the string form of x to buf and returns the extended
// buffer.
func (x Decimal) Append(buf []byte) []byte {
	var digits []byte
	if x.hi == 0 {
		digits = strconv.AppendUint(make([]byte, 0, coefDigits), x.lo, 10)
	} else {
		digits = x.mag().Append(make([]byte, 0, coefDigits), 10)
	}
	if x.neg {
		buf = append(buf, '-')
	}
	s := int(x.scale)
	if s == 0 {
		return append(buf, digits...)
	}
	if n := len(digits); n <= s {
		buf = append(buf, '0', '.')
		for ; n < s; n++ {
			buf = append(buf, '0')
		}
		return append(buf, digits...)
	}
	buf = append(buf, digits[:len(digits)-s]...)
	buf = append(buf, '.')
	return append(buf, digits[len(digits)-s:]...)
}
