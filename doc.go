// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package decimal implements a fixed-precision decimal number type.

A Decimal holds the value ±coef×10**-scale where coef is an unsigned 96 bits
integer and the scale is in the range [0, 28]. This gives 28 to 29
significant decimal digits and a range of roughly ±7.9×10**28 down to 10**-28.

The zero value for a Decimal corresponds to 0. Decimals are values: they can be
copied and compared with Equal or Cmp, and no operation modifies its
operands. Note that == compares representations, not values: 1.0 and 1 are
Equal but not ==.

New values are created with the constructors

	func New(coef int64, scale int) (Decimal, error)
	func NewFromInt64(x int64) Decimal
	func NewFromBigInt(coef *big.Int, scale int) (Decimal, error)
	func NewFromFloat64(f float64) (Decimal, error)
	func Parse(s string) (Decimal, error)

Operations have the form

	func (x Decimal) Unary() Decimal             // z = unary x
	func (x Decimal) Binary(y Decimal) Decimal   // z = x binary y
	func (x Decimal) Pred() P                    // p = pred(x)

# Rounding

The result of an operation is exact whenever it can be represented. When it
cannot, the result is rounded half to even to the largest scale that keeps
the coefficient within 96 bits. For example:

	x := decimal.MustParse("1")
	y := decimal.MustParse("3")
	x.Quo(y) // 0.3333333333333333333333333333

An exact quotient retains the scale difference of its operands: 1.00/1 is
1.00 while 1/4 is 0.25.

# Errors

Operations whose integral result cannot be represented, as well as division
by zero, panic with an error of class ErrOverflow or ErrDivisionByZero. The
package github.com/db47h/decmath/math recovers those panics and returns them
as regular errors; the github.com/db47h/decmath/context package provides a
similar service for chains of operations.
*/
package decimal
