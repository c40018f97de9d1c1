// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides error-accumulating contexts for Decimal
// computations.
//
// Methods of a Context mirror Decimal arithmetic and the functions of the
// math package, without returning errors:
//
//	func (c *Context) UnaryOp(x decimal.Decimal) decimal.Decimal
//	func (c *Context) BinaryOp(x, y decimal.Decimal) decimal.Decimal
//
// The first error encountered, either returned by a math function or raised
// by Decimal arithmetic, is recorded in the context. Further operations with
// the context will be no-ops returning 0 until (*Context).Err is called to
// check for errors. This allows evaluating long expressions and checking for
// errors only once:
//
//	ctx := context.New()
//	d := ctx.Sub(ctx.Mul(b, b), ctx.Mul(ctx.Mul(four, a), c))
//	r := ctx.Sqrt(d)
//	if err := ctx.Err(); err != nil {
//		...
//	}
//
// Decimal overflows are reported as math.OverflowError and divisions by zero
// as math.UndefinedError.
//
// A Context is not safe for concurrent use.
package context

import (
	decimal "github.com/db47h/decmath"
	"github.com/db47h/decmath/math"
)

// A Context records the first error of a sequence of operations.
type Context struct {
	err error
}

// New returns a new context.
func New() *Context {
	return new(Context)
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// catch recovers arithmetic panics and records them as c's error. It must be
// called directly by a deferred statement.
func (c *Context) catch(r *decimal.Decimal) {
	e := recover()
	if e == nil {
		return
	}
	err, ok := e.(error)
	if !ok {
		panic(e)
	}
	switch {
	case decimal.ErrOverflow.Has(err):
		c.err = math.OverflowError.Wrap(err)
	case decimal.ErrDivisionByZero.Has(err):
		c.err = math.UndefinedError.Wrap(err)
	default:
		panic(e)
	}
	*r = decimal.Zero
}

// Parse returns the value of s. See decimal.Parse.
func (c *Context) Parse(s string) decimal.Decimal {
	if c.err != nil {
		return decimal.Zero
	}
	d, err := decimal.Parse(s)
	if err != nil {
		c.err = err
		return decimal.Zero
	}
	return d
}

// Add returns the sum x+y.
func (c *Context) Add(x, y decimal.Decimal) (r decimal.Decimal) {
	if c.err != nil {
		return decimal.Zero
	}
	defer c.catch(&r)
	return x.Add(y)
}

// Sub returns the difference x-y.
func (c *Context) Sub(x, y decimal.Decimal) (r decimal.Decimal) {
	if c.err != nil {
		return decimal.Zero
	}
	defer c.catch(&r)
	return x.Sub(y)
}

// Mul returns the product x×y.
func (c *Context) Mul(x, y decimal.Decimal) (r decimal.Decimal) {
	if c.err != nil {
		return decimal.Zero
	}
	defer c.catch(&r)
	return x.Mul(y)
}

// Quo returns the quotient x/y.
func (c *Context) Quo(x, y decimal.Decimal) (r decimal.Decimal) {
	if c.err != nil {
		return decimal.Zero
	}
	defer c.catch(&r)
	return x.Quo(y)
}

// Neg returns -x.
func (c *Context) Neg(x decimal.Decimal) decimal.Decimal {
	if c.err != nil {
		return decimal.Zero
	}
	return x.Neg()
}

// Abs returns |x|.
func (c *Context) Abs(x decimal.Decimal) decimal.Decimal {
	if c.err != nil {
		return decimal.Zero
	}
	return x.Abs()
}

func (c *Context) call1(f func(decimal.Decimal) (decimal.Decimal, error), x decimal.Decimal) decimal.Decimal {
	if c.err != nil {
		return decimal.Zero
	}
	r, err := f(x)
	if err != nil {
		c.err = err
		return decimal.Zero
	}
	return r
}

func (c *Context) call2(f func(x, y decimal.Decimal) (decimal.Decimal, error), x, y decimal.Decimal) decimal.Decimal {
	if c.err != nil {
		return decimal.Zero
	}
	r, err := f(x, y)
	if err != nil {
		c.err = err
		return decimal.Zero
	}
	return r
}

// Sqrt returns the square root of x. See math.Sqrt.
func (c *Context) Sqrt(x decimal.Decimal) decimal.Decimal { return c.call1(math.Sqrt, x) }

// Pow returns x**y. See math.Pow.
func (c *Context) Pow(x, y decimal.Decimal) decimal.Decimal { return c.call2(math.Pow, x, y) }

// Exp returns e**x. See math.Exp.
func (c *Context) Exp(x decimal.Decimal) decimal.Decimal { return c.call1(math.Exp, x) }

// Ln returns the natural logarithm of x. See math.Ln.
func (c *Context) Ln(x decimal.Decimal) decimal.Decimal { return c.call1(math.Ln, x) }

// Log returns the logarithm of x in base b. See math.Log.
func (c *Context) Log(x, b decimal.Decimal) decimal.Decimal { return c.call2(math.Log, x, b) }

// Sin returns the sine of x. See math.Sin.
func (c *Context) Sin(x decimal.Decimal) decimal.Decimal { return c.call1(math.Sin, x) }

// Cos returns the cosine of x. See math.Cos.
func (c *Context) Cos(x decimal.Decimal) decimal.Decimal { return c.call1(math.Cos, x) }

// Tan returns the tangent of x. See math.Tan.
func (c *Context) Tan(x decimal.Decimal) decimal.Decimal { return c.call1(math.Tan, x) }

// ASin returns the arcsine of x. See math.ASin.
func (c *Context) ASin(x decimal.Decimal) decimal.Decimal { return c.call1(math.ASin, x) }

// ACos returns the arccosine of x. See math.ACos.
func (c *Context) ACos(x decimal.Decimal) decimal.Decimal { return c.call1(math.ACos, x) }

// ATan returns the arctangent of x. See math.ATan.
func (c *Context) ATan(x decimal.Decimal) decimal.Decimal { return c.call1(math.ATan, x) }

// ATan2 returns the arctangent of y/x. See math.ATan2.
func (c *Context) ATan2(y, x decimal.Decimal) decimal.Decimal { return c.call2(math.ATan2, y, x) }

// Remainder returns x - y×trunc(x/y). See math.Remainder.
func (c *Context) Remainder(x, y decimal.Decimal) decimal.Decimal {
	return c.call2(math.Remainder, x, y)
}
