// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package context_test

import (
	"testing"

	decimal "github.com/db47h/decmath"
	"github.com/db47h/decmath/context"
	"github.com/db47h/decmath/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_arith(t *testing.T) {
	ctx := context.New()
	x, y := ctx.Parse("1.5"), ctx.Parse("-0.25")
	assert.Equal(t, "1.25", ctx.Add(x, y).String())
	assert.Equal(t, "1.75", ctx.Sub(x, y).String())
	assert.Equal(t, "-0.375", ctx.Mul(x, y).String())
	assert.Equal(t, "-6", ctx.Quo(x, y).String())
	assert.Equal(t, "-1.5", ctx.Neg(x).String())
	assert.Equal(t, "0.25", ctx.Abs(y).String())
	require.NoError(t, ctx.Err())
}

func TestContext_sticky(t *testing.T) {
	ctx := context.New()
	r := ctx.Quo(decimal.One, decimal.Zero)
	assert.True(t, r.IsZero())

	// no-ops until Err is called
	assert.True(t, ctx.Add(decimal.One, decimal.One).IsZero())
	assert.True(t, ctx.Sqrt(decimal.NewFromInt64(4)).IsZero())
	assert.True(t, ctx.Parse("12").IsZero())

	err := ctx.Err()
	require.Error(t, err)
	assert.True(t, math.UndefinedError.Has(err))
	require.NoError(t, ctx.Err())

	assert.Equal(t, "2", ctx.Add(decimal.One, decimal.One).String())
}

func TestContext_overflow(t *testing.T) {
	ctx := context.New()
	ctx.Add(decimal.MaxValue, decimal.One)
	err := ctx.Err()
	assert.True(t, math.OverflowError.Has(err), "%v", err)
	assert.True(t, decimal.ErrOverflow.Has(err), "%v", err)

	ctx.Mul(decimal.MaxValue, decimal.NewFromInt64(2))
	assert.True(t, math.OverflowError.Has(ctx.Err()))
}

func TestContext_parse(t *testing.T) {
	ctx := context.New()
	ctx.Parse("1.2.3")
	err := ctx.Err()
	require.Error(t, err)
	assert.True(t, decimal.Error.Has(err))
}

func TestContext_kernel(t *testing.T) {
	ctx := context.New()
	two := decimal.NewFromInt64(2)

	assert.Equal(t, "3.0", ctx.Sqrt(decimal.NewFromInt64(9)).String())
	assert.True(t, ctx.Pow(two, decimal.NewFromInt64(10)).Equal(decimal.NewFromInt64(1024)))
	assert.True(t, ctx.Exp(decimal.Zero).Equal(decimal.One))
	assert.True(t, ctx.Ln(decimal.One).IsZero())
	assert.True(t, ctx.Log(decimal.NewFromInt64(8), two).Sub(decimal.NewFromInt64(3)).CmpAbs(decimal.MustParse("1e-27")) <= 0)
	assert.True(t, ctx.Sin(math.PiHalf).Equal(decimal.One))
	assert.True(t, ctx.Cos(math.Pi).Equal(decimal.NewFromInt64(-1)))
	assert.True(t, ctx.Tan(decimal.Zero).IsZero())
	assert.True(t, ctx.ASin(decimal.One).Equal(math.PiHalf))
	assert.True(t, ctx.ACos(decimal.One).IsZero())
	assert.True(t, ctx.ATan(decimal.One).Equal(math.PiQuarter))
	assert.True(t, ctx.ATan2(decimal.One, decimal.Zero).Equal(math.PiHalf))
	assert.Equal(t, "2.0", ctx.Remainder(decimal.NewFromInt64(12), decimal.MustParse("2.5")).String())
	require.NoError(t, ctx.Err())

	ctx.Sqrt(decimal.NewFromInt64(-1))
	assert.True(t, math.DomainError.Has(ctx.Err()))
	ctx.Log(two, decimal.One)
	assert.True(t, math.UndefinedBaseError.Has(ctx.Err()))
	ctx.ASin(two)
	assert.True(t, math.RangeError.Has(ctx.Err()))
	ctx.Tan(math.PiHalf)
	assert.True(t, math.UndefinedError.Has(ctx.Err()))
}
