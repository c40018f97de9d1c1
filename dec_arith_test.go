// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"math/big"
	"math/rand"
	"strconv"
	"testing"
)

var rnd = rand.New(rand.NewSource(0xdec))

func TestDecDigits64(t *testing.T) {
	for i := 0; i < 10000; i++ {
		n := rnd.Uint64() >> uint(rnd.Intn(64))
		d := uint(0)
		for m := n; m != 0; m /= 10 {
			d++
		}
		if dd := decDigits64(n); dd != d {
			t.Fatalf("decDigits64(%d) = %d, expected %d", n, dd, d)
		}
	}
}

func TestBigDigits(t *testing.T) {
	for n := 1; n < len(bigPow10tab); n++ {
		p := pow10(n)
		if d := bigDigits(p); d != n+1 {
			t.Fatalf("bigDigits(10**%d) = %d", n, d)
		}
		m := new(big.Int).Sub(p, bigOne)
		if d := bigDigits(m); d != n {
			t.Fatalf("bigDigits(10**%d-1) = %d", n, d)
		}
	}
}

func TestShrHalfEven(t *testing.T) {
	td := []struct {
		x int64
		n int
		z int64
	}{
		{24, 1, 2},
		{25, 1, 2},
		{26, 1, 3},
		{35, 1, 4},
		{1250, 2, 12},
		{1251, 2, 13},
		{1350, 2, 14},
		{5, 1, 0},
		{15, 0, 15},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if z := shrHalfEven(big.NewInt(d.x), d.n); z.Int64() != d.z {
				t.Fatalf("shrHalfEven(%d, %d) = %s, want %d", d.x, d.n, z, d.z)
			}
		})
	}
}

func TestTrailingZeroDigits(t *testing.T) {
	td := []struct {
		x   int64
		max int
		n   int
	}{
		{1000, 5, 3},
		{1000, 2, 2},
		{0, 4, 4},
		{7, 3, 0},
		{120, 28, 1},
	}
	for _, d := range td {
		if n := trailingZeroDigits(big.NewInt(d.x), d.max); n != d.n {
			t.Fatalf("trailingZeroDigits(%d, %d) = %d, want %d", d.x, d.max, n, d.n)
		}
	}
}

func TestRound(t *testing.T) {
	td := []struct {
		x     string
		scale int
		s     string
		ok    bool
	}{
		{"-1", 30, "0.0000000000000000000000000000", true},
		{"15", 30, "0.0000000000000000000000000000", true},
		{"16", 30, "0.0000000000000000000000000000", true},
		{"150", 30, "0.0000000000000000000000000002", true},
		{"-250", 30, "-0.0000000000000000000000000002", true},
		{"12", -2, "1200", true},
		{"79228162514264337593543950335", 0, "79228162514264337593543950335", true},
		{"79228162514264337593543950336", 0, "", false},
		{"79228162514264337593543950336", 1, "7922816251426433759354395034", true},
	}
	for _, d := range td {
		x, _ := new(big.Int).SetString(d.x, 10)
		z, ok := round(x, d.scale)
		if ok != d.ok || (ok && z.String() != d.s) {
			t.Fatalf("round(%s, %d) = %s, %v; want %s, %v", d.x, d.scale, z, ok, d.s, d.ok)
		}
		if z.IsZero() && z.neg {
			t.Fatalf("round(%s, %d): negative zero", d.x, d.scale)
		}
	}
}
