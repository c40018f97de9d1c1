// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"math"
	"strconv"
	"testing"
)

func TestParse(t *testing.T) {
	td := []struct {
		s     string
		out   string
		scale int
	}{
		{"0", "0", 0},
		{"-0.0", "0.0", 1},
		{"+12.50", "12.50", 2},
		{".5", "0.5", 1},
		{"5.", "5", 0},
		{"1_000.000_1", "1000.0001", 4},
		{"1.5e3", "1500", 0},
		{"15E-1", "1.5", 1},
		{"1e-30", "0.0000000000000000000000000000", 28},
		{"1.23456789012345678901234567890", "1.2345678901234567890123456789", 28},
		{"0.00000000000000000000000000005", "0.0000000000000000000000000000", 28},
		{"0.00000000000000000000000000015", "0.0000000000000000000000000002", 28},
		{"79228162514264337593543950334.5", "79228162514264337593543950334", 0},
		{"7922816251426433759354395033.55", "7922816251426433759354395034", 0},
	}
	for _, d := range td {
		t.Run(d.s, func(t *testing.T) {
			x, err := Parse(d.s)
			if err != nil {
				t.Fatal(err)
			}
			if s := x.String(); s != d.out || x.Scale() != d.scale {
				t.Fatalf("Parse(%q) = %s (scale %d), want %s (scale %d)", d.s, s, x.Scale(), d.out, d.scale)
			}
		})
	}
}

func TestParse_errors(t *testing.T) {
	for _, s := range []string{
		"",
		"-",
		".",
		"1.2.3",
		"_1",
		"1_",
		"1__0",
		"1_.5",
		"1._5",
		"1e",
		"1e+",
		"1e99999999",
		"12a",
		"0x10",
		"79228162514264337593543950335.5",
		"1e29",
	} {
		if x, err := Parse(s); err == nil {
			t.Fatalf("Parse(%q) = %s, expected error", s, x)
		} else if !Error.Has(err) {
			t.Fatalf("Parse(%q): unexpected error class: %v", s, err)
		}
	}
}

func TestMustParse(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParse did not panic")
		}
	}()
	MustParse("bad")
}

func TestNewFromFloat64(t *testing.T) {
	td := []struct {
		f float64
		s string
	}{
		{0, "0"},
		{0.1, "0.1"},
		{-2.5, "-2.5"},
		{1.0 / 3, "0.333333333333333"},
		{1e20, "100000000000000000000"},
		{123456789.123456789, "123456789.123457"},
		{1e-30, "0"},
	}
	for _, d := range td {
		x, err := NewFromFloat64(d.f)
		if err != nil {
			t.Fatal(err)
		}
		if s := x.String(); s != d.s {
			t.Fatalf("NewFromFloat64(%g) = %s, want %s", d.f, s, d.s)
		}
	}
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e29} {
		if _, err := NewFromFloat64(f); err == nil {
			t.Fatalf("NewFromFloat64(%g): expected error", f)
		}
	}
}

func TestDecimal_Float64(t *testing.T) {
	for _, s := range []string{"0", "1.5", "-0.1", "79228162514264337593543950335", "0.0000000000000000000000000001"} {
		want, _ := strconv.ParseFloat(s, 64)
		if f := MustParse(s).Float64(); f != want {
			t.Fatalf("%s.Float64() = %g, want %g", s, f, want)
		}
	}
}

func TestDecimal_Int64(t *testing.T) {
	td := []struct {
		s  string
		i  int64
		ok bool
	}{
		{"0", 0, true},
		{"-12.7", -12, true},
		{"9223372036854775807.9", 9223372036854775807, true},
		{"-9223372036854775808", -9223372036854775808, true},
		{"9223372036854775808", 0, false},
		{"79228162514264337593543950335", 0, false},
	}
	for _, d := range td {
		i, ok := MustParse(d.s).Int64()
		if i != d.i || ok != d.ok {
			t.Fatalf("%s.Int64() = %d, %v; want %d, %v", d.s, i, ok, d.i, d.ok)
		}
	}
}

func TestDecimal_String(t *testing.T) {
	td := []struct {
		coef  int64
		scale int
		s     string
	}{
		{5, 2, "0.05"},
		{-5, 2, "-0.05"},
		{123, 0, "123"},
		{123, 3, "0.123"},
		{1230, 1, "123.0"},
		{0, 5, "0.00000"},
	}
	for _, d := range td {
		x := MustNew(d.coef, d.scale)
		if s := x.String(); s != d.s {
			t.Fatalf("String(%d, %d) = %s, want %s", d.coef, d.scale, s, d.s)
		}
		if s := string(x.Append([]byte("x="))); s != "x="+d.s {
			t.Fatalf("Append(%d, %d) = %s", d.coef, d.scale, s)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Parse("12345678901234.5678901234567")
	}
}

func BenchmarkDecimal_String(b *testing.B) {
	x := MustParse("12345678901234.5678901234567")
	for i := 0; i < b.N; i++ {
		_ = x.String()
	}
}
