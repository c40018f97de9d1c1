package math_test

import (
	"testing"

	decimal "github.com/db47h/decmath"
	"github.com/db47h/decmath/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pi50 = "3.14159265358979323846264338327950288419716939937510"

func TestComputePi(t *testing.T) {
	r, err := math.ComputePi()
	require.NoError(t, err)
	requireNear(t, pi50, r, "1e-26")
}

func TestConstants(t *testing.T) {
	// each constant is the correctly rounded value
	td := []struct {
		name string
		c    decimal.Decimal
		want string
	}{
		{"Pi", math.Pi, pi50},
		{"PiHalf", math.PiHalf, "1.57079632679489661923132169163975144209858469968755"},
		{"PiQuarter", math.PiQuarter, "0.78539816339744830961566084581987572104929234984378"},
		{"PiTwelfth", math.PiTwelfth, "0.26179938779914943653855361527329190701643078328126"},
		{"TwoPi", math.TwoPi, "6.28318530717958647692528676655900576839433879875021"},
		{"E", math.E, "2.71828182845904523536028747135266249775724709369996"},
		{"Ln10", math.Ln10, "2.30258509299404568401799145468436420760110148862877"},
		{"Ln2", math.Ln2, "0.69314718055994530941723212145817656807550013436026"},
	}
	for _, d := range td {
		requireEqual(t, dec(d.want).String(), d.c)
		assert.Equal(t, decimal.MaxScale, d.c.Scale(), d.name)
	}
	requireEqual(t, "0.0000000000000000000000000001", math.SmallestNonZeroDec)
	requireEqual(t, math.TwoPi.String(), math.Pi.Mul(dec("2")))
}

func TestPow10Table(t *testing.T) {
	want := "1"
	for i := 0; i <= decimal.MaxScale; i++ {
		p, err := math.Pow10Table(i)
		require.NoError(t, err)
		requireEqual(t, want, p)
		want += "0"
	}
	for _, n := range []int{-1, decimal.MaxScale + 1} {
		_, err := math.Pow10Table(n)
		require.Error(t, err)
		assert.True(t, math.RangeError.Has(err), "Pow10Table(%d): %v", n, err)
	}
}
