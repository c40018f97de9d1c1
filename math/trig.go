package math

import (
	decimal "github.com/db47h/decmath"
)

// Sin returns the sine of the radian argument x.
//
// x is reduced to (-2π, 2π) with Remainder. Multiples of π/2 return exact
// results; other values are evaluated with the Taylor series.
func Sin(x decimal.Decimal) (r decimal.Decimal, err error) {
	defer catch(&err)
	return sin(x), nil
}

func sin(x decimal.Decimal) decimal.Decimal {
	x = remainder(x, TwoPi)
	switch {
	case x.IsZero(), x.Equal(Pi), x.Equal(TwoPi):
		return decimal.Zero
	case x.Equal(PiHalf):
		return one
	case x.Equal(piThreeHalves):
		return minusOne
	}

	x2 := x.Mul(x).Neg()
	next := x
	result := decimal.Zero
	for di := int64(2); di < 2*maxIter; di += 2 {
		if next.IsZero() {
			break
		}
		result = result.Add(next)
		// next×(-x²)/((2i)(2i+1))
		next = next.Mul(x2.Quo(decimal.NewFromInt64(di*di + di)))
	}
	return result
}

// Cos returns the cosine of the radian argument x. See Sin.
func Cos(x decimal.Decimal) (r decimal.Decimal, err error) {
	defer catch(&err)
	return cos(x), nil
}

func cos(x decimal.Decimal) decimal.Decimal {
	x = remainder(x, TwoPi)
	switch {
	case x.IsZero(), x.Equal(TwoPi):
		return one
	case x.Equal(Pi):
		return minusOne
	case x.Equal(PiHalf), x.Equal(piThreeHalves):
		return decimal.Zero
	}

	x2 := x.Mul(x).Neg()
	next := one
	result := decimal.Zero
	for di := int64(2); di < 2*maxIter; di += 2 {
		if next.IsZero() {
			break
		}
		result = result.Add(next)
		// next×(-x²)/((2i-1)(2i))
		next = next.Mul(x2.Quo(decimal.NewFromInt64(di*di - di)))
	}
	return result
}

// Tan returns the tangent of the radian argument x. It returns an
// UndefinedError if cos x == 0.
func Tan(x decimal.Decimal) (r decimal.Decimal, err error) {
	defer catch(&err)
	c := cos(x)
	if c.IsZero() {
		return decimal.Zero, UndefinedError.New("tangent of %s", x)
	}
	return sin(x).Quo(c), nil
}

// ASin returns the arcsine, in radians, of z. The result is in [-π/2, π/2].
//
// ASin returns a RangeError if z is outside [-1, 1]. The error is also a
// DomainError.
func ASin(z decimal.Decimal) (r decimal.Decimal, err error) {
	defer catch(&err)
	checkUnit("arcsine", z)
	switch {
	case z.Equal(minusOne):
		return PiHalf.Neg(), nil
	case z.IsZero():
		return decimal.Zero, nil
	case z.Equal(one):
		return PiHalf, nil
	}
	// 2×atan(z/(1+√(1-z²)))
	return two.Mul(atan(z.Quo(one.Add(sqrt(one.Sub(z.Mul(z))))))), nil
}

// ACos returns the arccosine, in radians, of z. The result is in [0, π].
// Errors are as for ASin.
func ACos(z decimal.Decimal) (r decimal.Decimal, err error) {
	defer catch(&err)
	checkUnit("arccosine", z)
	switch {
	case z.Equal(minusOne):
		return Pi, nil
	case z.IsZero():
		return PiHalf, nil
	case z.Equal(one):
		return decimal.Zero, nil
	}
	// 2×atan(√(1-z²)/(1+z))
	return two.Mul(atan(sqrt(one.Sub(z.Mul(z))).Quo(one.Add(z)))), nil
}

func checkUnit(fn string, z decimal.Decimal) {
	if z.Cmp(minusOne) < 0 || z.Cmp(one) > 0 {
		panic(RangeError.Wrap(DomainError.New("%s of %s: argument out of [-1, 1]", fn, z)))
	}
}

// ATan returns the arctangent, in radians, of x. The result is in
// [-π/2, π/2].
//
// Arguments such that |x| > 1 are reflected into [-1, 1] through
// atan x = ±π/2 - atan(1/x), where Euler's series converges quickly.
func ATan(x decimal.Decimal) (r decimal.Decimal, err error) {
	defer catch(&err)
	return atan(x), nil
}

func atan(x decimal.Decimal) decimal.Decimal {
	switch {
	case x.Equal(minusOne):
		return PiQuarter.Neg()
	case x.IsZero():
		return decimal.Zero
	case x.Equal(one):
		return PiQuarter
	case x.Cmp(minusOne) < 0:
		return PiHalf.Neg().Sub(atan(one.Quo(x)))
	case x.Cmp(one) > 0:
		return PiHalf.Sub(atan(one.Quo(x)))
	}

	x2p1 := one.Add(x.Mul(x))
	y := x.Mul(x).Quo(x2p1)
	// y/x underflows for tiny x
	next := x.Quo(x2p1)
	result := decimal.Zero
	for di := int64(2); di < 2*maxIter; di += 2 {
		if next.IsZero() {
			break
		}
		result = result.Add(next)
		next = next.Mul(y.Mul(decimal.NewFromInt64(di)).Quo(decimal.NewFromInt64(di + 1)))
	}
	return result
}

// ATan2 returns the arctangent of y/x, using the signs of the two to
// determine the quadrant of the result, which is in (-π, π].
//
//	ATan2(0, 0) = 0
//	ATan2(y>0, 0) = π/2
//	ATan2(y<0, 0) = -π/2
//	ATan2(0, x>0) = 0
//	ATan2(0, x<0) = π
func ATan2(y, x decimal.Decimal) (r decimal.Decimal, err error) {
	defer catch(&err)
	return atan2(y, x), nil
}

func atan2(y, x decimal.Decimal) decimal.Decimal {
	switch {
	case x.IsZero() && y.IsZero():
		return decimal.Zero
	case x.IsZero():
		if y.Sign() > 0 {
			return PiHalf
		}
		return PiHalf.Neg()
	case y.IsZero():
		if x.Sign() > 0 {
			return decimal.Zero
		}
		return Pi
	}

	var a decimal.Decimal
	if y.CmpAbs(x) > 0 {
		// y/x may overflow: atan(y/x) = ±π/2 - atan(x/y)
		a = atan(x.Quo(y))
		if x.Sign() == y.Sign() {
			a = PiHalf.Sub(a)
		} else {
			a = PiHalf.Neg().Sub(a)
		}
	} else {
		a = atan(y.Quo(x))
	}

	if x.Sign() > 0 {
		return a
	}
	if y.Sign() > 0 {
		return a.Add(Pi)
	}
	return a.Sub(Pi)
}

// ToRad converts degrees to radians. Multiples of 15° are computed from the
// exact constants Pi, PiHalf, PiQuarter and PiTwelfth.
func ToRad(deg decimal.Decimal) (r decimal.Decimal, err error) {
	defer catch(&err)
	for _, m := range radMultiples {
		if deg.Rem(m.deg).IsZero() {
			return deg.Quo(m.deg).Mul(m.rad), nil
		}
	}
	return deg.Mul(Pi).Quo(n180), nil
}

var radMultiples = [...]struct{ deg, rad decimal.Decimal }{
	{n360, TwoPi},
	{decimal.NewFromInt64(270), piThreeHalves},
	{n180, Pi},
	{decimal.NewFromInt64(90), PiHalf},
	{decimal.NewFromInt64(45), PiQuarter},
	{decimal.NewFromInt64(15), PiTwelfth},
}

// ToDeg converts radians to degrees.
func ToDeg(rad decimal.Decimal) (r decimal.Decimal, err error) {
	defer catch(&err)
	return rad.Mul(degPerRad), nil
}

// NormalizeAngle returns the equivalent of the radian angle x in [0, 2π).
func NormalizeAngle(x decimal.Decimal) (r decimal.Decimal, err error) {
	defer catch(&err)
	x = remainder(x, TwoPi)
	if x.Sign() < 0 {
		x = x.Add(TwoPi)
	}
	return x, nil
}

// NormalizeAngleDeg returns the equivalent of the angle x, in degrees, in
// [0, 360).
func NormalizeAngleDeg(x decimal.Decimal) (r decimal.Decimal, err error) {
	defer catch(&err)
	x = x.Rem(n360)
	if x.Sign() < 0 {
		x = x.Add(n360)
	}
	return x, nil
}
