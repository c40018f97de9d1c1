package math

import (
	decimal "github.com/db47h/decmath"
)

// Remainder returns d1 - d2×trunc(d1/d2), preserving the precision of d2.
//
// When d1/d2 is too large for its fractional part to be represented, the
// plain remainder d1 - d2×trunc(d1/d2) would be computed from a rounded
// quotient and could be off by several multiples of d2. Remainder instead
// subtracts trunc(d1/d2)×d2 one digit of d2 at a time, then corrects the
// result by ±d2 if the rounding made it cross zero.
//
// Remainder returns an UndefinedError if d2 == 0.
func Remainder(d1, d2 decimal.Decimal) (r decimal.Decimal, err error) {
	defer catch(&err)
	return remainder(d1, d2), nil
}

func remainder(d1, d2 decimal.Decimal) decimal.Decimal {
	if d1.CmpAbs(d2) < 0 {
		return d1
	}

	timesInto := d1.Quo(d2).Truncate()
	shifting := d2
	sign := d1.Sign()
	for i := 0; i <= d2.Scale(); i++ {
		// the first digit is the integral part of d2
		digit := shifting.Truncate()
		d1 = d1.Sub(timesInto.Mul(digit.Quo(powersOf10[i])))
		shifting = shifting.Sub(digit).Mul(ten)
		if shifting.IsZero() {
			break
		}
	}

	// crossed zero because of the precision mismatch
	if !d1.IsZero() && d1.Sign() != sign {
		if d2.Sign() == sign {
			d1 = d1.Add(d2)
		} else {
			d1 = d1.Sub(d2)
		}
	}
	return d1
}
