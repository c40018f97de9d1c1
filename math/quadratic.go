package math

import (
	decimal "github.com/db47h/decmath"
)

// SolveQuadratic returns the real roots of a×x² + b×x + c = 0.
//
// The result holds no root if there is no real solution or if a == b == 0,
// one root if a == 0 or if the discriminant is 0, and two roots otherwise.
// Each root is computed with whichever of the quadratic formula or its
// "citardauq" form avoids subtracting nearly equal values.
//
// Coefficients all in (-1, 1) are scaled up by powers of ten before
// computing the discriminant. A discriminant of -1e-28 is treated as a
// rounding error and snapped to 0.
func SolveQuadratic(a, b, c decimal.Decimal) (roots []decimal.Decimal, err error) {
	defer catch(&err)

	if a.IsZero() {
		if b.IsZero() {
			// 0 nowhere or everywhere
			return nil, nil
		}
		// b×x + c = 0
		return []decimal.Decimal{c.Neg().Quo(b)}, nil
	}

	for inUnit(a) && inUnit(b) && inUnit(c) {
		a, b, c = a.Mul(ten), b.Mul(ten), c.Mul(ten)
	}

	disc := b.Mul(b).Sub(four.Mul(a).Mul(c))
	if disc.Equal(negSmallest) {
		disc = decimal.Zero
	}
	if disc.Sign() < 0 {
		return nil, nil
	}
	s := sqrt(disc)

	var h, k decimal.Decimal
	a2, c2 := two.Mul(a), two.Mul(c)
	switch b.Sign() {
	case -1:
		h = b.Neg().Add(s).Quo(a2)
		k = c2.Quo(b.Neg().Add(s))
	case 1:
		h = c2.Quo(b.Neg().Sub(s))
		k = b.Neg().Sub(s).Quo(a2)
	default:
		// both forms divide by zero when b == 0 and c == 0
		h = s.Quo(a2)
		k = h.Neg()
	}

	if h.Equal(k) {
		return []decimal.Decimal{h}, nil
	}
	return []decimal.Decimal{h, k}, nil
}

func inUnit(x decimal.Decimal) bool {
	return x.Cmp(minusOne) > 0 && x.Cmp(one) < 0
}
