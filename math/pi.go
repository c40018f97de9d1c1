package math

import (
	decimal "github.com/db47h/decmath"
)

var quarter = decimal.MustNew(25, 2)

// ComputePi computes π with the Gauss-Legendre algorithm. The result agrees
// with Pi to about 26 digits; it is mostly useful to check the accuracy of
// the kernel's arithmetic.
func ComputePi() (r decimal.Decimal, err error) {
	defer catch(&err)
	return gaussLegendrePi(), nil
}

func gaussLegendrePi() decimal.Decimal {
	var (
		a       = one
		b       = one.Quo(sqrt(two))
		t       = quarter
		p       = one
		epsilon = decimal.MustNew(1, 26)
	)
	for i := 0; i < 64; i++ {
		u := a                                   // a_n
		a = a.Add(b).Quo(two)                    // a_n+1
		b = sqrt(u.Mul(b))                       // b_n+1
		t = t.Sub(p.Mul(u.Sub(a).Mul(u.Sub(a)))) // t_n+1 = t_n - p×(a_n - a_n+1)²
		if a.Sub(b).CmpAbs(epsilon) <= 0 {
			break
		}
		p = p.Mul(two)
	}
	s := a.Add(b)
	return s.Mul(s).Quo(t.Mul(four))
}
