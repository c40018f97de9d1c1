package math

import (
	decimal "github.com/db47h/decmath"
)

// Floor returns the greatest value less than or equal to value with at most
// places fractional digits. It returns a RangeError if places < 0.
func Floor(value decimal.Decimal, places int) (r decimal.Decimal, err error) {
	defer catch(&err)
	return floorCeil(value, places, decimal.Decimal.Floor)
}

// Ceiling returns the least value greater than or equal to value with at
// most places fractional digits. It returns a RangeError if places < 0.
func Ceiling(value decimal.Decimal, places int) (r decimal.Decimal, err error) {
	defer catch(&err)
	return floorCeil(value, places, decimal.Decimal.Ceil)
}

func floorCeil(value decimal.Decimal, places int, f func(decimal.Decimal) decimal.Decimal) (decimal.Decimal, error) {
	switch {
	case places < 0:
		return decimal.Zero, RangeError.New("negative number of places %d", places)
	case places == 0:
		return f(value), nil
	case places >= decimal.MaxScale || places >= value.Scale():
		return value, nil
	}
	p := powersOf10[places]
	return f(value.Mul(p)).Quo(p), nil
}

// RoundFromZero returns value rounded to the given number of decimals, with
// halves rounded away from zero. It returns a RangeError if decimals < 0.
func RoundFromZero(value decimal.Decimal, decimals int) (r decimal.Decimal, err error) {
	defer catch(&err)
	if decimals < 0 {
		return decimal.Zero, RangeError.New("negative number of decimals %d", decimals)
	}
	if decimals >= value.Scale() {
		return value, nil
	}
	p := powersOf10[decimals]
	h := half
	if value.Sign() < 0 {
		h = h.Neg()
	}
	return value.Mul(p).Add(h).Truncate().Quo(p), nil
}

// GetDecimalPlaces returns the number of digits after the decimal point of
// d. If countTrailingZeros is false, trailing zeros are not counted:
//
//	GetDecimalPlaces(1.500, true)  // 3
//	GetDecimalPlaces(1.500, false) // 1
func GetDecimalPlaces(d decimal.Decimal, countTrailingZeros bool) int {
	if countTrailingZeros {
		return d.Scale()
	}
	return d.Trim().Scale()
}

// InRangeIncl reports whether lo <= v <= hi. It returns a RangeError if
// hi < lo.
func InRangeIncl(v, lo, hi decimal.Decimal) (bool, error) {
	if hi.Cmp(lo) < 0 {
		return false, RangeError.New("upper limit %s less than lower limit %s", hi, lo)
	}
	return v.Cmp(lo) >= 0 && v.Cmp(hi) <= 0, nil
}

// InRangeExcl reports whether lo < v < hi. It returns a RangeError if
// hi < lo.
func InRangeExcl(v, lo, hi decimal.Decimal) (bool, error) {
	if hi.Cmp(lo) < 0 {
		return false, RangeError.New("upper limit %s less than lower limit %s", hi, lo)
	}
	return v.Cmp(lo) > 0 && v.Cmp(hi) < 0, nil
}
