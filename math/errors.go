package math

import (
	decimal "github.com/db47h/decmath"
	"github.com/zeebo/errs"
)

// Error classes returned by the functions of this package. Test for a
// specific class with Class.Has:
//
//	if math.DomainError.Has(err) { ... }
//
// An error belongs to a single class, except for out of range arguments of
// ASin and ACos: those are RangeErrors wrapping a DomainError, and both
// classes report them.
var (
	// DomainError is returned when an argument is outside the domain of a
	// function, like the square root of a negative number.
	DomainError = errs.Class("domain error")
	// OverflowError is returned when a result, or an intermediate value,
	// cannot be represented.
	OverflowError = errs.Class("overflow")
	// UndefinedBaseError is returned by Log for a base of 1.
	UndefinedBaseError = errs.Class("undefined base")
	// UndefinedError is returned when a result is undefined, like the
	// tangent of π/2 or a division by zero.
	UndefinedError = errs.Class("undefined")
	// RangeError is returned for out of range arguments, like a negative
	// number of decimal places.
	RangeError = errs.Class("range error")
)

var classes = [...]*errs.Class{&DomainError, &OverflowError, &UndefinedBaseError, &UndefinedError, &RangeError}

// catch recovers a panic raised by the kernel or by decimal arithmetic and
// stores it in *err. Decimal overflows become OverflowErrors and divisions by
// zero UndefinedErrors. Other panics are propagated.
//
// It must be called directly by a deferred statement.
func catch(err *error) {
	r := recover()
	if r == nil {
		return
	}
	e, ok := r.(error)
	if !ok {
		panic(r)
	}
	switch {
	case decimal.ErrOverflow.Has(e):
		*err = OverflowError.Wrap(e)
		return
	case decimal.ErrDivisionByZero.Has(e):
		*err = UndefinedError.Wrap(e)
		return
	}
	for _, c := range classes {
		if c.Has(e) {
			*err = e
			return
		}
	}
	panic(r)
}
