// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"errors"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by constructors, parsers and decoders.
var Error = errs.Class("decimal")

// Arithmetic operations do not return errors. Instead they panic with an error
// of one of the following classes. A recovered value r can be tested with
// ErrOverflow.Has(r.(error)).
var (
	// ErrOverflow is the class of errors raised when the integral part of a
	// result does not fit in 96 bits.
	ErrOverflow = errs.Class("decimal overflow")
	// ErrDivisionByZero is the class of errors raised by Quo and Rem when
	// the divisor is zero.
	ErrDivisionByZero = errs.Class("decimal division by zero")
)

// parse errors
var (
	errNoDigits = errors.New("number has no digits")
	errInvalSep = errors.New("'_' must separate successive digits")
	errExpRange = errors.New("exponent out of range")
)
