// Package math provides transcendental and utility functions for Decimals:
// square root, powers and exponentials, logarithms, trigonometric functions,
// a remainder that preserves the precision of its divisor, a quadratic
// solver and a few rounding helpers and aggregates.
//
// Results are computed with the precision of a Decimal, that is 28 to 29
// significant digits, using only decimal arithmetic. Series stop as soon as
// their next term rounds to zero.
//
// Functions never panic on bad input. Each returns an error belonging to one
// (or, for ASin and ACos, two) of the classes DomainError, OverflowError, UndefinedBaseError,
// UndefinedError or RangeError:
//
//	r, err := math.Ln(x)
//	if math.DomainError.Has(err) {
//		// x < 0
//	}
//
// All functions are safe for concurrent use.
package math
