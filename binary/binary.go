// Package binary converts between decimal integers and their binary digits
// written as a decimal integer (5 <-> 101).
package binary

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/radix/digits"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("binary")

// MaxEncodable is the largest value whose binary digits fit in an int64 read
// as a decimal number (nineteen ones).
const MaxEncodable = 1<<19 - 1

var (
	encoder = digits.NewEncoder(digits.Schema{Radix: 2})
	decoder = digits.NewDecoder(digits.Schema{Radix: 2})
	strict  = digits.NewDecoder(digits.Schema{Radix: 2, Strict: true})
)

// Encode returns the binary digits of n as a decimal integer.
//
// Negative n fails with digits.InvalidArgument and n > MaxEncodable with
// digits.NumericOverflow.
func Encode(n int64) (encoded int64, err error) {
	defer Error.WrapP(&err)

	return encoder.Encode(n)
}

// Decode returns the value whose binary digits are the decimal digits of
// encoded. Digits other than 0 and 1 are not rejected: a digit d at position
// i contributes d * 2^i. Use DecodeStrict to reject them.
func Decode(encoded int64) (n int64, err error) {
	defer Error.WrapP(&err)

	return decoder.Decode(encoded)
}

// DecodeStrict is Decode but fails with digits.InvalidArgument when encoded
// has a decimal digit other than 0 or 1.
func DecodeStrict(encoded int64) (n int64, err error) {
	defer Error.WrapP(&err)

	return strict.Decode(encoded)
}
