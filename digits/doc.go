// Package digits reinterprets the base R digits of an integer as a base 10
// integer and back.
//
// The equation for an encoded value is:
//
//  encoded = Σ digit[i] * 10 ^ i
//
// Where digit[i] is the i-th least significant base R digit of the value. For
// example with R = 2:
//
//  5 = 1*2^2 + 0*2^1 + 1*2^0  ->  1*10^2 + 0*10^1 + 1*10^0 = 101
//
// Decoding runs the same loop in the other direction:
//
//  value = Σ digit[i] * R ^ i
//
// Where digit[i] is now the i-th least significant decimal digit of the
// encoded value.
//
// Radix
//
// Any radix between 2 and 10 is supported. Above 10 a digit no longer fits in
// a single decimal place.
//
//  | Radix | Largest Encodable       | Encoded             |
//  |-------|-------------------------|---------------------|
//  |     2 |                 524_287 | 1111111111111111111 |
//  |     8 | 144_115_188_075_855_871 | 7777777777777777777 |
//  |    10 |           math.MaxInt64 |       math.MaxInt64 |
//  |-------|-------------------------|---------------------|
//
// The encoded form has as many decimal digits as the value has base R digits,
// so the safe range is bounded by the 19 decimal digits an int64 can hold.
// Values past that bound fail with NumericOverflow rather than wrapping.
//
// Strict Decoding
//
// Without Strict a decimal digit d >= R is accepted and contributes d * R^i
// like any other digit (e.g. radix 2 decodes 12 as 1*2 + 2*1 = 4). Strict
// schemas reject such input with InvalidArgument.
//
// Negative Values
//
// Both directions reject negative input with InvalidArgument.
package digits
