package binary

import (
	"math"

	"github.com/calebcase/radix/digits"
)

// Number is a non-negative integer whose text form is its binary digits.
//
// Unlike Encode the text form is not bounded by MaxEncodable; any
// non-negative int64 marshals.
type Number int64

// MarshalText implements encoding.TextMarshaler.
func (n Number) MarshalText() (text []byte, err error) {
	defer Error.WrapP(&err)

	ds, err := digits.Digits(int64(n), 2)
	if err != nil {
		return nil, err
	}

	text = make([]byte, len(ds))
	for i, d := range ds {
		text[i] = '0' + d
	}

	return text, nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Leading zeros are
// allowed.
func (n *Number) UnmarshalText(text []byte) (err error) {
	defer Error.WrapP(&err)

	if len(text) == 0 {
		return digits.InvalidArgument.New("empty text")
	}

	var v int64

	for i, c := range text {
		if c != '0' && c != '1' {
			return digits.InvalidArgument.New("invalid binary digit %q at offset %d", c, i)
		}

		if v > math.MaxInt64>>1 {
			return digits.NumericOverflow.New("%q exceeds 63 bits", text)
		}

		v = v<<1 | int64(c-'0')
	}

	*n = Number(v)

	return nil
}

// String returns the binary digits of n, or the error text when n is
// negative.
func (n Number) String() string {
	text, err := n.MarshalText()
	if err != nil {
		return err.Error()
	}

	return string(text)
}

// Encoded returns n in the binary-as-decimal form returned by Encode.
func (n Number) Encoded() (int64, error) {
	return Encode(int64(n))
}
