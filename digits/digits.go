package digits

import (
	"math"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("digits")

// Error kinds. Errors returned by this package carry one of these in their
// chain and may be tested with Has.
var (
	InvalidArgument = errs.Class("invalid argument")
	NumericOverflow = errs.Class("numeric overflow")
)

// Radix bounds.
const (
	MinRadix = 2
	MaxRadix = 10
)

// Schema for a digit conversion.
type Schema struct {
	// Radix of the decoded value's digits. Zero means 2.
	Radix uint8

	// Strict rejects encoded digits that are not valid in Radix.
	Strict bool
}

// Validate returns an InvalidArgument error if the schema's radix is not
// supported.
func (s Schema) Validate() (err error) {
	_, err = s.radix()
	return Error.Wrap(err)
}

func (s Schema) radix() (r int64, err error) {
	switch {
	case s.Radix == 0:
		return 2, nil
	case s.Radix < MinRadix || s.Radix > MaxRadix:
		return 0, InvalidArgument.New("radix %d not in [%d, %d]", s.Radix, MinRadix, MaxRadix)
	}

	return int64(s.Radix), nil
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema) *Encoder {
	return &Encoder{
		schema: schema,
	}
}

// Encode returns n written in the schema's radix and read back as a decimal
// integer.
func (e *Encoder) Encode(n int64) (encoded int64, err error) {
	defer Error.WrapP(&err)

	r, err := e.schema.radix()
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, InvalidArgument.New("negative value: %d", n)
	}

	original := n
	place := int64(1)

	for position := 0; n > 0; position++ {
		digit := n % r
		n /= r

		term, err := mul(digit, place)
		if err != nil {
			return 0, NumericOverflow.New("encoding %d: position %d: %v", original, position, err)
		}

		encoded, err = add(encoded, term)
		if err != nil {
			return 0, NumericOverflow.New("encoding %d: position %d: %v", original, position, err)
		}

		// Only advance when another digit follows; 10^19 itself overflows.
		if n > 0 {
			place, err = mul(place, 10)
			if err != nil {
				return 0, NumericOverflow.New("encoding %d: position %d: %v", original, position+1, err)
			}
		}
	}

	return encoded, nil
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema) *Decoder {
	return &Decoder{
		schema: schema,
	}
}

// Decode returns the value whose digits in the schema's radix are the decimal
// digits of encoded.
func (d *Decoder) Decode(encoded int64) (n int64, err error) {
	defer Error.WrapP(&err)

	r, err := d.schema.radix()
	if err != nil {
		return 0, err
	}

	if encoded < 0 {
		return 0, InvalidArgument.New("negative value: %d", encoded)
	}

	original := encoded
	place := int64(1)

	for position := 0; encoded > 0; position++ {
		digit := encoded % 10
		encoded /= 10

		if d.schema.Strict && digit >= r {
			return 0, InvalidArgument.New(
				"decoding %d: digit %d at position %d not valid in radix %d",
				original,
				digit,
				position,
				r,
			)
		}

		term, err := mul(digit, place)
		if err != nil {
			return 0, NumericOverflow.New("decoding %d: position %d: %v", original, position, err)
		}

		n, err = add(n, term)
		if err != nil {
			return 0, NumericOverflow.New("decoding %d: position %d: %v", original, position, err)
		}

		if encoded > 0 {
			place, err = mul(place, r)
			if err != nil {
				return 0, NumericOverflow.New("decoding %d: position %d: %v", original, position+1, err)
			}
		}
	}

	return n, nil
}

// Digits returns the digits of n in radix, most significant first. Zero has
// the single digit 0.
func Digits(n int64, radix uint8) (ds []uint8, err error) {
	defer Error.WrapP(&err)

	r, err := Schema{Radix: radix}.radix()
	if err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, InvalidArgument.New("negative value: %d", n)
	}

	if n == 0 {
		return []uint8{0}, nil
	}

	for ; n > 0; n /= r {
		ds = append(ds, uint8(n%r))
	}

	for i, j := 0, len(ds)-1; i < j; i, j = i+1, j-1 {
		ds[i], ds[j] = ds[j], ds[i]
	}

	return ds, nil
}

// mul and add operate on non-negative operands only.

func mul(a, b int64) (int64, error) {
	if a != 0 && b > math.MaxInt64/a {
		return 0, errs.New("%d * %d overflows", a, b)
	}

	return a * b, nil
}

func add(a, b int64) (int64, error) {
	if a > math.MaxInt64-b {
		return 0, errs.New("%d + %d overflows", a, b)
	}

	return a + b, nil
}
