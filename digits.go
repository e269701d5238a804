package pi

import "bytes"

// Digits is the rendered expansion of π in some base.
// It consists of the integer part of π written in that base, followed by
// a radix point and exactly the requested number of fractional digits.
type Digits struct {
	base  int
	whole string // integer part, "3" for bases 4 and above
	frac  string // fractional digits
}

// Base returns the radix of the digits.
func (d Digits) Base() int {
	return d.base
}

// Int returns the integer part of π in the base of d:
// "11" in base 2, "10" in base 3 and "3" otherwise.
func (d Digits) Int() string {
	return d.whole
}

// Frac returns the fractional digits without the radix point.
func (d Digits) Frac() string {
	return d.frac
}

// String implements [fmt.Stringer] interface.
// For example, 10 digits in base 10 are "3.1415926535".
func (d Digits) String() string {
	if d.whole == "" {
		return ""
	}
	return d.whole + "." + d.frac
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Digits.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Digits) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// render turns the digit string of the biased sum into [Digits].
// The first character of s is the integer digit "1" of the sum, it is
// replaced with a radix point. The rest are the fractional digits of π.
// Trailing zeros trimmed by the conversion are restored, so that the
// fractional part always has r.Digits() digits.
func render(s string, r Request) Digits {
	buf := []byte(s)
	if len(buf) == 0 {
		buf = append(buf, '.')
	}
	buf[0] = '.'
	if n := len(buf) - 1; n < r.Digits() {
		buf = append(buf, bytes.Repeat([]byte{'0'}, r.Digits()-n)...)
	}
	return Digits{
		base:  r.Base(),
		whole: intPart(r.Base()),
		frac:  string(buf[1 : r.Digits()+1]),
	}
}

// intPart returns 3 written in the given base.
func intPart(base int) string {
	switch base {
	case 2:
		return "11"
	case 3:
		return "10"
	default:
		return "3"
	}
}
