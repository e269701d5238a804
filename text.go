package pi

import (
	"math"
	"math/big"
	"strings"
)

// text returns prec significant digits of z in the given base.
// The digits carry no radix point and no exponent, and trailing zeros
// are trimmed. For example, 1.25 with prec 5 in base 10 is "125".
// Digits above 9 are written with the alphabet described in the package
// documentation.
// If z is not positive or prec is less than 1, the result is empty.
func (z *bfloat) text(base, prec int, mode RoundingMode) string {
	if prec < 1 || z.sign() <= 0 {
		return ""
	}
	exp := z.ilog(base)
	for {
		s := z.scale(base, prec-exp, mode).Text(base)
		switch {
		case len(s) > prec: // rounded up to the next power of base
			exp++
		case len(s) < prec:
			exp--
		default:
			return swapCase(strings.TrimRight(s, "0"))
		}
	}
}

// ilog estimates the number of digits of the integer part of z in base,
// which is ⌊log_base(z)⌋ + 1.
// The estimate may be off by one, [bfloat.text] corrects it.
func (z *bfloat) ilog(base int) int {
	e := (*big.Float)(z).MantExp(nil) // z in [2^(e-1), 2^e)
	return int(math.Floor(float64(e-1)/math.Log2(float64(base)))) + 1
}

// scale calculates z * base^shift and rounds the result to an integer,
// towards zero or using "half to even" rule.
func (z *bfloat) scale(base, shift int, mode RoundingMode) *big.Int {
	p := new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(abs(shift))), nil)
	// Enough bits for the product to be exact.
	prec := z.prec() + uint(p.BitLen()) + 64
	f := new(big.Float).SetPrec(prec).SetMode(big.ToZero).SetInt(p)
	if shift >= 0 {
		f.Mul((*big.Float)(z), f)
	} else {
		f.Quo((*big.Float)(z), f)
	}
	q, _ := f.Int(nil) // q = ⌊f⌋
	if mode != HalfEven {
		return q
	}
	r := new(big.Float).SetPrec(prec).SetInt(q)
	r.Sub(f, r) // r = f - q, 0 ≤ r < 1
	switch r.Cmp(half) {
	case 1:
		q.Add(q, bigOne)
	case 0:
		// half-to-even
		if q.Bit(0) != 0 {
			q.Add(q, bigOne)
		}
	}
	return q
}

var (
	half   = big.NewFloat(0.5)
	bigOne = big.NewInt(1)
)

// swapCase swaps the case of ASCII letters.
// [big.Int.Text] writes digits above 9 as 0-9a-z, then A-Z;
// swapping yields 0-9A-Z for bases up to 36 and 0-9A-Za-z above.
func swapCase(s string) string {
	b := []byte(s)
	for i, c := range b {
		switch {
		case 'a' <= c && c <= 'z':
			b[i] = c - 'a' + 'A'
		case 'A' <= c && c <= 'Z':
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
