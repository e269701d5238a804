//go:build gmp

// This file provides a GMP-based backend, compiled only with the "gmp" build
// tag, so that the package builds without libgmp installed:
//
//	go build -tags=gmp ./...
//
// System requirements:
//   - Linux: sudo apt-get install libgmp-dev
//   - macOS: brew install gmp

package pi

import (
	"math/big"

	"github.com/ncw/gmp"
)

func init() {
	registerBackend("gmp", func(p Plan, base, prec int, mode RoundingMode, progress ProgressReporter) string {
		return evaluate[*gmp.Int](newFixedArith(p.Bits), p, base, prec, mode, progress)
	})
}

// guardBits are carried beyond the planned precision.
// Every quotient in fixed point is truncated, so the errors of all terms
// add up with the same sign instead of cancelling out.
const guardBits = 64

// fixedArith is the arithmetic substrate on GMP integers in fixed point:
// an integer z represents the value z / 2^frac.
type fixedArith struct {
	frac uint     // number of fractional bits
	div  *gmp.Int // scratch divisor
}

func newFixedArith(prec uint) *fixedArith {
	return &fixedArith{
		frac: prec + guardBits,
		div:  gmp.NewInt(0),
	}
}

func (a *fixedArith) new() *gmp.Int {
	return gmp.NewInt(0)
}

func (a *fixedArith) setUint64(z *gmp.Int, x uint64) {
	z.SetUint64(x)
	z.Lsh(z, a.frac)
}

// quoUint64 calculates z = x / y, truncated to the fixed point.
func (a *fixedArith) quoUint64(z, x *gmp.Int, y uint64) {
	a.div.SetUint64(y)
	z.Quo(x, a.div)
}

func (a *fixedArith) shift(z, x *gmp.Int, exp int) {
	if exp >= 0 {
		z.Lsh(x, uint(exp))
	} else {
		z.Rsh(x, uint(-exp))
	}
}

func (a *fixedArith) add(z, x, y *gmp.Int) {
	z.Add(x, y)
}

func (a *fixedArith) sub(z, x, y *gmp.Int) {
	z.Sub(x, y)
}

func (a *fixedArith) subUint64(z, x *gmp.Int, y uint64) {
	a.div.SetUint64(y)
	a.div.Lsh(a.div, a.frac)
	z.Sub(x, a.div)
}

// text converts x to a *big.Float and formats it like [bfloat.text].
func (a *fixedArith) text(x *gmp.Int, base, prec int, mode RoundingMode) string {
	if x.Sign() <= 0 {
		return ""
	}
	i := gmpToStdBigInt(x)
	bits := uint(i.BitLen())
	if bits < 64 {
		bits = 64
	}
	f := new(big.Float).SetPrec(bits).SetInt(i)
	f.SetMantExp(f, -int(a.frac))
	return (*bfloat)(f).text(base, prec, mode)
}

func (a *fixedArith) release(x *gmp.Int) {
	x.Clear()
}

// gmpToStdBigInt converts a non-negative gmp.Int to a standard library big.Int.
func gmpToStdBigInt(g *gmp.Int) *big.Int {
	return new(big.Int).SetBytes(g.Bytes())
}
