package pi

import (
	"math/big"
	"sync"
)

// bfloat (Big FLOAT) is a wrapper around big.Float.
type bfloat big.Float

func (z *bfloat) sign() int {
	return (*big.Float)(z).Sign()
}

func (z *bfloat) prec() uint {
	return (*big.Float)(z).Prec()
}

// setPrec sets the precision of z, rounding to nearest even.
func (z *bfloat) setPrec(prec uint) {
	(*big.Float)(z).SetMode(big.ToNearestEven).SetPrec(prec)
}

func (z *bfloat) setUint64(x uint64) {
	(*big.Float)(z).SetUint64(x)
}

// add calculates z = x + y.
func (z *bfloat) add(x, y *bfloat) {
	(*big.Float)(z).Add((*big.Float)(x), (*big.Float)(y))
}

// sub calculates z = x - y.
func (z *bfloat) sub(x, y *bfloat) {
	(*big.Float)(z).Sub((*big.Float)(x), (*big.Float)(y))
}

// quoUint64 calculates z = x / y.
func (z *bfloat) quoUint64(x *bfloat, y uint64) {
	d := getBfloat()
	defer putBfloat(d)
	// 64 bits hold any uint64 exactly.
	d.setPrec(64)
	d.setUint64(y)
	(*big.Float)(z).Quo((*big.Float)(x), (*big.Float)(d))
}

// subUint64 calculates z = x - y.
func (z *bfloat) subUint64(x *bfloat, y uint64) {
	d := getBfloat()
	defer putBfloat(d)
	d.setPrec(64)
	d.setUint64(y)
	z.sub(x, d)
}

// shift calculates z = x * 2^exp.
func (z *bfloat) shift(x *bfloat, exp int) {
	(*big.Float)(z).SetMantExp((*big.Float)(x), exp)
}

// pool is a cache of reusable *big.Float instances.
var pool = sync.Pool{
	New: func() any {
		return (*bfloat)(new(big.Float))
	},
}

// getBfloat obtains a *big.Float from the pool.
func getBfloat() *bfloat {
	return pool.Get().(*bfloat)
}

// putBfloat returns the *big.Float into the pool.
func putBfloat(b *bfloat) {
	pool.Put(b)
}

// floatArith is the arithmetic substrate on *big.Float values with
// a fixed working precision.
type floatArith struct {
	prec uint
}

func newFloatArith(prec uint) floatArith {
	return floatArith{prec: prec}
}

func (a floatArith) new() *bfloat {
	z := getBfloat()
	z.setPrec(a.prec)
	z.setUint64(0)
	return z
}

func (floatArith) setUint64(z *bfloat, x uint64) { z.setUint64(x) }
func (floatArith) quoUint64(z, x *bfloat, y uint64) { z.quoUint64(x, y) }
func (floatArith) shift(z, x *bfloat, exp int) { z.shift(x, exp) }
func (floatArith) add(z, x, y *bfloat) { z.add(x, y) }
func (floatArith) sub(z, x, y *bfloat) { z.sub(x, y) }
func (floatArith) subUint64(z, x *bfloat, y uint64) { z.subUint64(x, y) }
func (floatArith) release(x *bfloat) { putBfloat(x) }
func (floatArith) text(x *bfloat, base, prec int, mode RoundingMode) string {
	return x.text(base, prec, mode)
}
