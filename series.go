package pi

import (
	"math"
	"sort"

	"go.uber.org/zap"
)

// arith is the arithmetic substrate driven by the series accumulator.
// Every value it creates carries the precision the substrate was built with.
type arith[T any] interface {
	// new returns a value equal to 0.
	new() T
	// setUint64 sets z = x.
	setUint64(z T, x uint64)
	// quoUint64 sets z = x / y.
	quoUint64(z, x T, y uint64)
	// shift sets z = x · 2^exp. The result is exact.
	shift(z, x T, exp int)
	// add sets z = x + y.
	add(z, x, y T)
	// sub sets z = x - y.
	sub(z, x, y T)
	// subUint64 sets z = x - y.
	subUint64(z, x T, y uint64)
	// text returns prec significant digits of x in base, without a
	// radix point and with trailing zeros trimmed. x must be positive.
	text(x T, base, prec int, mode RoundingMode) string
	// release hands x back to the substrate. x must not be used afterwards.
	release(x T)
}

// kint (term INdex) is a wrapper around uint64 for the index k of a series term.
type kint uint64

// lin calculates 8 · k + c.
// The result does not overflow for any k that satisfies [kint.fits].
func (k kint) lin(c uint64) uint64 {
	return 8*uint64(k) + c
}

// exp calculates 4 · k, the binary exponent of 16^k.
// The result does not overflow for any k that satisfies [kint.fits].
func (k kint) exp() int {
	return int(4 * uint64(k))
}

// fits checks that a series of k terms, indexed 0 to k-1, can be
// evaluated without overflow in [kint.lin] and [kint.exp].
func (k kint) fits() bool {
	switch {
	case k == 0:
		return false
	case uint64(k-1) > (math.MaxUint64-6)/8:
		return false
	case uint64(k-1) > math.MaxInt/4:
		return false
	}
	return true
}

// sum calculates
//
//	n = Σ (4/(8k+1) - 2/(8k+4) - 1/(8k+5) - 1/(8k+6)) / 16^k - 2
//
// for k from terms-1 down to 0.
// The factors 4, 2 and 1/16^k are applied as exact binary shifts.
// The final subtraction of 2 leaves n in [1, 2), so that the digit string of n
// starts with "1" and keeps the leading zeros of the fractional part.
func sum[T any](a arith[T], terms uint64, progress ProgressReporter) T {
	n := a.new()
	func() {
		term := a.new()
		defer a.release(term)
		sub := a.new()
		defer a.release(sub)
		one := a.new()
		defer a.release(one)
		a.setUint64(one, 1)

		t := newProgressTracker(terms, progress)
		for k := kint(terms); k > 0; {
			k--

			a.quoUint64(term, one, k.lin(1))
			a.shift(term, term, 2) // 4/(8k+1)

			a.quoUint64(sub, one, k.lin(4))
			a.shift(sub, sub, 1) // 2/(8k+4)
			a.sub(term, term, sub)

			a.quoUint64(sub, one, k.lin(5))
			a.sub(term, term, sub)

			a.quoUint64(sub, one, k.lin(6))
			a.sub(term, term, sub)

			a.shift(term, term, -k.exp()) // 1/16^k
			a.add(n, n, term)

			t.step()
		}
		t.done()
	}()
	a.subUint64(n, n, 2)
	return n
}

// evaluate sums the series for plan p and returns prec digits of the sum in base.
func evaluate[T any](a arith[T], p Plan, base, prec int, mode RoundingMode, progress ProgressReporter) string {
	logger.Debug("evaluate: enter",
		zap.Uint("bits", p.Bits),
		zap.Uint64("terms", p.Terms),
	)
	n := sum(a, p.Terms, progress)
	defer a.release(n)
	s := a.text(n, base, prec, mode)
	logger.Debug("evaluate: exit",
		zap.Int("length", len(s)),
	)
	return s
}

// evaluator evaluates the series for a plan and returns prec digits of
// the biased sum in base (see [sum] and [arith.text]).
type evaluator func(p Plan, base, prec int, mode RoundingMode, progress ProgressReporter) string

const defaultBackend = "float"

// backends holds the registered arithmetic backends by name.
var backends = map[string]evaluator{}

func registerBackend(name string, e evaluator) {
	backends[name] = e
}

func init() {
	registerBackend(defaultBackend, func(p Plan, base, prec int, mode RoundingMode, progress ProgressReporter) string {
		return evaluate[*bfloat](newFloatArith(p.Bits), p, base, prec, mode, progress)
	})
}

// Backends returns the names of the available arithmetic backends in sorted order.
// The "float" backend, based on [big.Float], is always available.
// The "gmp" backend is available when the package is built with the gmp tag.
//
// [big.Float]: https://pkg.go.dev/math/big#Float
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
