package pi

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"go.uber.org/zap"
)

// Request is a validated request for the fractional digits of π.
// The zero value is not a valid request.
// It is designed to be safe for concurrent use by multiple goroutines.
type Request struct {
	digits int32 // number of fractional digits
	base   int32 // radix of the digits
}

const (
	MinBase     = 2  // smallest supported radix
	MaxBase     = 62 // largest supported radix
	DefaultBase = 10 // radix used when none is given

	// MaxBits is the largest working precision a plan may carry.
	// Rendering multiplies the sum by base^digits, which needs close to
	// twice the working precision, and that product must stay within
	// [big.MaxPrec].
	MaxBits = big.MaxPrec/2 - 64
)

var (
	errDigitsRange     = errors.New("digit count out of range")
	errBaseRange       = errors.New("base out of range")
	errPrecisionRange  = errors.New("working precision out of range")
	errTermRange       = errors.New("term count out of range")
	errUnknownBackend  = errors.New("unknown backend")
	errInvalidRounding = errors.New("invalid rounding mode")
)

func newRequest(digits, base int64) (Request, error) {
	switch {
	case digits <= 0:
		return Request{}, fmt.Errorf("digit count must be positive, got %v: %w", digits, errDigitsRange)
	case digits > math.MaxInt32:
		return Request{}, fmt.Errorf("digit count must be at most %v, got %v: %w", math.MaxInt32, digits, errDigitsRange)
	case base < MinBase || base > MaxBase:
		return Request{}, fmt.Errorf("base may only vary from %v to %v, got %v: %w", MinBase, MaxBase, base, errBaseRange)
	}
	return Request{digits: int32(digits), base: int32(base)}, nil
}

// NewRequest returns a request for digits fractional digits of π in the given base.
// NewRequest returns an error if digits is not positive or does not fit in int32,
// or if base is outside [[MinBase], [MaxBase]].
func NewRequest(digits, base int) (Request, error) {
	return newRequest(int64(digits), int64(base))
}

// ParseRequest parses the digit count and base from their base-10 string forms.
// Both values must fit in int32.
// An empty base means [DefaultBase].
// ParseRequest returns an error if either string is not a valid integer
// or if the values are out of range (see [NewRequest]).
func ParseRequest(digits, base string) (Request, error) {
	d, err := strconv.ParseInt(digits, 10, 32)
	if err != nil {
		return Request{}, fmt.Errorf("parsing digit count %q: %w", digits, err)
	}
	b := int64(DefaultBase)
	if base != "" {
		b, err = strconv.ParseInt(base, 10, 32)
		if err != nil {
			return Request{}, fmt.Errorf("parsing base %q: %w", base, err)
		}
	}
	return newRequest(d, b)
}

// Digits returns the number of requested fractional digits.
func (r Request) Digits() int {
	return int(r.digits)
}

// Base returns the radix of the requested digits.
func (r Request) Base() int {
	return int(r.base)
}

// String implements [fmt.Stringer] interface.
func (r Request) String() string {
	return fmt.Sprintf("%v digits in base %v", r.digits, r.base)
}

func (r Request) validate() error {
	_, err := newRequest(int64(r.digits), int64(r.base))
	return err
}

// Plan holds the working precision and the number of series terms
// needed to produce the digits of a [Request].
type Plan struct {
	Bits  uint   // working precision in bits
	Terms uint64 // number of series terms
}

// NewPlan derives the working precision and term count for a request:
//
//	Bits  = ⌈digits · log2(base) + 10⌉
//	Terms = ⌈(digits · log2(base) / 4 + 10) · 1.0001⌉
//
// The term count solves k² · 16^k ≈ (15/64) · base^digits using the
// approximation k ≈ digits · log2(base) / 4.
// The additive margins and the factor 1.0001 absorb round-off in the
// approximation itself, which under-counts at a million digits and beyond.
//
// NewPlan returns an error if the request is invalid or if the working
// precision would exceed [MaxBits].
func NewPlan(r Request) (Plan, error) {
	if err := r.validate(); err != nil {
		return Plan{}, err
	}
	l := logger.With(
		zap.Int32("digits", r.digits),
		zap.Int32("base", r.base),
	)
	l.Debug("NewPlan: enter")
	bits := float64(r.digits) * math.Log2(float64(r.base))
	prec := math.Ceil(bits + 10)
	terms := math.Ceil((bits/4 + 10) * 1.0001)
	if prec > MaxBits {
		return Plan{}, fmt.Errorf("%v needs %v bits of working precision, but at most %v are supported: %w", r, prec, uint64(MaxBits), errPrecisionRange)
	}
	k := kint(terms)
	if !k.fits() {
		return Plan{}, fmt.Errorf("%v needs %v series terms: %w", r, terms, errTermRange)
	}
	p := Plan{Bits: uint(prec), Terms: uint64(k)}
	l.Debug("NewPlan: exit",
		zap.Uint("bits", p.Bits),
		zap.Uint64("terms", p.Terms),
	)
	return p, nil
}

// RoundingMode selects how the last requested digit is produced.
type RoundingMode int

const (
	// Truncate discards the digits beyond the requested count.
	// Increasing the digit count never changes digits already produced.
	Truncate RoundingMode = iota
	// HalfEven rounds the last digit to nearest, ties to even.
	HalfEven
)

// ParseRoundingMode converts "truncate" or "half-even" into a [RoundingMode].
// The empty string means [Truncate].
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch s {
	case "", "truncate":
		return Truncate, nil
	case "half-even":
		return HalfEven, nil
	}
	return 0, fmt.Errorf("rounding mode %q: %w", s, errInvalidRounding)
}

// String implements [fmt.Stringer] interface.
func (m RoundingMode) String() string {
	switch m {
	case Truncate:
		return "truncate"
	case HalfEven:
		return "half-even"
	}
	return fmt.Sprintf("RoundingMode(%d)", int(m))
}

// Options tune how [Calculate] evaluates a request.
// The zero value selects the "float" backend, [Truncate] and no progress reporting.
type Options struct {
	Backend  string           // name of the arithmetic backend, see [Backends]
	Rounding RoundingMode     // rounding of the last digit
	Progress ProgressReporter // optional summation progress callback
}

func (o Options) backend() string {
	if o.Backend == "" {
		return defaultBackend
	}
	return o.Backend
}

// Calculate computes the digits of π described by the request.
// The computation is single-threaded and always runs to completion.
// Calculate returns an error if the request is invalid, if its plan cannot
// be represented, or if the options name an unknown backend or rounding mode.
func Calculate(r Request, opts Options) (Digits, error) {
	p, err := NewPlan(r)
	if err != nil {
		return Digits{}, err
	}
	name := opts.backend()
	eval, ok := backends[name]
	if !ok {
		return Digits{}, fmt.Errorf("backend %q: %w", name, errUnknownBackend)
	}
	if opts.Rounding != Truncate && opts.Rounding != HalfEven {
		return Digits{}, fmt.Errorf("%v: %w", opts.Rounding, errInvalidRounding)
	}
	l := logger.With(
		zap.Stringer("request", r),
		zap.String("backend", name),
		zap.Stringer("rounding", opts.Rounding),
	)
	l.Debug("Calculate: enter",
		zap.Uint("bits", p.Bits),
		zap.Uint64("terms", p.Terms),
	)
	s := eval(p, r.Base(), r.Digits()+1, opts.Rounding, opts.Progress)
	d := render(s, r)
	l.Debug("Calculate: exit",
		zap.Int("length", len(d.frac)),
	)
	return d, nil
}

// Compute is like [Calculate] with the zero [Options].
func Compute(digits, base int) (Digits, error) {
	r, err := NewRequest(digits, base)
	if err != nil {
		return Digits{}, err
	}
	return Calculate(r, Options{})
}
