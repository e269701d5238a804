package pi

import (
	"math"
	"math/big"
	"strings"
	"testing"
)

func mustParseBfloat(s string) *bfloat {
	f, _, err := big.ParseFloat(s, 10, 256, big.ToNearestEven)
	if err != nil {
		panic(err)
	}
	return (*bfloat)(f)
}

func TestBfloat_text(t *testing.T) {
	tests := []struct {
		x          string
		base, prec int
		mode       RoundingMode
		want       string
	}{
		{"1.25", 10, 5, Truncate, "125"},
		{"1.25", 10, 2, Truncate, "12"},
		{"1.25", 10, 2, HalfEven, "12"},
		{"1.75", 10, 2, Truncate, "17"},
		{"1.75", 10, 2, HalfEven, "18"},
		{"1.96", 10, 2, HalfEven, "2"},
		{"9.96", 10, 2, Truncate, "99"},
		{"9.96", 10, 2, HalfEven, "1"},
		{"1234.5", 10, 3, Truncate, "123"},
		{"1234.5", 10, 4, HalfEven, "1234"},
		{"1235.5", 10, 4, HalfEven, "1236"},
		{"0.001953125", 10, 4, Truncate, "1953"},
		{"0.001953125", 10, 4, HalfEven, "1953"},
		{"0.0625", 2, 3, Truncate, "1"},
		{"255", 16, 4, Truncate, "FF"},
		{"255", 2, 8, Truncate, "11111111"},
		{"35", 36, 1, Truncate, "Z"},
		{"35", 62, 1, Truncate, "Z"},
		{"36", 62, 1, Truncate, "a"},
		{"61", 62, 1, Truncate, "z"},
		{"1", 3, 10, Truncate, "1"},
		{"0", 10, 10, Truncate, ""},
		{"-1", 10, 10, Truncate, ""},
		{"1", 10, 0, Truncate, ""},
	}
	for _, tt := range tests {
		x := mustParseBfloat(tt.x)
		got := x.text(tt.base, tt.prec, tt.mode)
		if got != tt.want {
			t.Errorf("text(%v, %v, %v, %v) = %q, want %q", tt.x, tt.base, tt.prec, tt.mode, got, tt.want)
		}
	}
}

func TestBfloat_ilog(t *testing.T) {
	for base := MinBase; base <= MaxBase; base++ {
		for _, x := range []string{"0.001", "0.5", "1", "1.14159", "61", "62", "1000", "123456789"} {
			z := mustParseBfloat(x)
			f, _ := (*big.Float)(z).Float64()
			want := int(math.Floor(math.Log(f)/math.Log(float64(base)))) + 1
			got := z.ilog(base)
			if got < want-1 || got > want+1 {
				t.Errorf("ilog(%v, %v) = %v, want %v ± 1", x, base, got, want)
			}
		}
	}
}

func TestSwapCase(t *testing.T) {
	tests := []struct {
		s, want string
	}{
		{"", ""},
		{"0123456789", "0123456789"},
		{"243f6a88", "243F6A88"},
		{"azAZ", "AZaz"},
	}
	for _, tt := range tests {
		got := swapCase(tt.s)
		if got != tt.want {
			t.Errorf("swapCase(%q) = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestKint(t *testing.T) {
	t.Run("lin", func(t *testing.T) {
		tests := []struct {
			k    kint
			c    uint64
			want uint64
		}{
			{0, 1, 1},
			{0, 6, 6},
			{1, 4, 12},
			{300_000_000, 5, 2_400_000_005},
			{math.MaxUint32, 6, 8*math.MaxUint32 + 6},
		}
		for _, tt := range tests {
			got := tt.k.lin(tt.c)
			if got != tt.want {
				t.Errorf("kint(%v).lin(%v) = %v, want %v", tt.k, tt.c, got, tt.want)
			}
		}
	})

	t.Run("exp", func(t *testing.T) {
		tests := []struct {
			k    kint
			want int
		}{
			{0, 0},
			{1, 4},
			{300_000_000, 1_200_000_000},
		}
		for _, tt := range tests {
			got := tt.k.exp()
			if got != tt.want {
				t.Errorf("kint(%v).exp() = %v, want %v", tt.k, got, tt.want)
			}
		}
	})

	t.Run("fits", func(t *testing.T) {
		tests := []struct {
			k    kint
			want bool
		}{
			{0, false},
			{1, true},
			{300_000_000, true},
			{(math.MaxUint64-6)/8 + 1, true},
			{(math.MaxUint64-6)/8 + 2, false},
			{math.MaxUint64, false},
		}
		for _, tt := range tests {
			got := tt.k.fits()
			if got != tt.want {
				t.Errorf("kint(%v).fits() = %v, want %v", tt.k, got, tt.want)
			}
		}
	})
}

func TestSum(t *testing.T) {
	tests := []struct {
		bits  uint
		terms uint64
		want  string
	}{
		{44, 19, "11415926535"},
		{3332, 841, "1" + frac10[:249]},
	}
	for _, tt := range tests {
		a := newFloatArith(tt.bits)
		n := sum[*bfloat](a, tt.terms, nil)
		got := n.text(10, len(tt.want), Truncate)
		a.release(n)
		if got != strings.TrimRight(tt.want, "0") {
			t.Errorf("sum(%v bits, %v terms) = %q, want %q", tt.bits, tt.terms, got, tt.want)
		}
	}
}

func TestProgressTracker(t *testing.T) {
	tests := []struct {
		total     uint64
		wantCalls int
	}{
		{1, 1},
		{2, 2},
		{19, 19},
		{100, 100},
		{841, 94},
		{10_000, 100},
	}
	for _, tt := range tests {
		calls := 0
		last := 0.0
		tr := newProgressTracker(tt.total, func(p float64) {
			calls++
			if p <= last && p != 1 {
				t.Errorf("total %v: progress %v after %v", tt.total, p, last)
			}
			last = p
		})
		for i := uint64(0); i < tt.total; i++ {
			tr.step()
		}
		tr.done()
		if calls != tt.wantCalls {
			t.Errorf("total %v: %v calls, want %v", tt.total, calls, tt.wantCalls)
		}
		if last != 1 {
			t.Errorf("total %v: last progress %v, want 1", tt.total, last)
		}
	}

	t.Run("nil", func(t *testing.T) {
		tr := newProgressTracker(10, nil)
		for i := 0; i < 10; i++ {
			tr.step()
		}
		tr.done()
	})
}
