package core

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/go-hal/hwy"
)

const (
	tol32 = 2.5e-7
	tol64 = 8e-16
)

func bucket32(x float32) int {
	return int(math.Float32bits(x)>>15) & 0xff
}

func bucket64(x float64) int {
	return int(math.Float64bits(x)>>44) & 0xff
}

func log32(src []float32) []float32 {
	dst := make([]float32, len(src))
	Log32f(src, dst, len(src))
	return dst
}

func log64(src []float64) []float64 {
	dst := make([]float64, len(src))
	Log64f(src, dst, len(src))
	return dst
}

// logSpaced returns n points spread evenly in log scale over [10^lo, 10^hi].
func logSpaced(n int, lo, hi float64) []float64 {
	xs := make([]float64, n)
	for k := range xs {
		xs[k] = math.Pow(10, lo+(hi-lo)*float64(k)/float64(n-1))
	}
	return xs
}

func TestLog32f(t *testing.T) {
	tests := []struct {
		name  string
		input float32
	}{
		{"ln(1) = 0", 1},
		{"ln(2)", 2},
		{"ln(0.5)", 0.5},
		{"ln(100)", 100},
		{"ln(10)", 10},
		{"ln(0.001)", 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := log32([]float32{tt.input})[0]
			want := float32(math.Log(float64(tt.input)))
			if got != want {
				t.Errorf("Log32f(%v) = %v, want %v", tt.input, got, want)
			}
		})
	}
}

func TestLog64f(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
		tol   float64
	}{
		{"ln(1) = 0", 1, 0, 0},
		{"ln(2)", 2, math.Ln2, 0},
		{"ln(0.5)", 0.5, -math.Ln2, 0},
		{"ln(e)", math.E, 1, 2.3e-16},
		{"ln(100)", 100, math.Log(100), 4 * tol64},
		{"ln(1e-300)", 1e-300, math.Log(1e-300), 700 * tol64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := log64([]float64{tt.input})[0]
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("Log64f(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLogStatus(t *testing.T) {
	src32 := []float32{1, 2, 3}
	if got := Log32f(src32, make([]float32, 3), 3); got != OK {
		t.Errorf("Log32f status = %v, want %v", got, OK)
	}
	src64 := []float64{1, 2, 3}
	if got := Log64f(src64, make([]float64, 3), 3); got != OK {
		t.Errorf("Log64f status = %v, want %v", got, OK)
	}
}

func TestLogOfOneIsExactlyZero(t *testing.T) {
	for _, n := range []int{1, 3, 17, 64, 100} {
		src32 := make([]float32, n)
		src64 := make([]float64, n)
		for i := range n {
			src32[i] = 1
			src64[i] = 1
		}
		for i, v := range log32(src32) {
			if math.Float32bits(v) != 0 {
				t.Errorf("n=%d: Log32f(1)[%d] = %v, want +0", n, i, v)
			}
		}
		for i, v := range log64(src64) {
			if math.Float64bits(v) != 0 {
				t.Errorf("n=%d: Log64f(1)[%d] = %v, want +0", n, i, v)
			}
		}
	}
}

func TestLog32fAccuracy(t *testing.T) {
	xs := logSpaced(10000, -30, 30)
	src := make([]float32, len(xs))
	for i, x := range xs {
		src[i] = float32(x)
	}
	got := log32(src)

	inLast := 0
	for i, x := range src {
		if bucket32(x) == 255 {
			inLast++
		}
		want := math.Log(float64(x))
		if d := math.Abs(float64(got[i]) - want); d > tol32*max(1, math.Abs(want)) {
			t.Errorf("Log32f(%v) = %v, want %v (diff %g)", x, got[i], want, d)
		}
	}
	if inLast == 0 {
		t.Error("sample never reaches the last bucket")
	}
}

func TestLog64fAccuracy(t *testing.T) {
	for _, r := range []struct{ lo, hi float64 }{{-30, 30}, {-300, 300}} {
		t.Run(fmt.Sprintf("1e%v..1e%v", r.lo, r.hi), func(t *testing.T) {
			src := logSpaced(10000, r.lo, r.hi)
			got := log64(src)
			for i, x := range src {
				want := math.Log(x)
				if d := math.Abs(got[i] - want); d > tol64*max(1, math.Abs(want)) {
					t.Errorf("Log64f(%v) = %v, want %v (diff %g)", x, got[i], want, d)
				}
			}
		})
	}
}

func TestLogScaleByPowerOfTwo(t *testing.T) {
	ks := []int{-100, -37, -1, 1, 13, 100}

	for j := range 200 {
		x32 := float32(math.Pow(2, float64(j)/200))
		x64 := float64(x32)
		r32 := log32([]float32{x32})[0]
		r64 := log64([]float64{x64})[0]

		for _, k := range ks {
			shift := float64(k) * math.Ln2

			rs32 := log32([]float32{float32(math.Ldexp(x64, k))})[0]
			m := max(1, math.Abs(float64(r32)), math.Abs(float64(rs32)))
			if d := math.Abs(float64(rs32) - (float64(r32) + shift)); d > 4e-7*m {
				t.Errorf("Log32f(%v·2^%d) - Log32f(%v) off from %d·ln2 by %g", x32, k, x32, k, d)
			}

			rs64 := log64([]float64{math.Ldexp(x64, k)})[0]
			m = max(1, math.Abs(r64), math.Abs(rs64))
			if d := math.Abs(rs64 - (r64 + shift)); d > tol64*m {
				t.Errorf("Log64f(%v·2^%d) - Log64f(%v) off from %d·ln2 by %g", x64, k, x64, k, d)
			}
		}
	}
}

func TestLogMonotonicSample(t *testing.T) {
	xs := logSpaced(10000, -30, 30)
	src32 := make([]float32, len(xs))
	for i, x := range xs {
		src32[i] = float32(x)
	}
	r32 := log32(src32)
	r64 := log64(xs)
	for i := 1; i < len(xs); i++ {
		if r32[i] < r32[i-1] {
			t.Errorf("Log32f decreases between %v and %v: %v > %v", src32[i-1], src32[i], r32[i-1], r32[i])
		}
		if r64[i] < r64[i-1] {
			t.Errorf("Log64f decreases between %v and %v: %v > %v", xs[i-1], xs[i], r64[i-1], r64[i])
		}
	}
}

// Sweeps [1, 2) across every bucket boundary, including the step into the
// last bucket.
func TestLogMonotonicDense(t *testing.T) {
	t.Run("float32", func(t *testing.T) {
		var src []float32
		for b := math.Float32bits(1); b < math.Float32bits(2); b += 37 {
			src = append(src, math.Float32frombits(b))
		}
		got := log32(src)
		for i := 1; i < len(src); i++ {
			if got[i] <= got[i-1] {
				t.Errorf("Log32f not increasing between %v (bucket %d) and %v (bucket %d): %v, %v",
					src[i-1], bucket32(src[i-1]), src[i], bucket32(src[i]), got[i-1], got[i])
			}
		}
	})

	t.Run("float64", func(t *testing.T) {
		var src []float64
		step := uint64(1)<<52/40000 + 12345
		for b := math.Float64bits(1); b < math.Float64bits(2); b += step {
			src = append(src, math.Float64frombits(b))
		}
		got := log64(src)
		for i := 1; i < len(src); i++ {
			if got[i] <= got[i-1] {
				t.Errorf("Log64f not increasing between %v (bucket %d) and %v (bucket %d): %v, %v",
					src[i-1], bucket64(src[i-1]), src[i], bucket64(src[i]), got[i-1], got[i])
			}
		}
	})
}

// unreducedLastBucket is what the last bucket would give if x0 were left
// relative to 1+255/256 while the table supplies (ln 2, 1/2).
func unreducedLastBucket(x float64) float64 {
	frac, exp := math.Frexp(x)
	d := 2*frac - (1 + 255.0/256)
	return float64(exp-1)*math.Ln2 + math.Ln2 + math.Log1p(d/2)
}

func TestLogLastBucket(t *testing.T) {
	// 1 + 255/256 starts the last bucket; the rest sample inside it.
	inputs := []float64{1.99609375, 1.997, 1.998, 1.999, 1.9999, 3.996}

	for _, x := range inputs {
		if d := unreducedLastBucket(x) - math.Log(x); d < 0.0019 || d > 0.0020 {
			t.Fatalf("unreduced log(%v) is off by %g, want about 1/512", x, d)
		}
	}

	t.Run("float32", func(t *testing.T) {
		src := make([]float32, len(inputs))
		for i, x := range inputs {
			src[i] = float32(x)
			if bucket32(src[i]) != 255 {
				t.Fatalf("%v is in bucket %d, want 255", src[i], bucket32(src[i]))
			}
		}
		got := log32(src)
		for i, x := range src {
			want := math.Log(float64(x))
			if d := math.Abs(float64(got[i]) - want); d > tol32*max(1, math.Abs(want)) {
				t.Errorf("Log32f(%v) = %v, want %v (diff %g)", x, got[i], want, d)
			}
		}

		first := float32(1.99609375)
		r := log32([]float32{math.Nextafter32(first, 0), first})
		if r[1] <= r[0] {
			t.Errorf("Log32f steps down entering the last bucket: %v, %v", r[0], r[1])
		}
	})

	t.Run("float64", func(t *testing.T) {
		for _, x := range inputs {
			if bucket64(x) != 255 {
				t.Fatalf("%v is in bucket %d, want 255", x, bucket64(x))
			}
		}
		got := log64(inputs)
		for i, x := range inputs {
			want := math.Log(x)
			if d := math.Abs(got[i] - want); d > tol64*max(1, math.Abs(want)) {
				t.Errorf("Log64f(%v) = %v, want %v (diff %g)", x, got[i], want, d)
			}
		}

		first := 1.99609375
		r := log64([]float64{math.Nextafter(first, 0), first})
		if r[1] <= r[0] {
			t.Errorf("Log64f steps down entering the last bucket: %v, %v", r[0], r[1])
		}
	})
}

func TestLogTagsAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	const n = 1001
	src32 := make([]float32, n)
	src64 := make([]float64, n)
	for i := range n {
		src64[i] = math.Exp(160*rng.Float64() - 80)
		src32[i] = float32(src64[i])
	}
	want32 := log32(src32)
	want64 := log64(src64)

	tags32 := []hwy.TypedTag[float32]{
		hwy.CappedTag[float32]{N: 1},
		hwy.CappedTag[float32]{N: 3},
		hwy.CappedTag[float32]{N: 7},
		hwy.FixedTag128[float32]{},
		hwy.FixedTag512[float32]{},
	}
	for _, tag := range tags32 {
		t.Run("float32/"+tag.Name(), func(t *testing.T) {
			got := make([]float32, n)
			Log32fTag(tag, src32, got, n)
			for i := range n {
				if math.Float32bits(got[i]) != math.Float32bits(want32[i]) {
					t.Fatalf("Log32fTag(%s)[%d] = %v, want %v", tag.Name(), i, got[i], want32[i])
				}
			}
		})
	}

	tags64 := []hwy.TypedTag[float64]{
		hwy.CappedTag[float64]{N: 1},
		hwy.CappedTag[float64]{N: 3},
		hwy.FixedTag256[float64]{},
		hwy.FixedTag512[float64]{},
	}
	for _, tag := range tags64 {
		t.Run("float64/"+tag.Name(), func(t *testing.T) {
			got := make([]float64, n)
			Log64fTag(tag, src64, got, n)
			for i := range n {
				if math.Float64bits(got[i]) != math.Float64bits(want64[i]) {
					t.Fatalf("Log64fTag(%s)[%d] = %v, want %v", tag.Name(), i, got[i], want64[i])
				}
			}
		})
	}
}

func TestLogTailLengths(t *testing.T) {
	// Every length up to a few strips must match element-by-element calls.
	base := logSpaced(70, -5, 5)
	for n := range len(base) {
		src := make([]float32, n)
		for i := range n {
			src[i] = float32(base[i])
		}
		got := log32(src)
		for i, x := range src {
			if want := log32([]float32{x})[0]; got[i] != want {
				t.Errorf("n=%d: Log32f[%d] = %v, want %v", n, i, got[i], want)
			}
		}

		got64 := log64(base[:n])
		for i, x := range base[:n] {
			if want := log64([]float64{x})[0]; got64[i] != want {
				t.Errorf("n=%d: Log64f[%d] = %v, want %v", n, i, got64[i], want)
			}
		}
	}
}

func TestLogInPlace(t *testing.T) {
	src := []float32{0.25, 1, 3, 7.5, 1e6, 2e-9, 42}
	want := log32(src)
	buf := append([]float32(nil), src...)
	Log32f(buf, buf, len(buf))
	for i := range buf {
		if buf[i] != want[i] {
			t.Errorf("in-place Log32f[%d] = %v, want %v", i, buf[i], want[i])
		}
	}

	src64 := []float64{0.25, 1, 3, 7.5, 1e6, 2e-9, 42}
	want64 := log64(src64)
	buf64 := append([]float64(nil), src64...)
	Log64f(buf64, buf64, len(buf64))
	for i := range buf64 {
		if buf64[i] != want64[i] {
			t.Errorf("in-place Log64f[%d] = %v, want %v", i, buf64[i], want64[i])
		}
	}
}

func TestLogPrefixOnly(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if got := Log32f(nil, nil, 0); got != OK {
			t.Errorf("Log32f(nil, nil, 0) = %v, want OK", got)
		}
		if got := Log64f(nil, nil, 0); got != OK {
			t.Errorf("Log64f(nil, nil, 0) = %v, want OK", got)
		}
	})

	t.Run("prefix", func(t *testing.T) {
		src := []float32{2, 2, 2, 2, 2}
		dst := []float32{-1, -1, -1, -1, -1}
		Log32f(src, dst, 3)
		for i, v := range dst {
			want := float32(-1)
			if i < 3 {
				want = float32(math.Ln2)
			}
			if v != want {
				t.Errorf("dst[%d] = %v, want %v", i, v, want)
			}
		}
	})
}

func TestLogShortBufferPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Log32f with n > len(dst) did not panic")
		}
	}()
	Log32f(make([]float32, 8), make([]float32, 4), 8)
}

func TestLogSpecialValues(t *testing.T) {
	ln2f := float32(math.Ln2)

	t.Run("float32", func(t *testing.T) {
		subnormal := math.Float32frombits(1)
		inf := float32(math.Inf(1))
		nan := float32(math.NaN())
		src := []float32{0, float32(math.Copysign(0, -1)), subnormal, inf, nan, -2, -0.5, float32(math.Inf(-1))}
		got := log32(src)

		zero := float32(-127) * ln2f
		if got[0] != zero || got[1] != zero {
			t.Errorf("Log32f(±0) = %v, %v, want %v", got[0], got[1], zero)
		}
		if got[2] < zero || got[2] >= log32([]float32{math.SmallestNonzeroFloat32 * (1 << 23)})[0] {
			t.Errorf("Log32f(subnormal) = %v, want in [%v, ln(MinNormal))", got[2], zero)
		}
		if want := float32(128) * ln2f; got[3] != want {
			t.Errorf("Log32f(+Inf) = %v, want %v", got[3], want)
		}
		if got[4] < 128*ln2f || got[4] >= 129*ln2f {
			t.Errorf("Log32f(NaN) = %v, want in [128·ln2, 129·ln2)", got[4])
		}
		if got[5] != ln2f || got[6] != -ln2f || got[7] != got[3] {
			t.Errorf("Log32f(-2, -0.5, -Inf) = %v, %v, %v, want sign ignored", got[5], got[6], got[7])
		}
	})

	t.Run("float64", func(t *testing.T) {
		src := []float64{0, math.Copysign(0, -1), math.SmallestNonzeroFloat64, math.Inf(1), math.NaN(), -2, -0.5, math.Inf(-1)}
		got := log64(src)

		ln2 := math.Ln2
		zero := -1023 * ln2
		if got[0] != zero || got[1] != zero {
			t.Errorf("Log64f(±0) = %v, %v, want %v", got[0], got[1], zero)
		}
		if got[2] < zero || got[2] > zero+1e-15 {
			t.Errorf("Log64f(subnormal) = %v, want about %v", got[2], zero)
		}
		if want := 1024 * ln2; got[3] != want {
			t.Errorf("Log64f(+Inf) = %v, want %v", got[3], want)
		}
		if got[4] < 1024*math.Ln2 || got[4] >= 1025*math.Ln2 {
			t.Errorf("Log64f(NaN) = %v, want in [1024·ln2, 1025·ln2)", got[4])
		}
		if got[5] != math.Ln2 || got[6] != -math.Ln2 || got[7] != got[3] {
			t.Errorf("Log64f(-2, -0.5, -Inf) = %v, %v, %v, want sign ignored", got[5], got[6], got[7])
		}
	})
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		s    Status
		want string
	}{
		{OK, "ok"},
		{NotImplemented, "not implemented"},
		{Unknown, "unknown error"},
		{Status(7), "status(7)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", int(tt.s), got, tt.want)
		}
	}
}

// Benchmarks

var benchSizes = []int{16, 1000, 100000}

func BenchmarkLog32f(b *testing.B) {
	for _, n := range benchSizes {
		src := make([]float32, n)
		for i := range src {
			src[i] = float32(i) + 0.5
		}
		dst := make([]float32, n)
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			b.SetBytes(int64(4 * n))
			b.ReportAllocs()
			for b.Loop() {
				Log32f(src, dst, n)
			}
		})
	}
}

func BenchmarkLog32f_Stdlib(b *testing.B) {
	n := 1000
	src := make([]float32, n)
	for i := range src {
		src[i] = float32(i) + 0.5
	}
	dst := make([]float32, n)

	b.ReportAllocs()
	for b.Loop() {
		for i, x := range src {
			dst[i] = float32(math.Log(float64(x)))
		}
	}
}

func BenchmarkLog64f(b *testing.B) {
	for _, n := range benchSizes {
		src := make([]float64, n)
		for i := range src {
			src[i] = float64(i) + 0.5
		}
		dst := make([]float64, n)
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			b.SetBytes(int64(8 * n))
			b.ReportAllocs()
			for b.Loop() {
				Log64f(src, dst, n)
			}
		})
	}
}
