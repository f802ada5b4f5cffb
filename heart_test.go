package heart

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const tolerance = 1e-9

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approx() cmp.Option { return cmpopts.EquateApprox(0, tolerance) }

func TestDomain(t *testing.T) {
	ts := Domain(Samples)
	if len(ts) != Samples {
		t.Fatalf("len(Domain(%d)) = %d", Samples, len(ts))
	}
	if ts[0] != 0 {
		t.Errorf("t[0] = %v, want 0", ts[0])
	}
	if ts[Samples-1] != 2*math.Pi {
		t.Errorf("t[last] = %v, want 2π", ts[Samples-1])
	}

	step := 2 * math.Pi / float64(Samples-1)
	for i, ti := range ts {
		if math.Abs(ti-float64(i)*step) > tolerance {
			t.Fatalf("t[%d] = %v, want %v", i, ti, float64(i)*step)
		}
		if i > 0 && ti <= ts[i-1] {
			t.Fatalf("domain not strictly increasing at %d: %v <= %v", i, ti, ts[i-1])
		}
	}
}

func TestDomainSmall(t *testing.T) {
	tests := []struct {
		n    int
		want []float64
	}{
		{-1, nil},
		{0, nil},
		{1, []float64{0}},
		{2, []float64{0, 2 * math.Pi}},
		{3, []float64{0, math.Pi, 2 * math.Pi}},
		{5, []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2, 2 * math.Pi}},
	}
	for _, tt := range tests {
		diff(t, tt.want, Domain(tt.n), approx())
	}
}

func TestSampleFormula(t *testing.T) {
	ts := Domain(Samples)
	xs, ys := Sample(Samples)

	wantX := make([]float64, len(ts))
	wantY := make([]float64, len(ts))
	for i, ti := range ts {
		wantX[i] = 16 * math.Pow(math.Sin(ti), 3)
		wantY[i] = 13*math.Cos(ti) - 5*math.Cos(2*ti) - 2*math.Cos(3*ti) - math.Cos(4*ti)
	}

	diff(t, wantX, xs, cmpopts.EquateApprox(0, tolerance))
	diff(t, wantY, ys, cmpopts.EquateApprox(0, tolerance))
}

func TestSampleLengths(t *testing.T) {
	for _, n := range []int{0, 1, 2, 17, Samples} {
		xs, ys := Sample(n)
		ts := Domain(n)
		if len(xs) != len(ts) || len(ys) != len(ts) {
			t.Errorf("Sample(%d): len(xs)=%d len(ys)=%d, want %d", n, len(xs), len(ys), len(ts))
		}
	}
}

func TestSampleBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		t      float64
		wantX  float64
		wantY  float64
		xLimit float64
	}{
		{"t=0", 0, 0, 5, tolerance},
		{"t=π", math.Pi, 0, -17, tolerance},
		{"t=π/2", math.Pi / 2, 16, 4, tolerance},
		{"t=2π", 2 * math.Pi, 0, 5, tolerance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := X(tt.t); math.Abs(got-tt.wantX) > tt.xLimit {
				t.Errorf("X(%v) = %v, want %v", tt.t, got, tt.wantX)
			}
			if got := Y(tt.t); math.Abs(got-tt.wantY) > tolerance {
				t.Errorf("Y(%v) = %v, want %v", tt.t, got, tt.wantY)
			}
		})
	}

	xs, ys := Sample(Samples)
	if math.Abs(xs[0]) > tolerance || math.Abs(ys[0]-5) > tolerance {
		t.Errorf("first sample = (%v, %v), want (0, 5)", xs[0], ys[0])
	}
	if math.Abs(xs[Samples-1]) > tolerance || math.Abs(ys[Samples-1]-5) > tolerance {
		t.Errorf("last sample = (%v, %v), want (0, 5)", xs[Samples-1], ys[Samples-1])
	}
}

func TestSampleSymmetry(t *testing.T) {
	xs, ys := Sample(Samples)
	for k := 0; k < Samples; k++ {
		j := Samples - 1 - k
		if math.Abs(xs[k]+xs[j]) > tolerance {
			t.Fatalf("x[%d] = %v, x[%d] = %v: want negated", k, xs[k], j, xs[j])
		}
		if math.Abs(ys[k]-ys[j]) > tolerance {
			t.Fatalf("y[%d] = %v, y[%d] = %v: want equal", k, ys[k], j, ys[j])
		}
	}
}

func TestSampleFinite(t *testing.T) {
	xs, ys := Sample(Samples)
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) || math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			t.Fatalf("sample %d not finite: (%v, %v)", i, xs[i], ys[i])
		}
		if math.Abs(xs[i]) > 16+tolerance {
			t.Fatalf("x[%d] = %v outside [-16, 16]", i, xs[i])
		}
		if ys[i] < -17-tolerance || ys[i] > 13 {
			t.Fatalf("y[%d] = %v outside [-17, 13]", i, ys[i])
		}
	}
}

func TestSampleIdempotent(t *testing.T) {
	xs1, ys1 := Sample(Samples)
	xs2, ys2 := Sample(Samples)
	diff(t, xs1, xs2)
	diff(t, ys1, ys2)
}

func BenchmarkSample(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Sample(Samples)
	}
}
