// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0.0, want: 0},
		{name: "max positive", input: 1.0, want: math.MaxInt16},
		{name: "max negative", input: -1.0, want: math.MinInt16},
		{name: "half positive", input: 0.5, want: 16383},   // 16383.5 truncated
		{name: "half negative", input: -0.5, want: -16384}, // exact
		{name: "quarter positive", input: 0.25, want: 8191},
		{name: "quarter negative", input: -0.25, want: -8192},
		{name: "small positive", input: 0.001, want: 32},
		{name: "small negative", input: -0.001, want: -32},
		{name: "tiny negative truncates to zero", input: -1e-9, want: 0},
		{name: "clamp over max", input: 2.0, want: math.MaxInt16},
		{name: "clamp under min", input: -5.0, want: math.MinInt16},
		{name: "clamp way over max", input: 100.0, want: math.MaxInt16},
		{name: "positive infinity", input: float32(math.Inf(1)), want: math.MaxInt16},
		{name: "negative infinity", input: float32(math.Inf(-1)), want: math.MinInt16},
		{name: "nan", input: float32(math.NaN()), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Float32ToInt16(tt.input)
			if got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt16_ClampEquivalence(t *testing.T) {
	t.Parallel()

	if Float32ToInt16(2.0) != Float32ToInt16(1.0) {
		t.Errorf("Float32ToInt16(2.0) = %d, want same as 1.0 (%d)", Float32ToInt16(2.0), Float32ToInt16(1.0))
	}

	if Float32ToInt16(-5.0) != Float32ToInt16(-1.0) {
		t.Errorf("Float32ToInt16(-5.0) = %d, want same as -1.0 (%d)", Float32ToInt16(-5.0), Float32ToInt16(-1.0))
	}
}

// Truncation must follow the double precision product, not the float32 one.
func TestFloat32ToInt16_DoublePrecisionProduct(t *testing.T) {
	t.Parallel()

	for i := range 100000 {
		x := float32(i) / 100000
		want := int16(float64(x) * 32767)
		if got := Float32ToInt16(x); got != want {
			t.Fatalf("Float32ToInt16(%v) = %d, want %d", x, got, want)
		}

		want = int16(float64(-x) * 32768)
		if got := Float32ToInt16(-x); got != want {
			t.Fatalf("Float32ToInt16(%v) = %d, want %d", -x, got, want)
		}
	}
}

func TestFloat32ToInt16_RoundTripError(t *testing.T) {
	t.Parallel()

	const tolerance = 1.0/32767 + 1e-6

	for f := -1.0; f <= 1.0; f += 0.0001 {
		back := Int16ToFloat32(Float32ToInt16(float32(f)))
		if diff := math.Abs(float64(back) - float64(float32(f))); diff > tolerance {
			t.Errorf("round trip of %v = %v, error %v exceeds %v", f, back, diff, tolerance)
		}
	}
}

func TestInt16ToFloat32_Extremes(t *testing.T) {
	t.Parallel()

	if got := Int16ToFloat32(math.MaxInt16); got != 1 {
		t.Errorf("Int16ToFloat32(MaxInt16) = %v, want 1", got)
	}

	if got := Int16ToFloat32(math.MinInt16); got != -1 {
		t.Errorf("Int16ToFloat32(MinInt16) = %v, want -1", got)
	}

	if got := Int16ToFloat32(0); got != 0 {
		t.Errorf("Int16ToFloat32(0) = %v, want 0", got)
	}
}

func TestFloat32ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1.0)

	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToInt16(float32(f))
		if curr < prev {
			t.Errorf("Float32ToInt16 not monotonic: f=%v gives %v, but previous was %v",
				f, curr, prev)
		}
		prev = curr
	}
}

func BenchmarkFloat32ToInt16Realistic(b *testing.B) {
	// one second of mono audio at 16kHz
	floatSamples := make([]float32, 16000)
	int16Samples := make([]int16, 16000)

	for i := range floatSamples {
		floatSamples[i] = float32(math.Sin(float64(i) * 0.1))
	}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		for j := range floatSamples {
			int16Samples[j] = Float32ToInt16(floatSamples[j])
		}
	}
}

func TestFloat32ToInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Float32ToInt16(0.5)
	})

	if allocs > 0 {
		t.Errorf("Float32ToInt16 allocated %v times, want 0", allocs)
	}
}
