package systems

import (
	"math"
	"testing"

	"github.com/decker502/ripples/pkg/config"
)

func TestNormalizeRadiusClass(t *testing.T) {
	tests := []struct {
		r    float64
		want float64
	}{
		{7, 0},
		{49, 1},
		{28, 0.5},
		{0, 0},   // 低于下限截断
		{100, 1}, // 高于上限截断
		{14, 1.0 / 6.0},
	}

	for _, tt := range tests {
		got := NormalizeRadiusClass(tt.r)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("NormalizeRadiusClass(%v): got %v, want %v", tt.r, got, tt.want)
		}
	}
}

// TestCurvesStayInRange 抖动不可复现，只断言取值范围
func TestCurvesStayInRange(t *testing.T) {
	src := NewRandomSource()

	for _, r := range []float64{7, 14, 28, 49} {
		n := NormalizeRadiusClass(r)
		intervalBase := config.IntervalBase - config.IntervalSlope*n
		ampBase := config.AmplitudeBase + config.AmplitudeSlope*n
		durBase := config.DurationBase + config.DurationSpan*(1-n)

		for i := 0; i < 500; i++ {
			if v := IntervalFor(src, r); v < intervalBase*config.IntervalJitterMin || v > intervalBase*config.IntervalJitterMax {
				t.Fatalf("IntervalFor(%v) = %v out of [%v, %v]", r, v,
					intervalBase*config.IntervalJitterMin, intervalBase*config.IntervalJitterMax)
			}
			if v := AmplitudeFor(src, r); v < ampBase*config.AmplitudeJitterMin || v > ampBase*config.AmplitudeJitterMax {
				t.Fatalf("AmplitudeFor(%v) = %v out of range", r, v)
			}
			if v := DurationFor(src, r); v < durBase*config.DurationJitterMin || v > durBase*config.DurationJitterMax {
				t.Fatalf("DurationFor(%v) = %v out of range", r, v)
			}
		}
	}
}

func TestCurvesWithFixedSource(t *testing.T) {
	// 抖动取下限
	low := NewSequenceSource(0)

	if got, want := IntervalFor(low, 49), 1.1*0.85; math.Abs(got-want) > 1e-12 {
		t.Errorf("IntervalFor(49) low jitter: got %v, want %v", got, want)
	}
	if got, want := IntervalFor(low, 7), 2.8*0.85; math.Abs(got-want) > 1e-12 {
		t.Errorf("IntervalFor(7) low jitter: got %v, want %v", got, want)
	}
	if got, want := AmplitudeFor(low, 49), 0.0055*0.9; math.Abs(got-want) > 1e-12 {
		t.Errorf("AmplitudeFor(49) low jitter: got %v, want %v", got, want)
	}
	// 抖动作用于整个表达式
	if got, want := DurationFor(low, 7), 3.0*0.9; math.Abs(got-want) > 1e-12 {
		t.Errorf("DurationFor(7) low jitter: got %v, want %v", got, want)
	}
	if low.Draws() != 4 {
		t.Errorf("expected one draw per call, got %d draws", low.Draws())
	}
}

func TestLargerRadiusFiresMoreOften(t *testing.T) {
	src := NewSequenceSource(0.5)
	prev := math.Inf(1)
	for r := 7.0; r <= 49; r += 7 {
		v := IntervalFor(src, r)
		if v >= prev {
			t.Errorf("IntervalFor(%v) = %v, expected less than %v", r, v, prev)
		}
		prev = v
	}
}

func TestIsRippleActive(t *testing.T) {
	tests := []struct {
		name                 string
		now, start, duration float64
		want                 bool
	}{
		{"start boundary inclusive", 5, 5, 2, true},
		{"end boundary exclusive", 7, 5, 2, false},
		{"inside window", 6, 5, 2, true},
		{"before start", 4.999, 5, 2, false},
		{"zero duration never active", 5, 5, 0, false},
		{"sentinel slot", 1e6, config.InactiveStartTime, 0, false},
		{"sentinel slot at clock zero", 0, config.InactiveStartTime, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRippleActive(tt.now, tt.start, tt.duration); got != tt.want {
				t.Errorf("IsRippleActive(%v, %v, %v): got %v, want %v", tt.now, tt.start, tt.duration, got, tt.want)
			}
		})
	}
}

func TestRandomInRange(t *testing.T) {
	if got := RandomInRange(NewSequenceSource(0.25), 2, 6); got != 3 {
		t.Errorf("RandomInRange: got %v, want 3", got)
	}
	// min >= max 时直接返回 min，不消耗随机数
	src := NewSequenceSource(0.5)
	if got := RandomInRange(src, 4, 4); got != 4 {
		t.Errorf("RandomInRange(4, 4): got %v, want 4", got)
	}
	if src.Draws() != 0 {
		t.Errorf("expected no draws for empty range, got %d", src.Draws())
	}
}
