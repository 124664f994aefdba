package systems

import (
	"testing"

	"github.com/decker502/ripples/pkg/components"
	"github.com/decker502/ripples/pkg/config"
)

func makeRipples(n int) []components.RippleComponent {
	out := make([]components.RippleComponent, n)
	for i := range out {
		out[i] = components.RippleComponent{
			X:         float64(i) * 0.01,
			Y:         1 - float64(i)*0.01,
			StartTime: 10 + float64(i)*0.1,
			Duration:  2.5,
			Amplitude: 0.004,
			Seq:       uint64(i),
		}
	}
	return out
}

// TestPackLengthIsAlwaysCapacity 存活数从 0 到 capacity+k，输出长度恒为 capacity
func TestPackLengthIsAlwaysCapacity(t *testing.T) {
	for live := 0; live <= config.MaxRipples+5; live++ {
		u := PackUniforms(makeRipples(live), config.MaxRipples, 12)
		if len(u.Center) != 2*config.MaxRipples || len(u.Start) != config.MaxRipples ||
			len(u.Duration) != config.MaxRipples || len(u.Amplitude) != config.MaxRipples {
			t.Fatalf("live=%d: array lengths %d/%d/%d/%d", live,
				len(u.Center), len(u.Start), len(u.Duration), len(u.Amplitude))
		}
		wantCount := live
		if wantCount > config.MaxRipples {
			wantCount = config.MaxRipples
		}
		if u.Count != wantCount {
			t.Errorf("live=%d: Count got %d, want %d", live, u.Count, wantCount)
		}
	}
}

func TestPackSentinelSlots(t *testing.T) {
	u := PackUniforms(makeRipples(3), 8, 12)

	for i := 3; i < 8; i++ {
		if u.Center[i*2] != 0 || u.Center[i*2+1] != 0 {
			t.Errorf("slot %d: center got (%v, %v), want origin", i, u.Center[i*2], u.Center[i*2+1])
		}
		if u.Start[i] != float32(config.InactiveStartTime) {
			t.Errorf("slot %d: start got %v, want %v", i, u.Start[i], config.InactiveStartTime)
		}
		if u.Duration[i] != 0 || u.Amplitude[i] != 0 {
			t.Errorf("slot %d: duration %v amplitude %v, want 0", i, u.Duration[i], u.Amplitude[i])
		}
		if IsRippleActive(float64(u.Time), float64(u.Start[i]), float64(u.Duration[i])) {
			t.Errorf("slot %d: sentinel slot must never be active", i)
		}
	}
}

func TestPackInsertionOrder(t *testing.T) {
	ripples := makeRipples(3)
	u := PackUniforms(ripples, 4, 11)

	if u.Time != 11 {
		t.Errorf("Time: got %v, want 11", u.Time)
	}
	for i, r := range ripples {
		if u.Center[i*2] != float32(r.X) || u.Center[i*2+1] != float32(r.Y) {
			t.Errorf("slot %d: center mismatch", i)
		}
		if u.Start[i] != float32(r.StartTime) || u.Duration[i] != float32(r.Duration) || u.Amplitude[i] != float32(r.Amplitude) {
			t.Errorf("slot %d: got start=%v dur=%v amp=%v", i, u.Start[i], u.Duration[i], u.Amplitude[i])
		}
	}
}

func TestPackKeepsNewestWhenOverCapacity(t *testing.T) {
	ripples := makeRipples(6)
	u := PackUniforms(ripples, 4, 12)

	// 只保留最新的 4 个（seq 2..5）
	if u.Start[0] != float32(ripples[2].StartTime) {
		t.Errorf("slot 0: got start %v, want %v", u.Start[0], ripples[2].StartTime)
	}
	if u.Start[3] != float32(ripples[5].StartTime) {
		t.Errorf("slot 3: got start %v, want %v", u.Start[3], ripples[5].StartTime)
	}
}

func TestPackRebaseTime(t *testing.T) {
	dst := components.NewFrameUniforms(4)
	ripples := makeRipples(2)
	PackInto(dst, ripples, 10.5, true)

	if dst.Time != 0 {
		t.Errorf("Time: got %v, want 0 after rebase", dst.Time)
	}
	if got, want := dst.Start[1], float32(ripples[1].StartTime-10.5); got != want {
		t.Errorf("Start[1]: got %v, want %v", got, want)
	}
	// 重定基后空槽位仍然失效
	if IsRippleActive(0, float64(dst.Start[3]), float64(dst.Duration[3])) {
		t.Error("sentinel slot active after rebase")
	}
}

// TestPackIntoReusesBuffer 复用缓冲时旧数据必须被覆盖
func TestPackIntoReusesBuffer(t *testing.T) {
	dst := components.NewFrameUniforms(4)
	PackInto(dst, makeRipples(4), 12, false)
	PackInto(dst, makeRipples(1), 12, false)

	if dst.Count != 1 {
		t.Fatalf("Count: got %d, want 1", dst.Count)
	}
	for i := 1; i < 4; i++ {
		if dst.Amplitude[i] != 0 || dst.Start[i] != float32(config.InactiveStartTime) {
			t.Errorf("slot %d not reset: amp=%v start=%v", i, dst.Amplitude[i], dst.Start[i])
		}
	}
}
