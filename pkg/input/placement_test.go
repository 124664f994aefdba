package input

import "testing"

// TestLongPress 测试长按识别
func TestLongPress(t *testing.T) {
	t.Run("按满时长触发一次", func(t *testing.T) {
		var lp LongPress
		fired := 0
		for i := 0; i < LongPressTicks*3; i++ {
			if lp.Step(true, 100, 200) {
				fired++
				if i != LongPressTicks-1 {
					t.Errorf("fired at tick %d, want %d", i, LongPressTicks-1)
				}
			}
		}
		if fired != 1 {
			t.Errorf("fired: got %d, want 1", fired)
		}
		if x, y := lp.Start(); x != 100 || y != 200 {
			t.Errorf("Start: got (%d, %d), want (100, 200)", x, y)
		}
	})

	t.Run("提前松开不触发", func(t *testing.T) {
		var lp LongPress
		for i := 0; i < LongPressTicks-1; i++ {
			if lp.Step(true, 0, 0) {
				t.Fatal("fired before threshold")
			}
		}
		if lp.Step(false, 0, 0) {
			t.Error("release must not fire")
		}
		// 重新按下从零计时
		for i := 0; i < LongPressTicks-1; i++ {
			if lp.Step(true, 0, 0) {
				t.Fatal("counter was not reset on release")
			}
		}
	})

	t.Run("拖动取消", func(t *testing.T) {
		var lp LongPress
		lp.Step(true, 0, 0)
		lp.Step(true, LongPressSlop+1, 0)
		for i := 0; i < LongPressTicks*2; i++ {
			if lp.Step(true, LongPressSlop+1, 0) {
				t.Fatal("drag must cancel the long press")
			}
		}
	})

	t.Run("微小抖动仍然触发", func(t *testing.T) {
		var lp LongPress
		fired := false
		for i := 0; i < LongPressTicks; i++ {
			if lp.Step(true, 50+i%3, 50-i%2) {
				fired = true
			}
		}
		if !fired {
			t.Error("jitter within slop should still fire")
		}
	})
}

func TestPlacementInputHint(t *testing.T) {
	if got := NewPlacementInput(false).Hint(); got != "Shift+Click: add emitter" {
		t.Errorf("desktop hint: got %q", got)
	}
	if got := NewPlacementInput(true).Hint(); got != "Long press: add emitter" {
		t.Errorf("mobile hint: got %q", got)
	}
}
