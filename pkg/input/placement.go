// Package input 识别添加发射点的指针手势
//
// 长按识别（LongPress）是纯逻辑，不读取 ebiten 输入状态；
// PlacementInput 每个 tick 读取鼠标/触摸并交给识别器。
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// LongPressTicks 移动端长按多少个 tick 触发放置（60 TPS 下约 0.5 秒）
const LongPressTicks = 30

// LongPressSlop 长按期间允许的指针漂移（像素），超过即视为拖动
const LongPressSlop = 12

// LongPress 长按识别器
// 不依赖 ebiten 输入状态，便于单元测试
type LongPress struct {
	ticks  int
	fired  bool
	active bool
	startX int
	startY int
}

// Step 推进一个 tick
// pressed 为指针是否按下；按住满 LongPressTicks 且未漂移时返回 true（每次按下只触发一次）
func (lp *LongPress) Step(pressed bool, x, y int) bool {
	if !pressed {
		*lp = LongPress{}
		return false
	}
	if !lp.active {
		lp.active = true
		lp.startX, lp.startY = x, y
	}
	if lp.fired {
		return false
	}
	dx, dy := x-lp.startX, y-lp.startY
	if dx*dx+dy*dy > LongPressSlop*LongPressSlop {
		// 拖动：本次按下不再触发
		lp.fired = true
		return false
	}
	lp.ticks++
	if lp.ticks >= LongPressTicks {
		lp.fired = true
		return true
	}
	return false
}

// Start 返回按下点
func (lp *LongPress) Start() (int, int) {
	return lp.startX, lp.startY
}

// PlacementInput 识别"在指针处添加发射点"的手势
// 桌面端：Shift+左键单击；移动端：单指长按
type PlacementInput struct {
	mobile bool
	press  LongPress
}

// NewPlacementInput 创建手势识别器
func NewPlacementInput(mobile bool) *PlacementInput {
	return &PlacementInput{mobile: mobile}
}

// Update 每个 tick 调用一次，触发时返回后备缓冲坐标
func (p *PlacementInput) Update() (x, y int, ok bool) {
	if !p.mobile {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && ebiten.IsKeyPressed(ebiten.KeyShift) {
			x, y = ebiten.CursorPosition()
			return x, y, true
		}
		return 0, 0, false
	}

	pressed, x, y := pointerState()
	if p.press.Step(pressed, x, y) {
		x, y = p.press.Start()
		return x, y, true
	}
	return 0, 0, false
}

// Hint 调试信息中显示的手势说明
func (p *PlacementInput) Hint() string {
	if p.mobile {
		return "Long press: add emitter"
	}
	return "Shift+Click: add emitter"
}

// pointerState 优先取第一个触摸点，没有触摸时取鼠标左键
func pointerState() (pressed bool, x, y int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}
	x, y = ebiten.CursorPosition()
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), x, y
}
