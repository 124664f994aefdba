// Package lifecycle 管理水波纹效果的渲染生命周期
//
// 状态机：
//
//	Uninitialized → Loading → Running ⇄ Paused
//	Loading/Running/Paused → Disabled（后端不可用、着色器构建失败、资源加载失败、上下文丢失）
//	任意状态 → Destroyed（显式销毁）
//
// Disabled 和 Destroyed 为终止状态。进入 Disabled 后效果永久降级为静态背景，不重试。
//
// 所有操作都在同一个渲染回合（Ebitengine 的 Update/Draw 所在 goroutine）内调用，
// Controller 不加锁。
package lifecycle

// State 生命周期状态
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateRunning
	StatePaused
	StateDisabled
	StateDestroyed
)

// String 返回状态名称
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateLoading:
		return "Loading"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateDisabled:
		return "Disabled"
	case StateDestroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// Terminal 返回是否为终止状态
func (s State) Terminal() bool {
	return s == StateDisabled || s == StateDestroyed
}

// OwnsSurface 返回效果是否占据画面（此时静态背景隐藏）
func (s State) OwnsSurface() bool {
	return s == StateLoading || s == StateRunning || s == StatePaused
}
