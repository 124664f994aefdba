package lifecycle

import (
	"github.com/decker502/ripples/pkg/config"
	"github.com/decker502/ripples/pkg/utils"
)

// Viewport 视口逻辑尺寸与设备像素比
type Viewport struct {
	Width       int
	Height      int
	DeviceScale float64
}

// Valid 返回视口尺寸是否为正
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// BackingSize 返回按上限设备像素比计算的后备缓冲尺寸
func (v Viewport) BackingSize() (int, int) {
	return utils.BackingSize(v.Width, v.Height, v.DeviceScale, config.DevicePixelRatioCap)
}

// ResizeThrottle 合并高频 resize 请求，每帧最多执行一次
type ResizeThrottle struct {
	queued bool
	latest Viewport
}

// Request 记录最新视口；返回 true 表示本次请求新排入队列，
// false 表示与已排队的请求合并
func (r *ResizeThrottle) Request(v Viewport) bool {
	r.latest = v
	if r.queued {
		return false
	}
	r.queued = true
	return true
}

// Flush 在帧边界取出排队的视口
func (r *ResizeThrottle) Flush() (Viewport, bool) {
	if !r.queued {
		return Viewport{}, false
	}
	r.queued = false
	return r.latest, true
}

// Cancel 丢弃排队的请求（幂等），保留最近一次视口
func (r *ResizeThrottle) Cancel() {
	r.queued = false
}

// Latest 返回最近一次请求的视口
func (r *ResizeThrottle) Latest() Viewport {
	return r.latest
}

// Queued 返回是否有排队的请求
func (r *ResizeThrottle) Queued() bool {
	return r.queued
}
