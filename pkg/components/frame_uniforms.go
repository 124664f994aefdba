package components

// FrameUniforms 是一帧的 GPU uniform 快照
//
// 所有数组长度恒等于容量（Capacity），与存活涟漪数量无关，
// 这样着色器中的数组声明可以保持静态。超出 Count 的槽位填充惰性哨兵值。
type FrameUniforms struct {
	Time  float32 // 当前模拟时间（时间重定基时恒为 0）
	Count int     // 存活涟漪数量

	Center    []float32 // 长度 2*Capacity，交错存放 (x, y)
	Start     []float32 // 长度 Capacity
	Duration  []float32 // 长度 Capacity
	Amplitude []float32 // 长度 Capacity
}

// NewFrameUniforms 按容量预分配 uniform 数组
// 每帧复用同一份缓冲，避免逐帧分配
func NewFrameUniforms(capacity int) *FrameUniforms {
	return &FrameUniforms{
		Center:    make([]float32, capacity*2),
		Start:     make([]float32, capacity),
		Duration:  make([]float32, capacity),
		Amplitude: make([]float32, capacity),
	}
}

// Capacity 返回槽位数量
func (f *FrameUniforms) Capacity() int {
	return len(f.Start)
}
