package components

// RippleComponent is one time-bounded disturbance instance.
//
// Origin is copied from the emitter at spawn time, so later changes to the
// emitter do not affect ripples already in flight. A ripple is active while
// 0 <= clock-StartTime < Duration.
type RippleComponent struct {
	X float64 // 涟漪中心（纹理 UV）
	Y float64

	StartTime float64 // 产生时的模拟时间（秒）
	Duration  float64 // 持续时间（秒），产生时采样一次
	Amplitude float64 // 振幅，产生时采样一次

	// Seq 全局递增的产生序号，插入顺序即 Seq 顺序（用于最旧优先淘汰）
	Seq uint64
	// EmitterIndex 产生该涟漪的发射点在注册表中的下标
	EmitterIndex int
}
