package systems

import (
	"github.com/decker502/ripples/pkg/components"
	"github.com/decker502/ripples/pkg/config"
)

// PackUniforms 将存活涟漪序列化为新的定长 uniform 快照
// 输出数组长度恒为 capacity
func PackUniforms(ripples []components.RippleComponent, capacity int, now float64) *components.FrameUniforms {
	dst := components.NewFrameUniforms(capacity)
	PackInto(dst, ripples, now, false)
	return dst
}

// PackInto 将存活涟漪按插入顺序写入 dst 的前 Count 个槽位，
// 其余槽位写入惰性值：中心 (0,0)、振幅 0、持续时间 0、起始时间为久远哨兵。
// 仅靠 duration=0 不足以让槽位失效（t=start 时会误判为活跃），因此必须同时写入哨兵起始时间。
//
// rebase=true 时所有时间相对 now 重定基（Time=0，Start=start-now），
// 供低精度浮点设备使用，避免在着色器中相减两个大数。
//
// 涟漪数量超过容量时只打包最新的 capacity 个（与调度器的淘汰策略一致）。
func PackInto(dst *components.FrameUniforms, ripples []components.RippleComponent, now float64, rebase bool) {
	capacity := dst.Capacity()
	if len(ripples) > capacity {
		ripples = ripples[len(ripples)-capacity:]
	}

	offset := 0.0
	dst.Time = float32(now)
	if rebase {
		offset = now
		dst.Time = 0
	}

	n := len(ripples)
	dst.Count = n
	for i := 0; i < capacity; i++ {
		if i < n {
			r := ripples[i]
			dst.Center[i*2+0] = float32(r.X)
			dst.Center[i*2+1] = float32(r.Y)
			dst.Start[i] = float32(r.StartTime - offset)
			dst.Duration[i] = float32(r.Duration)
			dst.Amplitude[i] = float32(r.Amplitude)
			continue
		}
		dst.Center[i*2+0] = 0
		dst.Center[i*2+1] = 0
		dst.Start[i] = float32(config.InactiveStartTime)
		dst.Duration[i] = 0
		dst.Amplitude[i] = 0
	}
}
