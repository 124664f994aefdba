package systems

import (
	"github.com/decker502/ripples/pkg/components"
)

// FrameStats 单帧调度结果
type FrameStats struct {
	Spawned int // 本帧产生的涟漪数
	Expired int // 本帧过期移除的涟漪数
	Evicted int // 本帧因超出容量被淘汰的涟漪数
	Live    int // 本帧结束时存活的涟漪数
}

// RippleScheduler 涟漪调度系统
//
// 每帧按顺序执行：
//  1. 遍历发射点：未初始化的发射点把 NextSpawnTime 设为 now+interval；
//     到期（now >= NextSpawnTime）则产生一个涟漪，并把 NextSpawnTime 推进到 now+interval
//  2. 移除所有 elapsed >= duration 的涟漪
//  3. 存活数超过容量时从队首（最早插入）开始淘汰，直到等于容量
//
// 每个发射点每帧最多产生一个涟漪，即使时钟跳过了多个间隔也不会补发。
// 新涟漪永远优先于旧涟漪，容量淘汰不会阻止新的产生。
type RippleScheduler struct {
	registry *EmitterRegistry
	rng      RandomSource
	capacity int

	ripples []components.RippleComponent // 按插入顺序排列
	nextSeq uint64

	totalSpawned uint64
	totalExpired uint64
	totalEvicted uint64
}

// NewRippleScheduler 创建调度器
//
// 参数：
//   - registry: 发射点注册表
//   - rng: 抖动随机源（测试可注入固定序列）
//   - capacity: 存活涟漪上限（通常为 config.MaxRipples）
func NewRippleScheduler(registry *EmitterRegistry, rng RandomSource, capacity int) *RippleScheduler {
	if capacity < 1 {
		capacity = 1
	}
	return &RippleScheduler{
		registry: registry,
		rng:      rng,
		capacity: capacity,
		ripples:  make([]components.RippleComponent, 0, capacity*2),
	}
}

// Update 在模拟时间 now 执行一帧调度
func (s *RippleScheduler) Update(now float64) FrameStats {
	var stats FrameStats

	for i, e := range s.registry.Emitters() {
		if !e.Scheduled {
			e.NextSpawnTime = now + IntervalFor(s.rng, e.RadiusClass)
			e.Scheduled = true
		}
		if now >= e.NextSpawnTime {
			s.spawn(i, e, now)
			e.NextSpawnTime = now + IntervalFor(s.rng, e.RadiusClass)
			stats.Spawned++
		}
	}

	stats.Expired = s.removeExpired(now)
	stats.Evicted = s.evictOverflow()
	stats.Live = len(s.ripples)

	s.totalExpired += uint64(stats.Expired)
	s.totalEvicted += uint64(stats.Evicted)

	return stats
}

// spawn 在发射点位置产生一个涟漪
// 持续时间先于振幅采样
func (s *RippleScheduler) spawn(index int, e *components.EmitterComponent, now float64) {
	duration := DurationFor(s.rng, e.RadiusClass)
	amplitude := AmplitudeFor(s.rng, e.RadiusClass)

	s.ripples = append(s.ripples, components.RippleComponent{
		X:            e.X,
		Y:            e.Y,
		StartTime:    now,
		Duration:     duration,
		Amplitude:    amplitude,
		Seq:          s.nextSeq,
		EmitterIndex: index,
	})
	s.nextSeq++
	s.totalSpawned++
	e.TotalSpawned++
}

// removeExpired 原地移除过期涟漪，保持剩余涟漪的插入顺序
func (s *RippleScheduler) removeExpired(now float64) int {
	kept := s.ripples[:0]
	for _, r := range s.ripples {
		if now-r.StartTime >= r.Duration {
			continue
		}
		kept = append(kept, r)
	}
	removed := len(s.ripples) - len(kept)
	// 清空尾部，避免保留已移除元素
	for i := len(kept); i < len(s.ripples); i++ {
		s.ripples[i] = components.RippleComponent{}
	}
	s.ripples = kept
	return removed
}

// evictOverflow 从队首淘汰超出容量的涟漪
func (s *RippleScheduler) evictOverflow() int {
	overflow := len(s.ripples) - s.capacity
	if overflow <= 0 {
		return 0
	}
	copy(s.ripples, s.ripples[overflow:])
	for i := s.capacity; i < len(s.ripples); i++ {
		s.ripples[i] = components.RippleComponent{}
	}
	s.ripples = s.ripples[:s.capacity]
	return overflow
}

// Ripples 按插入顺序返回存活涟漪（只读）
func (s *RippleScheduler) Ripples() []components.RippleComponent {
	return s.ripples
}

// Capacity 返回存活涟漪上限
func (s *RippleScheduler) Capacity() int {
	return s.capacity
}

// Registry 返回调度器使用的发射点注册表
func (s *RippleScheduler) Registry() *EmitterRegistry {
	return s.registry
}

// Totals 返回累计产生、过期和淘汰的涟漪数量
func (s *RippleScheduler) Totals() (spawned, expired, evicted uint64) {
	return s.totalSpawned, s.totalExpired, s.totalEvicted
}
