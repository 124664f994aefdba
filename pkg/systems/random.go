package systems

import (
	"math/rand"
	"time"
)

// RandomSource 抖动采样使用的随机源
// 生产环境使用时间播种的 *rand.Rand；测试注入固定序列以断言精确的调度结果
type RandomSource interface {
	Float64() float64
}

// NewRandomSource 返回按当前时间播种的随机源（不可复现）
func NewRandomSource() RandomSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewSeededSource 返回固定种子的随机源（可复现，供工具和测试使用）
func NewSeededSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// RandomInRange 从 src 采样 [min, max] 内的均匀随机值
func RandomInRange(src RandomSource, min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + src.Float64()*(max-min)
}

// SequenceSource 按顺序循环返回固定值的随机源
// 值应位于 [0,1)；序列为空时恒返回 0
type SequenceSource struct {
	values []float64
	pos    int
	draws  int
}

// NewSequenceSource 创建固定序列随机源
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{values: values}
}

// Float64 返回序列中的下一个值
func (s *SequenceSource) Float64() float64 {
	if len(s.values) == 0 {
		s.draws++
		return 0
	}
	v := s.values[s.pos]
	s.pos = (s.pos + 1) % len(s.values)
	s.draws++
	return v
}

// Draws 返回累计采样次数
func (s *SequenceSource) Draws() int {
	return s.draws
}
