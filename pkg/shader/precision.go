package shader

// Precision 片元阶段浮点精度等级
type Precision int

const (
	PrecisionLow Precision = iota
	PrecisionMedium
	PrecisionHigh
)

// String 返回精度名称
func (p Precision) String() string {
	switch p {
	case PrecisionLow:
		return "low"
	case PrecisionMedium:
		return "medium"
	case PrecisionHigh:
		return "high"
	default:
		return "unknown"
	}
}

// RebaseTime 返回该精度下是否需要把时间重定基到当前帧
// 低于高精度时，大的模拟时间值相减会丢失有效位，波前会出现抖动
func (p Precision) RebaseTime() bool {
	return p < PrecisionHigh
}

// PrecisionProber 查询后端支持的精度
type PrecisionProber interface {
	SupportsPrecision(p Precision) bool
}

// SelectPrecision 从高到低选择第一个受支持的精度
// 所有精度都不受支持时返回 ok=false
func SelectPrecision(prober PrecisionProber) (p Precision, ok bool) {
	for _, p := range []Precision{PrecisionHigh, PrecisionMedium, PrecisionLow} {
		if prober.SupportsPrecision(p) {
			return p, true
		}
	}
	return PrecisionLow, false
}
