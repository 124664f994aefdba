package systems

import "github.com/decker502/ripples/pkg/config"

// ripple_curves.go - 由半径等级派生的时间/振幅曲线
//
// 半径等级先归一化到 [0,1]（区间 [RadiusClassMin, RadiusClassMax]），再代入：
//   - interval(r)  = (2.8 - 1.7*t)      * jitter(0.85, 1.15)  半径越大发射越频繁
//   - amplitude(r) = (0.002 + 0.0035*t) * jitter(0.9, 1.12)   半径越大位移越强
//   - duration(r)  = (2.2 + 0.8*(1-t))  * jitter(0.9, 1.1)    半径越小持续越久
//
// 每次调用都会从随机源重新采样抖动值。

// NormalizeRadiusClass 将半径等级归一化到 [0,1]
func NormalizeRadiusClass(r float64) float64 {
	t := (r - config.RadiusClassMin) / (config.RadiusClassMax - config.RadiusClassMin)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// IntervalFor 采样发射间隔（秒）
func IntervalFor(src RandomSource, r float64) float64 {
	t := NormalizeRadiusClass(r)
	return (config.IntervalBase - config.IntervalSlope*t) *
		RandomInRange(src, config.IntervalJitterMin, config.IntervalJitterMax)
}

// AmplitudeFor 采样振幅
func AmplitudeFor(src RandomSource, r float64) float64 {
	t := NormalizeRadiusClass(r)
	return (config.AmplitudeBase + config.AmplitudeSlope*t) *
		RandomInRange(src, config.AmplitudeJitterMin, config.AmplitudeJitterMax)
}

// DurationFor 采样持续时间（秒）
func DurationFor(src RandomSource, r float64) float64 {
	t := NormalizeRadiusClass(r)
	return (config.DurationBase + config.DurationSpan*(1-t)) *
		RandomInRange(src, config.DurationJitterMin, config.DurationJitterMax)
}

// IsRippleActive 判断涟漪在时刻 now 是否处于活跃窗口
// 窗口在 elapsed=0 处闭合，在 elapsed=duration 处开放
func IsRippleActive(now, start, duration float64) bool {
	elapsed := now - start
	return elapsed >= 0 && elapsed < duration
}
