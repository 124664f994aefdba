package config

// 水波纹效果的编译期常量
// 这些值决定 GPU 端 uniform 数组的长度与着色模型，运行时不可修改

// MaxRipples 同时存活的涟漪上限
// 同时也是打包后 uniform 数组的固定长度（着色器中的数组声明保持静态）
const MaxRipples = 28

// 发射点半径等级（radius class）的取值范围
// 半径等级不会直接渲染，只用于把时间/振幅曲线归一化到 [0,1]
const (
	RadiusClassMin = 7.0
	RadiusClassMax = 49.0

	// ManualRadiusClass 用户 Shift+点击添加的发射点使用的固定半径等级
	ManualRadiusClass = 14.0
)

// DevicePixelRatioCap 设备像素比上限，限制高密度屏幕上的显存和填充率开销
const DevicePixelRatioCap = 2.0

// InactiveStartTime 空槽位的起始时间哨兵值（模拟时间，秒）
// 足够久远，使着色器的活跃窗口判断 0 <= t-start < duration 对空槽位恒为假
const InactiveStartTime = -9999.0

// 发射间隔曲线：interval(r) = (IntervalBase - IntervalSlope*t) * jitter
const (
	IntervalBase      = 2.8
	IntervalSlope     = 1.7
	IntervalJitterMin = 0.85
	IntervalJitterMax = 1.15
)

// 振幅曲线：amplitude(r) = (AmplitudeBase + AmplitudeSlope*t) * jitter
const (
	AmplitudeBase      = 0.002
	AmplitudeSlope     = 0.0035
	AmplitudeJitterMin = 0.9
	AmplitudeJitterMax = 1.12
)

// 持续时间曲线：duration(r) = (DurationBase + DurationSpan*(1-t)) * jitter
const (
	DurationBase      = 2.2
	DurationSpan      = 0.8
	DurationJitterMin = 0.9
	DurationJitterMax = 1.1
)

// 着色模型常量（视觉一致性依赖这些值，必须精确保留）
const (
	FrontSpeed               = 0.18  // 波前速度（UV/秒）
	SpatialFrequency         = 120.0 // 波纹空间频率
	EnvelopeSharpness        = 900.0 // 高斯包络锐度（波前厚度）
	ChromaticAberrationScale = 0.55  // 色散偏移系数
	SpecularScale            = 0.12  // 高光系数

	SaturationBoost  = 1.05 // 饱和度微调
	ContrastBoost    = 1.02 // 对比度微调
	DirectionEpsilon = 1e-6 // normalize 前的偏移，避免零向量
)

// 亮度权重（Rec. 709）
const (
	LumaR = 0.2126
	LumaG = 0.7152
	LumaB = 0.0722
)
