package components

// EmitterComponent represents a ripple emission point in texture UV space.
// Seed emitters come from the scene config; user-added emitters are appended
// at runtime. Emitters are never removed during a session.
//
// This is a pure data component - scheduling logic lives in RippleScheduler.
type EmitterComponent struct {
	// Position (纹理 UV 坐标, 0..1, V 自上而下)
	X float64
	Y float64

	// RadiusClass 半径等级 [7, 49]，只参与时间/振幅曲线，不直接渲染
	RadiusClass float64

	// Spawn timing (发射时机, 模拟时间秒)
	// NextSpawnTime 在首次被调度器评估时才初始化（Scheduled=false 表示尚未初始化）
	NextSpawnTime float64
	Scheduled     bool

	// Manual 是否为用户 Shift+点击添加的发射点
	Manual bool

	// TotalSpawned 该发射点累计产生的涟漪数量
	TotalSpawned int
}
