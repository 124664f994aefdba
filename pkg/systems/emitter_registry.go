package systems

import (
	"github.com/decker502/ripples/pkg/components"
	"github.com/decker502/ripples/pkg/config"
)

// EmitterRegistry 发射点注册表（只追加，有序）
//
// 种子发射点在启动时创建，用户添加的发射点在运行时追加；
// 注册表不提供删除操作。所有修改都发生在渲染回合内（输入处理和调度器的惰性初始化），
// 因此不需要加锁。
type EmitterRegistry struct {
	emitters []*components.EmitterComponent
}

// NewEmitterRegistry 使用场景配置中的种子发射点创建注册表
func NewEmitterRegistry(seed []config.EmitterConfig) *EmitterRegistry {
	r := &EmitterRegistry{
		emitters: make([]*components.EmitterComponent, 0, len(seed)),
	}
	for _, e := range seed {
		r.emitters = append(r.emitters, &components.EmitterComponent{
			X:           e.X,
			Y:           e.Y,
			RadiusClass: e.R,
		})
	}
	return r
}

// AddEmitter 追加一个发射点，NextSpawnTime 保持未初始化
func (r *EmitterRegistry) AddEmitter(x, y, radiusClass float64) *components.EmitterComponent {
	e := &components.EmitterComponent{
		X:           x,
		Y:           y,
		RadiusClass: radiusClass,
	}
	r.emitters = append(r.emitters, e)
	return e
}

// AddManualEmitter 追加一个用户添加的发射点（固定最小半径等级）
func (r *EmitterRegistry) AddManualEmitter(x, y float64) *components.EmitterComponent {
	e := r.AddEmitter(x, y, config.ManualRadiusClass)
	e.Manual = true
	return e
}

// Emitters 按插入顺序返回全部发射点
// 返回的切片仅用于遍历，调用方不应追加或重排
func (r *EmitterRegistry) Emitters() []*components.EmitterComponent {
	return r.emitters
}

// Len 返回发射点数量
func (r *EmitterRegistry) Len() int {
	return len(r.emitters)
}

// ManualCount 返回用户添加的发射点数量
func (r *EmitterRegistry) ManualCount() int {
	n := 0
	for _, e := range r.emitters {
		if e.Manual {
			n++
		}
	}
	return n
}
