package lifecycle

import (
	"errors"
	"fmt"
	"image"
	"log"
	"time"

	"github.com/decker502/ripples/pkg/components"
	"github.com/decker502/ripples/pkg/config"
	"github.com/decker502/ripples/pkg/shader"
	"github.com/decker502/ripples/pkg/systems"
	"github.com/decker502/ripples/pkg/utils"
)

var (
	// ErrUnsupportedBackend 无法获得可用的渲染上下文
	ErrUnsupportedBackend = errors.New("no capable rendering backend")
	// ErrContextLost 渲染上下文丢失（不尝试恢复）
	ErrContextLost = errors.New("rendering context lost")
	// ErrTextureUpload 背景图片解码成功但上传失败
	ErrTextureUpload = errors.New("texture upload failed")
	// ErrReducedMotion 用户要求减少动态效果
	ErrReducedMotion = errors.New("reduced motion requested")
)

// Options 控制器参数
type Options struct {
	// Capacity 存活涟漪上限，0 表示 config.MaxRipples
	Capacity int
	// Random 抖动随机源，nil 表示按时间播种
	Random systems.RandomSource
	// Clock 宿主单调时钟（秒），nil 表示从创建时刻起计时
	Clock func() float64
	// ReduceMotion 为 true 时不创建任何 GPU 资源，直接降级
	ReduceMotion bool
}

// Controller 水波纹效果的生命周期控制器
//
// Controller 独占 GPU 程序、背景纹理和全屏四边形，调度器和打包器只通过它访问。
// 所有失败都在此处吸收并转入 Disabled，不向上抛出；失败原因通过 DisableReason 获取。
type Controller struct {
	backend   Backend
	registry  *systems.EmitterRegistry
	scheduler *systems.RippleScheduler
	uniforms  *components.FrameUniforms
	pipeline  *shader.Pipeline

	hostClock    func() float64
	reduceMotion bool
	capacity     int

	state         State
	disableReason error

	clock  SimClock
	task   FrameTask
	resize ResizeThrottle

	hidden   bool
	viewport Viewport
	textureW int
	textureH int

	ownsProgram bool
	ownsQuad    bool
	ownsTexture bool

	lastStats systems.FrameStats
	frames    uint64
}

// NewController 创建控制器，初始状态为 Uninitialized
func NewController(backend Backend, registry *systems.EmitterRegistry, opts Options) *Controller {
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = config.MaxRipples
	}
	rng := opts.Random
	if rng == nil {
		rng = systems.NewRandomSource()
	}
	hostClock := opts.Clock
	if hostClock == nil {
		start := time.Now()
		hostClock = func() float64 { return time.Since(start).Seconds() }
	}

	return &Controller{
		backend:      backend,
		registry:     registry,
		scheduler:    systems.NewRippleScheduler(registry, rng, capacity),
		uniforms:     components.NewFrameUniforms(capacity),
		hostClock:    hostClock,
		reduceMotion: opts.ReduceMotion,
		capacity:     capacity,
		state:        StateUninitialized,
	}
}

// Init 创建渲染程序和全屏四边形，成功后进入 Loading 等待背景图片
func (c *Controller) Init() {
	if c.state != StateUninitialized {
		return
	}

	if c.reduceMotion {
		c.disable(ErrReducedMotion)
		return
	}
	if !c.backend.Available() {
		c.disable(ErrUnsupportedBackend)
		return
	}

	precision, ok := shader.SelectPrecision(c.backend)
	if !ok {
		c.disable(fmt.Errorf("%w: no usable fragment precision", ErrUnsupportedBackend))
		return
	}

	pipeline, err := shader.Build(c.backend, shader.Options{MaxRipples: c.capacity, Precision: precision})
	if err != nil {
		c.disable(err)
		return
	}
	c.pipeline = pipeline
	c.ownsProgram = true

	if err := c.backend.CreateQuad(); err != nil {
		c.disable(fmt.Errorf("%w: quad: %v", ErrUnsupportedBackend, err))
		return
	}
	c.ownsQuad = true

	c.setState(StateLoading)
}

// AssetLoaded 背景图片解码完成：上传纹理，执行一次 resize，然后开始逐帧循环
func (c *Controller) AssetLoaded(img image.Image) {
	if c.state != StateLoading {
		log.Printf("[Lifecycle] asset arrived in state %s, ignored", c.state)
		return
	}

	w, h, err := c.backend.UploadTexture(img)
	if err != nil {
		c.disable(fmt.Errorf("%w: %v", ErrTextureUpload, err))
		return
	}
	c.ownsTexture = true
	c.textureW, c.textureH = w, h
	log.Printf("[Lifecycle] texture uploaded (%dx%d)", w, h)

	c.resize.Cancel()
	if v := c.resize.Latest(); v.Valid() {
		if err := c.applyResize(v); err != nil {
			c.disable(err)
			return
		}
	}

	if c.hidden {
		c.clock.Pause(c.hostClock())
		c.setState(StatePaused)
		return
	}
	c.setState(StateRunning)
	c.task.Request()
}

// AssetFailed 背景图片加载失败：释放已创建的资源并降级
func (c *Controller) AssetFailed(err error) {
	if c.state != StateLoading && c.state != StateUninitialized {
		return
	}
	c.disable(err)
}

// Tick 在帧边界执行：先处理合并后的 resize，再在有未决帧请求时
// 依次执行调度、过期、淘汰、打包和绘制。返回本次是否绘制了一帧。
func (c *Controller) Tick() bool {
	if !c.state.OwnsSurface() {
		return false
	}

	if v, ok := c.resize.Flush(); ok {
		if err := c.applyResize(v); err != nil {
			c.disable(err)
			return false
		}
	}

	if c.state != StateRunning || !c.task.Take() {
		return false
	}

	now := c.clock.Now(c.hostClock())
	c.lastStats = c.scheduler.Update(now)
	systems.PackInto(c.uniforms, c.scheduler.Ripples(), now, c.pipeline.Precision.RebaseTime())
	c.backend.Draw(c.uniforms)
	c.frames++

	c.task.Request()
	return true
}

// SetVisibility 可见性变化：隐藏时暂停（取消未决帧并冻结时钟），可见时恢复
func (c *Controller) SetVisibility(visible bool) {
	if c.hidden == !visible {
		return
	}
	c.hidden = !visible

	switch {
	case c.state == StateRunning && !visible:
		c.task.Cancel()
		c.clock.Pause(c.hostClock())
		c.setState(StatePaused)
	case c.state == StatePaused && visible:
		c.clock.Resume(c.hostClock())
		c.setState(StateRunning)
		c.task.Request()
	}
}

// RequestResize 记录视口变化，下一帧边界统一处理
func (c *Controller) RequestResize(v Viewport) {
	if c.state.Terminal() || !v.Valid() {
		return
	}
	c.resize.Request(v)
}

// applyResize 按上限设备像素比重新配置渲染表面
func (c *Controller) applyResize(v Viewport) error {
	bw, bh := v.BackingSize()
	err := c.backend.Resize(SurfaceParams{
		BackingWidth:  bw,
		BackingHeight: bh,
		ViewWidth:     float64(v.Width),
		ViewHeight:    float64(v.Height),
		TextureWidth:  c.textureW,
		TextureHeight: c.textureH,
	})
	if err != nil {
		return fmt.Errorf("%w: resize: %v", ErrContextLost, err)
	}
	c.viewport = v
	return nil
}

// AddEmitterAt 把指针位置（视口逻辑坐标）转换为纹理 UV 并追加手动发射点
// 纹理尺寸未知或视口无效时忽略
func (c *Controller) AddEmitterAt(px, py float64) (x, y float64, ok bool) {
	if !c.state.OwnsSurface() || !c.viewport.Valid() {
		return 0, 0, false
	}
	u, v, ok := utils.PointerToTextureUV(px, py,
		float64(c.viewport.Width), float64(c.viewport.Height),
		float64(c.textureW), float64(c.textureH))
	if !ok {
		return 0, 0, false
	}

	c.registry.AddManualEmitter(u, v)
	log.Printf("[Emitter] add: x=%.5f y=%.5f", u, v)
	return u, v, true
}

// ContextLost 渲染上下文丢失：永久降级
func (c *Controller) ContextLost() {
	if !c.state.OwnsSurface() {
		return
	}
	c.disable(ErrContextLost)
}

// Destroy 取消所有未决工作并释放 GPU 资源；重复调用无效
func (c *Controller) Destroy() {
	if c.state == StateDestroyed {
		return
	}
	c.task.Cancel()
	c.resize.Cancel()
	c.releaseResources()
	c.setState(StateDestroyed)
}

// disable 释放资源并进入 Disabled
func (c *Controller) disable(reason error) {
	c.task.Cancel()
	c.resize.Cancel()
	c.releaseResources()
	c.disableReason = reason
	log.Printf("[Lifecycle] effect disabled: %v", reason)
	c.setState(StateDisabled)
}

// releaseResources 每种资源最多释放一次
func (c *Controller) releaseResources() {
	if c.ownsTexture {
		c.backend.ReleaseTexture()
		c.ownsTexture = false
	}
	if c.ownsQuad {
		c.backend.ReleaseQuad()
		c.ownsQuad = false
	}
	if c.ownsProgram {
		c.backend.ReleaseProgram()
		c.ownsProgram = false
	}
}

func (c *Controller) setState(to State) {
	if c.state == to {
		return
	}
	log.Printf("[Lifecycle] %s -> %s", c.state, to)
	c.state = to
}

// FallbackOpacity 返回静态背景的不透明度：效果占据画面时为 0，否则为 1
func (c *Controller) FallbackOpacity() float64 {
	if c.state.OwnsSurface() {
		return 0
	}
	return 1
}

// State 返回当前状态
func (c *Controller) State() State {
	return c.state
}

// DisableReason 返回进入 Disabled 的原因，未降级时为 nil
func (c *Controller) DisableReason() error {
	return c.disableReason
}

// Registry 返回发射点注册表
func (c *Controller) Registry() *systems.EmitterRegistry {
	return c.registry
}

// Ripples 返回当前存活涟漪（只读）
func (c *Controller) Ripples() []components.RippleComponent {
	return c.scheduler.Ripples()
}

// LastStats 返回最近一帧的调度结果
func (c *Controller) LastStats() systems.FrameStats {
	return c.lastStats
}

// Frames 返回已绘制的帧数
func (c *Controller) Frames() uint64 {
	return c.frames
}

// Precision 返回选定的片元精度，未构建程序时 ok=false
func (c *Controller) Precision() (p shader.Precision, ok bool) {
	if c.pipeline == nil {
		return shader.PrecisionLow, false
	}
	return c.pipeline.Precision, true
}

// TextureSize 返回背景纹理尺寸，未上传时为 0
func (c *Controller) TextureSize() (int, int) {
	return c.textureW, c.textureH
}

// Viewport 返回最近一次生效的视口
func (c *Controller) Viewport() Viewport {
	return c.viewport
}

// SimTime 返回当前模拟时间
func (c *Controller) SimTime() float64 {
	return c.clock.Now(c.hostClock())
}
