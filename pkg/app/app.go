// Package app 提供水波纹应用的核心包装器
//
// 该包把宿主通知（窗口尺寸、可见性、关闭、输入）转换为生命周期控制器的事件，
// 使其可以被桌面端和移动端共用。桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/decker502/ripples/pkg/config"
	"github.com/decker502/ripples/pkg/game"
	"github.com/decker502/ripples/pkg/input"
	"github.com/decker502/ripples/pkg/lifecycle"
	"github.com/decker502/ripples/pkg/systems"
	"github.com/decker502/ripples/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Scene 场景配置，nil 时加载嵌入的默认场景
	Scene *config.SceneConfig
	// ImagePath 覆盖场景中的背景图片路径
	ImagePath string
	// Debug 显示调试信息并启用 F9 模拟上下文丢失
	Debug bool
	// RestoreEmitters 启动时追加发射点日志中的手动发射点
	RestoreEmitters bool
	// ReduceMotion 直接显示静态背景
	ReduceMotion bool
	// Storage gdata 存储，nil 时设置和日志只保存在内存中
	Storage *gdata.Manager
}

// App 是水波纹应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene     *config.SceneConfig
	imagePath string

	controller *lifecycle.Controller
	backend    *game.EbitenBackend
	fallback   *game.FallbackRenderer
	loader     *game.AssetLoader
	settings   *game.SettingsManager
	journal    *game.EmitterJournal
	placement  *input.PlacementInput

	ctx    context.Context
	cancel context.CancelFunc

	started   bool
	shutdown  bool
	debugKeys bool
	showDebug bool
	viewport  lifecycle.Viewport

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// GPU 资源在第一次 Update 时才创建（此时图形库已就绪）。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	scene := cfg.Scene
	if scene == nil {
		var err error
		scene, err = config.LoadEmbeddedSceneConfig(config.DefaultScenePath)
		if err != nil {
			return nil, fmt.Errorf("场景配置加载失败: %w", err)
		}
	}

	imagePath := scene.Image
	if cfg.ImagePath != "" {
		imagePath = cfg.ImagePath
	}

	settings := game.NewSettingsManager(cfg.Storage)
	journal := game.NewEmitterJournal(cfg.Storage)

	emitters := append([]config.EmitterConfig(nil), scene.Emitters...)
	if cfg.RestoreEmitters {
		restored := journal.EmitterConfigs()
		emitters = append(emitters, restored...)
		log.Printf("[App] restored %d emitters from journal", len(restored))
	}
	registry := systems.NewEmitterRegistry(emitters)

	backend := game.NewEbitenBackend()
	controller := lifecycle.NewController(backend, registry, lifecycle.Options{
		ReduceMotion: cfg.ReduceMotion || settings.GetSettings().ReduceMotion,
	})

	ctx, cancel := context.WithCancel(context.Background())

	// 保留上一帧：暂停期间不重绘，画面停在最后一帧
	ebiten.SetScreenClearedEveryFrame(false)

	log.Printf("[App] scene: %d emitters, image %s", registry.Len(), imagePath)

	return &App{
		scene:      scene,
		imagePath:  imagePath,
		controller: controller,
		backend:    backend,
		fallback:   game.NewFallbackRenderer(scene.FallbackRGBA()),
		settings:   settings,
		journal:    journal,
		placement:  input.NewPlacementInput(utils.IsMobile()),
		ctx:        ctx,
		cancel:     cancel,
		debugKeys:  cfg.Debug,
		showDebug:  cfg.Debug || settings.GetSettings().ShowDebug,
	}, nil
}

// ConfigureWindow 设置桌面窗口参数
func (a *App) ConfigureWindow() {
	ebiten.SetWindowSize(a.scene.Window.Width, a.scene.Window.Height)
	ebiten.SetWindowTitle(a.scene.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(a.settings.GetSettings().Fullscreen)
}

// start 创建 GPU 资源并开始后台解码背景图片
func (a *App) start() {
	a.started = true
	a.controller.Init()
	// 即使效果被禁用也加载图片，供静态背景使用
	a.loader = game.StartAssetLoad(a.ctx, a.imagePath)
}

// Update 处理宿主通知和输入
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.Shutdown()
		return ebiten.Termination
	}
	if a.shutdown {
		return ebiten.Termination
	}

	if !a.started {
		a.start()
	}
	a.pollAsset()

	a.controller.SetVisibility(a.visible())
	a.handleWindowKeys()
	a.handleDebugKeys()
	a.handlePointer()
	return nil
}

// pollAsset 把后台解码结果交给控制器（在渲染回合内上传纹理）
func (a *App) pollAsset() {
	if a.loader == nil {
		return
	}
	r, ok := a.loader.Poll()
	if !ok {
		return
	}
	if r.Err != nil {
		log.Printf("[App] background unavailable: %v", r.Err)
		a.controller.AssetFailed(r.Err)
		return
	}
	a.fallback.SetImage(r.Image)
	a.controller.AssetLoaded(r.Image)
}

// visible 窗口最小化，或配置了失焦暂停且窗口失去焦点时视为隐藏
func (a *App) visible() bool {
	if ebiten.IsWindowMinimized() {
		return false
	}
	if a.scene.PauseWhenUnfocused && !ebiten.IsFocused() {
		return false
	}
	return true
}

// handleWindowKeys F11 切换全屏，F3 切换调试信息
func (a *App) handleWindowKeys() {
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.scene.Window.Width, a.scene.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		if !fullscreen {
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 退出全屏后等待几帧再设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		}
		a.settings.SetFullscreen(fullscreen)
		a.saveSettings()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.showDebug = !a.showDebug
		a.settings.SetShowDebug(a.showDebug)
		a.saveSettings()
	}
}

// handleDebugKeys F9 模拟渲染上下文丢失（仅 --debug）
func (a *App) handleDebugKeys() {
	if !a.debugKeys {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		log.Printf("[App] simulating context loss")
		a.controller.ContextLost()
	}
}

// handlePointer 在指针位置添加发射点（桌面 Shift+左键，移动端长按）
func (a *App) handlePointer() {
	cx, cy, ok := a.placement.Update()
	if !ok {
		return
	}

	vp := a.controller.Viewport()
	if !vp.Valid() {
		return
	}
	// 指针坐标是后备缓冲坐标，换算回视口逻辑坐标
	bw, bh := vp.BackingSize()
	px := float64(cx) * float64(vp.Width) / float64(bw)
	py := float64(cy) * float64(vp.Height) / float64(bh)

	x, y, ok := a.controller.AddEmitterAt(px, py)
	if !ok {
		return
	}
	if a.settings.GetSettings().JournalEnabled {
		if err := a.journal.Append(x, y); err != nil {
			log.Printf("[Journal] Warning: %v", err)
		}
	}
}

// Draw 在帧边界推进控制器，然后按不透明度叠加静态背景
func (a *App) Draw(screen *ebiten.Image) {
	a.backend.SetTarget(screen)
	drawn := a.controller.Tick()

	opacity := a.controller.FallbackOpacity()
	if opacity > 0 {
		a.fallback.Draw(screen, opacity)
	}

	if a.showDebug && (drawn || opacity > 0) {
		a.drawDebug(screen)
	}
}

// drawDebug 绘制调试信息
func (a *App) drawDebug(screen *ebiten.Image) {
	reg := a.controller.Registry()
	msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nState: %s\nRipples: %d/%d  Emitters: %d (%d manual)\n",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		a.controller.State(),
		len(a.controller.Ripples()), config.MaxRipples,
		reg.Len(), reg.ManualCount())
	if p, ok := a.controller.Precision(); ok {
		msg += fmt.Sprintf("Precision: %s\n", p)
	}
	if err := a.controller.DisableReason(); err != nil {
		msg += fmt.Sprintf("Disabled: %v\n", err)
	}
	msg += a.placement.Hint() + "  F3: overlay  F11: fullscreen"
	if a.debugKeys {
		msg += "  F9: lose context"
	}
	ebitenutil.DebugPrint(screen, msg)
}

// Layout 返回按上限设备像素比缩放后的后备缓冲尺寸
// 尺寸变化只登记 resize 请求，由下一帧边界统一处理
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	v := lifecycle.Viewport{Width: outsideWidth, Height: outsideHeight, DeviceScale: scale}
	if v != a.viewport {
		a.viewport = v
		a.controller.RequestResize(v)
	}
	return v.BackingSize()
}

// Shutdown 销毁效果并保存设置；重复调用无效
func (a *App) Shutdown() {
	if a.shutdown {
		return
	}
	a.shutdown = true

	a.controller.Destroy()
	if a.loader != nil {
		a.loader.Cancel()
	}
	a.cancel()
	a.fallback.Release()
	a.saveSettings()
	log.Printf("[App] shutdown complete")
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Controller 返回生命周期控制器
func (a *App) Controller() *lifecycle.Controller {
	return a.controller
}
