package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/ripples/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultScenePath 嵌入的默认场景配置路径
const DefaultScenePath = "data/scene.yaml"

// ErrInvalidScene 场景配置校验失败
var ErrInvalidScene = errors.New("invalid scene config")

// SceneConfig 水波纹场景配置
// 描述背景图片、降级背景色、窗口参数以及初始发射点集合
type SceneConfig struct {
	Image              string          `yaml:"image"`              // 背景图片路径
	FallbackColor      string          `yaml:"fallbackColor"`      // 降级背景色（#RRGGBB），图片不可用时使用
	PauseWhenUnfocused bool            `yaml:"pauseWhenUnfocused"` // 窗口失去焦点时是否暂停
	Window             WindowConfig    `yaml:"window"`             // 窗口参数
	Emitters           []EmitterConfig `yaml:"emitters"`           // 初始发射点（纹理 UV 空间）
}

// WindowConfig 窗口参数
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// EmitterConfig 单个初始发射点
type EmitterConfig struct {
	X float64 `yaml:"x"` // 纹理 U 坐标 [0,1]
	Y float64 `yaml:"y"` // 纹理 V 坐标 [0,1]，自上而下
	R float64 `yaml:"r"` // 半径等级 [RadiusClassMin, RadiusClassMax]
}

// DefaultSceneConfig 返回缺省字段使用的默认值
func DefaultSceneConfig() *SceneConfig {
	return &SceneConfig{
		Image:              "data/images/background.png",
		FallbackColor:      "#0b1a24",
		PauseWhenUnfocused: true,
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Ripples",
		},
	}
}

// ParseSceneConfig 解析 YAML 场景配置并校验
// 未出现在 YAML 中的字段保留 DefaultSceneConfig 的值
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	cfg := DefaultSceneConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene YAML: %w", err)
	}

	if err := validateSceneConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadSceneConfig 从文件系统加载场景配置
func LoadSceneConfig(filePath string) (*SceneConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	return ParseSceneConfig(data)
}

// LoadEmbeddedSceneConfig 从嵌入资源加载场景配置
func LoadEmbeddedSceneConfig(path string) (*SceneConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded scene %s: %w", path, err)
	}
	return ParseSceneConfig(data)
}

// validateSceneConfig 验证配置的有效性
func validateSceneConfig(cfg *SceneConfig) error {
	if len(cfg.Emitters) == 0 {
		return fmt.Errorf("%w: emitters cannot be empty", ErrInvalidScene)
	}

	for i, e := range cfg.Emitters {
		if e.X < 0 || e.X > 1 || e.Y < 0 || e.Y > 1 {
			return fmt.Errorf("%w: emitter %d position (%.5f, %.5f) outside [0,1]", ErrInvalidScene, i, e.X, e.Y)
		}
		if e.R < RadiusClassMin || e.R > RadiusClassMax {
			return fmt.Errorf("%w: emitter %d radius class %.1f outside [%.0f,%.0f]",
				ErrInvalidScene, i, e.R, RadiusClassMin, RadiusClassMax)
		}
	}

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalidScene, cfg.Window.Width, cfg.Window.Height)
	}

	if _, err := ParseHexColor(cfg.FallbackColor); err != nil {
		return fmt.Errorf("%w: fallbackColor: %v", ErrInvalidScene, err)
	}

	return nil
}

// FallbackRGBA 返回降级背景色
// 配置已校验过，解析失败时返回黑色
func (c *SceneConfig) FallbackRGBA() color.RGBA {
	clr, err := ParseHexColor(c.FallbackColor)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return clr
}

// ParseHexColor 解析 "#RRGGBB" 或 "RRGGBB" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("expected #RRGGBB, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
