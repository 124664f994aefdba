package shader

import (
	"image"
	"image/color"
	"math"

	"github.com/decker502/ripples/pkg/components"
	"github.com/decker502/ripples/pkg/config"
	"github.com/decker502/ripples/pkg/utils"
)

// RGB 线性 [0,1] 颜色
type RGB struct {
	R, G, B float64
}

// Sampler 按纹理 UV 采样背景
type Sampler interface {
	Sample(u, v float64) RGB
}

// ImageSampler 以最近邻方式采样 image.Image
type ImageSampler struct {
	img image.Image
}

// NewImageSampler 包装一张图片
func NewImageSampler(img image.Image) *ImageSampler {
	return &ImageSampler{img: img}
}

// Sample 实现 Sampler
func (s *ImageSampler) Sample(u, v float64) RGB {
	b := s.img.Bounds()
	x := b.Min.X + clampInt(int(utils.Clamp01(u)*float64(b.Dx())), 0, b.Dx()-1)
	y := b.Min.Y + clampInt(int(utils.Clamp01(v)*float64(b.Dy())), 0, b.Dy()-1)
	c := color.NRGBA64Model.Convert(s.img.At(x, y)).(color.NRGBA64)
	return RGB{
		R: float64(c.R) / 0xffff,
		G: float64(c.G) / 0xffff,
		B: float64(c.B) / 0xffff,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Displacement 计算纹理 UV 处所有活跃涟漪叠加后的位移和高光
// 与着色器循环逐项对应
func Displacement(u, v float64, frame *components.FrameUniforms) (dx, dy, spec float64) {
	now := float64(frame.Time)
	for i := 0; i < frame.Count && i < frame.Capacity(); i++ {
		start := float64(frame.Start[i])
		duration := float64(frame.Duration[i])
		dt := now - start
		if dt < 0 || dt >= duration {
			continue
		}

		t := dt / duration
		radius := dt * config.FrontSpeed
		cx := float64(frame.Center[i*2])
		cy := float64(frame.Center[i*2+1])
		x := math.Hypot(u-cx, v-cy) - radius

		env := math.Exp(-x * x * config.EnvelopeSharpness)
		wave := math.Sin(x*config.SpatialFrequency) * env

		dirX, dirY := normalize(u-cx+config.DirectionEpsilon, v-cy+config.DirectionEpsilon)
		fade := 1 - t
		amp := float64(frame.Amplitude[i])
		dx += dirX * wave * amp * fade
		dy += dirY * wave * amp * fade
		spec += env * fade * config.SpecularScale
	}
	return dx, dy, spec
}

func normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

// Shade 计算屏幕 UV (sx, sy) 处的最终颜色
//
// 参数：
//   - frame: 当前帧 uniform
//   - screenW, screenH: 视口逻辑尺寸
//   - texW, texH: 纹理尺寸
//   - src: 背景采样器
func Shade(sx, sy float64, frame *components.FrameUniforms, screenW, screenH, texW, texH float64, src Sampler) RGB {
	u0, v0 := utils.CoverMap(sx, sy, screenW/screenH, texW/texH)
	dx, dy, spec := Displacement(u0, v0, frame)

	u := utils.Clamp01(u0 + dx)
	v := utils.Clamp01(v0 + dy)
	cax := dx * config.ChromaticAberrationScale
	cay := dy * config.ChromaticAberrationScale

	col := RGB{
		R: src.Sample(utils.Clamp01(u+cax), utils.Clamp01(v+cay)).R,
		G: src.Sample(u, v).G,
		B: src.Sample(utils.Clamp01(u-cax), utils.Clamp01(v-cay)).B,
	}
	col.R += spec
	col.G += spec
	col.B += spec

	l := col.R*config.LumaR + col.G*config.LumaG + col.B*config.LumaB
	col.R = grade(l, col.R)
	col.G = grade(l, col.G)
	col.B = grade(l, col.B)
	return col
}

// grade 饱和度和对比度微调
func grade(luma, c float64) float64 {
	c = luma + (c-luma)*config.SaturationBoost
	return (c-0.5)*config.ContrastBoost + 0.5
}

// ToNRGBA 将颜色截断到 [0,1] 并转换为 8 位颜色
func (c RGB) ToNRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(utils.Clamp01(c.R) * 255)),
		G: uint8(math.Round(utils.Clamp01(c.G) * 255)),
		B: uint8(math.Round(utils.Clamp01(c.B) * 255)),
		A: 255,
	}
}
