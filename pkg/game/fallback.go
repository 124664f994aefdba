package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// FallbackRenderer 绘制静态背景
//
// 效果不可用（Disabled/Destroyed）或尚未开始时显示。
// 图片解码成功时按 cover 适配绘制图片，否则填充降级背景色。
type FallbackRenderer struct {
	color color.RGBA
	image *ebiten.Image
}

// NewFallbackRenderer 创建静态背景渲染器
func NewFallbackRenderer(clr color.RGBA) *FallbackRenderer {
	return &FallbackRenderer{color: clr}
}

// SetImage 设置背景图片
// 与效果纹理分开持有，效果降级释放 GPU 资源后仍可显示
func (f *FallbackRenderer) SetImage(img image.Image) {
	if f.image != nil {
		f.image.Deallocate()
	}
	f.image = ebiten.NewImageFromImage(img)
}

// Draw 以给定不透明度绘制静态背景
func (f *FallbackRenderer) Draw(screen *ebiten.Image, opacity float64) {
	if opacity <= 0 {
		return
	}
	if opacity > 1 {
		opacity = 1
	}

	if f.image == nil {
		c := f.color
		c.A = uint8(float64(c.A) * opacity)
		c.R = uint8(float64(c.R) * opacity)
		c.G = uint8(float64(c.G) * opacity)
		c.B = uint8(float64(c.B) * opacity)
		screen.Fill(c)
		return
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	tw, th := f.image.Bounds().Dx(), f.image.Bounds().Dy()
	scale, dx, dy := CoverTransform(sw, sh, tw, th)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(dx, dy)
	op.ColorScale.ScaleAlpha(float32(opacity))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(f.image, op)
}

// Release 释放背景图片
func (f *FallbackRenderer) Release() {
	if f.image != nil {
		f.image.Deallocate()
		f.image = nil
	}
}

// CoverTransform 计算 cover 适配的缩放和平移：保持宽高比并裁剪填满屏幕
func CoverTransform(screenW, screenH, texW, texH int) (scale, dx, dy float64) {
	if texW <= 0 || texH <= 0 {
		return 1, 0, 0
	}
	sx := float64(screenW) / float64(texW)
	sy := float64(screenH) / float64(texH)
	scale = sx
	if sy > scale {
		scale = sy
	}
	dx = (float64(screenW) - float64(texW)*scale) / 2
	dy = (float64(screenH) - float64(texH)*scale) / 2
	return scale, dx, dy
}
