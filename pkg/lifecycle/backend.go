package lifecycle

import (
	"image"

	"github.com/decker502/ripples/pkg/components"
	"github.com/decker502/ripples/pkg/shader"
)

// SurfaceParams 一次 resize 后渲染表面的参数
type SurfaceParams struct {
	BackingWidth  int     // 后备缓冲宽度（物理像素）
	BackingHeight int     // 后备缓冲高度（物理像素）
	ViewWidth     float64 // 视口逻辑宽度（cover 适配使用）
	ViewHeight    float64 // 视口逻辑高度
	TextureWidth  int     // 背景纹理宽度，未加载时为 0
	TextureHeight int     // 背景纹理高度，未加载时为 0
}

// Backend 渲染后端
//
// 程序、纹理和全屏四边形由 Controller 独占，Controller 保证每种资源最多释放一次。
type Backend interface {
	shader.Compiler
	shader.PrecisionProber

	// Available 返回是否能获得可用的渲染上下文
	Available() bool

	CreateQuad() error
	ReleaseQuad()

	// UploadTexture 上传背景图片，返回像素尺寸
	UploadTexture(img image.Image) (width, height int, err error)
	ReleaseTexture()

	// Resize 重新配置渲染表面并更新视口/纹理尺寸 uniform
	Resize(p SurfaceParams) error

	// Draw 用当前帧 uniform 绘制一次全屏四边形
	Draw(frame *components.FrameUniforms)
}
