package game

import (
	"fmt"
	"image"
	"log"
	"runtime"

	"github.com/decker502/ripples/pkg/components"
	"github.com/decker502/ripples/pkg/lifecycle"
	"github.com/decker502/ripples/pkg/shader"
	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenBackend 基于 Ebitengine 的渲染后端
//
// 全屏四边形通过 DrawTrianglesShader 绘制（不受 DrawRectShader 的源尺寸约束），
// 背景纹理作为 Images[0] 传入，着色器自行做 cover 适配。
type EbitenBackend struct {
	program  *ebiten.Shader
	texture  *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16

	surface  lifecycle.SurfaceParams
	uniforms map[string]any
	target   *ebiten.Image
}

// NewEbitenBackend 创建后端，GPU 资源在 Controller.Init 时才创建
func NewEbitenBackend() *EbitenBackend {
	return &EbitenBackend{
		uniforms: make(map[string]any, 8),
	}
}

// Available 在游戏循环启动后检查图形库是否就绪
func (b *EbitenBackend) Available() bool {
	var info ebiten.DebugInfo
	ebiten.ReadDebugInfo(&info)
	if info.GraphicsLibrary == ebiten.GraphicsLibraryUnknown {
		log.Printf("[Backend] graphics library unknown")
		return false
	}
	log.Printf("[Backend] graphics library: %s", info.GraphicsLibrary)
	return true
}

// SupportsPrecision 移动端 GPU 的片元阶段不保证高精度浮点
func (b *EbitenBackend) SupportsPrecision(p shader.Precision) bool {
	switch runtime.GOOS {
	case "android", "ios":
		return p <= shader.PrecisionMedium
	default:
		return true
	}
}

// CompileProgram 编译 Kage 源码
func (b *EbitenBackend) CompileProgram(src []byte) error {
	s, err := ebiten.NewShader(src)
	if err != nil {
		return err
	}
	b.program = s
	return nil
}

// ReleaseProgram 释放着色器
func (b *EbitenBackend) ReleaseProgram() {
	if b.program != nil {
		b.program.Deallocate()
		b.program = nil
	}
}

// CreateQuad 创建全屏四边形（两个三角形）
func (b *EbitenBackend) CreateQuad() error {
	b.vertices = make([]ebiten.Vertex, 4)
	for i := range b.vertices {
		b.vertices[i].ColorR = 1
		b.vertices[i].ColorG = 1
		b.vertices[i].ColorB = 1
		b.vertices[i].ColorA = 1
	}
	b.indices = []uint16{0, 1, 2, 1, 2, 3}
	return nil
}

// ReleaseQuad 释放四边形
func (b *EbitenBackend) ReleaseQuad() {
	b.vertices = nil
	b.indices = nil
}

// UploadTexture 上传背景纹理
func (b *EbitenBackend) UploadTexture(img image.Image) (int, int, error) {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return 0, 0, fmt.Errorf("empty image bounds %v", bounds)
	}
	b.texture = ebiten.NewImageFromImage(img)
	return bounds.Dx(), bounds.Dy(), nil
}

// ReleaseTexture 释放背景纹理
func (b *EbitenBackend) ReleaseTexture() {
	if b.texture != nil {
		b.texture.Deallocate()
		b.texture = nil
	}
}

// Resize 更新四边形顶点和视口/纹理尺寸 uniform
func (b *EbitenBackend) Resize(p lifecycle.SurfaceParams) error {
	if p.BackingWidth <= 0 || p.BackingHeight <= 0 {
		return fmt.Errorf("invalid backing size %dx%d", p.BackingWidth, p.BackingHeight)
	}
	b.surface = p
	b.uniforms[shader.UniformResolution] = []float32{float32(p.ViewWidth), float32(p.ViewHeight)}
	b.uniforms[shader.UniformTextureSize] = []float32{float32(p.TextureWidth), float32(p.TextureHeight)}
	b.layoutQuad(float32(p.BackingWidth), float32(p.BackingHeight))
	log.Printf("[Backend] resize: backing %dx%d, view %.0fx%.0f, texture %dx%d",
		p.BackingWidth, p.BackingHeight, p.ViewWidth, p.ViewHeight, p.TextureWidth, p.TextureHeight)
	return nil
}

// layoutQuad 顶点覆盖目标区域，源坐标覆盖整张纹理
func (b *EbitenBackend) layoutQuad(dstW, dstH float32) {
	if len(b.vertices) != 4 {
		return
	}
	var srcW, srcH float32 = 1, 1
	if b.texture != nil {
		s := b.texture.Bounds().Size()
		srcW, srcH = float32(s.X), float32(s.Y)
	}

	corners := [4][2]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i, c := range corners {
		b.vertices[i].DstX = c[0] * dstW
		b.vertices[i].DstY = c[1] * dstH
		b.vertices[i].SrcX = c[0] * srcW
		b.vertices[i].SrcY = c[1] * srcH
	}
}

// SetTarget 设置本帧的绘制目标（屏幕）
func (b *EbitenBackend) SetTarget(target *ebiten.Image) {
	b.target = target
}

// Draw 用当前帧 uniform 绘制全屏四边形
func (b *EbitenBackend) Draw(frame *components.FrameUniforms) {
	if b.target == nil || b.program == nil || b.texture == nil || len(b.vertices) != 4 {
		return
	}

	size := b.target.Bounds().Size()
	if float32(size.X) != b.vertices[3].DstX || float32(size.Y) != b.vertices[3].DstY {
		b.layoutQuad(float32(size.X), float32(size.Y))
	}

	b.uniforms[shader.UniformTime] = frame.Time
	b.uniforms[shader.UniformCount] = frame.Count
	b.uniforms[shader.UniformCenter] = frame.Center
	b.uniforms[shader.UniformStart] = frame.Start
	b.uniforms[shader.UniformDuration] = frame.Duration
	b.uniforms[shader.UniformAmplitude] = frame.Amplitude

	op := &ebiten.DrawTrianglesShaderOptions{
		Uniforms: b.uniforms,
	}
	op.Images[0] = b.texture
	b.target.DrawTrianglesShader(b.vertices, b.indices, b.program, op)
}
