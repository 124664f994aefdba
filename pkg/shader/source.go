// Package shader 生成并构建水波纹 Kage 着色器
//
// 着色器只有片元阶段（顶点阶段由 Ebitengine 内置），逐像素执行：
//  1. 把输出像素的屏幕 UV 经 cover 适配映射到纹理 UV
//  2. 累加所有活跃涟漪的位移与高光（加性叠加，不取最大值）
//  3. 按位移做三次偏移采样模拟色散，叠加高光，最后做饱和度/对比度微调
//
// 同一算法的 CPU 参考实现见 model.go，供离线快照和测试使用。
package shader

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/decker502/ripples/pkg/config"
)

// Uniform 名称，打包器和后端都按这些名称传值
const (
	UniformTime        = "Time"
	UniformCount       = "Count"
	UniformResolution  = "Resolution"
	UniformTextureSize = "TextureSize"
	UniformCenter      = "Center"
	UniformStart       = "Start"
	UniformDuration    = "Duration"
	UniformAmplitude   = "Amplitude"
)

// Options 着色器生成参数
// Precision 不改变源码：低于 High 时由 uniform 打包做时间重定基
type Options struct {
	MaxRipples int
	Precision  Precision
}

// DefaultOptions 返回默认生成参数
func DefaultOptions() Options {
	return Options{
		MaxRipples: config.MaxRipples,
		Precision:  PrecisionHigh,
	}
}

const fragmentTemplate = `//kage:unit pixels

package main

var {{.U.Time}} float
var {{.U.Count}} int
var {{.U.Resolution}} vec2
var {{.U.TextureSize}} vec2

var {{.U.Center}} [{{.MaxRipples}}]vec2
var {{.U.Start}} [{{.MaxRipples}}]float
var {{.U.Duration}} [{{.MaxRipples}}]float
var {{.U.Amplitude}} [{{.MaxRipples}}]float

func coverUV(st vec2) vec2 {
	sAspect := {{.U.Resolution}}.x / {{.U.Resolution}}.y
	tAspect := {{.U.TextureSize}}.x / {{.U.TextureSize}}.y
	uv := st
	if sAspect > tAspect {
		scale := tAspect / sAspect
		uv.y = (uv.y-0.5)*scale + 0.5
	} else {
		scale := sAspect / tAspect
		uv.x = (uv.x-0.5)*scale + 0.5
	}
	return uv
}

func sampleUV(uv vec2) vec4 {
	size := imageSrc0Size()
	p := clamp(uv*size, vec2(0.5), size-vec2(0.5))
	return imageSrc0At(imageSrc0Origin() + p)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	st := (dstPos.xy - imageDstOrigin()) / imageDstSize()
	uv0 := coverUV(st)
	disp := vec2(0)
	spec := 0.0

	for i := 0; i < {{.MaxRipples}}; i++ {
		if i >= {{.U.Count}} {
			break
		}
		dt := {{.U.Time}} - {{.U.Start}}[i]
		if dt < 0.0 || dt >= {{.U.Duration}}[i] {
			continue
		}
		t := dt / {{.U.Duration}}[i]
		radius := dt * {{float .FrontSpeed}}
		x := distance(uv0, {{.U.Center}}[i]) - radius
		env := exp(-x * x * {{float .EnvelopeSharpness}})
		wave := sin(x*{{float .SpatialFrequency}}) * env
		dir := normalize(uv0 - {{.U.Center}}[i] + {{float .DirectionEpsilon}})
		disp += dir * wave * {{.U.Amplitude}}[i] * (1.0 - t)
		spec += env * (1.0 - t) * {{float .SpecularScale}}
	}

	uv := clamp(uv0+disp, 0.0, 1.0)
	ca := disp * {{float .ChromaticAberrationScale}}
	col := vec3(0)
	col.r = sampleUV(clamp(uv+ca, 0.0, 1.0)).r
	col.g = sampleUV(uv).g
	col.b = sampleUV(clamp(uv-ca, 0.0, 1.0)).b

	col += spec

	l := dot(col, vec3({{float .LumaR}}, {{float .LumaG}}, {{float .LumaB}}))
	col = mix(vec3(l), col, {{float .SaturationBoost}})
	col = (col-0.5)*{{float .ContrastBoost}} + 0.5

	return vec4(col, 1.0)
}
`

type uniformNames struct {
	Time, Count, Resolution, TextureSize string
	Center, Start, Duration, Amplitude   string
}

type templateData struct {
	MaxRipples int
	U          uniformNames

	FrontSpeed               float64
	SpatialFrequency         float64
	EnvelopeSharpness        float64
	ChromaticAberrationScale float64
	SpecularScale            float64
	SaturationBoost          float64
	ContrastBoost            float64
	DirectionEpsilon         float64
	LumaR, LumaG, LumaB      float64
}

var fragmentTmpl = template.Must(template.New("ripple").
	Funcs(template.FuncMap{"float": formatFloat}).
	Parse(fragmentTemplate))

// formatFloat 输出带小数点的浮点字面量
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// GenerateSource 生成 Kage 片元着色器源码
func GenerateSource(opts Options) ([]byte, error) {
	if opts.MaxRipples < 1 {
		return nil, fmt.Errorf("%w: max ripples must be positive, got %d", ErrCompile, opts.MaxRipples)
	}

	data := templateData{
		MaxRipples: opts.MaxRipples,
		U: uniformNames{
			Time:        UniformTime,
			Count:       UniformCount,
			Resolution:  UniformResolution,
			TextureSize: UniformTextureSize,
			Center:      UniformCenter,
			Start:       UniformStart,
			Duration:    UniformDuration,
			Amplitude:   UniformAmplitude,
		},
		FrontSpeed:               config.FrontSpeed,
		SpatialFrequency:         config.SpatialFrequency,
		EnvelopeSharpness:        config.EnvelopeSharpness,
		ChromaticAberrationScale: config.ChromaticAberrationScale,
		SpecularScale:            config.SpecularScale,
		SaturationBoost:          config.SaturationBoost,
		ContrastBoost:            config.ContrastBoost,
		DirectionEpsilon:         config.DirectionEpsilon,
		LumaR:                    config.LumaR,
		LumaG:                    config.LumaG,
		LumaB:                    config.LumaB,
	}

	var buf bytes.Buffer
	if err := fragmentTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: template: %v", ErrCompile, err)
	}
	return buf.Bytes(), nil
}
