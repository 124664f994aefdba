package shader

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
)

var (
	// ErrCompile 着色器源码生成或编译失败
	ErrCompile = errors.New("shader compile failed")
	// ErrLink 编译后的程序与打包器的 uniform 布局不一致
	ErrLink = errors.New("shader link failed")
)

// Compiler 由渲染后端实现，负责把源码编译为 GPU 程序
// 后端同一时刻只持有一个程序
type Compiler interface {
	CompileProgram(src []byte) error
	ReleaseProgram()
}

// UniformSpec 描述一个 uniform 的声明
// Length 为 0 表示标量/向量，大于 0 表示数组长度
type UniformSpec struct {
	Name   string
	Type   string
	Length int
}

// Layout 返回打包器写入的 uniform 布局
func Layout(maxRipples int) []UniformSpec {
	return []UniformSpec{
		{Name: UniformTime, Type: "float"},
		{Name: UniformCount, Type: "int"},
		{Name: UniformResolution, Type: "vec2"},
		{Name: UniformTextureSize, Type: "vec2"},
		{Name: UniformCenter, Type: "vec2", Length: maxRipples},
		{Name: UniformStart, Type: "float", Length: maxRipples},
		{Name: UniformDuration, Type: "float", Length: maxRipples},
		{Name: UniformAmplitude, Type: "float", Length: maxRipples},
	}
}

// Pipeline 已构建的着色器程序描述
type Pipeline struct {
	Source    []byte
	Precision Precision
	Uniforms  []UniformSpec
}

// Build 生成源码、编译并校验 uniform 布局
//
// 编译失败返回 ErrCompile；布局校验失败返回 ErrLink，
// 且已编译的程序会先被释放，调用方不需要再清理。
func Build(c Compiler, opts Options) (*Pipeline, error) {
	src, err := GenerateSource(opts)
	if err != nil {
		return nil, err
	}

	if err := c.CompileProgram(src); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompile, err)
	}

	layout := Layout(opts.MaxRipples)
	if err := LinkCheck(src, layout); err != nil {
		c.ReleaseProgram()
		return nil, err
	}

	log.Printf("[Shader] ripple program built (%d bytes, precision %s, %d slots)",
		len(src), opts.Precision, opts.MaxRipples)

	return &Pipeline{
		Source:    src,
		Precision: opts.Precision,
		Uniforms:  layout,
	}, nil
}

// uniformDecl 匹配 Kage 顶层 uniform 声明：var Name [N]type 或 var Name type
var uniformDecl = regexp.MustCompile(`(?m)^var\s+([A-Z]\w*)\s+(?:\[(\d+)\])?(\w+)\s*$`)

// LinkCheck 校验源码中的 uniform 声明与期望布局一致
func LinkCheck(src []byte, layout []UniformSpec) error {
	declared := make(map[string]UniformSpec)
	for _, m := range uniformDecl.FindAllSubmatch(src, -1) {
		spec := UniformSpec{Name: string(m[1]), Type: string(m[3])}
		if len(m[2]) > 0 {
			n, err := strconv.Atoi(string(m[2]))
			if err != nil {
				return fmt.Errorf("%w: uniform %s: bad array length %q", ErrLink, spec.Name, m[2])
			}
			spec.Length = n
		}
		declared[spec.Name] = spec
	}

	for _, want := range layout {
		got, ok := declared[want.Name]
		if !ok {
			return fmt.Errorf("%w: uniform %s not declared", ErrLink, want.Name)
		}
		if got.Type != want.Type || got.Length != want.Length {
			return fmt.Errorf("%w: uniform %s declared as [%d]%s, packer writes [%d]%s",
				ErrLink, want.Name, got.Length, got.Type, want.Length, want.Type)
		}
	}
	return nil
}
