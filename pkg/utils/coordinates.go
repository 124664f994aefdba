// Package utils 提供渲染管线常用的工具函数
//
// coordinates.go 提供坐标转换工具库，用于处理背景图片 "cover" 适配下的坐标计算。
//
// # 坐标系统概述
//
// 本项目使用以下坐标系统：
//   - **屏幕像素坐标**：相对于渲染表面左上角（后备缓冲像素）
//   - **屏幕 UV**：屏幕像素坐标除以表面尺寸，范围 [0,1]，原点左上
//   - **纹理 UV**：背景图片上的归一化坐标，范围 [0,1]，原点左上（发射点坐标使用此空间）
//
// # 核心转换公式（cover 适配：保持宽高比、裁剪填满）
//
//	if screenAspect > textureAspect:
//	    v = (v - 0.5) * (textureAspect / screenAspect) + 0.5
//	else:
//	    u = (u - 0.5) * (screenAspect / textureAspect) + 0.5
//
// 同一公式在两处使用：着色器逐像素计算（pkg/shader 生成的 Kage 源码）
// 以及 Shift+点击时把指针位置转换为发射点坐标（PointerToTextureUV）。
// 两处公式必须保持一致，否则手动放置的发射点会偏移。
package utils

import "math"

// CoverMap 将屏幕 UV 映射到纹理 UV（cover 适配）
//
// 参数：
//   - u, v: 屏幕 UV
//   - screenAspect: 屏幕宽高比（宽/高）
//   - textureAspect: 纹理宽高比（宽/高），由调用方保证非零
//
// 返回：
//   - 纹理 UV（未裁剪到 [0,1]）
func CoverMap(u, v, screenAspect, textureAspect float64) (float64, float64) {
	if screenAspect > textureAspect {
		scale := textureAspect / screenAspect
		v = (v-0.5)*scale + 0.5
	} else {
		scale := screenAspect / textureAspect
		u = (u-0.5)*scale + 0.5
	}
	return u, v
}

// PointerToTextureUV 将指针位置（表面像素坐标）转换为纹理 UV
//
// 纹理尺寸未知（图片尚未加载）或表面尺寸为零时返回 ok=false，调用方应忽略该输入。
// 结果被限制在 [0,1] 内。
func PointerToTextureUV(px, py, surfaceW, surfaceH, textureW, textureH float64) (u, v float64, ok bool) {
	if textureW <= 0 || textureH <= 0 || surfaceW <= 0 || surfaceH <= 0 {
		return 0, 0, false
	}

	u, v = CoverMap(px/surfaceW, py/surfaceH, surfaceW/surfaceH, textureW/textureH)
	return Clamp01(u), Clamp01(v), true
}

// CappedDeviceScale 限制设备像素比
// 非正值（未知）按 1 处理
func CappedDeviceScale(dpr, limit float64) float64 {
	if dpr <= 0 || math.IsNaN(dpr) {
		return 1
	}
	if dpr > limit {
		return limit
	}
	return dpr
}

// BackingSize 计算渲染表面的后备缓冲分辨率
// 视口逻辑尺寸乘以（已限制的）设备像素比后向下取整，最小为 1
func BackingSize(viewW, viewH int, dpr, limit float64) (int, int) {
	scale := CappedDeviceScale(dpr, limit)
	w := int(math.Floor(float64(viewW) * scale))
	h := int(math.Floor(float64(viewH) * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Clamp01 将值限制在 [0,1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
