// Package main 离线渲染水波纹效果快照
//
// 在 CPU 上推进调度器并逐像素求值着色模型，输出 PNG。
// 不需要 GPU 或窗口环境，适合在 CI 中生成对比图。
//
// Usage:
//
//	go run ./cmd/ripple_snapshot [flags]
//
// Flags:
//
//	--scene <path>        场景配置文件（默认 data/scene.yaml）
//	--image <path>        背景图片（默认使用场景配置中的 image）
//	--out <path>          输出 PNG 路径（默认 ripple_snapshot.png）
//	--width/--height      输出尺寸（默认 1280x720）
//	--time <sec>          模拟时刻（默认 6 秒）
//	--seed <n>            随机种子（默认 1）
//	--supersample <n>     超采样倍数（默认 1）
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"time"

	"github.com/decker502/ripples/internal/snapshot"
	"github.com/decker502/ripples/pkg/assets"
	"github.com/decker502/ripples/pkg/config"
)

var (
	scenePath   = flag.String("scene", config.DefaultScenePath, "场景配置文件")
	imagePath   = flag.String("image", "", "背景图片（覆盖场景配置）")
	outPath     = flag.String("out", "ripple_snapshot.png", "输出 PNG 路径")
	width       = flag.Int("width", 1280, "输出宽度")
	height      = flag.Int("height", 720, "输出高度")
	simTime     = flag.Float64("time", 6, "模拟时刻（秒）")
	seed        = flag.Int64("seed", 1, "随机种子")
	supersample = flag.Int("supersample", 1, "超采样倍数")
)

func main() {
	flag.Parse()

	scene, err := config.LoadSceneConfig(*scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 加载场景失败: %v\n", err)
		os.Exit(1)
	}

	path := scene.Image
	if *imagePath != "" {
		path = *imagePath
	}
	bg, err := assets.LoadImage(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 加载背景图片失败: %v\n", err)
		os.Exit(1)
	}

	opts := snapshot.DefaultOptions()
	opts.Width, opts.Height = *width, *height
	opts.Time = *simTime
	opts.Seed = *seed
	opts.Supersample = *supersample

	frame, stats := snapshot.Simulate(scene.Emitters, opts)
	fmt.Printf("t=%.3f 存活涟漪: %d (本帧 +%d)\n", frame.Time, frame.Count, stats.Spawned)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	img, err := snapshot.Render(ctx, bg, frame, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 渲染失败: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 创建输出文件失败: %v\n", err)
		os.Exit(1)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "❌ 写入 PNG 失败: %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ 关闭输出文件失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ 已写入 %s (%dx%d, 用时 %v)\n", *outPath, *width, *height, time.Since(start).Round(time.Millisecond))
}
