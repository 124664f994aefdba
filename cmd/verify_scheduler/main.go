// Package main 在无窗口环境下验证涟漪调度时间线
//
// 用固定随机种子推进调度器，打印每一帧的产生、过期与淘汰事件，
// 用于检查发射间隔曲线和容量淘汰是否符合预期。
//
// Usage:
//
//	go run ./cmd/verify_scheduler [flags]
//
// Flags:
//
//	--scene <path>      场景配置文件（默认 data/scene.yaml）
//	--seed <n>          随机种子（默认 1）
//	--duration <sec>    模拟时长（默认 10 秒）
//	--fps <n>           模拟帧率（默认 60）
//	--capacity <n>      涟漪容量（默认 28）
//	--quiet             只输出汇总
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/ripples/pkg/config"
	"github.com/decker502/ripples/pkg/systems"
)

var (
	scenePath = flag.String("scene", config.DefaultScenePath, "场景配置文件")
	seed      = flag.Int64("seed", 1, "随机种子")
	duration  = flag.Float64("duration", 10, "模拟时长（秒）")
	fps       = flag.Float64("fps", 60, "模拟帧率")
	capacity  = flag.Int("capacity", config.MaxRipples, "涟漪容量")
	quiet     = flag.Bool("quiet", false, "只输出汇总")
)

func main() {
	flag.Parse()

	if *fps <= 0 || *duration <= 0 || *capacity <= 0 {
		fmt.Fprintln(os.Stderr, "❌ fps, duration and capacity must be positive")
		os.Exit(2)
	}

	scene, err := config.LoadSceneConfig(*scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 加载场景失败: %v\n", err)
		os.Exit(1)
	}

	registry := systems.NewEmitterRegistry(scene.Emitters)
	sched := systems.NewRippleScheduler(registry, systems.NewSeededSource(*seed), *capacity)

	fmt.Printf("=== 涟漪调度验证 ===\n")
	fmt.Printf("场景: %s (%d 个发射点)\n", *scenePath, registry.Len())
	fmt.Printf("种子: %d  帧率: %.0f  时长: %.1fs  容量: %d\n\n", *seed, *fps, *duration, *capacity)

	step := 1 / *fps
	frames := 0
	peak := 0
	firstFull := -1.0
	for now := 0.0; now <= *duration; now = float64(frames) * step {
		stats := sched.Update(now)
		frames++

		if stats.Live > peak {
			peak = stats.Live
		}
		if firstFull < 0 && stats.Live == *capacity {
			firstFull = now
		}

		if *quiet || (stats.Spawned == 0 && stats.Expired == 0 && stats.Evicted == 0) {
			continue
		}
		fmt.Printf("t=%7.3f  +%d  -%d expired  -%d evicted  live=%d\n",
			now, stats.Spawned, stats.Expired, stats.Evicted, stats.Live)
	}

	spawned, expired, evicted := sched.Totals()
	fmt.Printf("\n=== 汇总 ===\n")
	fmt.Printf("帧数: %d\n", frames)
	fmt.Printf("产生: %d  过期: %d  淘汰: %d\n", spawned, expired, evicted)
	fmt.Printf("峰值存活: %d / %d\n", peak, *capacity)
	if firstFull >= 0 {
		fmt.Printf("首次达到容量: t=%.3f\n", firstFull)
	} else {
		fmt.Printf("未达到容量上限\n")
	}

	if !*quiet {
		fmt.Printf("\n=== 各发射点产生次数 ===\n")
		for i, e := range registry.Emitters() {
			fmt.Printf("#%02d (%.3f, %.3f) r=%2.0f: %d\n", i, e.X, e.Y, e.RadiusClass, e.TotalSpawned)
		}
	}

	live := uint64(len(sched.Ripples()))
	if spawned != expired+evicted+live {
		fmt.Fprintf(os.Stderr, "❌ 计数不守恒: spawned=%d expired=%d evicted=%d live=%d\n", spawned, expired, evicted, live)
		os.Exit(1)
	}
	fmt.Println("✅ 计数守恒")
}
