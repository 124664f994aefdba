//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。手动构建：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.ripples -o build/android/ripples.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Ripples.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/ripples/pkg/app"
	"github.com/decker502/ripples/pkg/embedded"
	"github.com/decker502/ripples/pkg/game"
)

func init() {
	embedded.Init(dataFS)

	// 移动端没有窗口焦点切换以外的暂停信号，场景的 pauseWhenUnfocused 负责前后台切换
	cfg := app.Config{
		Verbose: true,
		Storage: game.OpenStorage(game.AppName),
	}

	rippleApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}

	mobile.SetGame(rippleApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
