// Ripples 在静态背景图片上渲染水波纹折射效果
//
// 用法:
//
//	go run . [flags]
//
// 参数:
//
//	--verbose            输出详细日志
//	--scene <path>       使用指定的场景配置（默认使用嵌入的 data/scene.yaml）
//	--image <path>       覆盖场景中的背景图片
//	--choose-image       启动时弹出文件对话框选择背景图片
//	--debug              显示调试信息，F9 模拟渲染上下文丢失
//	--restore-emitters   追加上次 Shift+点击记录的发射点
//	--reduce-motion      只显示静态背景（也可设置环境变量 RIPPLES_REDUCE_MOTION=1）
//
// 运行时按 Shift+左键在指针位置添加发射点，F3 切换调试信息，F11 切换全屏。
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/ripples/pkg/app"
	"github.com/decker502/ripples/pkg/config"
	"github.com/decker502/ripples/pkg/embedded"
	"github.com/decker502/ripples/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
)

var (
	verbose         = flag.Bool("verbose", false, "Enable verbose logging")
	scenePath       = flag.String("scene", "", "Scene YAML path (default: embedded data/scene.yaml)")
	imagePath       = flag.String("image", "", "Background image path (overrides the scene)")
	chooseImage     = flag.Bool("choose-image", false, "Pick the background image with a file dialog")
	debug           = flag.Bool("debug", false, "Show debug overlay; F9 simulates context loss")
	restoreEmitters = flag.Bool("restore-emitters", false, "Append journaled manual emitters to the seed set")
	reduceMotion    = flag.Bool("reduce-motion", false, "Show the static background only")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	scene, err := loadScene(*scenePath)
	if err != nil {
		log.Fatalf("场景配置加载失败: %v", err)
	}

	image := *imagePath
	if *chooseImage {
		picked, err := pickImage()
		if err != nil {
			log.Fatalf("选择背景图片失败: %v", err)
		}
		if picked != "" {
			image = picked
		}
	}

	cfg := app.Config{
		Verbose:         *verbose,
		Scene:           scene,
		ImagePath:       image,
		Debug:           *debug,
		RestoreEmitters: *restoreEmitters,
		ReduceMotion:    *reduceMotion || os.Getenv("RIPPLES_REDUCE_MOTION") == "1",
		Storage:         game.OpenStorage(game.AppName),
	}

	rippleApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}
	rippleApp.ConfigureWindow()

	if err := ebiten.RunGame(rippleApp); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// loadScene 未指定路径时使用嵌入的默认场景
func loadScene(path string) (*config.SceneConfig, error) {
	if path == "" {
		return config.LoadEmbeddedSceneConfig(config.DefaultScenePath)
	}
	return config.LoadSceneConfig(path)
}

// pickImage 弹出文件对话框，取消时返回空字符串
func pickImage() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose Background Image"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.png", "*.jpg", "*.jpeg", "*.webp", "*.bmp", "*.tif", "*.tiff"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", fmt.Errorf("file dialog: %w", err)
	}
	return filename, nil
}
