// Package assets 打开并解码背景图片
//
// 不依赖渲染后端，桌面应用、移动端和离线快照工具共用。
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder

	"github.com/decker502/ripples/pkg/embedded"
)

// ErrAssetLoad 背景图片无法打开或解码
var ErrAssetLoad = errors.New("background asset load failed")

// OpenAsset 打开背景图片
// 优先读取文件系统；不存在时若路径以 data/ 开头则回退到嵌入资源
func OpenAsset(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	clean := strings.TrimPrefix(path, "./")
	if embedded.IsInitialized() && strings.HasPrefix(clean, "data/") {
		return embedded.Open(clean)
	}
	return nil, err
}

// LoadImage 同步加载并解码背景图片
// 所有失败都包装为 ErrAssetLoad
func LoadImage(path string) (image.Image, error) {
	r, err := OpenAsset(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %v", ErrAssetLoad, path, err)
	}
	defer r.Close()

	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %v", ErrAssetLoad, path, err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: %s has empty bounds", ErrAssetLoad, path)
	}

	log.Printf("[Asset] decoded %s (%s, %dx%d)", path, format, b.Dx(), b.Dy())
	return img, nil
}
