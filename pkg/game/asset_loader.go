package game

import (
	"context"
	"image"

	"github.com/decker502/ripples/pkg/assets"
)

// AssetResult 异步加载结果
type AssetResult struct {
	Path  string
	Image image.Image
	Err   error
}

// AssetLoader 在后台 goroutine 中解码背景图片
//
// 解码结果通过 Poll 在渲染回合内取回，纹理上传仍在渲染回合中完成，
// 因此 GPU 资源只被渲染回合访问。
type AssetLoader struct {
	results chan AssetResult
	cancel  context.CancelFunc
	done    bool
}

// StartAssetLoad 启动异步加载
func StartAssetLoad(ctx context.Context, path string) *AssetLoader {
	return startAssetLoad(ctx, path, assets.LoadImage)
}

func startAssetLoad(ctx context.Context, path string, load func(string) (image.Image, error)) *AssetLoader {
	ctx, cancel := context.WithCancel(ctx)
	l := &AssetLoader{
		results: make(chan AssetResult, 1),
		cancel:  cancel,
	}

	go func() {
		img, err := load(path)
		select {
		case l.results <- AssetResult{Path: path, Image: img, Err: err}:
		case <-ctx.Done():
		}
	}()

	return l
}

// Poll 非阻塞地取回加载结果，结果只返回一次
func (l *AssetLoader) Poll() (AssetResult, bool) {
	if l.done {
		return AssetResult{}, false
	}
	select {
	case r := <-l.results:
		l.done = true
		l.cancel()
		return r, true
	default:
		return AssetResult{}, false
	}
}

// Cancel 放弃加载结果（幂等）
func (l *AssetLoader) Cancel() {
	l.done = true
	l.cancel()
}
