package game

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/decker502/ripples/pkg/assets"
)

func writeTestPNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	path := filepath.Join(dir, "bg.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

// pollUntil 轮询直到得到结果或超时
func pollUntil(t *testing.T, l *AssetLoader) AssetResult {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if r, ok := l.Poll(); ok {
			return r
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("asset loader did not deliver a result")
	return AssetResult{}
}

func TestAssetLoaderAsync(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), 8, 8)
	l := StartAssetLoad(context.Background(), path)

	r := pollUntil(t, l)
	if r.Err != nil || r.Image == nil || r.Path != path {
		t.Fatalf("result: %+v", r)
	}
	if _, ok := l.Poll(); ok {
		t.Error("result must be delivered only once")
	}
}

func TestAssetLoaderFailure(t *testing.T) {
	l := StartAssetLoad(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	r := pollUntil(t, l)
	if !errors.Is(r.Err, assets.ErrAssetLoad) {
		t.Errorf("expected ErrAssetLoad, got %v", r.Err)
	}
}

func TestAssetLoaderCancel(t *testing.T) {
	release := make(chan struct{})
	l := startAssetLoad(context.Background(), "slow.png", func(string) (image.Image, error) {
		<-release
		return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
	})

	l.Cancel()
	l.Cancel()
	close(release)

	time.Sleep(10 * time.Millisecond)
	if _, ok := l.Poll(); ok {
		t.Error("cancelled loader must not deliver a result")
	}
}

func TestCoverTransform(t *testing.T) {
	tests := []struct {
		name           string
		sw, sh, tw, th int
		scale, dx, dy  float64
	}{
		{"same size", 800, 600, 800, 600, 1, 0, 0},
		{"wider screen crops vertically", 1600, 600, 800, 600, 2, 0, -300},
		{"taller screen crops horizontally", 800, 1200, 800, 600, 2, -400, 0},
		{"unknown texture", 800, 600, 0, 0, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scale, dx, dy := CoverTransform(tt.sw, tt.sh, tt.tw, tt.th)
			if scale != tt.scale || dx != tt.dx || dy != tt.dy {
				t.Errorf("got (%v, %v, %v), want (%v, %v, %v)", scale, dx, dy, tt.scale, tt.dx, tt.dy)
			}
		})
	}
}
