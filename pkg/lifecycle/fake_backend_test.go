package lifecycle

import (
	"errors"
	"image"

	"github.com/decker502/ripples/pkg/components"
	"github.com/decker502/ripples/pkg/shader"
)

// fakeBackend 记录调用次数的内存后端
type fakeBackend struct {
	unavailable bool
	precisions  map[shader.Precision]bool
	compileErr  error
	quadErr     error
	uploadErr   error
	resizeErr   error

	compiled, releasedProgram int
	quads, releasedQuad       int
	uploads, releasedTexture  int
	resizes                   []SurfaceParams
	draws                     int
	lastFrame                 components.FrameUniforms
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		precisions: map[shader.Precision]bool{
			shader.PrecisionHigh:   true,
			shader.PrecisionMedium: true,
			shader.PrecisionLow:    true,
		},
	}
}

func (f *fakeBackend) Available() bool { return !f.unavailable }

func (f *fakeBackend) SupportsPrecision(p shader.Precision) bool { return f.precisions[p] }

func (f *fakeBackend) CompileProgram(src []byte) error {
	if f.compileErr != nil {
		return f.compileErr
	}
	f.compiled++
	return nil
}

func (f *fakeBackend) ReleaseProgram() { f.releasedProgram++ }

func (f *fakeBackend) CreateQuad() error {
	if f.quadErr != nil {
		return f.quadErr
	}
	f.quads++
	return nil
}

func (f *fakeBackend) ReleaseQuad() { f.releasedQuad++ }

func (f *fakeBackend) UploadTexture(img image.Image) (int, int, error) {
	if f.uploadErr != nil {
		return 0, 0, f.uploadErr
	}
	f.uploads++
	b := img.Bounds()
	return b.Dx(), b.Dy(), nil
}

func (f *fakeBackend) ReleaseTexture() { f.releasedTexture++ }

func (f *fakeBackend) Resize(p SurfaceParams) error {
	if f.resizeErr != nil {
		return f.resizeErr
	}
	f.resizes = append(f.resizes, p)
	return nil
}

func (f *fakeBackend) Draw(frame *components.FrameUniforms) {
	f.draws++
	f.lastFrame = *frame
}

var errBoom = errors.New("boom")
