package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/sim2d/core"
)

func writePNG(t *testing.T, dir string, w, h int, c color.RGBA) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(dir, "tex.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPreloadDecodes(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, 4, 2, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	cache := NewTextureCache(nil)
	if err := cache.Preload(map[string]string{"tex.png": path}); err != nil {
		t.Fatalf("Preload: %v", err)
	}

	tex, ok := cache.Get("tex.png")
	if !ok {
		t.Fatal("texture not cached")
	}
	if tex.Width != 4 || tex.Height != 2 {
		t.Errorf("size = %dx%d", tex.Width, tex.Height)
	}
	want := core.RGB{R: 200, G: 100, B: 50}
	if got := tex.At(1, 1); got != want {
		t.Errorf("At(1,1) = %+v, want %+v", got, want)
	}
	// Out-of-range samples clamp to the edge
	if got := tex.At(-3, 99); got != want {
		t.Errorf("clamped sample = %+v", got)
	}
}

func TestPreloadRecordsFailures(t *testing.T) {
	dir := t.TempDir()
	good := writePNG(t, dir, 2, 2, color.RGBA{A: 255})

	cache := NewTextureCache(nil)
	err := cache.Preload(map[string]string{
		"good.png": good,
		"gone.png": filepath.Join(dir, "missing.png"),
	})
	if err == nil {
		t.Fatal("missing file must surface in the joined error")
	}

	if _, ok := cache.Get("good.png"); !ok {
		t.Error("failure of one asset must not block the others")
	}
	if !cache.Failed("gone.png") {
		t.Error("failed asset not marked")
	}
	if _, ok := cache.Get("gone.png"); ok {
		t.Error("failed asset served")
	}
}

func TestPreloadIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, 2, 2, color.RGBA{A: 255})

	cache := NewTextureCache(nil)
	if err := cache.Preload(map[string]string{"t": path}); err != nil {
		t.Fatal(err)
	}
	first, _ := cache.Get("t")

	// Second preload keeps the decoded instance
	if err := cache.Preload(map[string]string{"t": path}); err != nil {
		t.Fatal(err)
	}
	second, _ := cache.Get("t")
	if first != second {
		t.Error("cached texture reloaded")
	}
}
