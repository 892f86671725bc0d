package render

import (
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/lixenwraith/sim2d/core"
)

// Texture is a decoded image as a flat pixel grid, backend-independent
type Texture struct {
	Name   string
	Width  int
	Height int
	Pixels []core.RGB
}

// At samples a pixel, clamping out-of-range coordinates to the edge
func (t *Texture) At(x, y int) core.RGB {
	if t.Width == 0 || t.Height == 0 {
		return core.RGBBlack
	}
	if x < 0 {
		x = 0
	} else if x >= t.Width {
		x = t.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= t.Height {
		y = t.Height - 1
	}
	return t.Pixels[y*t.Width+x]
}

// TextureCache loads and holds decoded textures by asset name.
// Loads run concurrently; lookups afterwards are read-only from the
// tick goroutine. A failed load marks the name so sprites referencing
// it fall back to the placeholder without retry storms.
type TextureCache struct {
	mu       sync.RWMutex
	log      *zap.Logger
	textures map[string]*Texture
	failed   map[string]error
}

func NewTextureCache(log *zap.Logger) *TextureCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &TextureCache{
		log:      log,
		textures: make(map[string]*Texture),
		failed:   make(map[string]error),
	}
}

// Preload fetches every asset concurrently and blocks until all finish.
// Individual failures are recorded and joined into the returned error;
// the world keeps running with placeholders either way.
func (c *TextureCache) Preload(assets map[string]string) error {
	type result struct {
		name string
		tex  *Texture
		err  error
	}
	results := make(chan result, len(assets))
	var wg sync.WaitGroup
	for name, path := range assets {
		c.mu.RLock()
		_, have := c.textures[name]
		c.mu.RUnlock()
		if have {
			continue
		}
		wg.Add(1)
		go func(name, path string) {
			defer wg.Done()
			tex, err := loadTexture(name, path)
			results <- result{name: name, tex: tex, err: err}
		}(name, path)
	}
	wg.Wait()
	close(results)

	var errs []error
	c.mu.Lock()
	for r := range results {
		if r.err != nil {
			c.failed[r.name] = r.err
			errs = append(errs, r.err)
			c.log.Warn("texture load failed", zap.String("name", r.name), zap.Error(r.err))
			continue
		}
		c.textures[r.name] = r.tex
		delete(c.failed, r.name)
	}
	c.mu.Unlock()
	return errors.Join(errs...)
}

// Get returns a loaded texture; false covers both unknown and failed
func (c *TextureCache) Get(name string) (*Texture, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tex, ok := c.textures[name]
	return tex, ok
}

// Failed reports whether the named asset load failed
func (c *TextureCache) Failed(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.failed[name]
	return ok
}

// Put inserts a ready texture, used by tests and procedural assets
func (c *TextureCache) Put(tex *Texture) {
	c.mu.Lock()
	c.textures[tex.Name] = tex
	delete(c.failed, tex.Name)
	c.mu.Unlock()
}

// Clear drops every texture and failure record
func (c *TextureCache) Clear() {
	c.mu.Lock()
	c.textures = make(map[string]*Texture)
	c.failed = make(map[string]error)
	c.mu.Unlock()
}

func loadTexture(name, path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &AssetError{Name: name, Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &AssetError{Name: name, Path: path, Err: err}
	}

	b := img.Bounds()
	tex := &Texture{
		Name:   name,
		Width:  b.Dx(),
		Height: b.Dy(),
		Pixels: make([]core.RGB, b.Dx()*b.Dy()),
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			// RGBA is alpha-premultiplied, so transparency folds to black
			r, g, bl, _ := img.At(x, y).RGBA()
			tex.Pixels[i] = core.RGB{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(bl >> 8),
			}
			i++
		}
	}
	return tex, nil
}
