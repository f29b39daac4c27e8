package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/knight/assets"
)

// sheetCache holds uploaded sprite sheets keyed by their assets-relative name.
type sheetCache struct {
	mu     sync.RWMutex
	sheets map[string]*ebiten.Image
}

var sheets = &sheetCache{sheets: make(map[string]*ebiten.Image)}

func (c *sheetCache) get(key string) *ebiten.Image {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sheets[key]
}

// put stores img unless another caller got there first, and returns the
// image that ends up cached.
func (c *sheetCache) put(key string, img *ebiten.Image) *ebiten.Image {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.sheets[key]; ok {
		return cached
	}
	c.sheets[key] = img
	return img
}

// LoadImage returns the sprite sheet named by path, decoding and uploading it
// on first use. Embedded assets win over files on disk.
func LoadImage(path string) (*ebiten.Image, error) {
	key := assets.Clean(path)
	if key == "" {
		return nil, fmt.Errorf("render: empty image path")
	}
	if img := sheets.get(key); img != nil {
		return img, nil
	}
	src, err := decodeSheet(path, key)
	if err != nil {
		return nil, err
	}
	return sheets.put(key, ebiten.NewImageFromImage(src)), nil
}

func decodeSheet(path, key string) (image.Image, error) {
	if img, err := assets.Decode(key); err == nil {
		return img, nil
	}
	for _, p := range sheetCandidates(path, key) {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if img, _, err := image.Decode(bytes.NewReader(b)); err == nil {
			return img, nil
		}
	}
	return nil, fmt.Errorf("render: load image %s: not found", path)
}

// sheetCandidates lists the disk locations tried for a sheet, in order.
func sheetCandidates(path, key string) []string {
	out := []string{path}
	for _, p := range []string{filepath.Join("assets", filepath.FromSlash(key)), filepath.Base(path)} {
		if p != out[len(out)-1] && p != path {
			out = append(out, p)
		}
	}
	return out
}
