package catalog

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
)

// imageCache memoizes decoded images by assets-relative path.
type imageCache struct {
	root   string
	images map[string]image.Image
}

func newImageCache(root string) *imageCache {
	return &imageCache{root: root, images: make(map[string]image.Image)}
}

// load decodes an image under root and caches it by key.
func (c *imageCache) load(key string) (image.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("catalog: empty image key")
	}
	if img, ok := c.images[key]; ok {
		return img, nil
	}
	img, err := decodeFile(filepath.Join(c.root, filepath.FromSlash(key)))
	if err != nil {
		return nil, err
	}
	c.images[key] = img
	return img, nil
}

func (c *imageCache) forget(key string) {
	delete(c.images, key)
}

func (c *imageCache) clear() {
	c.images = make(map[string]image.Image)
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("catalog: decode %s: %w", path, err)
	}
	return img, nil
}
