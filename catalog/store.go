package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/milk9111/isoroom/iso"
	"github.com/milk9111/isoroom/render"
	"github.com/milk9111/isoroom/room"
)

type spriteKey struct {
	baseID    string
	variantID string
	direction int
}

// Store resolves decoration sprites from an assets root. Records, images and
// sprites are loaded on first use and kept until invalidated. Loads that fail
// are retried on the next lookup; only missing art is remembered.
type Store struct {
	Root string

	images  *imageCache
	furnis  map[string]*Furni
	sprites map[spriteKey]*render.Sprite
	failed  map[spriteKey]bool
	index   *Index
}

func NewStore(root string) *Store {
	return &Store{
		Root:    root,
		images:  newImageCache(root),
		furnis:  make(map[string]*Furni),
		sprites: make(map[spriteKey]*render.Sprite),
		failed:  make(map[spriteKey]bool),
	}
}

// Furni returns the record for baseID. A missing record is remembered and
// reported as nil without an error.
func (s *Store) Furni(baseID string) (*Furni, error) {
	if f, ok := s.furnis[baseID]; ok {
		return f, nil
	}
	f, err := LoadFurni(s.Root, baseID)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.furnis[baseID] = nil
			return nil, nil
		}
		return nil, err
	}
	s.furnis[baseID] = f
	return f, nil
}

// Index returns the item index, loading it on first use.
func (s *Store) Index() (*Index, error) {
	if s.index != nil {
		return s.index, nil
	}
	idx, err := LoadIndex(s.Root)
	if err != nil {
		return nil, err
	}
	s.index = idx
	return idx, nil
}

// Sprite implements render.Resolver.
func (s *Store) Sprite(baseID, variantID string, rotation int) (*render.Sprite, bool) {
	if baseID == "" {
		return nil, false
	}
	key := spriteKey{baseID: baseID, variantID: variantID, direction: room.Direction(rotation)}
	if sp, ok := s.sprites[key]; ok {
		return sp, sp != nil
	}
	sp, err := s.loadSprite(key)
	if err != nil {
		if !s.failed[key] {
			log.Printf("catalog: sprite %s/%s dir %d: %v", baseID, variantID, key.direction, err)
			s.failed[key] = true
		}
		return nil, false
	}
	delete(s.failed, key)
	s.sprites[key] = sp
	return sp, sp != nil
}

func (s *Store) loadSprite(key spriteKey) (*render.Sprite, error) {
	f, err := s.Furni(key.baseID)
	if err != nil {
		return nil, err
	}
	if f != nil {
		if r, ok := f.Render(key.variantID, key.direction); ok {
			img, err := s.images.load(r.Path)
			if err != nil {
				return nil, err
			}
			return render.NewSprite(img, iso.Point{X: r.Offset.X, Y: r.Offset.Y}), nil
		}
	}

	for _, path := range fallbackPaths(key) {
		img, err := s.images.load(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		b := img.Bounds()
		// Rendered files without metadata stand on the bottom corner of the tile.
		offset := iso.Point{X: float64(b.Dx() / 2), Y: float64(b.Dy() - iso.HalfTileHeight)}
		return render.NewSprite(img, offset), nil
	}
	return nil, nil
}

func fallbackPaths(key spriteKey) []string {
	dir := fmt.Sprintf("furnis/%s/rendered", key.baseID)
	return []string{
		fmt.Sprintf("%s/%s_dir_%d_%s_no_sd.png", dir, key.baseID, key.direction, key.variantID),
		fmt.Sprintf("%s/%s_dir_%d_no_sd.png", dir, key.baseID, key.direction),
	}
}

// Invalidate drops cached data affected by a change to path.
func (s *Store) Invalidate(path string) {
	rel, err := filepath.Rel(s.Root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	if rel == "catalog.json" {
		s.index = nil
		return
	}
	parts := strings.Split(rel, "/")
	if len(parts) >= 2 && parts[0] == "furnis" {
		s.forgetFurni(parts[1])
		return
	}
	s.Reset()
}

func (s *Store) forgetFurni(baseID string) {
	delete(s.furnis, baseID)
	for k := range s.sprites {
		if k.baseID == baseID {
			delete(s.sprites, k)
		}
	}
	for k := range s.failed {
		if k.baseID == baseID {
			delete(s.failed, k)
		}
	}
	prefix := "furnis/" + baseID + "/"
	for k := range s.images.images {
		if strings.HasPrefix(filepath.ToSlash(k), prefix) {
			s.images.forget(k)
		}
	}
}

// Reset drops every cached record, image and sprite.
func (s *Store) Reset() {
	s.furnis = make(map[string]*Furni)
	s.sprites = make(map[spriteKey]*render.Sprite)
	s.failed = make(map[spriteKey]bool)
	s.images.clear()
	s.index = nil
}
