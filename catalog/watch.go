package catalog

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a path must stay quiet before its change is
// reported.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changed furni records and sprite files under an assets
// root. Each path is reported once its writes have settled.
type Watcher struct {
	watcher  *fsnotify.Watcher
	root     string
	debounce time.Duration
	Events   chan string
	Errors   chan error
	closeCh  chan struct{}
	once     sync.Once
}

// NewWatcher watches root and every directory below furnis/, including
// directories created later.
func NewWatcher(root string) (*Watcher, error) {
	return newWatcher(root, DefaultDebounce)
}

func newWatcher(root string, debounce time.Duration) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dirs := []string{root}
	furnis := filepath.Join(root, "furnis")
	if info, err := os.Stat(furnis); err == nil && info.IsDir() {
		dirs = append(dirs, subdirs(furnis)...)
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher:  w,
		root:     root,
		debounce: debounce,
		Events:   make(chan string, 16),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	timers := make(map[string]*time.Timer)
	fired := make(chan string, 16)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	schedule := func(path string) {
		if t, ok := timers[path]; ok {
			t.Reset(w.debounce)
			return
		}
		timers[path] = time.AfterFunc(w.debounce, func() {
			select {
			case fired <- path:
			case <-w.closeCh:
			}
		})
	}

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 && w.inFurnis(event.Name) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					for _, path := range w.addTree(event.Name) {
						schedule(path)
					}
					continue
				}
			}
			if !isAssetFile(event.Name) {
				continue
			}
			schedule(event.Name)
		case path := <-fired:
			delete(timers, path)
			select {
			case w.Events <- path:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) inFurnis(path string) bool {
	rel, err := filepath.Rel(filepath.Join(w.root, "furnis"), path)
	return err == nil && !strings.HasPrefix(rel, "..")
}

// addTree watches a directory created after start-up and returns the asset
// files that were already inside it.
func (w *Watcher) addTree(dir string) []string {
	var files []string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := w.watcher.Add(path); err != nil {
				log.Printf("catalog: watch %s: %v", path, err)
			}
			return nil
		}
		if isAssetFile(path) {
			files = append(files, path)
		}
		return nil
	})
	return files
}

func subdirs(dir string) []string {
	var dirs []string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs
}

func isAssetFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".json" || ext == ".png"
}

// Drain applies every pending change to the store without blocking. It
// returns how many paths were applied.
func (w *Watcher) Drain(s *Store) int {
	n := 0
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return n
			}
			s.Invalidate(path)
			n++
		default:
			return n
		}
	}
}
