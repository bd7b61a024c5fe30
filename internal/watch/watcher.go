// Package watch keeps the texture index and cache in sync with a skin
// directory and reports which entries need to be rendered again.
package watch

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"mc-skin-renderer/internal/logger"
	"mc-skin-renderer/internal/scene"
	"mc-skin-renderer/internal/texture"
)

// Watcher follows a skin directory tree.
type Watcher struct {
	index    *texture.Index
	cache    *texture.Cache
	onChange func(key string)
	fs       *fsnotify.Watcher
}

// New creates a watcher. onChange receives the texture key of every skin that
// was added or rewritten; cape changes report the owning skin's key.
func New(index *texture.Index, cache *texture.Cache, onChange func(key string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{index: index, cache: cache, onChange: onChange, fs: fsw}, nil
}

// Watch adds dir and its subdirectories and handles events until ctx is done.
func (w *Watcher) Watch(ctx context.Context, dir string) error {
	defer w.fs.Close()
	if err := w.addRecursive(dir); err != nil {
		return err
	}

	for {
		select {
		case e, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			w.handle(e)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		case <-ctx.Done():
			return nil
		}
	}
}

func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.fs.Add(path)
		}
		return nil
	})
}

func (w *Watcher) handle(e fsnotify.Event) {
	if e.Has(fsnotify.Create) {
		if s, err := os.Stat(e.Name); err == nil && s.IsDir() {
			if err := w.addRecursive(e.Name); err != nil {
				logger.Warn("watch subdirectory", zap.String("dir", e.Name), zap.Error(err))
			}
			return
		}
	}
	if !texture.IsTextureFile(e.Name) {
		return
	}

	key := texture.Key(e.Name)
	switch {
	case e.Has(fsnotify.Create) || e.Has(fsnotify.Write):
		w.index.Add(e.Name)
		w.cache.Invalidate(key)
		logger.Debug("texture changed", zap.String("path", e.Name))
		if w.onChange != nil {
			w.onChange(OwnerKey(key))
		}
	case e.Has(fsnotify.Remove) || e.Has(fsnotify.Rename):
		w.cache.Invalidate(key)
		w.index.Remove(e.Name)
		// Removed directories are dropped by fsnotify itself; files were never added.
		if err := w.fs.Remove(e.Name); err != nil && !errors.Is(err, fsnotify.ErrNonExistentWatch) {
			logger.Debug("unwatch", zap.String("path", e.Name), zap.Error(err))
		}
	}
}

// OwnerKey maps a texture key to the entry it belongs to: a cape belongs to
// the skin with the same name.
func OwnerKey(key string) string {
	return strings.TrimSuffix(key, scene.CapeSuffix)
}
