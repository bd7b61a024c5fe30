package texture

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// formatRank orders file formats when several share a stem. Lower wins; lossless
// formats with alpha come first.
var formatRank = map[string]int{
	".png":  0,
	".tga":  1,
	".webp": 2,
	".bmp":  3,
	".jpg":  4,
	".jpeg": 4,
}

// IsTextureFile reports whether path has a decodable texture extension.
func IsTextureFile(path string) bool {
	_, ok := formatRank[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Key normalises a texture name to its index key: the lower-case file stem, with
// UUIDs written as 32 hex digits.
func Key(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(name)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	if id, err := uuid.Parse(stem); err == nil {
		return strings.ReplaceAll(id.String(), "-", "")
	}
	return stem
}

// Index maps texture keys to filesystem paths. It is safe for concurrent use.
type Index struct {
	mu      sync.RWMutex
	entries map[string]string // key → full path
}

// BuildIndex scans dir and its subdirectories for texture files.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}
	filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		idx.Add(path)
		return nil
	})
	return idx
}

// Add indexes path, keeping the better format when the key already exists.
// It reports whether the index changed.
func (idx *Index) Add(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	rank, ok := formatRank[ext]
	if !ok {
		return false
	}
	key := Key(path)

	idx.mu.Lock()
	defer idx.mu.Unlock()
	if existing, exists := idx.entries[key]; exists && existing != path {
		if formatRank[strings.ToLower(filepath.Ext(existing))] <= rank {
			return false
		}
	}
	idx.entries[key] = path
	return true
}

// Remove drops path from the index if it is the indexed file for its key.
func (idx *Index) Remove(path string) {
	key := Key(path)
	idx.mu.Lock()
	if idx.entries[key] == path {
		delete(idx.entries, key)
	}
	idx.mu.Unlock()
}

// ResolvePath returns the filesystem path for a texture name, or ("", false).
func (idx *Index) ResolvePath(texName string) (string, bool) {
	idx.mu.RLock()
	path, ok := idx.entries[Key(texName)]
	idx.mu.RUnlock()
	return path, ok
}

// Keys returns every indexed key in sorted order.
func (idx *Index) Keys() []string {
	idx.mu.RLock()
	keys := make([]string, 0, len(idx.entries))
	for k := range idx.entries {
		keys = append(keys, k)
	}
	idx.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries)
}
