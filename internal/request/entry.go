package request

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidEntry is returned for targets that are neither a UUID, a player name
// nor a texture path.
var ErrInvalidEntry = errors.New("invalid entry")

// EntryKind says how an entry identifies its skin.
type EntryKind uint8

const (
	EntryUUID EntryKind = iota
	EntryName
	EntryPath
)

// Entry is the target of a render: a player UUID, a player name or a texture file.
type Entry struct {
	Kind EntryKind
	UUID uuid.UUID
	Name string
	Path string
}

var playerName = regexp.MustCompile(`^[A-Za-z0-9_]{1,16}$`)

var textureExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".tga": true, ".bmp": true, ".webp": true,
}

// ParseEntry classifies s. UUIDs are accepted with or without dashes.
func ParseEntry(s string) (Entry, error) {
	s = strings.TrimSpace(s)
	if id, err := uuid.Parse(s); err == nil {
		return Entry{Kind: EntryUUID, UUID: id}, nil
	}
	if strings.ContainsRune(s, filepath.Separator) || strings.ContainsRune(s, '/') ||
		textureExts[strings.ToLower(filepath.Ext(s))] {
		return Entry{Kind: EntryPath, Path: s}, nil
	}
	if playerName.MatchString(s) {
		return Entry{Kind: EntryName, Name: s}, nil
	}
	return Entry{}, fmt.Errorf("request: parse entry %q: %w", s, ErrInvalidEntry)
}

// Key is a stable lower-case identifier used for texture lookups and output names.
func (e Entry) Key() string {
	switch e.Kind {
	case EntryUUID:
		return strings.ReplaceAll(e.UUID.String(), "-", "")
	case EntryName:
		return strings.ToLower(e.Name)
	default:
		base := filepath.Base(e.Path)
		return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	}
}

func (e Entry) String() string {
	switch e.Kind {
	case EntryUUID:
		return e.UUID.String()
	case EntryName:
		return e.Name
	default:
		return e.Path
	}
}
