package texture

import (
	"image"

	"mc-skin-renderer/internal/parts"
)

// Set holds the decoded textures a render samples, keyed by texture type.
type Set map[parts.TextureType]*image.NRGBA

// Size returns the dimensions of a texture, or false if it is missing.
func (s Set) Size(t parts.TextureType) (w, h int, ok bool) {
	img := s[t]
	if img == nil {
		return 0, 0, false
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), true
}
