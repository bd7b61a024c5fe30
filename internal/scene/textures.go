package scene

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"mc-skin-renderer/internal/parts"
	"mc-skin-renderer/internal/request"
	"mc-skin-renderer/internal/texture"
)

// ErrSkinNotFound is returned when a request's skin cannot be resolved.
var ErrSkinNotFound = errors.New("skin not found")

// CapeSuffix is appended to an entry key to find its cape texture.
const CapeSuffix = "_cape"

var (
	shadowOnce sync.Once
	shadowImg  *image.NRGBA
	shadowErr  error
)

func shadowTexture() (*image.NRGBA, error) {
	shadowOnce.Do(func() {
		shadowImg, shadowErr = texture.ShadowTexture()
	})
	return shadowImg, shadowErr
}

// Sources tells Load where textures come from. Armor sheets are texture names
// looked up through Resolver.
type Sources struct {
	Resolver    texture.Resolver
	ArmorLayer1 string
	ArmorLayer2 string
}

// Load gathers the textures req needs. The skin is processed unless the request
// excludes that; capes and armor sheets that cannot be found are left out.
func (s Sources) Load(req *request.Request) (texture.Set, error) {
	var skin *image.NRGBA
	switch req.Entry.Kind {
	case request.EntryPath:
		img, err := texture.LoadTexture(req.Entry.Path)
		if err != nil {
			return nil, fmt.Errorf("scene: load skin: %w", err)
		}
		skin = img
	default:
		if l, ok := s.Resolver.(texture.Loader); ok {
			img, err := l.Load(req.Entry.Key())
			if err != nil && !errors.Is(err, texture.ErrNotIndexed) {
				return nil, fmt.Errorf("scene: load skin: %w", err)
			}
			skin = img
		} else if s.Resolver != nil {
			skin = s.Resolver.Resolve(req.Entry.Key())
		}
	}
	if skin == nil {
		return nil, fmt.Errorf("scene: %s: %w", req.Entry, ErrSkinNotFound)
	}

	if !req.Features.Has(request.UnProcessedSkin) {
		skin = texture.ProcessSkin(skin, SlimArms(req.Model, skin))
	}
	set := texture.Set{parts.TextureSkin: skin}

	if req.Features.Has(request.Cape) && s.Resolver != nil {
		if cape := s.Resolver.Resolve(req.Entry.Key() + CapeSuffix); cape != nil {
			set[parts.TextureCape] = cape
		}
	}

	if req.Features.Has(request.Shadow) {
		shadow, err := shadowTexture()
		if err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
		set[parts.TextureShadow] = shadow
	}

	if len(req.Armor) > 0 && s.Resolver != nil {
		for t, name := range map[parts.TextureType]string{
			parts.TextureArmorLayer1: s.ArmorLayer1,
			parts.TextureArmorLayer2: s.ArmorLayer2,
		} {
			if name == "" {
				continue
			}
			if img := s.Resolver.Resolve(name); img != nil {
				set[t] = texture.ProcessSkin(img, false)
			}
		}
	}
	return set, nil
}
