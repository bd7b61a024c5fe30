// Package scene renders a request: it assembles the player model, builds its
// geometry and rasterizes it with the request's camera and sun.
package scene

import (
	"context"
	"fmt"
	"image"

	"mc-skin-renderer/internal/parts"
	"mc-skin-renderer/internal/primitive"
	"mc-skin-renderer/internal/raster"
	"mc-skin-renderer/internal/request"
	"mc-skin-renderer/internal/texture"
)

// Renderer draws requests. The zero value uses DepthLess and discards only fully
// transparent texels.
type Renderer struct {
	Depth       raster.DepthFunc
	AlphaCutoff uint8
	Provider    parts.Provider
}

// Render draws req with the default renderer.
func Render(ctx context.Context, req *request.Request, textures texture.Set) (*image.NRGBA, error) {
	return Renderer{}.Render(ctx, req, textures)
}

// Render draws every part of the request's mode. Parts whose texture is missing
// from textures are skipped. The context is checked between draw calls only.
func (r Renderer) Render(ctx context.Context, req *request.Request, textures texture.Set) (*image.NRGBA, error) {
	size := req.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("scene: invalid size %dx%d", size.Width, size.Height)
	}

	fb := raster.NewFrameBuffer(size.Width, size.Height, r.Depth)
	state := raster.ShaderState{
		Transform:   req.Camera().ViewProjection(fb.Width, fb.Height),
		Sun:         req.Lighting(),
		Depth:       r.Depth,
		AlphaCutoff: r.AlphaCutoff,
	}
	pctx := req.PartsContext(SlimArms(req.Model, textures[parts.TextureSkin]))

	for _, b := range req.Mode.BodyParts() {
		ps, err := r.Provider.Parts(pctx, b)
		if err != nil {
			return nil, err
		}
		for _, p := range ps {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			w, h, ok := textures.Size(p.Texture())
			if !ok {
				continue
			}
			state.Texture = textures[p.Texture()]
			raster.Draw(fb, primitive.FromPart(p, w, h), &state)
		}
	}
	return fb.Image(), nil
}

// SlimArms resolves the arm variant, detecting it from the skin in auto mode.
func SlimArms(m request.Model, skin *image.NRGBA) bool {
	switch m {
	case request.ModelSlim:
		return true
	case request.ModelClassic:
		return false
	}
	return skin != nil && texture.DetectSlim(skin)
}
