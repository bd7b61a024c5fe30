package texture

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
)

// ShadowSize is the edge length of the generated shadow texture.
const ShadowSize = 128

// ShadowTexture draws the soft ground shadow: a black disc fading out towards
// its rim.
func ShadowTexture() (*image.NRGBA, error) {
	dc := gg.NewContext(ShadowSize, ShadowSize)
	defer dc.Close()

	c := ShadowSize / 2.0
	brush := gg.NewRadialGradientBrush(c, c, 0, c).
		AddColorStop(0, gg.RGBA{A: 0.6}).
		AddColorStop(0.7, gg.RGBA{A: 0.3}).
		AddColorStop(1, gg.RGBA{A: 0})
	dc.SetFillBrush(brush)
	dc.DrawCircle(c, c, c)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("texture: draw shadow: %w", err)
	}
	return toNRGBA(dc.Image()), nil
}
