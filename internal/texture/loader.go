package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Decode decodes PNG, JPEG, TGA, BMP or WebP bytes into an NRGBA image.
// TGA has no magic number, so it is only tried once the registered formats
// have rejected the data.
func Decode(raw []byte) (*image.NRGBA, error) {
	img, format, err := image.Decode(bytes.NewReader(raw))
	if errors.Is(err, image.ErrFormat) {
		return decodeTGA(raw)
	}
	if err != nil {
		return nil, fmt.Errorf("texture: decode: %w", err)
	}
	return checked(img, format)
}

func decodeTGA(raw []byte) (*image.NRGBA, error) {
	img, err := tga.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("texture: decode: %w", err)
	}
	return checked(img, "tga")
}

func checked(img image.Image, format string) (*image.NRGBA, error) {
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("texture: decode %s: empty image", format)
	}
	return toNRGBA(img), nil
}

// LoadTexture reads and decodes a texture file. Files with a .tga extension
// go straight to the TGA decoder.
func LoadTexture(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	decode := Decode
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		decode = decodeTGA
	}
	img, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("texture: load %s: %w", path, err)
	}
	return img, nil
}

// toNRGBA converts any image to NRGBA with its origin at (0, 0).
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
