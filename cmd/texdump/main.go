package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"mc-skin-renderer/internal/parts"
	"mc-skin-renderer/internal/request"
	"mc-skin-renderer/internal/texture"
)

// Outline colors per face, in north, south, east, west, up, down order.
var faceColors = [6][3]float64{
	{1, 0, 0},     // north
	{0, 0, 1},     // south
	{0, 0.8, 0},   // east
	{1, 0.8, 0},   // west
	{1, 0, 1},     // up
	{0, 0.8, 0.8}, // down
}

func main() {
	modeName := flag.String("mode", "full_body", "Render mode whose parts are outlined")
	slim := flag.Bool("slim", false, "Use slim arms")
	scale := flag.Int("scale", 8, "Pixels per texel")
	out := flag.String("o", "texdump.png", "Output PNG")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: texdump [-mode m] [-slim] [-scale n] [-o out.png] skin.png")
		os.Exit(2)
	}

	mode, err := request.ParseMode(*modeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	skin, err := texture.LoadTexture(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	n, err := dump(skin, mode, *slim, *scale, *out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK  %d faces outlined -> %s\n", n, *out)
}

// dump upscales the skin and strokes the UV rectangle of every skin face the
// mode draws. It returns the number of faces outlined.
func dump(skin *image.NRGBA, mode request.Mode, slim bool, scale int, out string) (int, error) {
	b := skin.Bounds()
	big := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(big, big.Bounds(), skin, b, xdraw.Src, nil)

	dc := gg.NewContextForImage(big)
	defer dc.Close()
	dc.SetLineWidth(1)

	req := request.NewFromExcludedFeatures(mode, request.Entry{}, request.ModelAuto, request.NewFeatureSet(request.Shadow, request.Cape), nil)
	ctx := req.PartsContext(slim)

	s := float64(scale)
	count := 0
	for _, bp := range mode.BodyParts() {
		ps, err := parts.Provider{}.Parts(ctx, bp)
		if err != nil {
			return 0, err
		}
		for _, p := range ps {
			if p.Kind() != parts.KindCube || p.Texture() != parts.TextureSkin {
				continue
			}
			faces := p.FaceUVs()
			for i, f := range faces.Faces() {
				if f.Width() == 0 || f.Height() == 0 {
					continue
				}
				c := faceColors[i]
				dc.SetRGBA(c[0], c[1], c[2], 0.9)
				x := min(f.TopLeft.U, f.BottomRight.U)
				y := min(f.TopLeft.V, f.BottomRight.V)
				dc.DrawRectangle(x*s+0.5, y*s+0.5, f.Width()*s-1, f.Height()*s-1)
				if err := dc.Stroke(); err != nil {
					return 0, err
				}
				count++
			}
		}
	}
	return count, dc.SavePNG(out)
}
