package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"mc-skin-renderer/internal/parts"
	"mc-skin-renderer/internal/primitive"
	"mc-skin-renderer/internal/request"
)

func main() {
	modeName := flag.String("mode", "full_body", "Render mode")
	slim := flag.Bool("slim", false, "Use slim arms")
	exclude := flag.String("exclude", "", "Comma-separated features to disable")
	armor := flag.String("armor", "", "Comma-separated armor slots")
	flag.Parse()

	mode, err := request.ParseMode(*modeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	excluded, err := request.ParseFeatureList(*exclude)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	req := request.NewFromExcludedFeatures(mode, request.Entry{}, request.ModelAuto, excluded, nil)
	for _, name := range strings.Split(*armor, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		slot, err := parts.ParseArmorSlot(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		req.Armor = append(req.Armor, slot)
	}

	if err := inspect(os.Stdout, req, *slim); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// inspect prints every part the request's mode assembles with its geometry and
// the bounding box of its transformed vertices.
func inspect(w io.Writer, req *request.Request, slim bool) error {
	ctx := req.PartsContext(slim)
	c := req.Camera()
	size := req.Size()
	fmt.Fprintf(w, "Mode: %s  Size: %dx%d  Features: %s\n", req.Mode, size.Width, size.Height, req.Features)
	fmt.Fprintf(w, "Camera: look-at %v yaw %.1f pitch %.1f roll %.1f distance %.1f\n",
		c.LookAt, c.Yaw, c.Pitch, c.Roll, c.Distance)

	total := 0
	for _, bp := range req.Mode.BodyParts() {
		ps, err := parts.Provider{}.Parts(ctx, bp)
		if err != nil {
			return err
		}
		if len(ps) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s: %d part(s)\n", bp, len(ps))
		for i, p := range ps {
			prim := primitive.FromPart(p, 64, 64)
			minP, maxP := bounds(prim.Vertices())
			fmt.Fprintf(w, "  [%d] %s tex=%s pos=%v size=%v rot=%v\n", i, p.Kind(), p.Texture(), p.Position(), p.Size(), p.Rotation())
			fmt.Fprintf(w, "      verts=%d tris=%d bbox=[%.2f %.2f %.2f]..[%.2f %.2f %.2f]\n",
				len(prim.Vertices()), len(prim.Indices())/3,
				minP[0], minP[1], minP[2], maxP[0], maxP[1], maxP[2])
			total++
		}
	}
	fmt.Fprintf(w, "Total: %d parts\n", total)
	return nil
}

func bounds(vs []primitive.Vertex) (lo, hi [3]float64) {
	for i, v := range vs {
		for a := 0; a < 3; a++ {
			if i == 0 || v.Position[a] < lo[a] {
				lo[a] = v.Position[a]
			}
			if i == 0 || v.Position[a] > hi[a] {
				hi[a] = v.Position[a]
			}
		}
	}
	return lo, hi
}
