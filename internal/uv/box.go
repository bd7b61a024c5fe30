package uv

import "fmt"

// Face names one side of a cube.
type Face uint8

const (
	North Face = iota // front, -Z
	South             // back, +Z
	East              // +X
	West              // -X
	Up                // +Y
	Down              // -Y
)

var faceNames = [...]string{"north", "south", "east", "west", "up", "down"}

func (f Face) String() string {
	if int(f) < len(faceNames) {
		return faceNames[f]
	}
	return fmt.Sprintf("Face(%d)", uint8(f))
}

// AllFaces lists the faces in declaration order.
var AllFaces = [6]Face{North, South, East, West, Up, Down}

// CubeFaceUVs holds one FaceUV per cube face.
type CubeFaceUVs struct {
	North FaceUV
	South FaceUV
	East  FaceUV
	West  FaceUV
	Up    FaceUV
	Down  FaceUV
}

// Face returns the UV of the given face.
func (c CubeFaceUVs) Face(f Face) FaceUV {
	switch f {
	case North:
		return c.North
	case South:
		return c.South
	case East:
		return c.East
	case West:
		return c.West
	case Up:
		return c.Up
	case Down:
		return c.Down
	}
	panic(fmt.Sprintf("uv: unknown face %d", f))
}

// Faces returns all six face UVs in AllFaces order.
func (c CubeFaceUVs) Faces() [6]FaceUV {
	return [6]FaceUV{c.North, c.South, c.East, c.West, c.Up, c.Down}
}

// Area returns the summed texel area of all faces.
func (c CubeFaceUVs) Area() float64 {
	var a float64
	for _, f := range c.Faces() {
		a += f.Width() * f.Height()
	}
	return a
}

// Origin returns the box-UV start, i.e. the top-left of the front face.
func (c CubeFaceUVs) Origin() (x, y int) {
	return int(c.North.TopLeft.U), int(c.North.TopLeft.V)
}

// Box lays out the box-UV net of a w×h×d cuboid whose front face starts at (x, y):
//
//	        [ up  ][down ]              row height d, above y
//	[ east ][north][ west][south]       row height h
//
// Left to right this is top, bottom, right, front, left, back of the skin layout.
func Box(x, y int, size [3]int) CubeFaceUVs {
	w, h, d := size[0], size[1], size[2]
	return CubeFaceUVs{
		North: FromPosAndSize(x, y, w, h),
		South: FromPosAndSize(x+w+d, y, w, h),
		East:  FromPosAndSize(x-d, y, d, h),
		West:  FromPosAndSize(x+w, y, d, h),
		Up:    FromPosAndSize(x, y-d, w, d),
		Down:  FromPosAndSize(x+w, y-d, w, d),
	}
}
