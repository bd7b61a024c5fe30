package request

import (
	"fmt"
	"strings"

	"mc-skin-renderer/internal/camera"
	"mc-skin-renderer/internal/mathutil"
	"mc-skin-renderer/internal/parts"
)

// Mode is a preset framing of the player model.
type Mode uint8

const (
	FullBody Mode = iota
	FrontFull
	FullBodyIso
	Head
	HeadIso
	Face
	Bust
	FrontBust
	BustIso
	Custom
)

var modeNames = [...]string{
	"full_body", "front_full", "full_body_iso", "head", "head_iso", "face",
	"bust", "front_bust", "bust_iso", "custom",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode accepts mode names case-insensitively, with '-' or '_' separators
// or none at all ("FullBodyIso", "full-body-iso").
func ParseMode(s string) (Mode, error) {
	key := normalizeName(s)
	for i, name := range modeNames {
		if normalizeName(name) == key {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("request: unknown mode %q", s)
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "").Replace(s)
}

// Size is a viewport in pixels.
type Size struct {
	Width  int
	Height int
}

func (m Mode) IsHead() bool {
	return m == Head || m == HeadIso || m == Face
}

func (m Mode) IsBust() bool {
	return m == Bust || m == FrontBust || m == BustIso
}

func (m Mode) IsFront() bool {
	return m == FrontFull || m == FrontBust || m == Face
}

func (m Mode) IsIsometric() bool {
	return m == FullBodyIso || m == HeadIso || m == BustIso
}

func (m Mode) IsCustom() bool {
	return m == Custom
}

// BodyParts lists the regions drawn in this mode, base parts first.
func (m Mode) BodyParts() []parts.BodyPart {
	var base []parts.BodyPart
	switch {
	case m.IsHead():
		base = []parts.BodyPart{parts.Head}
	case m.IsBust():
		base = []parts.BodyPart{parts.Head, parts.Body, parts.LeftArm, parts.RightArm}
	default:
		base = parts.BaseParts
	}

	out := make([]parts.BodyPart, 0, len(base)*2)
	out = append(out, base...)
	for _, b := range base {
		out = append(out, b.Layer())
	}
	return out
}

// Size is the default viewport of the mode.
func (m Mode) Size() Size {
	switch {
	case m.IsHead(), m.IsBust():
		return Size{Width: 512, Height: 512}
	default:
		return Size{Width: 512, Height: 869}
	}
}

// ArmRotation is the default arm swing in degrees.
func (m Mode) ArmRotation() float64 {
	if m.IsFront() {
		return 0
	}
	return 10
}

// Camera returns the preset camera of the mode.
func (m Mode) Camera() camera.Camera {
	switch m {
	case FullBody, Custom:
		return camera.Camera{LookAt: mathutil.Vec3{0, 16.5, 0}, Yaw: 20, Pitch: 10, Distance: 44.1, Projection: camera.NewPerspective(45)}
	case FrontFull:
		return camera.Camera{LookAt: mathutil.Vec3{0, 16.5, 0}, Distance: 44.1, Projection: camera.NewPerspective(45)}
	case FullBodyIso:
		return camera.Camera{LookAt: mathutil.Vec3{0, 16.5, 0}, Yaw: 45, Pitch: 35.264, Distance: 100, Projection: camera.NewOrthographic(17.5)}
	case Head:
		return camera.Camera{LookAt: mathutil.Vec3{0, 28.2, 0}, Yaw: 20, Pitch: 10, Distance: 17.4, Projection: camera.NewPerspective(45)}
	case HeadIso:
		return camera.Camera{LookAt: mathutil.Vec3{0, 28, 0}, Yaw: 45, Pitch: 35.264, Distance: 100, Projection: camera.NewOrthographic(7.5)}
	case Face:
		return camera.Camera{LookAt: mathutil.Vec3{0, 28, 0}, Distance: 100, Projection: camera.NewOrthographic(4.5)}
	case Bust:
		return camera.Camera{LookAt: mathutil.Vec3{0, 26, 0}, Yaw: 20, Pitch: 10, Distance: 26.5, Projection: camera.NewPerspective(45)}
	case FrontBust:
		return camera.Camera{LookAt: mathutil.Vec3{0, 26, 0}, Distance: 26.5, Projection: camera.NewPerspective(45)}
	case BustIso:
		return camera.Camera{LookAt: mathutil.Vec3{0, 25, 0}, Yaw: 45, Pitch: 35.264, Distance: 100, Projection: camera.NewOrthographic(10.5)}
	}
	panic("request: unknown mode " + m.String())
}
