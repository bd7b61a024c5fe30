// Package request turns a render request (mode, features and overrides) into the
// inputs of the renderer: a camera, a sun, a viewport and an assembler context.
package request

import (
	"fmt"
	"math"

	"mc-skin-renderer/internal/camera"
	"mc-skin-renderer/internal/mathutil"
	"mc-skin-renderer/internal/parts"
	"mc-skin-renderer/internal/raster"
)

// Model is the arm variant of a skin.
type Model uint8

const (
	// ModelAuto picks the variant from the skin texture.
	ModelAuto Model = iota
	ModelClassic
	ModelSlim
)

var modelNames = [...]string{"auto", "classic", "slim"}

func (m Model) String() string {
	if int(m) < len(modelNames) {
		return modelNames[m]
	}
	return fmt.Sprintf("Model(%d)", uint8(m))
}

// ParseModel accepts "auto", "classic" (or "steve", "wide") and "slim" (or
// "alex").
func ParseModel(s string) (Model, error) {
	switch normalizeName(s) {
	case "", "auto":
		return ModelAuto, nil
	case "classic", "steve", "wide":
		return ModelClassic, nil
	case "slim", "alex":
		return ModelSlim, nil
	}
	return 0, fmt.Errorf("request: unknown model %q", s)
}

// Request describes one render.
type Request struct {
	Mode     Mode
	Entry    Entry
	Model    Model
	Features FeatureSet
	Extra    *ExtraSettings

	// Armor lists the equipped slots; each is drawn from its default armor sheet.
	Armor []parts.ArmorSlot
}

// NewFromExcludedFeatures builds a request with every feature enabled except the
// excluded ones.
func NewFromExcludedFeatures(mode Mode, entry Entry, model Model, excluded FeatureSet, extra *ExtraSettings) *Request {
	return &Request{
		Mode:     mode,
		Entry:    entry,
		Model:    model,
		Features: AllFeatures.Difference(excluded),
		Extra:    extra,
	}
}

// Camera is the mode's camera with the request's overrides applied. Angles can
// only be changed outside front modes and the look-at point only in custom mode.
func (r *Request) Camera() camera.Camera {
	c := r.Mode.Camera()
	e := r.Extra
	if e == nil {
		return c
	}

	if !r.Mode.IsFront() {
		if e.Yaw != nil {
			c.Yaw = *e.Yaw
		}
		if e.Pitch != nil {
			c.Pitch = *e.Pitch
		}
		if e.Roll != nil {
			c.Roll = *e.Roll
		}
	}

	if r.Mode.IsCustom() {
		if e.XPos != nil {
			c.LookAt[0] = *e.XPos
		}
		if e.YPos != nil {
			c.LookAt[1] = *e.YPos
		}
		if e.ZPos != nil {
			c.LookAt[2] = *e.ZPos
		}
	}

	if e.Distance != nil {
		if c.Projection.Kind == camera.Orthographic {
			c.Projection.Aspect += *e.Distance
		} else {
			c.Distance += *e.Distance
		}
	}
	return c
}

// Size is the output viewport.
func (r *Request) Size() Size {
	return r.Extra.SizeForMode(r.Mode)
}

// ArmRotation is the arm swing in degrees.
func (r *Request) ArmRotation() float64 {
	if r.Extra != nil && r.Extra.ArmRotation != nil {
		return *r.Extra.ArmRotation
	}
	return r.Mode.ArmRotation()
}

// Lighting returns the sun. Without shading the model is lit flat by ambient
// light alone. With shading the light follows the camera yaw in 90 degree steps,
// so the face turned towards the camera is lit and its neighbour is not.
func (r *Request) Lighting() raster.Sun {
	if !r.Features.Has(Shading) {
		return raster.Sun{Intensity: 0, Ambient: 1}
	}

	c := r.Camera()
	var yaw float64
	switch {
	case mathutil.AngleDist(math.Abs(c.Yaw), 180) < 0.01:
		yaw = math.Abs(c.Yaw) + 90
	case c.Yaw >= 0 || c.Yaw <= -90:
		yaw = c.Yaw
	default:
		yaw = c.Yaw + 90
	}
	aligned := math.Floor((yaw+180)/90) * 90

	rot := mathutil.RotZ(mathutil.Deg2Rad(c.Roll)).Mul(mathutil.RotY(mathutil.Deg2Rad(aligned)))
	// The light starts behind the model and the aligned yaw is offset by 180,
	// which puts it on the -Z (front) side for small yaws.
	light := rot.MulVec3(mathutil.Vec3{0, 1, 6.21})
	return raster.Sun{Direction: light.Normalize(), Intensity: 1, Ambient: 0.621}
}

// ShadowY is the ground shadow height, or nil when shadows are excluded.
func (r *Request) ShadowY() *float64 {
	if !r.Features.Has(Shadow) {
		return nil
	}
	y := 0.0
	if r.Mode.IsHead() {
		y = 24
	}
	return &y
}

// PartsContext builds the assembler context. slim is the resolved arm variant.
func (r *Request) PartsContext(slim bool) parts.Context {
	ctx := parts.Context{
		SlimArms:    slim,
		HasLayers:   r.Features.Has(BodyLayers),
		HasHatLayer: r.Features.Has(HatLayer),
		HasCape:     r.Features.Has(Cape),
		ShadowY:     r.ShadowY(),
		ArmRotation: r.ArmRotation(),
	}
	if len(r.Armor) > 0 {
		ctx.ArmorSlots = make(map[parts.ArmorSlot]parts.TextureType, len(r.Armor))
		for _, s := range r.Armor {
			ctx.ArmorSlots[s] = parts.DefaultArmorTexture(s)
		}
	}
	return ctx
}
