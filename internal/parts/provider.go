package parts

import (
	"mc-skin-renderer/internal/mathutil"
	"mc-skin-renderer/internal/uv"
)

// Context carries the pose and feature flags a render request resolved to.
type Context struct {
	SlimArms    bool
	HasLayers   bool
	HasHatLayer bool
	HasCape     bool

	// ShadowY is the height of the ground shadow; nil disables it.
	ShadowY *float64

	// ArmorSlots binds equipment slots to textures; nil means no armor.
	ArmorSlots map[ArmorSlot]TextureType

	// ArmRotation is the arm swing angle in degrees.
	ArmRotation float64
}

// Provider assembles the parts of the default player model.
type Provider struct{}

// Parts returns the parts needed to draw one body region. A layer region whose
// layer kind is disabled yields no parts.
func (Provider) Parts(ctx Context, bodyPart BodyPart) ([]Part, error) {
	if !bodyPart.valid() {
		return nil, &PartError{Op: "get parts", Part: bodyPart, Err: ErrUnknownBodyPart}
	}
	if bodyPart.IsLayer() && !ctx.HasLayers || bodyPart.IsHatLayer() && !ctx.HasHatLayer {
		return nil, nil
	}

	base := bodyPart.NonLayer()
	part, err := BasePart(base, ctx.SlimArms)
	if err != nil {
		return nil, err
	}
	if err := applyArmRotation(base, &part, ctx.SlimArms, ctx.ArmRotation); err != nil {
		return nil, err
	}

	if bodyPart.IsLayer() || bodyPart.IsHatLayer() {
		layer, err := expandLayer(base, part)
		if err != nil {
			return nil, err
		}
		return []Part{layer}, nil
	}

	result := []Part{part}

	if base == Body && ctx.HasCape {
		result = append(result, capePart())
	}

	if base == Head && ctx.ShadowY != nil {
		result = append(result, NewQuad(
			TextureShadow,
			mathutil.Vec3{-8, *ctx.ShadowY, -8},
			mathutil.Vec3{16, 0, 16},
			uv.FromPosAndSize(0, 0, 128, 128),
		))
	}

	if ctx.ArmorSlots != nil {
		armor, err := armorParts(base, ctx)
		if err != nil {
			return nil, err
		}
		result = append(result, armor...)
	}

	return result, nil
}

// BasePart returns the unposed geometry of a base region.
func BasePart(b BodyPart, slimArms bool) (Part, error) {
	switch b {
	case Head:
		return skinCube([3]int{-4, 24, -4}, [3]int{8, 8, 8}, 8, 8), nil
	case Body:
		return skinCube([3]int{-4, 12, -2}, [3]int{8, 12, 4}, 20, 20), nil
	case LeftArm:
		if slimArms {
			return skinCube([3]int{-7, 12, -2}, [3]int{3, 12, 4}, 36, 52), nil
		}
		return skinCube([3]int{-8, 12, -2}, [3]int{4, 12, 4}, 36, 52), nil
	case RightArm:
		if slimArms {
			return skinCube([3]int{4, 12, -2}, [3]int{3, 12, 4}, 44, 20), nil
		}
		return skinCube([3]int{4, 12, -2}, [3]int{4, 12, 4}, 44, 20), nil
	case LeftLeg:
		return skinCube([3]int{-4, 0, -2}, [3]int{4, 12, 4}, 20, 52), nil
	case RightLeg:
		return skinCube([3]int{0, 0, -2}, [3]int{4, 12, 4}, 4, 20), nil
	}
	return Part{}, &PartError{Op: "base part", Part: b, Err: ErrUnknownBodyPart}
}

func skinCube(pos, size [3]int, uvX, uvY int) Part {
	return NewCube(TextureSkin, pos, size, uv.Box(uvX, uvY, size))
}

// applyArmRotation pivots arms about the top of their torso-facing edge.
func applyArmRotation(b BodyPart, p *Part, slimArms bool, angle float64) error {
	var sign float64
	switch b {
	case LeftArm:
		sign = -1
	case RightArm:
		sign = 1
	default:
		return nil
	}

	base, err := BasePart(b, slimArms)
	if err != nil {
		return err
	}
	p.SetAnchor(Anchor{Position: base.Size().Mul(mathutil.Vec3{sign, 2, 0})})
	p.SetRotationZ(sign * angle)
	return nil
}

func capePart() Part {
	cape := NewCube(TextureCape, [3]int{-5, 8, 1}, [3]int{10, 16, 1}, uv.Box(1, 1, [3]int{10, 16, 1}))
	cape.SetAnchor(Anchor{Position: mathutil.Vec3{0, 24, 2}})
	cape.SetRotation(mathutil.Vec3{5, 180, 0})
	return cape
}

// expandLayer inflates a base part into its overlay and re-points its UVs at the
// overlay region of the skin.
func expandLayer(b BodyPart, part Part) (Part, error) {
	dx, dy, err := layerUVOffset(b)
	if err != nil {
		return Part{}, err
	}
	margin := 0.25
	if b == Head {
		margin = 0.5
	}

	layer := part.ExpandSplat(margin)
	x, y := part.FaceUVs().Origin()
	size := part.Size()
	layer.SetFaceUVs(uv.Box(x+dx, y+dy, [3]int{int(size[0]), int(size[1]), int(size[2])}))
	return layer, nil
}

func layerUVOffset(b BodyPart) (int, int, error) {
	switch b {
	case Head:
		return 32, 0, nil
	case Body:
		return 0, 16, nil
	case LeftArm:
		return 16, 0, nil
	case RightArm:
		return 0, 16, nil
	case LeftLeg:
		return -16, 0, nil
	case RightLeg:
		return 0, 16, nil
	}
	return 0, 0, &PartError{Op: "layer uv offset", Part: b, Err: ErrUnknownBodyPart}
}

func armorParts(b BodyPart, ctx Context) ([]Part, error) {
	for slot := range ctx.ArmorSlots {
		if slot > Boots {
			return nil, &PartError{Op: "armor parts", Part: b, Slot: slot, Err: ErrUnknownArmorSlot}
		}
	}

	slots, err := ArmorSlotsFor(b)
	if err != nil {
		return nil, err
	}

	var out []Part
	for _, slot := range slots {
		texture, ok := ctx.ArmorSlots[slot]
		if !ok {
			continue
		}
		offset, err := slot.Offset()
		if err != nil {
			return nil, err
		}

		base, err := BasePart(b, false)
		if err != nil {
			return nil, err
		}
		armor := base.ExpandSplat(offset)
		if slot == Chestplate && b != Body {
			armor = armor.Expand(mathutil.Vec3{0, 0, 0.05})
		}
		if err := applyArmRotation(b, &armor, false, ctx.ArmRotation); err != nil {
			return nil, err
		}
		armor.SetTexture(texture)
		out = append(out, armor)
	}
	return out, nil
}
