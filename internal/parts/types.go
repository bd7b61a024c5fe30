package parts

import (
	"fmt"
	"strings"
)

// BodyPart is a logical body region, base or layer.
type BodyPart uint8

const (
	Head BodyPart = iota
	Body
	LeftArm
	RightArm
	LeftLeg
	RightLeg

	HeadLayer
	BodyLayer
	LeftArmLayer
	RightArmLayer
	LeftLegLayer
	RightLegLayer
)

var bodyPartNames = [...]string{
	"head", "body", "left_arm", "right_arm", "left_leg", "right_leg",
	"head_layer", "body_layer", "left_arm_layer", "right_arm_layer", "left_leg_layer", "right_leg_layer",
}

func (b BodyPart) String() string {
	if int(b) < len(bodyPartNames) {
		return bodyPartNames[b]
	}
	return fmt.Sprintf("BodyPart(%d)", uint8(b))
}

// BaseParts lists the non-layer regions.
var BaseParts = []BodyPart{Head, Body, LeftArm, RightArm, LeftLeg, RightLeg}

// IsHatLayer reports whether b is the head overlay.
func (b BodyPart) IsHatLayer() bool {
	return b == HeadLayer
}

// IsLayer reports whether b is a body overlay other than the hat layer.
func (b BodyPart) IsLayer() bool {
	return b > HeadLayer && b <= RightLegLayer
}

// NonLayer maps a layer region to its base region. Base regions map to themselves.
func (b BodyPart) NonLayer() BodyPart {
	if b >= HeadLayer && b <= RightLegLayer {
		return b - HeadLayer
	}
	return b
}

// Layer maps a base region to its overlay region.
func (b BodyPart) Layer() BodyPart {
	if b <= RightLeg {
		return b + HeadLayer
	}
	return b
}

func (b BodyPart) valid() bool {
	return b <= RightLegLayer
}

// TextureType identifies the texture a part samples from.
type TextureType uint8

const (
	TextureSkin TextureType = iota
	TextureCape
	TextureShadow
	TextureArmorLayer1
	TextureArmorLayer2
)

var textureNames = [...]string{"skin", "cape", "shadow", "armor_layer_1", "armor_layer_2"}

func (t TextureType) String() string {
	if int(t) < len(textureNames) {
		return textureNames[t]
	}
	return fmt.Sprintf("TextureType(%d)", uint8(t))
}

// ArmorSlot is an equipment slot.
type ArmorSlot uint8

const (
	Helmet ArmorSlot = iota
	Chestplate
	Leggings
	Boots
)

var armorSlotNames = [...]string{"helmet", "chestplate", "leggings", "boots"}

func (s ArmorSlot) String() string {
	if int(s) < len(armorSlotNames) {
		return armorSlotNames[s]
	}
	return fmt.Sprintf("ArmorSlot(%d)", uint8(s))
}

// ParseArmorSlot parses a slot name case-insensitively.
func ParseArmorSlot(s string) (ArmorSlot, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range armorSlotNames {
		if name == key {
			return ArmorSlot(i), nil
		}
	}
	return 0, fmt.Errorf("parts: %w %q", ErrUnknownArmorSlot, s)
}

// Offset is how far armor in this slot is inflated past the base part.
func (s ArmorSlot) Offset() (float64, error) {
	switch s {
	case Helmet:
		return 1.0, nil
	case Chestplate:
		return 1.01, nil
	case Leggings:
		return 0.5, nil
	case Boots:
		return 1.0, nil
	}
	return 0, &PartError{Op: "armor offset", Slot: s, Err: ErrUnknownArmorSlot}
}

// DefaultArmorTexture returns the armor texture sheet a slot is drawn from.
func DefaultArmorTexture(s ArmorSlot) TextureType {
	if s == Leggings {
		return TextureArmorLayer2
	}
	return TextureArmorLayer1
}

// ArmorSlotsFor returns the slots that cover a base region, in draw order.
func ArmorSlotsFor(b BodyPart) ([]ArmorSlot, error) {
	switch b {
	case Head:
		return []ArmorSlot{Helmet}, nil
	case Body:
		return []ArmorSlot{Chestplate, Leggings}, nil
	case LeftArm, RightArm:
		return []ArmorSlot{Chestplate}, nil
	case LeftLeg, RightLeg:
		return []ArmorSlot{Leggings, Boots}, nil
	}
	return nil, &PartError{Op: "armor slots", Part: b, Err: ErrUnknownBodyPart}
}
