package parts

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownBodyPart  = errors.New("unknown body part")
	ErrUnknownArmorSlot = errors.New("unknown armor slot")
)

// PartError reports a geometry-construction failure for a region or slot.
// These are configuration errors; a render that hits one should be aborted.
type PartError struct {
	Op   string
	Part BodyPart
	Slot ArmorSlot
	Err  error
}

func (e *PartError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnknownArmorSlot):
		return fmt.Sprintf("parts: %s: %v %s", e.Op, e.Err, e.Slot)
	default:
		return fmt.Sprintf("parts: %s: %v %s", e.Op, e.Err, e.Part)
	}
}

func (e *PartError) Unwrap() error {
	return e.Err
}
