package request

// ExtraSettings are per-request overrides. Nil fields keep the mode's defaults.
type ExtraSettings struct {
	Yaw   *float64 `json:"yaw,omitempty" yaml:"yaw,omitempty" toml:"yaw,omitempty"`
	Pitch *float64 `json:"pitch,omitempty" yaml:"pitch,omitempty" toml:"pitch,omitempty"`
	Roll  *float64 `json:"roll,omitempty" yaml:"roll,omitempty" toml:"roll,omitempty"`

	Width  *int `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty"`
	Height *int `json:"height,omitempty" yaml:"height,omitempty" toml:"height,omitempty"`

	ArmRotation *float64 `json:"arm_rotation,omitempty" yaml:"arm_rotation,omitempty" toml:"arm_rotation,omitempty"`
	Distance    *float64 `json:"distance,omitempty" yaml:"distance,omitempty" toml:"distance,omitempty"`

	XPos *float64 `json:"x_pos,omitempty" yaml:"x_pos,omitempty" toml:"x_pos,omitempty"`
	YPos *float64 `json:"y_pos,omitempty" yaml:"y_pos,omitempty" toml:"y_pos,omitempty"`
	ZPos *float64 `json:"z_pos,omitempty" yaml:"z_pos,omitempty" toml:"z_pos,omitempty"`
}

// SizeForMode applies the width/height overrides. Custom mode takes them as-is;
// other modes keep their aspect ratio, scaling from whichever side was given.
func (e *ExtraSettings) SizeForMode(m Mode) Size {
	size := m.Size()
	if e == nil {
		return size
	}

	if m.IsCustom() {
		if e.Width != nil {
			size.Width = *e.Width
		}
		if e.Height != nil {
			size.Height = *e.Height
		}
		return size
	}

	aspect := float64(size.Width) / float64(size.Height)
	if e.Width != nil {
		size.Width = *e.Width
		size.Height = int(float64(*e.Width) / aspect)
	}
	if e.Height != nil {
		size.Height = *e.Height
		size.Width = int(float64(*e.Height) * aspect)
	}
	return size
}
