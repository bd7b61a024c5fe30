package request

import (
	"errors"
	"math"
	"testing"

	"mc-skin-renderer/internal/camera"
	"mc-skin-renderer/internal/parts"
)

func ptr[T any](v T) *T { return &v }

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"full_body", FullBody},
		{"FullBodyIso", FullBodyIso},
		{"front-bust", FrontBust},
		{"HEAD", Head},
		{"face", Face},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if err != nil {
			t.Errorf("ParseMode(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q): got %s, want %s", tt.in, got, tt.want)
		}
	}
	if _, err := ParseMode("skin"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestParseModel(t *testing.T) {
	tests := map[string]Model{
		"":        ModelAuto,
		"Auto":    ModelAuto,
		"classic": ModelClassic,
		"steve":   ModelClassic,
		"SLIM":    ModelSlim,
		"alex":    ModelSlim,
	}
	for in, want := range tests {
		got, err := ParseModel(in)
		if err != nil || got != want {
			t.Errorf("ParseModel(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseModel("huge"); err == nil {
		t.Error("ParseModel(huge) should fail")
	}
}

func TestParseFeatureAliases(t *testing.T) {
	tests := map[string]Feature{
		"overlay":   BodyLayers,
		"Overlays":  BodyLayers,
		"layers":    BodyLayers,
		"helmet":    HatLayer,
		"hat":       HatLayer,
		"hat-layer": HatLayer,
		"shading":   Shading,
	}
	for in, want := range tests {
		got, err := ParseFeature(in)
		if err != nil || got != want {
			t.Errorf("ParseFeature(%q): got %s, %v; want %s", in, got, err, want)
		}
	}
	if _, err := ParseFeature("ears"); err == nil {
		t.Error("expected error for unknown feature")
	}
}

func TestFeatureSet(t *testing.T) {
	set, err := ParseFeatureList("shadow, hat,,cape")
	if err != nil {
		t.Fatalf("ParseFeatureList: %v", err)
	}
	if !set.Has(Shadow) || !set.Has(HatLayer) || !set.Has(Cape) || set.Has(Shading) {
		t.Errorf("set got %s", set)
	}

	r := NewFromExcludedFeatures(FullBody, Entry{}, ModelAuto, set, nil)
	if r.Features.Has(Shadow) || !r.Features.Has(Shading) || !r.Features.Has(BodyLayers) {
		t.Errorf("features got %s", r.Features)
	}
}

func TestSizeForMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		extra *ExtraSettings
		want  Size
	}{
		{"default", Head, nil, Size{512, 512}},
		{"width keeps aspect", Head, &ExtraSettings{Width: ptr(256)}, Size{256, 256}},
		{"height keeps aspect", Head, &ExtraSettings{Height: ptr(300)}, Size{300, 300}},
		{"tall mode width", FullBody, &ExtraSettings{Width: ptr(256)}, Size{256, 434}},
		{"custom as-is", Custom, &ExtraSettings{Width: ptr(100), Height: ptr(50)}, Size{100, 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.extra.SizeForMode(tt.mode); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCameraOverrides(t *testing.T) {
	extra := &ExtraSettings{Yaw: ptr(-30.0), XPos: ptr(3.0), Distance: ptr(5.0)}

	front := &Request{Mode: FrontFull, Extra: extra}
	if c := front.Camera(); c.Yaw != 0 {
		t.Errorf("front mode yaw got %f, want 0", c.Yaw)
	}

	full := &Request{Mode: FullBody, Extra: extra}
	c := full.Camera()
	if c.Yaw != -30 {
		t.Errorf("yaw got %f, want -30", c.Yaw)
	}
	if c.LookAt[0] != 0 {
		t.Errorf("look-at moved outside custom mode: %v", c.LookAt)
	}
	if want := FullBody.Camera().Distance + 5; c.Distance != want {
		t.Errorf("distance got %f, want %f", c.Distance, want)
	}

	custom := &Request{Mode: Custom, Extra: extra}
	if c := custom.Camera(); c.LookAt[0] != 3 {
		t.Errorf("custom look-at x got %f, want 3", c.LookAt[0])
	}

	iso := &Request{Mode: FullBodyIso, Extra: extra}
	c = iso.Camera()
	if c.Projection.Kind != camera.Orthographic {
		t.Fatal("iso mode should be orthographic")
	}
	if want := FullBodyIso.Camera().Projection.Aspect + 5; c.Projection.Aspect != want {
		t.Errorf("iso aspect got %f, want %f", c.Projection.Aspect, want)
	}
}

func TestLightingWithoutShading(t *testing.T) {
	r := NewFromExcludedFeatures(FullBody, Entry{}, ModelAuto, NewFeatureSet(Shading), nil)
	sun := r.Lighting()
	if sun.Intensity != 0 || sun.Ambient != 1 {
		t.Errorf("flat sun got %+v", sun)
	}
}

func TestLightingFollowsYaw(t *testing.T) {
	tests := []struct {
		yaw  float64
		axis int
		sign float64
	}{
		{0, 2, -1},
		{20, 2, -1},
		{-20, 2, -1},
		{100, 0, -1},
		// Looking from behind the light moves to the +X side.
		{180, 0, 1},
	}
	for _, tt := range tests {
		r := NewFromExcludedFeatures(FullBody, Entry{}, ModelAuto, 0, &ExtraSettings{Yaw: ptr(tt.yaw)})
		sun := r.Lighting()
		if sun.Intensity != 1 || sun.Ambient != 0.621 {
			t.Errorf("yaw %f: sun got %+v", tt.yaw, sun)
		}
		d := sun.Direction
		if math.Abs(d.Len()-1) > 1e-9 {
			t.Errorf("yaw %f: direction not normalised: %v", tt.yaw, d)
		}
		if d[tt.axis]*tt.sign < 0.9 {
			t.Errorf("yaw %f: direction %v, want mostly %+.0f along axis %d", tt.yaw, d, tt.sign, tt.axis)
		}
	}
}

func TestShadowY(t *testing.T) {
	head := NewFromExcludedFeatures(Head, Entry{}, ModelAuto, 0, nil)
	if y := head.ShadowY(); y == nil || *y != 24 {
		t.Errorf("head shadow got %v, want 24", y)
	}
	body := NewFromExcludedFeatures(FullBody, Entry{}, ModelAuto, 0, nil)
	if y := body.ShadowY(); y == nil || *y != 0 {
		t.Errorf("body shadow got %v, want 0", y)
	}
	none := NewFromExcludedFeatures(FullBody, Entry{}, ModelAuto, NewFeatureSet(Shadow), nil)
	if y := none.ShadowY(); y != nil {
		t.Errorf("excluded shadow got %v, want nil", *y)
	}
}

func TestPartsContext(t *testing.T) {
	r := NewFromExcludedFeatures(FullBody, Entry{}, ModelSlim, NewFeatureSet(Cape, HatLayer), &ExtraSettings{ArmRotation: ptr(25.0)})
	r.Armor = []parts.ArmorSlot{parts.Helmet, parts.Leggings}

	ctx := r.PartsContext(true)
	if !ctx.SlimArms || !ctx.HasLayers || ctx.HasHatLayer || ctx.HasCape {
		t.Errorf("flags got %+v", ctx)
	}
	if ctx.ArmRotation != 25 {
		t.Errorf("arm rotation got %f, want 25", ctx.ArmRotation)
	}
	if ctx.ArmorSlots[parts.Leggings] != parts.TextureArmorLayer2 || ctx.ArmorSlots[parts.Helmet] != parts.TextureArmorLayer1 {
		t.Errorf("armor slots got %v", ctx.ArmorSlots)
	}
	if NewFromExcludedFeatures(Face, Entry{}, ModelAuto, 0, nil).PartsContext(false).ArmorSlots != nil {
		t.Error("no armor should leave ArmorSlots nil")
	}
}

func TestModeBodyParts(t *testing.T) {
	if got := Head.BodyParts(); len(got) != 2 || got[0] != parts.Head || got[1] != parts.HeadLayer {
		t.Errorf("head parts got %v", got)
	}
	if got := FullBody.BodyParts(); len(got) != 12 {
		t.Errorf("full body parts got %d, want 12", len(got))
	}
	if got := BustIso.BodyParts(); len(got) != 8 {
		t.Errorf("bust parts got %d, want 8", len(got))
	}
}

func TestParseEntry(t *testing.T) {
	tests := []struct {
		in   string
		kind EntryKind
		key  string
	}{
		{"ad4569f3-7576-4376-a7c7-8e8cfcd9b832", EntryUUID, "ad4569f375764376a7c78e8cfcd9b832"},
		{"ad4569f375764376a7c78e8cfcd9b832", EntryUUID, "ad4569f375764376a7c78e8cfcd9b832"},
		{"Notch", EntryName, "notch"},
		{"skins/Steve.png", EntryPath, "steve"},
		{"alex.tga", EntryPath, "alex"},
	}
	for _, tt := range tests {
		e, err := ParseEntry(tt.in)
		if err != nil {
			t.Errorf("ParseEntry(%q): %v", tt.in, err)
			continue
		}
		if e.Kind != tt.kind {
			t.Errorf("ParseEntry(%q): kind got %d, want %d", tt.in, e.Kind, tt.kind)
		}
		if e.Key() != tt.key {
			t.Errorf("ParseEntry(%q): key got %q, want %q", tt.in, e.Key(), tt.key)
		}
	}

	if _, err := ParseEntry("not a name!"); !errors.Is(err, ErrInvalidEntry) {
		t.Errorf("expected ErrInvalidEntry, got %v", err)
	}
}
