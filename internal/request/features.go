package request

import (
	"fmt"
	"strings"
)

// Feature is an optional part of a render that can be excluded.
type Feature uint8

const (
	BodyLayers Feature = iota
	HatLayer
	Shadow
	Shading
	Cape
	UnProcessedSkin
)

var featureNames = [...]string{"body_layers", "hat_layer", "shadow", "shading", "cape", "un_processed_skin"}

var featureAliases = map[string]Feature{
	"overlay":           BodyLayers,
	"overlays":          BodyLayers,
	"body_layers":       BodyLayers,
	"layers":            BodyLayers,
	"helmet":            HatLayer,
	"hat":               HatLayer,
	"hat_layer":         HatLayer,
	"shadow":            Shadow,
	"shading":           Shading,
	"cape":              Cape,
	"un_processed_skin": UnProcessedSkin,
	"unprocessed_skin":  UnProcessedSkin,
}

func (f Feature) String() string {
	if int(f) < len(featureNames) {
		return featureNames[f]
	}
	return fmt.Sprintf("Feature(%d)", uint8(f))
}

// ParseFeature resolves a feature name or alias, case-insensitively.
func ParseFeature(s string) (Feature, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if f, ok := featureAliases[key]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("request: unknown feature %q", s)
}

// FeatureSet is a bit set of features.
type FeatureSet uint8

// AllFeatures has every feature enabled.
const AllFeatures = FeatureSet(1<<(UnProcessedSkin+1) - 1)

func NewFeatureSet(fs ...Feature) FeatureSet {
	var s FeatureSet
	for _, f := range fs {
		s = s.With(f)
	}
	return s
}

func (s FeatureSet) Has(f Feature) bool {
	return s&(1<<f) != 0
}

func (s FeatureSet) With(f Feature) FeatureSet {
	return s | 1<<f
}

func (s FeatureSet) Without(f Feature) FeatureSet {
	return s &^ (1 << f)
}

// Difference returns the features in s that are not in other.
func (s FeatureSet) Difference(other FeatureSet) FeatureSet {
	return s &^ other
}

func (s FeatureSet) String() string {
	var names []string
	for f := BodyLayers; f <= UnProcessedSkin; f++ {
		if s.Has(f) {
			names = append(names, f.String())
		}
	}
	return strings.Join(names, ",")
}

// ParseFeatureList parses a comma separated list of feature names. Empty
// entries are ignored.
func ParseFeatureList(s string) (FeatureSet, error) {
	var set FeatureSet
	for _, name := range strings.Split(s, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		f, err := ParseFeature(name)
		if err != nil {
			return 0, err
		}
		set = set.With(f)
	}
	return set, nil
}
