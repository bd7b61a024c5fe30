package raster

import (
	"fmt"
	"strings"
)

// DepthFunc decides whether a fragment replaces what is already in the buffer.
// Depth is 0 at the near plane and 1 at the far plane.
type DepthFunc uint8

const (
	// DepthLess keeps the nearest fragment. The buffer is cleared to 1.
	DepthLess DepthFunc = iota
	DepthLessEqual
	DepthGreater
	// DepthGreaterEqual rejects strictly nearer fragments, so ties and farther
	// fragments win. It is the rule older renders were produced with.
	DepthGreaterEqual
	DepthAlways
)

var depthFuncNames = [...]string{"less", "less_equal", "greater", "greater_equal", "always"}

func (d DepthFunc) String() string {
	if int(d) < len(depthFuncNames) {
		return depthFuncNames[d]
	}
	return fmt.Sprintf("DepthFunc(%d)", uint8(d))
}

// ParseDepthFunc parses a depth function name such as "less" or "greater-equal".
func ParseDepthFunc(s string) (DepthFunc, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, name := range depthFuncNames {
		if name == key {
			return DepthFunc(i), nil
		}
	}
	return 0, fmt.Errorf("raster: unknown depth func %q", s)
}

// Pass reports whether a fragment at depth z survives against stored.
func (d DepthFunc) Pass(z, stored float64) bool {
	switch d {
	case DepthLess:
		return z < stored
	case DepthLessEqual:
		return z <= stored
	case DepthGreater:
		return z > stored
	case DepthGreaterEqual:
		return z >= stored
	default:
		return true
	}
}

// ClearValue is the depth a buffer must start at so the first fragment passes.
func (d DepthFunc) ClearValue() float64 {
	switch d {
	case DepthGreater, DepthGreaterEqual:
		return 0
	default:
		return 1
	}
}
