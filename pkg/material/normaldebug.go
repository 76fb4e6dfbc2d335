// Package material implements core.Material: every shading model from a
// flat normal-visualization debug mode through physically-based diffuse,
// glossy, mirror, and emissive surfaces.
package material

import (
	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
)

// NormalDebug visualizes the surface normal directly, remapped from
// [-1, 1] into [0, 1] per channel. Useful for sanity-checking geometry and
// BVH construction without any lighting math.
type NormalDebug struct {
	Scaler float64
}

// NewNormalDebug creates a normal-visualization material. scaler of 1.0
// maps the normal's [-1,1] range onto [0,1] exactly.
func NewNormalDebug(scaler float64) *NormalDebug {
	return &NormalDebug{Scaler: scaler}
}

// Shade returns the remapped normal as a color; it never recurses.
func (m *NormalDebug) Shade(scene *core.Scene, scratch *core.ThreadScratch, hit core.HitInfo, info core.RayCastInfo) core.Color {
	return core.NewColor(
		m.Scaler*(hit.Normal.X+1)/2,
		m.Scaler*(hit.Normal.Y+1)/2,
		m.Scaler*(hit.Normal.Z+1)/2,
	)
}
