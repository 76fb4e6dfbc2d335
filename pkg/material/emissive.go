package material

import "github.com/df07/go-monte-carlo-raytracer/pkg/core"

// Emissive is a light-emitting surface: it returns a constant emission
// color regardless of incoming direction or recursion depth, and never
// recurses.
type Emissive struct {
	Emission core.Color
}

// NewEmissive creates an emissive material radiating Emission uniformly.
func NewEmissive(emission core.Color) *Emissive {
	return &Emissive{Emission: emission}
}

// Shade returns the constant emission color.
func (m *Emissive) Shade(scene *core.Scene, scratch *core.ThreadScratch, hit core.HitInfo, info core.RayCastInfo) core.Color {
	return m.Emission
}
