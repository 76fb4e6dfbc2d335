package material

import "github.com/df07/go-monte-carlo-raytracer/pkg/core"

// Diffuse is the "fast" Lambertian approximation: it blends the scene's
// sky color with direct lighting instead of tracing an indirect bounce,
// weighted by albedo. Cheap, biased, and useful where the indirect term's
// contribution is negligible or unwanted.
type Diffuse struct {
	Color  core.Color
	Albedo float64
}

// NewDiffuse creates a fast-diffuse material.
func NewDiffuse(color core.Color, albedo float64) *Diffuse {
	return &Diffuse{Color: color, Albedo: albedo}
}

// Shade blends albedo*sky with (1-albedo)*direct light, modulated by the
// material's own color. It never recurses into the raycast layer.
func (m *Diffuse) Shade(scene *core.Scene, scratch *core.ThreadScratch, hit core.HitInfo, info core.RayCastInfo) core.Color {
	direct := scene.DirectLight(hit.Point, hit.Normal, scratch)
	combined := scene.Sky.Multiply(m.Albedo).Add(direct.Multiply(1 - m.Albedo))
	return combined.MultiplyVec(m.Color)
}
