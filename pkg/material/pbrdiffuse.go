package material

import (
	"math"

	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
)

// PBRDiffuse is a physically-based Lambertian surface: direct light plus a
// cosine-weighted indirect bounce, averaged over Samples recursive rays.
// Because the sampling distribution is itself proportional to cos(theta),
// no weakening factor is applied to the indirect term; it is already
// baked into which directions get sampled.
type PBRDiffuse struct {
	ColorAlbedo core.Color
	Samples     int
}

// NewPBRDiffuse creates a physically-based diffuse material with the given
// samples-per-bounce count for the indirect term.
func NewPBRDiffuse(colorAlbedo core.Color, samples int) *PBRDiffuse {
	if samples <= 0 {
		samples = 1
	}
	return &PBRDiffuse{ColorAlbedo: colorAlbedo, Samples: samples}
}

// Shade computes direct/pi plus, while within the scene's indirect depth
// limit, an averaged cosine-sampled indirect bounce, both modulated by
// ColorAlbedo.
func (m *PBRDiffuse) Shade(scene *core.Scene, scratch *core.ThreadScratch, hit core.HitInfo, info core.RayCastInfo) core.Color {
	direct := scene.DirectLight(hit.Point, hit.Normal, scratch).Multiply(1 / math.Pi)

	total := direct
	if info.Depth <= scene.Limits.IndirectDepthLimit {
		indirect := core.Black
		for i := 0; i < m.Samples; i++ {
			dir := core.RandomCosineDirection(hit.Normal, scratch.Rng)
			indirect = indirect.Add(core.ShadeRay(scene, scratch, hit.Point, dir, info))
		}
		indirect = indirect.Multiply(1 / float64(m.Samples))
		total = total.Add(indirect)
	}

	return total.MultiplyVec(m.ColorAlbedo)
}
