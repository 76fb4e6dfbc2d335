package material

import (
	"math"

	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
	"github.com/df07/go-monte-carlo-raytracer/pkg/mathutil"
)

// maxGlossyRejectionTries bounds the reflect-direction rejection loop so a
// pathological roughness value can never hang a worker; it is far above
// the number of tries a reasonable roughness ever needs.
const maxGlossyRejectionTries = 64

// Glossy is an importance-sampled rough specular lobe: each sample
// perturbs the perfect mirror direction by a point drawn uniformly from a
// ball of radius Roughness, rejecting perturbations that land below the
// surface.
//
// Samples are combined with a self-normalizing (ratio) estimator instead
// of dividing by a closed-form solid-angle PDF: the closed form derived
// from this sampling scheme is 4*pi*(Roughness^2 - 2/3), which is negative
// for Roughness < sqrt(2/3) and so cannot be used as-is. Weighting each
// sample by weakening_factor/pdf_numerator and normalizing by the sum of
// those weights sidesteps the bad constant entirely: the unknown
// normalizer cancels between numerator and denominator.
type Glossy struct {
	Color     core.Color
	Roughness float64
	Samples   int
}

// NewGlossy creates a glossy material. samples <= 0 is treated as 1.
func NewGlossy(color core.Color, roughness float64, samples int) *Glossy {
	if samples <= 0 {
		samples = 1
	}
	return &Glossy{Color: color, Roughness: roughness, Samples: samples}
}

// Shade blends direct lighting with a self-normalized average of the
// glossy lobe's indirect bounce, until the scene's reflection depth limit
// is exceeded, past which only direct lighting is returned.
func (m *Glossy) Shade(scene *core.Scene, scratch *core.ThreadScratch, hit core.HitInfo, info core.RayCastInfo) core.Color {
	direct := scene.DirectLight(hit.Point, hit.Normal, scratch)

	if info.Depth > scene.Limits.ReflectionDepthLimit {
		return direct
	}

	indirect := m.sampleIndirect(scene, scratch, hit, info)
	return direct.Add(indirect).Multiply(0.5)
}

func (m *Glossy) sampleIndirect(scene *core.Scene, scratch *core.ThreadScratch, hit core.HitInfo, info core.RayCastInfo) core.Color {
	perfect := hit.IncomingDir.Reflect(hit.Normal)
	rSq := m.Roughness * m.Roughness

	weightedSum := core.Black
	weightSum := 0.0

	for i := 0; i < m.Samples; i++ {
		reflectDir, weakening, cosAngle, ok := m.sampleReflectDir(scratch, hit, perfect)
		if !ok {
			continue
		}

		sinSq := 1 - cosAngle*cosAngle
		pdfNumerator := math.Sqrt(math.Max(0, rSq-sinSq))
		if pdfNumerator < 1e-9 {
			continue
		}

		weight := weakening / pdfNumerator
		radiance := core.ShadeRay(scene, scratch, hit.Point, reflectDir, info)
		weightedSum = weightedSum.Add(radiance.Multiply(weight))
		weightSum += weight
	}

	if weightSum <= 0 {
		return core.Black
	}
	return weightedSum.Multiply(1 / weightSum)
}

// sampleReflectDir draws one perturbed reflect direction, retrying until
// it faces outward from the surface (weakening factor positive) or the try
// budget is exhausted.
func (m *Glossy) sampleReflectDir(scratch *core.ThreadScratch, hit core.HitInfo, perfect mathutil.Vec3) (reflectDir mathutil.Vec3, weakening, cosAngle float64, ok bool) {
	for try := 0; try < maxGlossyRejectionTries; try++ {
		noise := core.RandomInUnitSphere(scratch.Rng, m.Roughness)
		dir := perfect.Add(noise).Normalize()

		w := hit.Normal.Dot(dir)
		if w <= 0 {
			continue
		}

		return dir, w, perfect.Dot(dir), true
	}
	return mathutil.Vec3{}, 0, 0, false
}
