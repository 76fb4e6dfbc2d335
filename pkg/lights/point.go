// Package lights implements core.Light: point, directional, and area
// sources, each a shadow-ray occlusion test plus an attenuation term.
package lights

import (
	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
	"github.com/df07/go-monte-carlo-raytracer/pkg/mathutil"
)

// shadowEpsilon absorbs float noise in the "did the shadow ray reach the
// light before hitting something else" comparison.
const shadowEpsilon = 1e-4

// PointLight emits uniformly from a single point, falling off by
// cosine(theta)/dist^2.
type PointLight struct {
	Pos   mathutil.Vec3
	Color core.Color
}

// NewPointLight creates a point light at pos with the given color/intensity.
func NewPointLight(pos mathutil.Vec3, color core.Color) *PointLight {
	return &PointLight{Pos: pos, Color: color}
}

// DirectLight returns the light's contribution at point with the given
// surface normal, zero if the surface faces away or a shadow ray finds an
// occluder before reaching the light.
func (l *PointLight) DirectLight(point, normal mathutil.Vec3, scene *core.Scene, scratch *core.ThreadScratch) core.Color {
	factor := pointLightReductionFactor(l.Pos, point, normal, scene, scratch)
	return l.Color.Multiply(factor)
}

// pointLightReductionFactor computes the cosine/r^2 attenuation from a
// point light at lightPos illuminating point, with a shadow ray toward the
// light testing occlusion. Shared with AreaLight's grid sampling, where
// each grid cell is treated as its own point light.
func pointLightReductionFactor(lightPos, point, normal mathutil.Vec3, scene *core.Scene, scratch *core.ThreadScratch) float64 {
	toLight := lightPos.Subtract(point)
	dist := toLight.Length()
	if dist < 1e-12 {
		return 0
	}
	dir := toLight.Multiply(1.0 / dist)

	cosTheta := normal.Dot(dir)
	if cosTheta <= 0 {
		return 0
	}

	hit, ok := core.Raycast(scene, point, dir, scratch)
	if ok && hit.Dist+shadowEpsilon < dist {
		return 0
	}

	return cosTheta / (dist * dist)
}
