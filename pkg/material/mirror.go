package material

import "github.com/df07/go-monte-carlo-raytracer/pkg/core"

// Mirror is a perfect specular reflector: a single recursive ray along the
// reflection direction, no sampling, and no direct-light term while within
// the reflection depth limit (a perfect mirror reflects everything it sees,
// including whatever direct light the reflected ray itself eventually
// gathers).
type Mirror struct {
	Color core.Color
}

// NewMirror creates a perfect mirror material.
func NewMirror(color core.Color) *Mirror {
	return &Mirror{Color: color}
}

// Shade traces a single reflected ray once within the scene's reflection
// depth limit; past the limit it falls back to direct lighting only, so
// recursion always terminates.
func (m *Mirror) Shade(scene *core.Scene, scratch *core.ThreadScratch, hit core.HitInfo, info core.RayCastInfo) core.Color {
	if info.Depth > scene.Limits.ReflectionDepthLimit {
		direct := scene.DirectLight(hit.Point, hit.Normal, scratch)
		return direct.MultiplyVec(m.Color)
	}

	reflectDir := hit.IncomingDir.Reflect(hit.Normal)
	reflected := core.ShadeRay(scene, scratch, hit.Point, reflectDir, info)
	return reflected.MultiplyVec(m.Color)
}
