package lights

import (
	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
	"github.com/df07/go-monte-carlo-raytracer/pkg/mathutil"
)

// DirectionalLight emits parallel rays from a fixed direction, as if from a
// source infinitely far away (sunlight).
type DirectionalLight struct {
	Dir   mathutil.Vec3 // direction the light travels
	Color core.Color
}

// NewDirectionalLight creates a directional light traveling along dir.
func NewDirectionalLight(dir mathutil.Vec3, color core.Color) *DirectionalLight {
	return &DirectionalLight{Dir: dir.Normalize(), Color: color}
}

// DirectLight returns cosine-attenuated light if the surface faces the
// source and no occluder lies between point and infinity along toLight.
func (l *DirectionalLight) DirectLight(point, normal mathutil.Vec3, scene *core.Scene, scratch *core.ThreadScratch) core.Color {
	toLight := l.Dir.Negate()
	cosTheta := normal.Dot(toLight)
	if cosTheta <= 0 {
		return core.Black
	}

	if _, ok := core.Raycast(scene, point, toLight, scratch); ok {
		return core.Black
	}

	return l.Color.Multiply(cosTheta)
}
