package core

import "github.com/df07/go-monte-carlo-raytracer/pkg/mathutil"

// Color is a triplet of (nominally non-negative, finite) linear radiance
// values. It is a named alias for mathutil.Vec3 rather than a distinct type
// because color arithmetic (add, scale, component-wise multiply) is
// identical to vector arithmetic, matching the original implementation's
// `type Color3 = Vector3<f32>`.
type Color = mathutil.Vec3

// NewColor creates a Color from three channel values.
func NewColor(r, g, b float64) Color {
	return Color{X: r, Y: g, Z: b}
}

// Black is the zero color, returned whenever a shading computation falls
// through (occluded light, cosine <= 0, absent hit handled by the sky
// color instead).
var Black = Color{}
