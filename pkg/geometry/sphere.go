// Package geometry implements the bounded and unbounded primitives the
// raycast layer operates on: spheres, infinite planes, discs, and finite
// rectangular planes. Every type implements core.Shape.
package geometry

import (
	"math"

	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
	"github.com/df07/go-monte-carlo-raytracer/pkg/mathutil"
)

// Sphere is a bounded primitive defined by its center and radius.
type Sphere struct {
	Center   mathutil.Vec3
	Radius   float64
	radiusSq float64
}

// NewSphere creates a sphere. Radius must be positive.
func NewSphere(center mathutil.Vec3, radius float64) *Sphere {
	if radius <= 0 {
		panic("geometry: sphere radius must be positive")
	}
	return &Sphere{Center: center, Radius: radius, radiusSq: radius * radius}
}

// Intersect solves ||origin + t*dir - center||^2 = r^2, exploiting dir being
// a unit vector so the quadratic's leading coefficient is 1.
func (s *Sphere) Intersect(origin, dir mathutil.Vec3) (core.HitInfo, bool) {
	d := origin.Subtract(s.Center)
	halfB := dir.Dot(d)
	c := d.Dot(d) - s.radiusSq

	disc := halfB*halfB - c
	if disc < 0 {
		return core.HitInfo{}, false
	}

	t := -halfB - math.Sqrt(disc)
	if t < 0 {
		return core.HitInfo{}, false
	}

	point := origin.Add(dir.Multiply(t))
	normal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	return core.HitInfo{
		Dist:        t,
		Point:       point,
		Normal:      normal,
		IncomingDir: dir,
	}, true
}

// BoundingBox returns the AABB centered on the sphere with half-extent
// equal to its radius.
func (s *Sphere) BoundingBox() (core.AABB, bool) {
	r := mathutil.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r)), true
}
