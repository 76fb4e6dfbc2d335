package geometry

import (
	"math"

	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
	"github.com/df07/go-monte-carlo-raytracer/pkg/mathutil"
)

// Disc is a bounded circular disc: an infinite-plane intersection test,
// further restricted to points within radius of the center.
type Disc struct {
	Point    mathutil.Vec3
	Normal   mathutil.Vec3
	Radius   float64
	radiusSq float64
}

// NewDisc creates a disc. Radius must be positive.
func NewDisc(point, normal mathutil.Vec3, radius float64) *Disc {
	if radius <= 0 {
		panic("geometry: disc radius must be positive")
	}
	return &Disc{Point: point, Normal: normal.Normalize(), Radius: radius, radiusSq: radius * radius}
}

// Intersect tests the disc's containing plane, then rejects hits farther
// than Radius from the center.
func (d *Disc) Intersect(origin, dir mathutil.Vec3) (core.HitInfo, bool) {
	t, hitPoint, ok := planeHit(d.Point, d.Normal, origin, dir)
	if !ok {
		return core.HitInfo{}, false
	}

	if hitPoint.Subtract(d.Point).LengthSquared() > d.radiusSq {
		return core.HitInfo{}, false
	}

	return core.HitInfo{
		Dist:        t,
		Point:       hitPoint,
		Normal:      d.Normal,
		IncomingDir: dir,
	}, true
}

// BoundingBox returns a thickened axis-aligned slab around the disc's
// plane. It is conservative and possibly loose; rendering correctness does
// not depend on tightness, only on containing every point of the disc.
func (d *Disc) BoundingBox() (core.AABB, bool) {
	right, up := orthonormalBasis(d.Normal)
	rightExtent := right.Multiply(d.Radius)
	upExtent := up.Multiply(d.Radius)

	corners := []mathutil.Vec3{
		d.Point.Add(rightExtent).Add(upExtent),
		d.Point.Add(rightExtent).Subtract(upExtent),
		d.Point.Subtract(rightExtent).Add(upExtent),
		d.Point.Subtract(rightExtent).Subtract(upExtent),
	}
	return core.NewAABBFromPoints(corners...).Expand(1e-3), true
}

// orthonormalBasis returns two unit vectors perpendicular to normal and to
// each other, used to build a local 2D frame in the plane.
func orthonormalBasis(normal mathutil.Vec3) (right, up mathutil.Vec3) {
	var helper mathutil.Vec3
	if math.Abs(normal.X) > 0.1 {
		helper = mathutil.NewVec3(0, 1, 0)
	} else {
		helper = mathutil.NewVec3(1, 0, 0)
	}
	right = helper.Cross(normal).Normalize()
	up = normal.Cross(right).Normalize()
	return right, up
}
