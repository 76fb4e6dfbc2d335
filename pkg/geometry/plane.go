package geometry

import (
	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
	"github.com/df07/go-monte-carlo-raytracer/pkg/mathutil"
)

// grazingCosine is the minimum-magnitude (negative) cosine between a ray's
// direction and a plane's normal for the hit to be accepted: it rejects
// both back-facing hits and rays nearly parallel to the plane, where the
// division below would otherwise amplify numerical noise.
const grazingCosine = -1e-2

// Plane is an unbounded infinite plane defined by a point on the plane and
// its unit normal. It has no bounding box and is queried outside the BVH.
type Plane struct {
	Point  mathutil.Vec3
	Normal mathutil.Vec3
}

// NewPlane creates an infinite plane, normalizing normal.
func NewPlane(point, normal mathutil.Vec3) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize()}
}

// Intersect accepts only front-facing hits (dir.normal < grazingCosine),
// matching the original implementation's convention of ignoring planes
// viewed edge-on or from behind.
func (p *Plane) Intersect(origin, dir mathutil.Vec3) (core.HitInfo, bool) {
	t, hitPoint, ok := planeHit(p.Point, p.Normal, origin, dir)
	if !ok {
		return core.HitInfo{}, false
	}

	return core.HitInfo{
		Dist:        t,
		Point:       hitPoint,
		Normal:      p.Normal,
		IncomingDir: dir,
	}, true
}

// BoundingBox is always absent: an infinite plane is unbounded.
func (p *Plane) BoundingBox() (core.AABB, bool) {
	return core.AABB{}, false
}

// planeHit is the shared infinite-plane intersection math Plane, Disc, and
// Rect build their acceptance tests on top of. It applies the same
// front-facing gate as Plane.Intersect (dir.normal < grazingCosine),
// rejecting back-facing and near-parallel hits, so every plane-derived
// shape agrees on which side of a plane is visible.
func planeHit(point, normal, origin, dir mathutil.Vec3) (t float64, hitPoint mathutil.Vec3, ok bool) {
	deno := dir.Dot(normal)
	if deno >= grazingCosine {
		return 0, mathutil.Vec3{}, false
	}
	t = point.Subtract(origin).Dot(normal) / deno
	if t <= 0 {
		return 0, mathutil.Vec3{}, false
	}
	return t, origin.Add(dir.Multiply(t)), true
}
