package geometry

import (
	"math"

	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
	"github.com/df07/go-monte-carlo-raytracer/pkg/mathutil"
)

// Rect is a finite, axis-free rectangle: a center point, its unit normal,
// and two perpendicular in-plane axes with half-lengths. It doubles as the
// emitting geometry for area lights.
type Rect struct {
	Point     mathutil.Vec3 // center of the rectangle
	Normal    mathutil.Vec3
	SpanDir   mathutil.Vec3
	CospanDir mathutil.Vec3
	SpanLen   float64 // half-length along SpanDir
	CospanLen float64 // half-length along CospanDir
}

// NewRect creates a rectangle centered at point, extending along spanDir by
// half-length spanDir.Length() and along cospanDir by half-length
// cospanDir.Length(). spanDir and cospanDir need not be normalized; their
// lengths are folded into SpanLen/CospanLen.
func NewRect(point, spanDir, cospanDir mathutil.Vec3) *Rect {
	spanLen := spanDir.Length()
	cospanLen := cospanDir.Length()
	if spanLen <= 0 || cospanLen <= 0 {
		panic("geometry: rect span vectors must be non-zero")
	}

	span := spanDir.Multiply(1.0 / spanLen)
	cospan := cospanDir.Multiply(1.0 / cospanLen)
	normal := span.Cross(cospan).Normalize()

	return &Rect{
		Point:     point,
		Normal:    normal,
		SpanDir:   span,
		CospanDir: cospan,
		SpanLen:   spanLen,
		CospanLen: cospanLen,
	}
}

// Intersect tests the rectangle's containing plane, then rejects hits
// whose displacement d = hit - Point from the center exceeds either
// half-length: |d.SpanDir| > SpanLen or |d.CospanDir| > CospanLen.
func (r *Rect) Intersect(origin, dir mathutil.Vec3) (core.HitInfo, bool) {
	t, hitPoint, ok := planeHit(r.Point, r.Normal, origin, dir)
	if !ok {
		return core.HitInfo{}, false
	}

	d := hitPoint.Subtract(r.Point)
	u := d.Dot(r.SpanDir)
	v := d.Dot(r.CospanDir)
	if math.Abs(u) > r.SpanLen || math.Abs(v) > r.CospanLen {
		return core.HitInfo{}, false
	}

	return core.HitInfo{
		Dist:        t,
		Point:       hitPoint,
		Normal:      r.Normal,
		IncomingDir: dir,
	}, true
}

// BoundingBox returns the AABB of the rectangle's four corners (Point ±
// span ± cospan), inflated slightly on every axis so a rectangle lying
// exactly in an axis-aligned plane still has non-zero thickness for the
// slab test.
func (r *Rect) BoundingBox() (core.AABB, bool) {
	span := r.SpanDir.Multiply(r.SpanLen)
	cospan := r.CospanDir.Multiply(r.CospanLen)

	corners := []mathutil.Vec3{
		r.Point.Add(span).Add(cospan),
		r.Point.Add(span).Subtract(cospan),
		r.Point.Subtract(span).Add(cospan),
		r.Point.Subtract(span).Subtract(cospan),
	}
	return core.NewAABBFromPoints(corners...).Expand(1e-3), true
}

// Sample returns a point on the rectangle for u, v in [0, 1], along with
// its normal. u=v=0.5 is the center; the corners are at u, v in {0, 1}.
// Used by area lights to grid-sample the emitting surface.
func (r *Rect) Sample(u, v float64) (point mathutil.Vec3, normal mathutil.Vec3) {
	su := (2*u - 1) * r.SpanLen
	sv := (2*v - 1) * r.CospanLen
	point = r.Point.Add(r.SpanDir.Multiply(su)).Add(r.CospanDir.Multiply(sv))
	return point, r.Normal
}

// Area returns the rectangle's surface area (full side lengths, i.e.
// twice each half-length).
func (r *Rect) Area() float64 {
	return 4 * r.SpanLen * r.CospanLen
}
