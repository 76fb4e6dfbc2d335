package core

import (
	"math"

	"github.com/df07/go-monte-carlo-raytracer/pkg/mathutil"
)

// AABB is an axis-aligned bounding box, an ordered pair (Min, Max) with
// Min[i] <= Max[i] on every axis.
type AABB struct {
	Min mathutil.Vec3
	Max mathutil.Vec3
}

// NewAABB creates an AABB from two corner points, swapping components as
// needed so Min <= Max on every axis.
func NewAABB(a, b mathutil.Vec3) AABB {
	min := mathutil.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	max := mathutil.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints returns an AABB bounding every given point.
func NewAABBFromPoints(points ...mathutil.Vec3) AABB {
	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.Union(AABB{Min: p, Max: p})
	}
	return box
}

// Union returns the AABB that bounds both this box and other.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: mathutil.NewVec3(
			math.Min(b.Min.X, other.Min.X),
			math.Min(b.Min.Y, other.Min.Y),
			math.Min(b.Min.Z, other.Min.Z),
		),
		Max: mathutil.NewVec3(
			math.Max(b.Max.X, other.Max.X),
			math.Max(b.Max.Y, other.Max.Y),
			math.Max(b.Max.Z, other.Max.Z),
		),
	}
}

// Center returns the midpoint of the box.
func (b AABB) Center() mathutil.Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// Size returns the extent of the box along each axis.
func (b AABB) Size() mathutil.Vec3 {
	return b.Max.Subtract(b.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the greatest extent.
func (b AABB) LongestAxis() int {
	size := b.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// Axis returns the box's min/max along the given axis (0=X, 1=Y, 2=Z).
func (b AABB) Axis(axis int) (min, max float64) {
	switch axis {
	case 0:
		return b.Min.X, b.Max.X
	case 1:
		return b.Min.Y, b.Max.Y
	default:
		return b.Min.Z, b.Max.Z
	}
}

// Expand returns a box grown by amount in every direction on every axis.
func (b AABB) Expand(amount float64) AABB {
	e := mathutil.NewVec3(amount, amount, amount)
	return AABB{Min: b.Min.Subtract(e), Max: b.Max.Add(e)}
}

// Hit performs the slab test against a ray, returning the surviving
// [tMin, tMax] interval clamped against the caller's own [tMin, tMax].
//
// A direction component of exactly zero is not special-cased: dividing by
// it produces +/-Inf for that axis's t0/t1, and the surrounding min/max
// still clamps the interval correctly because the ray is parallel to that
// slab (it is either entirely inside or entirely outside the slab on that
// axis, and the Inf values preserve that fact through the comparisons
// instead of requiring a branch).
func (b AABB) Hit(origin, dir mathutil.Vec3, tMin, tMax float64) (float64, float64, bool) {
	originArr := [3]float64{origin.X, origin.Y, origin.Z}
	dirArr := [3]float64{dir.X, dir.Y, dir.Z}
	minArr := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	maxArr := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / dirArr[axis]
		t0 := (minArr[axis] - originArr[axis]) * invD
		t1 := (maxArr[axis] - originArr[axis]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMin >= tMax {
			return 0, 0, false
		}
	}

	return tMin, tMax, true
}

// Contains reports whether point lies within the box, with tolerance slack
// added on every side.
func (b AABB) Contains(p mathutil.Vec3, tolerance float64) bool {
	return p.X >= b.Min.X-tolerance && p.X <= b.Max.X+tolerance &&
		p.Y >= b.Min.Y-tolerance && p.Y <= b.Max.Y+tolerance &&
		p.Z >= b.Min.Z-tolerance && p.Z <= b.Max.Z+tolerance
}
