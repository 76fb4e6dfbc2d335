package core

import "github.com/df07/go-monte-carlo-raytracer/pkg/mathutil"

// Shape is anything that can be hit by a ray and optionally bounded by an
// AABB. A shape with no bounding box is "unbounded" and is queried by the
// raycast layer outside the BVH.
type Shape interface {
	Intersect(origin, dir mathutil.Vec3) (HitInfo, bool)
	BoundingBox() (AABB, bool)
}

// Material dispatches shading at a hit point, possibly recursing into the
// raycast layer via ShadeRay.
type Material interface {
	Shade(scene *Scene, scratch *ThreadScratch, hit HitInfo, info RayCastInfo) Color
}

// Light computes the radiance a shading point receives from this light,
// folding in the cosine term and shadow-ray visibility.
type Light interface {
	DirectLight(point, normal mathutil.Vec3, scene *Scene, scratch *ThreadScratch) Color
}

// Logger is the minimal diagnostic sink the render driver writes progress
// to, so pkg/core and pkg/renderer never need to import zap directly;
// callers wrap a *zap.SugaredLogger in a one-method adapter.
type Logger interface {
	Printf(format string, args ...interface{})
}
