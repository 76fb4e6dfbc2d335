package core

import "github.com/df07/go-monte-carlo-raytracer/pkg/mathutil"

// HitInfo is the packet produced by any successful ray-scene intersection.
// It is immutable once constructed.
type HitInfo struct {
	Dist        float64       // distance along the ray, >= 0
	Point       mathutil.Vec3 // world-space intersection point
	Normal      mathutil.Vec3 // outward unit normal
	IncomingDir mathutil.Vec3 // inbound unit direction
}
