package core

import (
	"math"

	"github.com/df07/go-monte-carlo-raytracer/pkg/mathutil"
)

// selfHitEpsilon is the minimum accepted hit distance, applied once in the
// raycast aggregator (never inside a shape's own Intersect) to reject
// self-intersection against the surface a ray was just spawned from.
const selfHitEpsilon = 1e-6

// Raycast returns the nearest hit across the whole scene, or false if the
// ray escapes. Used for visibility/shadow tests where the hit primitive
// itself is not needed.
func Raycast(scene *Scene, origin, dir mathutil.Vec3, scratch *ThreadScratch) (HitInfo, bool) {
	hit, _, ok := RaycastWithObject(scene, origin, dir, scratch)
	return hit, ok
}

// RaycastWithObject returns the nearest hit across the whole scene together
// with the scene object it belongs to, for shading. It runs the unbounded
// linear scan, the BVH-pruned bounded scan, and merges the two: the bounded
// hit wins ties against the unbounded hit, matching the half-open upper
// bound the BVH pruner is given.
func RaycastWithObject(scene *Scene, origin, dir mathutil.Vec3, scratch *ThreadScratch) (HitInfo, *SceneObject, bool) {
	unboundedHit, unboundedObj, haveUnbounded := nearestInList(scene.Unbounded, origin, dir)

	tMax := math.Inf(1)
	if haveUnbounded {
		tMax = unboundedHit.Dist
	}

	boundedHit, boundedObj, haveBounded := nearestBounded(scene, origin, dir, tMax, scratch)

	switch {
	case haveBounded:
		// bounded wins ties (boundedHit.Dist <= tMax by construction of the
		// pruner's half-open upper bound)
		return boundedHit, boundedObj, true
	case haveUnbounded:
		return unboundedHit, unboundedObj, true
	default:
		return HitInfo{}, nil, false
	}
}

func nearestInList(objects []SceneObject, origin, dir mathutil.Vec3) (HitInfo, *SceneObject, bool) {
	var best HitInfo
	var bestObj *SceneObject
	found := false

	for i := range objects {
		hit, ok := objects[i].Shape.Intersect(origin, dir)
		if !ok || hit.Dist <= selfHitEpsilon {
			continue
		}
		if !found || hit.Dist < best.Dist {
			best = hit
			bestObj = &objects[i]
			found = true
		}
	}

	return best, bestObj, found
}

func nearestBounded(scene *Scene, origin, dir mathutil.Vec3, tMax float64, scratch *ThreadScratch) (HitInfo, *SceneObject, bool) {
	if scene.BVH == nil || len(scene.BVH.Nodes) == 0 {
		return HitInfo{}, nil, false
	}

	prune := func(box AABB) bool {
		_, _, ok := box.Hit(origin, dir, 0, tMax)
		return !ok
	}

	leaves, scratchStack := scene.BVH.QueryLeaves(prune, scratch.Stack, scratch.Leaves[:0])
	scratch.Stack = scratchStack
	scratch.Leaves = leaves

	var best HitInfo
	var bestObj *SceneObject
	found := false

	for _, idx := range leaves {
		obj := &scene.Bounded[idx]
		hit, ok := obj.Shape.Intersect(origin, dir)
		if !ok || hit.Dist <= selfHitEpsilon || hit.Dist > tMax {
			continue
		}
		if !found || hit.Dist < best.Dist {
			best = hit
			bestObj = obj
			found = true
		}
	}

	return best, bestObj, found
}

// ShadeRay casts a ray and, on a hit, increments info's depth and dispatches
// to the hit object's material; on a miss it returns the scene's sky color.
// This is the single site recursion depth is incremented, immediately
// after a hit is committed and before the material inspects it.
func ShadeRay(scene *Scene, scratch *ThreadScratch, origin, dir mathutil.Vec3, info RayCastInfo) Color {
	hit, obj, ok := RaycastWithObject(scene, origin, dir, scratch)
	if !ok {
		return scene.Sky
	}

	info.Depth++
	return obj.Material.Shade(scene, scratch, hit, info)
}
