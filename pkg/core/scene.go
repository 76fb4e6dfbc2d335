package core

import "github.com/df07/go-monte-carlo-raytracer/pkg/mathutil"

// SceneObject pairs a shape with the material that shades it.
type SceneObject struct {
	Shape    Shape
	Material Material
}

// DefaultReflectionDepthLimit and DefaultIndirectDepthLimit match the
// original implementation's REFLECTION_DEPTH_LIMIT/INDIRECT_DEPTH_LIMIT
// module constants.
const (
	DefaultReflectionDepthLimit = 3
	DefaultIndirectDepthLimit   = 2
)

// DepthLimits bounds the two kinds of recursive bounce a material may take:
// specular/glossy reflection, and cosine-weighted indirect diffuse bounce.
// Materials read these off the Scene they are shading against, rather than
// a renderer-level config, so pkg/material never needs to import the
// renderer package that owns the rest of a render's configuration.
type DepthLimits struct {
	ReflectionDepthLimit int
	IndirectDepthLimit   int
}

// Scene holds everything the raycast layer and shading dispatcher need:
// the BVH plus the bounded primitives its leaves index into, the unbounded
// primitives queried outside the BVH, the light list, and the sky color.
// A Scene is immutable once built, with one exception: a render driver may
// overwrite Limits from its own RenderConfig immediately before starting
// its parallel workers, so the same built scene can be re-rendered under
// different depth budgets. Workers hold the scene by shared reference for
// the full render and never mutate any element of it themselves.
type Scene struct {
	Bounded   []SceneObject
	Unbounded []SceneObject
	Lights    []Light
	Sky       Color
	BVH       *BVH
	Limits    DepthLimits
}

// SceneBuilder accumulates scene objects and lights before Build partitions
// them by bounding-box presence and assembles the BVH. Leaf indices in the
// resulting BVH are assigned in the order bounded objects are appended
// here, and the builder's own object slice is never reordered after Build,
// so the leaf-index stability invariant documented on BVH holds
// structurally: callers only
// ever observe the immutable Scene.Bounded slice afterward.
type SceneBuilder struct {
	objects []SceneObject
	lights  []Light
	sky     Color
	limits  DepthLimits
}

// NewSceneBuilder creates an empty builder with the given sky color and the
// original implementation's default depth limits.
func NewSceneBuilder(sky Color) *SceneBuilder {
	return &SceneBuilder{
		sky: sky,
		limits: DepthLimits{
			ReflectionDepthLimit: DefaultReflectionDepthLimit,
			IndirectDepthLimit:   DefaultIndirectDepthLimit,
		},
	}
}

// WithDepthLimits overrides the default recursion depth limits.
func (sb *SceneBuilder) WithDepthLimits(limits DepthLimits) *SceneBuilder {
	sb.limits = limits
	return sb
}

// AddObject appends a (shape, material) pair to the scene.
func (sb *SceneBuilder) AddObject(shape Shape, material Material) *SceneBuilder {
	sb.objects = append(sb.objects, SceneObject{Shape: shape, Material: material})
	return sb
}

// AddLight appends a light to the scene.
func (sb *SceneBuilder) AddLight(light Light) *SceneBuilder {
	sb.lights = append(sb.lights, light)
	return sb
}

// Build partitions the accumulated objects into bounded and unbounded
// primitives, builds the BVH over the bounded ones, and returns the
// resulting immutable Scene.
func (sb *SceneBuilder) Build() *Scene {
	var bounded, unbounded []SceneObject
	var leaves []LeafBox

	for _, obj := range sb.objects {
		if box, ok := obj.Shape.BoundingBox(); ok {
			leaves = append(leaves, LeafBox{Index: len(bounded), Box: box})
			bounded = append(bounded, obj)
		} else {
			unbounded = append(unbounded, obj)
		}
	}

	return &Scene{
		Bounded:   bounded,
		Unbounded: unbounded,
		Lights:    sb.lights,
		Sky:       sb.sky,
		BVH:       BuildBVH(leaves),
		Limits:    sb.limits,
	}
}

// DirectLight sums the contribution of every light in the scene at the
// given shading point and surface normal. There is no light-sampling
// weight: every light is evaluated and its occlusion-gated contribution
// added, matching the original implementation's plain sum over lights.
func (s *Scene) DirectLight(point, normal mathutil.Vec3, scratch *ThreadScratch) Color {
	total := Black
	for _, light := range s.Lights {
		total = total.Add(light.DirectLight(point, normal, s, scratch))
	}
	return total
}
