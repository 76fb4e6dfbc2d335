// Package scene builds example scenes that exercise the renderer end to
// end; it is a consumer of pkg/core/pkg/geometry/pkg/lights/pkg/material,
// not part of the core library itself.
package scene

import (
	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
	"github.com/df07/go-monte-carlo-raytracer/pkg/geometry"
	"github.com/df07/go-monte-carlo-raytracer/pkg/lights"
	"github.com/df07/go-monte-carlo-raytracer/pkg/material"
	"github.com/df07/go-monte-carlo-raytracer/pkg/mathutil"
	"github.com/df07/go-monte-carlo-raytracer/pkg/renderer"
)

// NewDemoScene builds a small scene: a glossy sphere over a white diffuse
// floor, lit by an overhead rectangular area light and a weak directional
// fill, under a dusk-colored sky. gridK controls the area light's
// finite-difference grid resolution (see lights.AreaLight) and
// indirectSamples controls the glossy sphere's lobe sample count (see
// material.Glossy); both flow from RenderConfig's AreaLightGridK and
// IndirectSamples knobs.
func NewDemoScene(gridK, indirectSamples int) *core.Scene {
	sky := core.NewColor(0.05, 0.07, 0.1)
	builder := core.NewSceneBuilder(sky)

	floor := geometry.NewPlane(mathutil.NewVec3(0, 0, 0), mathutil.NewVec3(0, 1, 0))
	floorMaterial := material.NewDiffuse(core.NewColor(0.8, 0.8, 0.8), 0.1)
	builder.AddObject(floor, floorMaterial)

	sphere := geometry.NewSphere(mathutil.NewVec3(0, 1, -4), 1)
	sphereMaterial := material.NewGlossy(core.NewColor(0.7, 0.7, 0.9), 0.15, indirectSamples)
	builder.AddObject(sphere, sphereMaterial)

	backWall := geometry.NewRect(mathutil.NewVec3(0, 3, -8), mathutil.NewVec3(4, 0, 0), mathutil.NewVec3(0, 3, 0))
	backWallMaterial := material.NewDiffuse(core.NewColor(0.6, 0.2, 0.2), 0.0)
	builder.AddObject(backWall, backWallMaterial)

	lightRect := geometry.NewRect(mathutil.NewVec3(0, 5, -4), mathutil.NewVec3(1, 0, 0), mathutil.NewVec3(0, 0, 0.5))
	builder.AddLight(lights.NewAreaLight(lightRect, core.NewColor(12, 12, 11), gridK))
	builder.AddLight(lights.NewDirectionalLight(mathutil.NewVec3(0.3, -1, -0.2), core.NewColor(0.3, 0.3, 0.35)))

	return builder.Build()
}

// NewDemoCamera returns the pinhole camera the demo scene is framed for.
func NewDemoCamera() renderer.Camera {
	return renderer.NewPinholeCamera(mathutil.NewVec3(0, 1.6, 3))
}
