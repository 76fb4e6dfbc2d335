package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
	"github.com/df07/go-monte-carlo-raytracer/pkg/geometry"
	"github.com/df07/go-monte-carlo-raytracer/pkg/lights"
	"github.com/df07/go-monte-carlo-raytracer/pkg/material"
	"github.com/df07/go-monte-carlo-raytracer/pkg/mathutil"
)

type nullLogger struct{}

func (nullLogger) Printf(format string, args ...interface{}) {}

func testConfig(size int) RenderConfig {
	cfg := NewRenderConfig()
	cfg.ImageSize = size
	cfg.NumWorkers = 2
	return cfg
}

func TestRenderEmptySceneIsAllSky(t *testing.T) {
	sky := core.NewColor(0.5, 0.6, 0.7)
	scene := core.NewSceneBuilder(sky).Build()
	camera := NewPinholeCamera(mathutil.NewVec3(0, 0, 0))

	img, err := Render(scene, camera, testConfig(8), nullLogger{})
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	first := img.NRGBAAt(0, 0)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, first, img.NRGBAAt(x, y))
		}
	}
}

func TestRenderSphereUnderDirectionalLight(t *testing.T) {
	builder := core.NewSceneBuilder(core.NewColor(0, 0, 0))
	builder.AddObject(geometry.NewSphere(mathutil.NewVec3(0, 0, -5), 1), material.NewDiffuse(core.NewColor(1, 1, 1), 0))
	builder.AddLight(lights.NewDirectionalLight(mathutil.NewVec3(0, 0, -1), core.NewColor(5, 5, 5)))
	scene := builder.Build()
	camera := NewPinholeCamera(mathutil.NewVec3(0, 0, 0))

	img, err := Render(scene, camera, testConfig(16), nullLogger{})
	require.NoError(t, err)

	center := img.NRGBAAt(8, 8)
	corner := img.NRGBAAt(0, 0)
	assert.Greater(t, int(center.R), int(corner.R))
}

// TestRenderBlankImageIsError is the "monochrome/blank image" error
// condition from spec.md §4.7: an empty black-sky scene produces a
// constant-value buffer, and with no VMin/VMax override there is no
// extrema to derive a tone-map range from, so Render must report failure
// rather than silently returning an all-black image.
func TestRenderBlankImageIsError(t *testing.T) {
	sky := core.NewColor(0, 0, 0)
	scene := core.NewSceneBuilder(sky).Build()
	camera := NewPinholeCamera(mathutil.NewVec3(0, 0, 0))

	_, err := Render(scene, camera, testConfig(8), nullLogger{})
	require.Error(t, err)
}

// TestRenderBlankImageWithOverrideSucceeds confirms that supplying an
// explicit VMin/VMax bypasses the blank-image failure even when every
// pixel shares the same value, since the tone-map range is then given
// rather than derived.
func TestRenderBlankImageWithOverrideSucceeds(t *testing.T) {
	sky := core.NewColor(0, 0, 0)
	scene := core.NewSceneBuilder(sky).Build()
	camera := NewPinholeCamera(mathutil.NewVec3(0, 0, 0))

	cfg := testConfig(8)
	vmin, vmax := 0.0, 1.0
	cfg.VMin = &vmin
	cfg.VMax = &vmax

	img, err := Render(scene, camera, cfg, nullLogger{})
	require.NoError(t, err)
	assert.NotNil(t, img)
}

func TestRenderOcclusionDarkensShadow(t *testing.T) {
	builder := core.NewSceneBuilder(core.NewColor(0, 0, 0))
	builder.AddObject(geometry.NewPlane(mathutil.NewVec3(0, -1, 0), mathutil.NewVec3(0, 1, 0)), material.NewDiffuse(core.NewColor(1, 1, 1), 0))
	builder.AddObject(geometry.NewSphere(mathutil.NewVec3(0, 1, -4), 1), material.NewDiffuse(core.NewColor(1, 1, 1), 0))
	builder.AddLight(lights.NewPointLight(mathutil.NewVec3(0, 5, -4), core.NewColor(20, 20, 20)))
	scene := builder.Build()
	camera := NewPinholeCamera(mathutil.NewVec3(0, 3, 2))

	img, err := Render(scene, camera, testConfig(16), nullLogger{})
	require.NoError(t, err)

	// pixel (8, 13) sees the floor directly beneath the sphere, inside its
	// shadow; pixel (2, 13) sees open floor off to the side.
	shadowed := img.NRGBAAt(8, 13)
	lit := img.NRGBAAt(2, 13)
	assert.Less(t, int(shadowed.R), int(lit.R))
}

func TestRenderMirrorRecursionCompletes(t *testing.T) {
	builder := core.NewSceneBuilder(core.NewColor(0.2, 0.2, 0.2))
	builder.AddObject(geometry.NewSphere(mathutil.NewVec3(0, 0, -5), 1), material.NewMirror(core.NewColor(0.9, 0.9, 0.9)))
	builder.AddLight(lights.NewDirectionalLight(mathutil.NewVec3(0, -1, -1), core.NewColor(3, 3, 3)))
	scene := builder.Build()
	camera := NewPinholeCamera(mathutil.NewVec3(0, 0, 0))

	img, err := Render(scene, camera, testConfig(16), nullLogger{})
	require.NoError(t, err)
	assert.NotNil(t, img)
}

// TestRenderDeterminism is the "determinism" testable property: two
// renders of the same scene and config, with the same worker count,
// produce byte-identical images.
func TestRenderDeterminism(t *testing.T) {
	builder := core.NewSceneBuilder(core.NewColor(0.1, 0.2, 0.3))
	builder.AddObject(geometry.NewSphere(mathutil.NewVec3(0, 0, -5), 1), material.NewPBRDiffuse(core.NewColor(0.8, 0.2, 0.2), 4))
	builder.AddLight(lights.NewPointLight(mathutil.NewVec3(2, 4, 0), core.NewColor(15, 15, 15)))
	scene := builder.Build()
	camera := NewPinholeCamera(mathutil.NewVec3(0, 0, 0))
	cfg := testConfig(16)

	img1, err := Render(scene, camera, cfg, nullLogger{})
	require.NoError(t, err)
	img2, err := Render(scene, camera, cfg, nullLogger{})
	require.NoError(t, err)

	assert.Equal(t, img1.Pix, img2.Pix)
}

// TestToneMapExactness checks the tone-map/quantization math directly,
// independent of the scene: a buffer spanning exactly [0, 1] with gamma 1
// (no curve) maps the darkest pixel to 0 and the brightest to 255.
func TestToneMapExactness(t *testing.T) {
	buffer := []core.Color{
		core.NewColor(0, 0, 0),
		core.NewColor(0.5, 0.5, 0.5),
		core.NewColor(1, 1, 1),
		core.NewColor(0.25, 0.25, 0.25),
	}
	cfg := NewRenderConfig()
	cfg.Gamma = 1.0

	img := toneMap(buffer, 2, cfg)
	assert.Equal(t, uint8(0), img.NRGBAAt(0, 0).R)
	assert.Equal(t, uint8(255), img.NRGBAAt(0, 1).R)
}

func TestObservedRangeHandlesEmptyBuffer(t *testing.T) {
	min, max := observedRange(nil)
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 1.0, max)
}

func TestObservedRangeAcrossChannels(t *testing.T) {
	buffer := []core.Color{core.NewColor(0.1, 5, -2), core.NewColor(3, 0, 1)}
	min, max := observedRange(buffer)
	assert.InDelta(t, -2, min, 1e-9)
	assert.InDelta(t, 5, max, 1e-9)
}
