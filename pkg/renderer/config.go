package renderer

import (
	"errors"
	"runtime"

	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
)

// RenderConfig governs a single render pass: image resolution, viewport
// scale, tone-mapping range and gamma, recursion depth limits, area-light
// sampling density, and worker count. NewRenderConfig returns the defaults;
// Validate checks a config and is called by Render before any work starts.
type RenderConfig struct {
	ImageSize    int
	ViewportSize float64

	// VMin/VMax override the tone map's observed per-channel min/max when
	// non-nil; nil means "derive from the rendered buffer."
	VMin  *float64
	VMax  *float64
	Gamma float64

	ReflectionDepthLimit int
	IndirectDepthLimit   int
	AreaLightGridK       int
	IndirectSamples      int
	NumWorkers           int
}

// NewRenderConfig returns a RenderConfig holding the defaults for every
// field except VMin/VMax (nil): 512px image, viewport size 2.0, gamma 2.5,
// reflection depth 3, indirect depth 2, area-light grid k 3, 8 indirect
// samples per bounce, and NumCPU workers.
func NewRenderConfig() RenderConfig {
	return RenderConfig{
		ImageSize:            512,
		ViewportSize:         2.0,
		Gamma:                2.5,
		ReflectionDepthLimit: core.DefaultReflectionDepthLimit,
		IndirectDepthLimit:   core.DefaultIndirectDepthLimit,
		AreaLightGridK:       3,
		IndirectSamples:      8,
		NumWorkers:           runtime.NumCPU(),
	}
}

// Validate rejects a non-positive ImageSize/Gamma, a VMin >= VMax bound, a
// non-positive ViewportSize, or a non-positive NumWorkers.
func (c RenderConfig) Validate() error {
	if c.ImageSize <= 0 {
		return errors.New("renderer: ImageSize must be positive")
	}
	if c.ViewportSize <= 0 {
		return errors.New("renderer: ViewportSize must be positive")
	}
	if c.Gamma <= 0 {
		return errors.New("renderer: Gamma must be positive")
	}
	if c.VMin != nil && c.VMax != nil && *c.VMin >= *c.VMax {
		return errors.New("renderer: VMin must be less than VMax")
	}
	if c.NumWorkers <= 0 {
		return errors.New("renderer: NumWorkers must be positive")
	}
	return nil
}

// UnitsPerPixel returns the world-space size of one pixel on the image
// plane.
func (c RenderConfig) UnitsPerPixel() float64 {
	return c.ViewportSize / float64(c.ImageSize)
}

// DepthLimits returns the core.DepthLimits this config implies, for
// attaching to a core.Scene before rendering.
func (c RenderConfig) DepthLimits() core.DepthLimits {
	return core.DepthLimits{
		ReflectionDepthLimit: c.ReflectionDepthLimit,
		IndirectDepthLimit:   c.IndirectDepthLimit,
	}
}
