package renderer

import (
	"context"
	"errors"
	"image"
	"image/color"
	"math"
	"sync/atomic"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/sync/errgroup"

	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
)

// blurSigma is the post-tonemap Gaussian blur radius, in pixels, applied to
// soften 8-bit quantization banding.
const blurSigma = 0.3

// errBlankImage is returned when every rendered pixel shares the same
// combined-channel value and the caller supplied no VMin/VMax override: the
// tone map has no extrema to derive a range from, so rendering is reported
// as a failure rather than silently producing a flat image.
var errBlankImage = errors.New("renderer: rendered image is blank (no tone-map range) and no VMin/VMax override was given")

// Render traces every pixel of an ImageSize x ImageSize image in parallel,
// tone-maps the resulting HDR buffer, and returns the final 8-bit image.
func Render(scene *core.Scene, camera Camera, cfg RenderConfig, logger core.Logger) (*image.NRGBA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// cfg's depth limits govern the scene's recursion budget: applied once,
	// before any worker goroutine is started, so every worker observes the
	// same value without synchronization.
	scene.Limits = cfg.DepthLimits()

	size := cfg.ImageSize
	buffer := make([]core.Color, size*size)

	if err := renderPixels(scene, camera, cfg, buffer, logger); err != nil {
		return nil, err
	}

	if cfg.VMin == nil && cfg.VMax == nil {
		vmin, vmax := observedRange(buffer)
		if vmax-vmin <= 0 {
			return nil, errBlankImage
		}
	}

	img := toneMap(buffer, size, cfg)
	blurred := imaging.Blur(img, blurSigma)
	return blurred, nil
}

// renderSeed is the fixed constant every pixel's RNG stream derives from.
// Determinism depends on the per-pixel seed, not on which worker happens
// to claim a given row under work-stealing, so it is independent of
// cfg.NumWorkers and the scheduler.
const renderSeed = 0x5ead0ff

// renderPixels fills buffer with one HDR color per pixel, in parallel
// across cfg.NumWorkers goroutines that claim rows from a shared cursor
// (work-stealing over the static row set). Each worker owns exactly one
// core.ThreadScratch for its lifetime to avoid per-ray allocation, but its
// RNG is reseeded from renderSeed and the pixel's own coordinates before
// every ray: pixels are independent and reproducible regardless of which
// worker happens to render them or in what order.
func renderPixels(scene *core.Scene, camera Camera, cfg RenderConfig, buffer []core.Color, logger core.Logger) error {
	size := cfg.ImageSize
	unitsPerPixel := cfg.UnitsPerPixel()
	halfWidth := float64(size) * unitsPerPixel / 2
	halfHeight := halfWidth

	var nextRow int64 = -1

	g, ctx := errgroup.WithContext(context.Background())
	for worker := 0; worker < cfg.NumWorkers; worker++ {
		workerIndex := worker
		g.Go(func() error {
			scratch := core.NewThreadScratch(int64(workerIndex))
			for {
				row := atomic.AddInt64(&nextRow, 1)
				if row >= int64(size) {
					return nil
				}
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				renderRow(scene, camera, cfg, scratch, buffer, int(row), size, unitsPerPixel, halfWidth, halfHeight)
			}
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if logger != nil {
		logger.Printf("rendered %dx%d image with %d workers", size, size, cfg.NumWorkers)
	}
	return nil
}

func renderRow(scene *core.Scene, camera Camera, cfg RenderConfig, scratch *core.ThreadScratch, buffer []core.Color, row, size int, unitsPerPixel, halfWidth, halfHeight float64) {
	origin := camera.Position()
	for px := 0; px < size; px++ {
		scratch.Rng.Seed(renderSeed + int64(row)*int64(size) + int64(px))
		dir := camera.RayDirection(px, row, unitsPerPixel, halfWidth, halfHeight)
		color := core.ShadeRay(scene, scratch, origin, dir, core.NewRayCastInfo())
		buffer[row*size+px] = color
	}
}

// toneMap normalizes buffer's HDR values into [0, 1] using either cfg's
// overridden VMin/VMax or the buffer's own observed global min/max across
// every channel of every pixel, applies a 1/Gamma power curve, and
// quantizes to 8 bits per channel via go-colorful's clamped RGB255.
func toneMap(buffer []core.Color, size int, cfg RenderConfig) *image.NRGBA {
	vmin, vmax := observedRange(buffer)
	if cfg.VMin != nil {
		vmin = *cfg.VMin
	}
	if cfg.VMax != nil {
		vmax = *cfg.VMax
	}
	span := vmax - vmin
	if span <= 0 {
		span = 1
	}
	gammaCorrection := 1 / cfg.Gamma

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := buffer[y*size+x]
			r := mapChannel(c.X, vmin, span, gammaCorrection)
			g := mapChannel(c.Y, vmin, span, gammaCorrection)
			b := mapChannel(c.Z, vmin, span, gammaCorrection)

			r8, g8, b8 := colorful.Color{R: r, G: g, B: b}.Clamped().RGB255()
			img.SetNRGBA(x, y, color.NRGBA{R: r8, G: g8, B: b8, A: 255})
		}
	}
	return img
}

func mapChannel(v, vmin, span, gammaCorrection float64) float64 {
	normalized := (v - vmin) / span
	if normalized < 0 {
		normalized = 0
	}
	return math.Pow(normalized, gammaCorrection)
}

// observedRange returns the minimum and maximum value across every channel
// of every pixel in buffer, matching the original implementation's
// combined-channel min/max (not a separate range per channel).
func observedRange(buffer []core.Color) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, c := range buffer {
		for _, v := range [3]float64{c.X, c.Y, c.Z} {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	if math.IsInf(min, 1) {
		return 0, 1
	}
	return min, max
}
