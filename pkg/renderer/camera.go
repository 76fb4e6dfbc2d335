// Package renderer drives a parallel per-pixel render: a Camera generates
// rays, core.ShadeRay shades them, and the results are tone-mapped and
// blurred into a final image.
package renderer

import "github.com/df07/go-monte-carlo-raytracer/pkg/mathutil"

// Camera generates a ray for a given pixel. RayDirection takes the pixel
// coordinates together with the image's units-per-pixel scale and half
// extents, so a camera implementation never needs to know the image
// resolution directly.
type Camera interface {
	RayDirection(px, py int, unitsPerPixel, halfWidth, halfHeight float64) mathutil.Vec3
	Position() mathutil.Vec3
}

// PinholeCamera is a simple camera looking down -Z from a fixed position,
// generating rays through an axis-aligned image plane one unit in front of
// it. It is the one concrete Camera every demo scene uses.
type PinholeCamera struct {
	Origin mathutil.Vec3
}

// NewPinholeCamera creates a pinhole camera at origin.
func NewPinholeCamera(origin mathutil.Vec3) *PinholeCamera {
	return &PinholeCamera{Origin: origin}
}

// Position returns the camera's origin.
func (c *PinholeCamera) Position() mathutil.Vec3 {
	return c.Origin
}

// RayDirection returns the normalized direction from the camera through
// pixel (px, py), where px/py are measured from the image's top-left
// corner and unitsPerPixel converts pixel offsets into world units on an
// image plane one unit in front of the camera.
func (c *PinholeCamera) RayDirection(px, py int, unitsPerPixel, halfWidth, halfHeight float64) mathutil.Vec3 {
	x := (float64(px)+0.5)*unitsPerPixel - halfWidth
	y := halfHeight - (float64(py)+0.5)*unitsPerPixel

	return mathutil.NewVec3(x, y, -1).Normalize()
}
