package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-monte-carlo-raytracer/pkg/mathutil"
)

func TestPlaneIntersectFrontHit(t *testing.T) {
	p := NewPlane(mathutil.NewVec3(0, 0, 0), mathutil.NewVec3(0, 1, 0))
	hit, ok := p.Intersect(mathutil.NewVec3(0, 5, 0), mathutil.NewVec3(0, -1, 0))
	require.True(t, ok)
	assert.InDelta(t, 5, hit.Dist, 1e-9)
}

// TestPlaneGrazing is the "plane vs. grazing" testable property: a ray
// nearly parallel to the plane (cosine just inside grazingCosine) is
// rejected, while one clearly off it is accepted.
func TestPlaneGrazing(t *testing.T) {
	p := NewPlane(mathutil.NewVec3(0, 0, 0), mathutil.NewVec3(0, 1, 0))

	grazing := mathutil.NewVec3(1, grazingCosine*0.5, 0).Normalize()
	_, ok := p.Intersect(mathutil.NewVec3(0, 1, 0), grazing)
	assert.False(t, ok)

	clear := mathutil.NewVec3(1, -1, 0).Normalize()
	_, ok = p.Intersect(mathutil.NewVec3(0, 1, 0), clear)
	assert.True(t, ok)
}

func TestPlaneIntersectBehindRejected(t *testing.T) {
	p := NewPlane(mathutil.NewVec3(0, 0, 0), mathutil.NewVec3(0, 1, 0))
	_, ok := p.Intersect(mathutil.NewVec3(0, -5, 0), mathutil.NewVec3(0, -1, 0))
	assert.False(t, ok)
}

func TestPlaneHasNoBoundingBox(t *testing.T) {
	p := NewPlane(mathutil.NewVec3(0, 0, 0), mathutil.NewVec3(0, 1, 0))
	_, ok := p.BoundingBox()
	assert.False(t, ok)
}
