package core

import (
	"math"
	"math/rand"

	"github.com/df07/go-monte-carlo-raytracer/pkg/mathutil"
)

// ThreadScratch is the per-worker mutable workspace: a reusable DFS stack
// for BVH queries and a deterministic pseudorandom generator. Exactly one
// instance exists per worker goroutine for the lifetime of that worker; it
// is never shared or accessed from another goroutine.
type ThreadScratch struct {
	Stack  []int // DFS stack for BVH queries
	Leaves []int // reusable buffer for the leaves a query yields
	Rng    *rand.Rand
}

// NewThreadScratch creates scratch state seeded deterministically from
// seed, so that two renders of the same scene with the same worker count
// produce byte-identical images.
func NewThreadScratch(seed int64) *ThreadScratch {
	return &ThreadScratch{
		Stack:  make([]int, 0, 64),
		Leaves: make([]int, 0, 64),
		Rng:    rand.New(rand.NewSource(seed)),
	}
}

// RandomInUnitSphere returns a vector drawn uniformly from the solid ball
// of the given radius.
func RandomInUnitSphere(rng *rand.Rand, radius float64) mathutil.Vec3 {
	for {
		v := mathutil.NewVec3(
			2*rng.Float64()-1,
			2*rng.Float64()-1,
			2*rng.Float64()-1,
		)
		if v.LengthSquared() <= 1 {
			return v.Multiply(radius)
		}
	}
}

// RandomOnUnitSphere returns a vector drawn uniformly from the surface of
// the unit sphere, via normalizing a point rejection-sampled from the unit
// ball.
func RandomOnUnitSphere(rng *rand.Rand) mathutil.Vec3 {
	return RandomInUnitSphere(rng, 1).Normalize()
}

// RandomCosineDirection returns a direction in the hemisphere around
// normal, distributed proportionally to cos(theta) from the normal. It
// works by offsetting the normal by a uniformly-sampled point on the unit
// sphere and normalizing: a vector uniformly distributed on a sphere
// tangent to the normal's tip has exactly a cosine-weighted distribution
// over the hemisphere it subtends.
func RandomCosineDirection(normal mathutil.Vec3, rng *rand.Rand) mathutil.Vec3 {
	offset := RandomOnUnitSphere(rng)
	return normal.Add(offset).Normalize()
}

// CosineHemispherePDF returns the PDF of RandomCosineDirection at the angle
// whose cosine (with normal) is cosTheta.
func CosineHemispherePDF(cosTheta float64) float64 {
	if cosTheta < 0 {
		return 0
	}
	return cosTheta / math.Pi
}
