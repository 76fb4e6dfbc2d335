package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -1, 2)

	assert.Equal(t, NewVec3(5, 1, 5), a.Add(b))
	assert.Equal(t, NewVec3(-3, 3, 1), a.Subtract(b))
	assert.Equal(t, NewVec3(2, 4, 6), a.Multiply(2))
	assert.Equal(t, NewVec3(4, -2, 6), a.MultiplyVec(b))
	assert.InDelta(t, 1*4+2*-1+3*2, a.Dot(b), 1e-9)
}

func TestVec3Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	assert.Equal(t, NewVec3(0, 0, 1), x.Cross(y))
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4)
	n := v.Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-9)
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Z, 1e-9)

	zero := NewVec3(0, 0, 0).Normalize()
	assert.Equal(t, NewVec3(0, 0, 0), zero)
}

func TestVec3Clamp(t *testing.T) {
	v := NewVec3(-1, 0.5, 2)
	assert.Equal(t, NewVec3(0, 0.5, 1), v.Clamp(0, 1))
}
