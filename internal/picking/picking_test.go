package picking

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroundHit_StraightDown(t *testing.T) {
	x, z, ok := groundHit(rl.NewVector3(1.5, 10, -2), rl.NewVector3(0, -1, 0))
	require.True(t, ok)
	assert.InDelta(t, 1.5, x, 1e-5)
	assert.InDelta(t, -2.0, z, 1e-5)
}

func TestGroundHit_Oblique(t *testing.T) {
	// From (0,10,10) toward the origin.
	x, z, ok := groundHit(rl.NewVector3(0, 10, 10), rl.NewVector3(0, -0.70710678, -0.70710678))
	require.True(t, ok)
	assert.InDelta(t, 0.0, x, 1e-4)
	assert.InDelta(t, 0.0, z, 1e-4)
}

func TestGroundHit_ParallelRay(t *testing.T) {
	_, _, ok := groundHit(rl.NewVector3(0, 5, 0), rl.NewVector3(1, 0, 0))
	assert.False(t, ok)
}

func TestGroundHit_PlaneBehindRay(t *testing.T) {
	// Looking up from above the plane: the intersection is behind the origin.
	_, _, ok := groundHit(rl.NewVector3(0, 5, 0), rl.NewVector3(0, 1, 0))
	assert.False(t, ok)
}
