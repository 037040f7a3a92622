package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gem-puzzle/internal/board"
)

func TestNearestSlot_CenterOfSlot(t *testing.T) {
	slots := board.NewRegistry().Slots()

	id, ok := NearestSlot(0, 0, slots, DefaultHoverRadius)
	require.True(t, ok)
	assert.Equal(t, "slot-6", id)
}

func TestNearestSlot_OutsideRadius(t *testing.T) {
	slots := board.NewRegistry().Slots()

	// Staging area is far from every slot.
	_, ok := NearestSlot(-7.2, 4.8, slots, DefaultHoverRadius)
	assert.False(t, ok)
}

func TestNearestSlot_PicksNearestOfOverlappingCandidates(t *testing.T) {
	slots := board.NewRegistry().Slots()

	// Between slot-5 (-1.2, 0) and slot-6 (0, 0), slightly toward slot-5.
	// With a radius above half the pitch, both could qualify; the nearer
	// slot must win regardless of registry order.
	id, ok := NearestSlot(-0.7, 0, slots, 0.8)
	require.True(t, ok)
	assert.Equal(t, "slot-5", id)

	id, ok = NearestSlot(-0.5, 0, slots, 0.8)
	require.True(t, ok)
	assert.Equal(t, "slot-6", id)
}

func TestNearestSlot_OffsetWithinRadius(t *testing.T) {
	slots := board.NewRegistry().Slots()

	id, ok := NearestSlot(0.3, -2.2, slots, DefaultHoverRadius)
	require.True(t, ok)
	assert.Equal(t, "slot-0", id)
}

func TestNearestSlot_EmptySlice(t *testing.T) {
	_, ok := NearestSlot(0, 0, nil, DefaultHoverRadius)
	assert.False(t, ok)
}
