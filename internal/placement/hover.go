package placement

import (
	"gem-puzzle/internal/board"
)

// DefaultHoverRadius is the slot acceptance radius in board units. Tuned
// against the 1.2-unit slot pitch: generous enough for easy targeting, small
// enough that adjacent slots never both win for one cursor position.
const DefaultHoverRadius = 0.8

// NearestSlot returns the id of the slot nearest to the ground-plane point
// (x, z) if it lies within radius, and ok=false otherwise. Distance is planar
// (slot and cursor elevation are ignored). Pure and allocation-free; called
// on every pointer move.
//
// Nearest-neighbor semantics: when several slots fall inside the radius the
// minimum-distance one wins, with the earlier slot in registry order taking
// an exact distance tie. With distinct slot positions (which the layout
// validator enforces) exact ties between different coordinates cannot occur.
func NearestSlot(x, z float32, slots []*board.Slot, radius float32) (string, bool) {
	cursor := board.Vec3{X: x, Z: z}
	bestID := ""
	var bestDist float32
	for _, s := range slots {
		d := s.Position.PlanarDistance(cursor)
		if d > radius {
			continue
		}
		if bestID == "" || d < bestDist {
			bestID = s.ID
			bestDist = d
		}
	}
	return bestID, bestID != ""
}
