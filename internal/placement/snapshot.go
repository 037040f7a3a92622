package placement

import (
	"github.com/jinzhu/copier"

	"gem-puzzle/internal/board"
)

// Snapshot is a detached copy of the full board and interaction state. The
// render layer draws from snapshots so it can never write through to the
// registries; tests use before/after snapshots for atomicity checks.
type Snapshot struct {
	Pieces         []board.Piece
	Slots          []board.Slot
	DraggedPieceID string
	HoveredSlotID  string
}

// Snapshot returns a deep copy of the current state in registry order.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		DraggedPieceID: c.draggedPieceID,
		HoveredSlotID:  c.hoveredSlotID,
	}
	// copier flattens []*Piece into []Piece, detaching the copies.
	if err := copier.Copy(&snap.Pieces, c.reg.Pieces()); err != nil {
		c.log.Error().Err(err).Msg("piece snapshot failed")
	}
	if err := copier.Copy(&snap.Slots, c.reg.Slots()); err != nil {
		c.log.Error().Err(err).Msg("slot snapshot failed")
	}
	return snap
}

// Piece returns the snapshot piece with the given id, or ok=false.
func (s Snapshot) Piece(id string) (board.Piece, bool) {
	for _, p := range s.Pieces {
		if p.ID == id {
			return p, true
		}
	}
	return board.Piece{}, false
}

// Slot returns the snapshot slot with the given id, or ok=false.
func (s Snapshot) Slot(id string) (board.Slot, bool) {
	for _, sl := range s.Slots {
		if sl.ID == id {
			return sl, true
		}
	}
	return board.Slot{}, false
}
