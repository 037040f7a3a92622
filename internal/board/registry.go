// Package board holds the canonical piece and slot records of the puzzle.
// Both collections are created once from a layout document and live for the
// whole session; only the mutable placement fields (piece Position/SlotID,
// slot Occupied/PieceID) change, and only the placement controller writes
// them. Everything else reads through snapshots.
package board

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned for lookups with an id that was not assigned at
// construction. Lookups never fall back to a zero value.
var ErrNotFound = errors.New("not found")

// Registry holds the 13 pieces and 13 slots with lookup by id and stable
// creation-order iteration.
type Registry struct {
	pieces map[string]*Piece
	slots  map[string]*Slot
	// order matches the layout document so construction is deterministic and
	// rendering/tests see the same sequence every run.
	pieceOrder []*Piece
	slotOrder  []*Slot
}

// NewRegistry builds a registry from the shipped cross-pattern layout.
func NewRegistry() *Registry {
	r, err := NewRegistryFromLayout(DefaultLayout())
	if err != nil {
		// The shipped layout is validated by tests; a failure here is a build defect.
		panic(err)
	}
	return r
}

// NewRegistryFromLayout validates the layout and builds a registry from it.
// Pieces start staged: position at their staging coordinate, no slot.
func NewRegistryFromLayout(l Layout) (*Registry, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	r := &Registry{
		pieces:     make(map[string]*Piece, len(l.Pieces)),
		slots:      make(map[string]*Slot, len(l.Slots)),
		pieceOrder: make([]*Piece, 0, len(l.Pieces)),
		slotOrder:  make([]*Slot, 0, len(l.Slots)),
	}
	for _, def := range l.Slots {
		s := &Slot{
			ID:       def.ID,
			Position: Vec3{X: def.X, Y: 0, Z: def.Z},
		}
		r.slots[s.ID] = s
		r.slotOrder = append(r.slotOrder, s)
	}
	for _, def := range l.Pieces {
		origin := Vec3{X: def.X, Y: 0, Z: def.Z}
		p := &Piece{
			ID:       def.ID,
			Color:    def.Color,
			Shape:    def.Shape,
			Position: origin,
			Origin:   origin,
		}
		r.pieces[p.ID] = p
		r.pieceOrder = append(r.pieceOrder, p)
	}
	return r, nil
}

// Piece returns the piece with the given id, or ErrNotFound.
func (r *Registry) Piece(id string) (*Piece, error) {
	p, ok := r.pieces[id]
	if !ok {
		return nil, fmt.Errorf("piece %q: %w", id, ErrNotFound)
	}
	return p, nil
}

// Slot returns the slot with the given id, or ErrNotFound.
func (r *Registry) Slot(id string) (*Slot, error) {
	s, ok := r.slots[id]
	if !ok {
		return nil, fmt.Errorf("slot %q: %w", id, ErrNotFound)
	}
	return s, nil
}

// Pieces returns all pieces in creation order. The slice is shared; callers
// must not reorder it or write through it (use placement snapshots instead).
func (r *Registry) Pieces() []*Piece {
	return r.pieceOrder
}

// Slots returns all slots in creation order. Same sharing rules as Pieces.
func (r *Registry) Slots() []*Slot {
	return r.slotOrder
}

// PlacedCount returns how many pieces currently occupy a slot.
func (r *Registry) PlacedCount() int {
	n := 0
	for _, p := range r.pieceOrder {
		if p.Placed() {
			n++
		}
	}
	return n
}
