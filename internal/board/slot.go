package board

// Slot is one of the 13 fixed board positions. ID and Position are set once at
// construction; Occupied and PieceID are mutated only by the placement
// controller and always change together (a slot is occupied iff exactly one
// piece references it back).
type Slot struct {
	ID       string
	Position Vec3
	Occupied bool
	// PieceID is the occupying piece, or "" when the slot is free.
	PieceID string
}
