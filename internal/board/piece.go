package board

// Color is a piece color. The set of colors and their counts are fixed at
// construction (3 each of orange/yellow/green/blue, 1 red) and never change.
type Color string

const (
	Orange Color = "orange"
	Yellow Color = "yellow"
	Green  Color = "green"
	Blue   Color = "blue"
	Red    Color = "red"
)

// Shape is a piece shape. Each full-census color has exactly one piece of each
// shape; the single red piece is always round.
type Shape string

const (
	Round      Shape = "round"
	Triangular Shape = "triangular"
	Square     Shape = "square"
)

// Piece is one of the 13 gems. ID, Color, Shape and Origin are fixed at
// construction; Position and SlotID are mutated only by the placement
// controller (drag, commit, rollback, reset).
type Piece struct {
	ID    string
	Color Color
	Shape Shape
	// Position is the current spatial coordinate. Follows the cursor while
	// dragged, snaps to the slot position on commit, returns to Origin on
	// rollback or reset.
	Position Vec3
	// SlotID is the occupied slot, or "" while the piece is staged or dragged.
	SlotID string
	// Origin is the staging-area coordinate the piece returns to when a drag
	// is invalidated. Never mutated after construction.
	Origin Vec3
}

// Placed reports whether the piece currently occupies a slot.
func (p *Piece) Placed() bool {
	return p.SlotID != ""
}
