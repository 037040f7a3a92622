// Package placement is the drag-and-drop state machine of the puzzle. The
// Controller is the single writer of the board registries: it tracks the one
// in-flight drag, resolves slot hover, and on release either commits the
// piece into the hovered slot or rolls it back to its staging origin. All
// operations run synchronously on the input thread and either fully apply or
// leave state untouched.
package placement

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"gem-puzzle/internal/board"
)

// ErrInvalidOperation is returned when an operation's precondition does not
// hold (starting a drag while one is active, moving or releasing while idle,
// starting within the re-drag suppression window). State is never changed on
// this error.
var ErrInvalidOperation = errors.New("invalid operation")

// DefaultLiftHeight is the vertical offset added to a piece at drag start, so
// the lifted piece is visually unambiguous and sits clear of the board plane.
const DefaultLiftHeight = 1.0

// DefaultSuppressWindow is the quiescent interval after a drop during which a
// new drag is rejected, so the release and the next press cannot be misread
// as one continuous gesture.
const DefaultSuppressWindow = 150 * time.Millisecond

// DropResult reports how an EndDrag resolved.
type DropResult struct {
	PieceID string
	// SlotID is the slot the piece was committed into, or "" on rollback.
	SlotID string
	Placed bool
	// Conflict is true when the hovered slot was occupied at release time, so
	// the drop resolved to rollback. This is ordinary behavior, not an error.
	Conflict bool
}

// Controller owns the transient interaction state and mutates the registry
// through StartDrag, UpdateDragPosition, EndDrag and Reset. Not safe for
// concurrent use; all calls come from the single input/update thread.
type Controller struct {
	reg *board.Registry
	log zerolog.Logger
	now func() time.Time

	draggedPieceID string
	hoveredSlotID  string
	// suppressUntil is the end of the post-drop quiescent window. Explicit
	// state rather than a timer so it is inspectable and testable.
	suppressUntil time.Time

	hoverRadius    float32
	liftHeight     float32
	suppressWindow time.Duration
}

// New returns an idle controller over reg with default tuning.
func New(reg *board.Registry, log zerolog.Logger) *Controller {
	return &Controller{
		reg:            reg,
		log:            log.With().Str("component", "placement").Logger(),
		now:            time.Now,
		hoverRadius:    DefaultHoverRadius,
		liftHeight:     DefaultLiftHeight,
		suppressWindow: DefaultSuppressWindow,
	}
}

// SetClock replaces the time source. Tests inject a fixed clock to exercise
// the suppression window deterministically.
func (c *Controller) SetClock(now func() time.Time) {
	c.now = now
}

// SetHoverRadius overrides the slot acceptance radius (accessibility tuning).
// Values <= 0 are ignored.
func (c *Controller) SetHoverRadius(r float32) {
	if r > 0 {
		c.hoverRadius = r
	}
}

// SetSuppressWindow overrides the post-drop re-drag suppression interval.
// Negative values are ignored; zero disables suppression.
func (c *Controller) SetSuppressWindow(d time.Duration) {
	if d >= 0 {
		c.suppressWindow = d
	}
}

// Dragging reports whether a drag is in flight.
func (c *Controller) Dragging() bool {
	return c.draggedPieceID != ""
}

// DraggedPieceID returns the piece in flight, or "".
func (c *Controller) DraggedPieceID() string {
	return c.draggedPieceID
}

// HoveredSlotID returns the slot currently targeted by the drag, or "".
func (c *Controller) HoveredSlotID() string {
	return c.hoveredSlotID
}

// StartDrag begins dragging the given piece. If the piece occupies a slot,
// that slot is vacated in the same call, and the piece is lifted by the lift
// height from its current position. Rejected with ErrInvalidOperation while
// another drag is active or within the suppression window, and with
// board.ErrNotFound for an unknown id; in every rejection state is unchanged.
func (c *Controller) StartDrag(pieceID string) error {
	if c.draggedPieceID != "" {
		return fmt.Errorf("%w: drag of %q already active", ErrInvalidOperation, c.draggedPieceID)
	}
	if c.now().Before(c.suppressUntil) {
		return fmt.Errorf("%w: within post-drop suppression window", ErrInvalidOperation)
	}
	p, err := c.reg.Piece(pieceID)
	if err != nil {
		return err
	}
	if p.SlotID != "" {
		s, err := c.reg.Slot(p.SlotID)
		if err != nil {
			// A placed piece always references a known slot; reaching this
			// means the registry was corrupted outside the controller.
			return err
		}
		s.Occupied = false
		s.PieceID = ""
		p.SlotID = ""
	}
	p.Position.Y += c.liftHeight
	c.draggedPieceID = pieceID
	c.log.Debug().Str("piece", pieceID).Msg("drag started")
	return nil
}

// UpdateDragPosition moves the dragged piece to the ground-plane coordinate
// (x, z), keeping its lifted elevation, and recomputes the hovered slot.
// Called on every pointer move, so it stays O(slots) with no allocation.
// Returns ErrInvalidOperation when no drag is active.
func (c *Controller) UpdateDragPosition(x, z float32) error {
	if c.draggedPieceID == "" {
		return fmt.Errorf("%w: no drag active", ErrInvalidOperation)
	}
	p, err := c.reg.Piece(c.draggedPieceID)
	if err != nil {
		return err
	}
	p.Position.X = x
	p.Position.Z = z
	c.hoveredSlotID, _ = NearestSlot(x, z, c.reg.Slots(), c.hoverRadius)
	return nil
}

// EndDrag resolves the active drag. The drop commits iff a slot is hovered
// and still free at release time: the piece snaps to the slot position and
// both sides of the piece/slot reference are set together. Otherwise the
// piece rolls back to its origin. Both branches clear the interaction state
// and start the suppression window, so no intermediate state is observable.
// Returns ErrInvalidOperation when no drag is active.
func (c *Controller) EndDrag() (DropResult, error) {
	if c.draggedPieceID == "" {
		return DropResult{}, fmt.Errorf("%w: no drag active", ErrInvalidOperation)
	}
	p, err := c.reg.Piece(c.draggedPieceID)
	if err != nil {
		return DropResult{}, err
	}
	res := DropResult{PieceID: p.ID}
	if c.hoveredSlotID != "" {
		s, err := c.reg.Slot(c.hoveredSlotID)
		if err != nil {
			return DropResult{}, err
		}
		// Occupancy is re-checked at release, not just at last hover update.
		if !s.Occupied {
			p.Position = s.Position
			p.SlotID = s.ID
			s.Occupied = true
			s.PieceID = p.ID
			res.SlotID = s.ID
			res.Placed = true
		} else {
			res.Conflict = true
		}
	}
	if !res.Placed {
		p.Position = p.Origin
		p.SlotID = ""
	}
	c.draggedPieceID = ""
	c.hoveredSlotID = ""
	c.suppressUntil = c.now().Add(c.suppressWindow)
	c.log.Debug().
		Str("piece", res.PieceID).
		Str("slot", res.SlotID).
		Bool("placed", res.Placed).
		Bool("conflict", res.Conflict).
		Msg("drag ended")
	return res, nil
}

// Reset returns every piece to its staging origin, frees every slot, and
// clears the interaction state including the suppression window. Idempotent.
func (c *Controller) Reset() {
	for _, p := range c.reg.Pieces() {
		p.SlotID = ""
		p.Position = p.Origin
	}
	for _, s := range c.reg.Slots() {
		s.Occupied = false
		s.PieceID = ""
	}
	c.draggedPieceID = ""
	c.hoveredSlotID = ""
	c.suppressUntil = time.Time{}
	c.log.Debug().Msg("board reset")
}
