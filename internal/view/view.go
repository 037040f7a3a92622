// Package view glues input to the placement controller and draws the board
// state each frame. It only reads controller snapshots; every mutation goes
// through the controller's operations, and rejected operations are logged
// and otherwise ignored.
package view

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"gem-puzzle/internal/board"
	"gem-puzzle/internal/gems"
	"gem-puzzle/internal/picking"
	"gem-puzzle/internal/placement"
	"gem-puzzle/internal/scene"
)

const (
	hudFontSize = 20
	hudPadding  = 12
)

// View ties scene, gem renderer and controller together.
type View struct {
	ctrl *placement.Controller
	scn  *scene.Scene
	gems *gems.Registry
	log  zerolog.Logger
}

// New returns a view over the given collaborators.
func New(ctrl *placement.Controller, scn *scene.Scene, g *gems.Registry, log zerolog.Logger) *View {
	return &View{
		ctrl: ctrl,
		scn:  scn,
		gems: g,
		log:  log.With().Str("component", "view").Logger(),
	}
}

// Update translates this frame's mouse input into controller operations:
// left press over a piece starts a drag, motion while held updates the drag
// position from the ground-plane hit, release ends the drag.
func (v *View) Update() {
	mouse := rl.GetMousePosition()

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !v.ctrl.Dragging() {
		snap := v.ctrl.Snapshot()
		if id, ok := picking.PieceAt(v.scn.Camera, mouse, snap.Pieces); ok {
			if err := v.ctrl.StartDrag(id); err != nil {
				// Includes presses inside the post-drop suppression window.
				v.log.Debug().Err(err).Str("piece", id).Msg("drag not started")
			}
		}
	}
	if v.ctrl.Dragging() && rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		if x, z, ok := picking.GroundPoint(v.scn.Camera, mouse); ok {
			if err := v.ctrl.UpdateDragPosition(x, z); err != nil {
				v.log.Debug().Err(err).Msg("drag update rejected")
			}
		}
	}
	if v.ctrl.Dragging() && rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		if _, err := v.ctrl.EndDrag(); err != nil {
			v.log.Debug().Err(err).Msg("drag end rejected")
		}
	}
}

// Draw renders the scene, slots with hover highlight, pieces, and the HUD.
func (v *View) Draw() {
	snap := v.ctrl.Snapshot()

	cam := v.scn.Camera
	v.gems.SetView(
		[3]float32{cam.Position.X, cam.Position.Y, cam.Position.Z},
		[3]float32{0.5, 1, 0.5},
	)

	v.scn.Draw(func() {
		for _, s := range snap.Slots {
			v.gems.DrawMarker(s, markerTint(s, snap.HoveredSlotID))
		}
		for _, p := range snap.Pieces {
			v.gems.DrawPiece(p)
		}
	})

	v.drawHUD(snap)
}

// markerTint picks the slot marker color: green for a free hovered slot, red
// for an occupied hovered slot, neutral otherwise.
func markerTint(s board.Slot, hoveredID string) rl.Color {
	if s.ID != hoveredID {
		return gems.MarkerNeutral
	}
	if s.Occupied {
		return gems.MarkerOccupied
	}
	return gems.MarkerFree
}

func (v *View) drawHUD(snap placement.Snapshot) {
	placed := 0
	for _, p := range snap.Pieces {
		if p.SlotID != "" {
			placed++
		}
	}
	rl.DrawText(fmt.Sprintf("Placed: %d/%d", placed, len(snap.Pieces)), hudPadding, hudPadding, hudFontSize, rl.RayWhite)
	hint := "Drag gems onto the board. Right mouse orbits, wheel zooms, ESC opens the command bar."
	if snap.DraggedPieceID != "" {
		hint = "Release over a green slot to place; anywhere else returns the gem."
	}
	rl.DrawText(hint, hudPadding, hudPadding+hudFontSize+4, 16, rl.Gray)
}
