// Package scene owns the 3D camera and the static board backdrop (base slab
// and reference grid). The camera orbits the board center: right mouse drag
// to orbit, wheel to zoom. Piece/slot rendering lives in the view layer.
package scene

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridExtent     = float32(8)
	gridStep       = 1.2 // matches slot pitch so grid lines pass through slot centers
	gridLift       = 0.01 // draw the grid just above the slab top to avoid z-fighting
	gridAlpha      = 60
	axisAlpha      = 140
	orbitSpeed     = 0.005 // radians per pixel of mouse drag
	zoomSpeed      = 0.8   // distance units per wheel notch
	minDistance    = 4.0
	maxDistance    = 30.0
	minPitch       = 0.15 // keep the camera above the board plane
	maxPitch       = 1.5
	baseSlabSize   = 7.0
	baseSlabHeight = 0.2
)

// baseSlabColor is reused every frame to avoid per-frame color allocations.
var baseSlabColor = rl.NewColor(52, 48, 62, 255)

// Scene holds an orbit camera around the board center. Update reads mouse
// input and recomputes the camera; Draw renders the backdrop and hands the
// 3D pass to the caller for world objects.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool

	yaw      float32 // radians around Y, 0 = looking from +Z
	pitch    float32 // radians above the board plane
	distance float32
}

// New returns a scene with the camera orbiting the origin at the given
// starting angles and distance. Grid is visible by default.
func New(yaw, pitch, distance float32) *Scene {
	s := &Scene{
		GridVisible: true,
		yaw:         yaw,
		pitch:       clamp(pitch, minPitch, maxPitch),
		distance:    clamp(distance, minDistance, maxDistance),
	}
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	s.apply()
	return s
}

// SetGridVisible sets whether the reference grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// apply recomputes Camera.Position from yaw/pitch/distance (spherical around
// the board center).
func (s *Scene) apply() {
	cp := math32.Cos(s.pitch)
	s.Camera.Position = rl.NewVector3(
		s.distance*cp*math32.Sin(s.yaw),
		s.distance*math32.Sin(s.pitch),
		s.distance*cp*math32.Cos(s.yaw),
	)
}

// Update reads orbit/zoom input for this frame. The left button is reserved
// for dragging pieces, so orbiting is on the right button only.
func (s *Scene) Update() {
	changed := false
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		delta := rl.GetMouseDelta()
		s.yaw -= delta.X * orbitSpeed
		s.pitch = clamp(s.pitch+delta.Y*orbitSpeed, minPitch, maxPitch)
		changed = true
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		s.distance = clamp(s.distance-wheel*zoomSpeed, minDistance, maxDistance)
		changed = true
	}
	if changed {
		s.apply()
	}
}

// Draw runs one 3D pass: backdrop (slab, grid) then inWorld for pieces and
// slots, all between BeginMode3D and EndMode3D.
func (s *Scene) Draw(inWorld func()) {
	rl.BeginMode3D(s.Camera)
	rl.DrawCube(rl.NewVector3(0, -baseSlabHeight/2, 0), baseSlabSize, baseSlabHeight, baseSlabSize, baseSlabColor)
	if s.GridVisible {
		drawGrid()
	}
	if inWorld != nil {
		inWorld()
	}
	rl.EndMode3D()
}

// drawGrid draws grid lines on the board plane at slot pitch, plus X/Z axis
// lines through the origin. Reuses start/end vectors to avoid per-frame
// allocations.
func drawGrid() {
	line := rl.NewColor(128, 128, 128, gridAlpha)
	axisX := rl.NewColor(220, 80, 80, axisAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisAlpha)
	const extent = gridExtent

	var start, end rl.Vector3
	for x := -extent; x <= extent; x += gridStep {
		start.X, start.Y, start.Z = x, gridLift, -extent
		end.X, end.Y, end.Z = x, gridLift, extent
		rl.DrawLine3D(start, end, line)
	}
	for z := -extent; z <= extent; z += gridStep {
		start.X, start.Y, start.Z = -extent, gridLift, z
		end.X, end.Y, end.Z = extent, gridLift, z
		rl.DrawLine3D(start, end, line)
	}

	start.X, start.Y, start.Z = -extent, gridLift, 0
	end.X, end.Y, end.Z = extent, gridLift, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, gridLift, -extent
	end.X, end.Y, end.Z = 0, gridLift, extent
	rl.DrawLine3D(start, end, axisZ)
}
