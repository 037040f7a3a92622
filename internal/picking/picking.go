// Package picking resolves mouse input into world terms: the ground-plane
// coordinate under the cursor, and which piece (if any) a click lands on.
// The placement controller only ever sees the results, never rays.
package picking

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gem-puzzle/internal/board"
)

// PickRadius is the hit-test sphere radius around a piece center, slightly
// larger than the rendered gem so pieces are easy to grab.
const PickRadius = 0.55

// GroundPoint intersects the mouse ray with the board plane (Y=0) and
// returns the (x, z) under the cursor. ok is false when the ray runs
// parallel to the plane or the hit is behind the camera (camera below the
// board looking up).
func GroundPoint(cam rl.Camera3D, mouse rl.Vector2) (x, z float32, ok bool) {
	ray := rl.GetScreenToWorldRay(mouse, cam)
	return groundHit(ray.Position, ray.Direction)
}

// groundHit is the parametric ray/plane step, split out so it is testable
// without a window.
func groundHit(origin, dir rl.Vector3) (x, z float32, ok bool) {
	const parallelEps = 1e-6
	if dir.Y > -parallelEps && dir.Y < parallelEps {
		return 0, 0, false
	}
	t := -origin.Y / dir.Y
	if t <= 0 {
		return 0, 0, false
	}
	return origin.X + t*dir.X, origin.Z + t*dir.Z, true
}

// PieceAt returns the id of the piece whose pick sphere the mouse ray hits,
// preferring the hit nearest the camera. ok is false when no piece is hit.
// Pieces come from a snapshot, so hit-testing cannot race a mutation.
func PieceAt(cam rl.Camera3D, mouse rl.Vector2, pieces []board.Piece) (string, bool) {
	ray := rl.GetScreenToWorldRay(mouse, cam)
	bestID := ""
	var bestDist float32
	for i := range pieces {
		p := &pieces[i]
		center := rl.NewVector3(p.Position.X, p.Position.Y+PickRadius, p.Position.Z)
		hit := rl.GetRayCollisionSphere(ray, center, PickRadius)
		if !hit.Hit {
			continue
		}
		if bestID == "" || hit.Distance < bestDist {
			bestID = p.ID
			bestDist = hit.Distance
		}
	}
	return bestID, bestID != ""
}
