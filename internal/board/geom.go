package board

import (
	"github.com/chewxy/math32"
)

// Vec3 is a float32 3D coordinate. Y is up; the board lies on the XZ plane at Y=0.
type Vec3 struct {
	X, Y, Z float32
}

// PlanarDistance returns the Euclidean distance between v and o projected onto
// the XZ plane. Y is ignored entirely: a lifted piece hovers above the board,
// and its elevation must not skew slot targeting.
func (v Vec3) PlanarDistance(o Vec3) float32 {
	dx := v.X - o.X
	dz := v.Z - o.Z
	return math32.Sqrt(dx*dx + dz*dz)
}
