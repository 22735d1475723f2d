package hatch

import (
	"seehuhn.de/go/geom/vec"

	dxf "github.com/synadia-labs/dxf.go/runtime"
)

// zipPoints pairs parallel coordinate buffers into points. Both buffers
// must have the same length. Empty input yields an empty, non-nil slice.
func zipPoints(xs, ys []float64) ([]vec.Vec2, error) {
	if len(xs) != len(ys) {
		return nil, dxf.CountError{Wanted: len(xs), Got: len(ys)}
	}
	pts := make([]vec.Vec2, len(xs))
	for i := range xs {
		pts[i] = vec.Vec2{X: xs[i], Y: ys[i]}
	}
	return pts, nil
}
