package benchmarks

import (
	"fmt"
	"math"
	"strings"
)

// Fixture sizes. A drawing of this scale is typical of an architectural
// floor plan export: a few hundred hatches, most of them polyline fills,
// the rest pattern fills bounded by lines and arcs.
const (
	defaultNumHatches = 400
	defaultVertices   = 24
)

type fixtureWriter struct {
	sb strings.Builder
}

func (w *fixtureWriter) pair(code int, v any) {
	fmt.Fprintf(&w.sb, "%3d\r\n%v\r\n", code, v)
}

// buildDrawing returns an ASCII DXF document with n hatches in its
// ENTITIES section. Every third hatch is a user-defined pattern fill with
// an edge boundary; the others are solid polyline fills of verts vertices.
func buildDrawing(n, verts int) []byte {
	var w fixtureWriter
	w.pair(0, "SECTION")
	w.pair(2, "HEADER")
	w.pair(9, "$ACADVER")
	w.pair(1, "AC1015")
	w.pair(9, "$DWGCODEPAGE")
	w.pair(3, "ANSI_1252")
	w.pair(0, "ENDSEC")
	w.pair(0, "SECTION")
	w.pair(2, "ENTITIES")
	for i := 0; i < n; i++ {
		w.pair(0, "HATCH")
		w.pair(5, fmt.Sprintf("%X", 0x100+i))
		w.pair(8, "Fill")
		w.pair(62, 1+i%255)
		if i%3 == 2 {
			writePatternHatch(&w, i)
		} else {
			writeSolidHatch(&w, i, verts)
		}
	}
	w.pair(0, "ENDSEC")
	w.pair(0, "EOF")
	return []byte(w.sb.String())
}

func writeSolidHatch(w *fixtureWriter, i, verts int) {
	w.pair(2, "SOLID")
	w.pair(70, 1)
	w.pair(71, 0)
	w.pair(91, 1)
	w.pair(92, 3)
	w.pair(72, 1)
	w.pair(73, 1)
	w.pair(93, verts)
	cx, cy := float64(i%20)*10, float64(i/20)*10
	for v := 0; v < verts; v++ {
		a := 2 * math.Pi * float64(v) / float64(verts)
		w.pair(10, cx+4*math.Cos(a))
		w.pair(20, cy+4*math.Sin(a))
		w.pair(42, 0.0)
	}
	w.pair(97, 0)
	w.pair(75, 1)
	w.pair(76, 1)
	w.pair(98, 1)
	w.pair(10, cx)
	w.pair(20, cy)
}

func writePatternHatch(w *fixtureWriter, i int) {
	x := float64(i)
	w.pair(2, "_USER")
	w.pair(70, 0)
	w.pair(71, 1)
	w.pair(91, 1)
	w.pair(92, 1)
	w.pair(93, 4)
	w.pair(72, 1)
	w.pair(10, x)
	w.pair(20, 0.0)
	w.pair(11, x+8)
	w.pair(21, 0.0)
	w.pair(72, 2)
	w.pair(10, x+8)
	w.pair(20, 4.0)
	w.pair(40, 4.0)
	w.pair(50, 270.0)
	w.pair(51, 90.0)
	w.pair(73, 1)
	w.pair(72, 1)
	w.pair(10, x+8)
	w.pair(20, 8.0)
	w.pair(11, x)
	w.pair(21, 8.0)
	w.pair(72, 3)
	w.pair(10, x)
	w.pair(20, 4.0)
	w.pair(11, 0.0)
	w.pair(21, 4.0)
	w.pair(40, 0.5)
	w.pair(50, 0.0)
	w.pair(51, 180.0)
	w.pair(73, 1)
	w.pair(97, 1)
	w.pair(330, "1F")
	w.pair(75, 1)
	w.pair(76, 0)
	w.pair(52, 0.0)
	w.pair(41, 1.0)
	w.pair(77, 0)
	w.pair(78, 2)
	for _, angle := range []float64{45, 135} {
		w.pair(53, angle)
		w.pair(43, 0.0)
		w.pair(44, 0.0)
		w.pair(45, -0.0883883476483184)
		w.pair(46, 0.0883883476483184)
		w.pair(79, 2)
		w.pair(49, 0.5)
		w.pair(49, -0.25)
	}
	w.pair(98, 0)
}
