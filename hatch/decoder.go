// Package hatch decodes HATCH entities: boundary paths (polylines and
// line, arc, ellipse and spline edges) and user-defined pattern lines.
//
// A Decoder reads from a dxf.Source positioned just after the "0/HATCH"
// pair. The boundary and pattern decoders can also be driven directly by
// an entity reader that has already consumed the count pair:
//
//	dec := hatch.NewDecoder(src, hatch.Options{})
//	h := hatch.NewHatch()
//	err := dec.ReadBoundaryPaths(h, n)
package hatch

import (
	"strconv"

	dxf "github.com/synadia-labs/dxf.go/runtime"
)

// Group codes of the hatch grammar.
const (
	codeX            = 10
	codeY            = 20
	codeX2           = 11
	codeY2           = 21
	codeStartTanX    = 12
	codeStartTanY    = 22
	codeEndTanX      = 13
	codeEndTanY      = 23
	codeRadius       = 40 // also minor axis ratio and knot value
	codeBulge        = 42 // also spline weight
	codeStartAngle   = 50
	codeEndAngle     = 51
	codeHasBulge     = 72 // polyline boundary
	codeEdgeType     = 72 // edge boundary
	codeIsClosed     = 73 // polyline boundary
	codeCCW          = 73 // arcs
	codeRational     = 73 // spline
	codePeriodic     = 74
	codePathCount    = 91
	codePathType     = 92
	codeEdgeCount    = 93 // also vertex count
	codeDegree       = 94
	codeKnotCount    = 95
	codeControlCount = 96
	codeFitCount     = 97
	codeSourceCount  = 97
	codeSourceHandle = 330

	codePatternLineCount = 78
	codeLineAngle        = 53
	codeLineBaseX        = 43
	codeLineBaseY        = 44
	codeLineOffsetX      = 45
	codeLineOffsetY      = 46
	codeDashCount        = 79
	codeDashLength       = 49
)

// Options configures decoding.
type Options struct {
	// StrictPatternLines requires every pattern line record in the fixed
	// order angle, base x, base y, offset x, offset y, dash count, dashes.
	// The default accepts the mandatory fields in any order.
	StrictPatternLines bool

	// SkipMalformed makes ReadAll record a HATCH that fails to decode and
	// continue with the next entity instead of stopping.
	SkipMalformed bool
}

// Decoder decodes hatch data from a code pair stream.
//
// A Decoder holds no state between entities beyond its source; it is not
// safe for concurrent use.
type Decoder struct {
	src  *dxf.PutBack
	opts Options
}

// NewDecoder returns a decoder reading from src.
func NewDecoder(src dxf.Source, opts Options) *Decoder {
	return &Decoder{src: dxf.NewPutBack(src), opts: opts}
}

// Source returns the lookahead source the decoder reads from.
func (d *Decoder) Source() *dxf.PutBack { return d.src }

func (d *Decoder) unread(p dxf.CodePair) error { return d.src.PutBack(p) }

// count reads a mandatory count field.
func (d *Decoder) count(code int) (int, error) {
	p, err := d.src.Expect(code)
	if err != nil {
		return 0, err
	}
	return countOf(p)
}

func countOf(p dxf.CodePair) (int, error) {
	n, err := p.Int32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, dxf.MalformedValueError{Code: p.Code, Want: dxf.Int32Kind, Got: p.Value.Kind,
			Reason: "negative count " + strconv.Itoa(int(n))}
	}
	return int(n), nil
}

// capHint bounds preallocation by declared counts, which come from the
// file and are not trusted.
func capHint(n int) int {
	const max = 1024
	if n > max {
		return max
	}
	return n
}

func (d *Decoder) point(xCode, yCode int) (x, y float64, err error) {
	if x, err = d.src.ExpectFloat64(xCode); err != nil {
		return 0, 0, err
	}
	if y, err = d.src.ExpectFloat64(yCode); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func idx(name string, i int) string { return name + "[" + strconv.Itoa(i) + "]" }
