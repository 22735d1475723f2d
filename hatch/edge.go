package hatch

import (
	"seehuhn.de/go/geom/vec"

	dxf "github.com/synadia-labs/dxf.go/runtime"
)

// readEdgeBoundary decodes the edge count (93) and that many edges. The
// boundary is returned even when it has no edges.
func (d *Decoder) readEdgeBoundary() (*EdgeBoundary, error) {
	n, err := d.count(codeEdgeCount)
	if err != nil {
		return nil, err
	}
	b := &EdgeBoundary{Edges: make([]Edge, 0, capHint(n))}
	for i := 0; i < n; i++ {
		e, err := d.readEdge()
		if err != nil {
			return nil, dxf.WrapError(err, idx("edge", i))
		}
		b.Edges = append(b.Edges, e)
	}
	return b, nil
}

func (d *Decoder) readEdge() (Edge, error) {
	raw, err := d.src.ExpectInt16(codeEdgeType)
	if err != nil {
		return nil, err
	}
	switch t := ParseEdgeType(raw); t {
	case EdgeLine:
		return d.readLineEdge()
	case EdgeCircularArc:
		return d.readCircularArcEdge()
	case EdgeEllipticArc:
		return d.readEllipticArcEdge()
	case EdgeSpline:
		e, err := d.readSplineEdge()
		if err != nil {
			return nil, dxf.WrapError(err, "spline")
		}
		return e, nil
	default:
		return nil, dxf.MalformedValueError{Code: codeEdgeType, Want: dxf.Int16Kind, Got: dxf.Int16Kind, Reason: "unknown edge type " + t.String()}
	}
}

func (d *Decoder) readLineEdge() (*LineEdge, error) {
	x1, y1, err := d.point(codeX, codeY)
	if err != nil {
		return nil, err
	}
	x2, y2, err := d.point(codeX2, codeY2)
	if err != nil {
		return nil, err
	}
	return &LineEdge{P1: vec.Vec2{X: x1, Y: y1}, P2: vec.Vec2{X: x2, Y: y2}}, nil
}

func (d *Decoder) readCircularArcEdge() (*CircularArcEdge, error) {
	cx, cy, err := d.point(codeX, codeY)
	if err != nil {
		return nil, err
	}
	e := &CircularArcEdge{Center: vec.Vec2{X: cx, Y: cy}}
	if e.Radius, err = d.src.ExpectFloat64(codeRadius); err != nil {
		return nil, err
	}
	if e.StartAngle, e.EndAngle, err = d.angles(); err != nil {
		return nil, err
	}
	if e.CounterClockwise, err = d.optionalFlag(codeCCW); err != nil {
		return nil, err
	}
	return e, nil
}

func (d *Decoder) readEllipticArcEdge() (*EllipticArcEdge, error) {
	cx, cy, err := d.point(codeX, codeY)
	if err != nil {
		return nil, err
	}
	ax, ay, err := d.point(codeX2, codeY2)
	if err != nil {
		return nil, err
	}
	e := &EllipticArcEdge{
		Center:    vec.Vec2{X: cx, Y: cy},
		MajorAxis: vec.Vec2{X: ax, Y: ay},
	}
	if e.MinorAxisRatio, err = d.src.ExpectFloat64(codeRadius); err != nil {
		return nil, err
	}
	if e.StartAngle, e.EndAngle, err = d.angles(); err != nil {
		return nil, err
	}
	if e.CounterClockwise, err = d.optionalFlag(codeCCW); err != nil {
		return nil, err
	}
	return e, nil
}

func (d *Decoder) angles() (start, end float64, err error) {
	if start, err = d.src.ExpectFloat64(codeStartAngle); err != nil {
		return 0, 0, err
	}
	if end, err = d.src.ExpectFloat64(codeEndAngle); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// optionalFlag reads a flag that defaults to false when its pair is absent.
func (d *Decoder) optionalFlag(code int) (bool, error) {
	p, ok, err := d.src.Optional(code)
	if err != nil || !ok {
		return false, err
	}
	return p.Bool()
}
