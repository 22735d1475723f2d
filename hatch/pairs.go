package hatch

import (
	"seehuhn.de/go/geom/vec"

	dxf "github.com/synadia-labs/dxf.go/runtime"
)

// BoundaryPairs returns the code pairs that encode b, starting with the
// path type (92). Decoding them with ReadBoundaryPaths yields b again.
func BoundaryPairs(b BoundaryData) []dxf.CodePair {
	var e pairEncoder
	e.long(codePathType, int32(b.PathType))
	switch path := b.Path.(type) {
	case *PolylineBoundary:
		e.polyline(path)
	case *EdgeBoundary:
		e.edges(path)
	case nil:
		// an empty polyline boundary
		e.flag(codeHasBulge, false)
		e.flag(codeIsClosed, false)
		e.long(codeEdgeCount, 0)
	default:
		panic("hatch: unhandled boundary path type")
	}
	if len(b.SourceObjects) > 0 {
		e.long(codeSourceCount, int32(len(b.SourceObjects)))
		for _, h := range b.SourceObjects {
			e.str(codeSourceHandle, h)
		}
	}
	return e.pairs
}

// PatternLinePairs returns the code pairs of one pattern line record in
// the documented order.
func PatternLinePairs(l PatternLine) []dxf.CodePair {
	var e pairEncoder
	e.float(codeLineAngle, l.Angle)
	e.float(codeLineBaseX, l.BasePoint.X)
	e.float(codeLineBaseY, l.BasePoint.Y)
	e.float(codeLineOffsetX, l.Offset.X)
	e.float(codeLineOffsetY, l.Offset.Y)
	e.short(codeDashCount, int16(len(l.DashLengths)))
	for _, v := range l.DashLengths {
		e.float(codeDashLength, v)
	}
	return e.pairs
}

// CodePairs returns the boundary and pattern sections of h, each preceded
// by its count pair (91 and 78).
func (h *Hatch) CodePairs() []dxf.CodePair {
	var e pairEncoder
	e.long(codePathCount, int32(len(h.BoundaryPaths)))
	for _, b := range h.BoundaryPaths {
		e.pairs = append(e.pairs, BoundaryPairs(b)...)
	}
	if len(h.PatternLines) > 0 {
		e.short(codePatternLineCount, int16(len(h.PatternLines)))
		for _, l := range h.PatternLines {
			e.pairs = append(e.pairs, PatternLinePairs(l)...)
		}
	}
	return e.pairs
}

type pairEncoder struct {
	pairs []dxf.CodePair
}

func (e *pairEncoder) add(code int, v dxf.Value) {
	e.pairs = append(e.pairs, dxf.NewPair(code, v))
}

func (e *pairEncoder) float(code int, v float64) { e.add(code, dxf.Float(v)) }
func (e *pairEncoder) short(code int, v int16)   { e.add(code, dxf.Short(v)) }
func (e *pairEncoder) long(code int, v int32)    { e.add(code, dxf.Long(v)) }
func (e *pairEncoder) str(code int, s string)    { e.add(code, dxf.Str(s)) }

func (e *pairEncoder) flag(code int, b bool) {
	var v int16
	if b {
		v = 1
	}
	e.short(code, v)
}

func (e *pairEncoder) point(xCode, yCode int, p vec.Vec2) {
	e.float(xCode, p.X)
	e.float(yCode, p.Y)
}

func (e *pairEncoder) polyline(p *PolylineBoundary) {
	hasBulge := false
	for _, v := range p.Vertices {
		if v.Bulge != 0 {
			hasBulge = true
		}
	}
	e.flag(codeHasBulge, hasBulge)
	e.flag(codeIsClosed, p.IsClosed)
	e.long(codeEdgeCount, int32(len(p.Vertices)))
	for _, v := range p.Vertices {
		e.float(codeX, v.X)
		e.float(codeY, v.Y)
		if hasBulge {
			e.float(codeBulge, v.Bulge)
		}
	}
}

func (e *pairEncoder) edges(b *EdgeBoundary) {
	e.long(codeEdgeCount, int32(len(b.Edges)))
	for _, edge := range b.Edges {
		e.short(codeEdgeType, int16(edge.EdgeType()))
		switch edge := edge.(type) {
		case *LineEdge:
			e.point(codeX, codeY, edge.P1)
			e.point(codeX2, codeY2, edge.P2)
		case *CircularArcEdge:
			e.point(codeX, codeY, edge.Center)
			e.float(codeRadius, edge.Radius)
			e.float(codeStartAngle, edge.StartAngle)
			e.float(codeEndAngle, edge.EndAngle)
			e.flag(codeCCW, edge.CounterClockwise)
		case *EllipticArcEdge:
			e.point(codeX, codeY, edge.Center)
			e.point(codeX2, codeY2, edge.MajorAxis)
			e.float(codeRadius, edge.MinorAxisRatio)
			e.float(codeStartAngle, edge.StartAngle)
			e.float(codeEndAngle, edge.EndAngle)
			e.flag(codeCCW, edge.CounterClockwise)
		case *SplineEdge:
			e.spline(edge)
		default:
			panic("hatch: unhandled edge type " + edge.EdgeType().String())
		}
	}
}

func (e *pairEncoder) spline(s *SplineEdge) {
	e.long(codeDegree, int32(s.Degree))
	e.flag(codeRational, s.Rational)
	e.flag(codePeriodic, s.Periodic)
	e.long(codeKnotCount, int32(len(s.Knots)))
	e.long(codeControlCount, int32(len(s.ControlPoints)))
	for _, k := range s.Knots {
		e.float(codeRadius, k)
	}
	for i, p := range s.ControlPoints {
		e.point(codeX, codeY, p)
		if i < len(s.Weights) && s.Weights[i] != nil {
			e.float(codeBulge, *s.Weights[i])
		}
	}
	e.long(codeFitCount, int32(len(s.FitPoints)))
	for _, p := range s.FitPoints {
		e.point(codeX2, codeY2, p)
	}
	e.point(codeStartTanX, codeStartTanY, s.StartTangent)
	e.point(codeEndTanX, codeEndTanY, s.EndTangent)
}
