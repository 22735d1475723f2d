package core

import (
	"seehuhn.de/go/geom/vec"

	"github.com/synadia-labs/dxf.go/hatch"
)

// The view types are the serialised shape of a hatch, shared by the json,
// yaml and cbor encoders (cbor falls back to the json tags).

type hatchView struct {
	Handle       string            `json:"handle,omitempty" yaml:"handle,omitempty"`
	Layer        string            `json:"layer,omitempty" yaml:"layer,omitempty"`
	Pattern      string            `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Solid        bool              `json:"solid" yaml:"solid"`
	Color        string            `json:"color,omitempty" yaml:"color,omitempty"`
	Boundaries   []boundaryView    `json:"boundaries" yaml:"boundaries"`
	PatternLines []patternLineView `json:"pattern_lines,omitempty" yaml:"pattern_lines,omitempty"`
}

type boundaryView struct {
	Type     string       `json:"type" yaml:"type"`
	Kind     string       `json:"kind" yaml:"kind"`
	Closed   bool         `json:"closed,omitempty" yaml:"closed,omitempty"`
	Vertices [][3]float64 `json:"vertices,omitempty" yaml:"vertices,omitempty"`
	Edges    []edgeView   `json:"edges,omitempty" yaml:"edges,omitempty"`
	Sources  []string     `json:"sources,omitempty" yaml:"sources,omitempty"`
}

type edgeView struct {
	Kind string `json:"kind" yaml:"kind"`

	Start []float64 `json:"start,omitempty" yaml:"start,omitempty"`
	End   []float64 `json:"end,omitempty" yaml:"end,omitempty"`

	Center     []float64 `json:"center,omitempty" yaml:"center,omitempty"`
	MajorAxis  []float64 `json:"major_axis,omitempty" yaml:"major_axis,omitempty"`
	Radius     float64   `json:"radius,omitempty" yaml:"radius,omitempty"`
	AxisRatio  float64   `json:"axis_ratio,omitempty" yaml:"axis_ratio,omitempty"`
	StartAngle float64   `json:"start_angle,omitempty" yaml:"start_angle,omitempty"`
	EndAngle   float64   `json:"end_angle,omitempty" yaml:"end_angle,omitempty"`
	CCW        bool      `json:"ccw,omitempty" yaml:"ccw,omitempty"`

	Degree       int16       `json:"degree,omitempty" yaml:"degree,omitempty"`
	Rational     bool        `json:"rational,omitempty" yaml:"rational,omitempty"`
	Periodic     bool        `json:"periodic,omitempty" yaml:"periodic,omitempty"`
	Knots        []float64   `json:"knots,omitempty" yaml:"knots,omitempty"`
	Control      [][]float64 `json:"control,omitempty" yaml:"control,omitempty"`
	Weights      []*float64  `json:"weights,omitempty" yaml:"weights,omitempty"`
	Fit          [][]float64 `json:"fit,omitempty" yaml:"fit,omitempty"`
	StartTangent []float64   `json:"start_tangent,omitempty" yaml:"start_tangent,omitempty"`
	EndTangent   []float64   `json:"end_tangent,omitempty" yaml:"end_tangent,omitempty"`
}

type patternLineView struct {
	Angle  float64   `json:"angle" yaml:"angle"`
	Base   []float64 `json:"base" yaml:"base"`
	Offset []float64 `json:"offset" yaml:"offset"`
	Dashes []float64 `json:"dashes" yaml:"dashes"`
}

func pt(v vec.Vec2) []float64 { return []float64{v.X, v.Y} }

func pts(vs []vec.Vec2) [][]float64 {
	if len(vs) == 0 {
		return nil
	}
	out := make([][]float64, len(vs))
	for i, v := range vs {
		out[i] = pt(v)
	}
	return out
}

func viewOf(h *hatch.Hatch) hatchView {
	v := hatchView{
		Handle:     h.Handle,
		Layer:      h.Layer,
		Pattern:    h.PatternName,
		Solid:      h.SolidFill,
		Boundaries: make([]boundaryView, 0, len(h.BoundaryPaths)),
	}
	if c, ok := h.RGBA(); ok {
		v.Color = c.Hex()
	}
	for _, b := range h.BoundaryPaths {
		v.Boundaries = append(v.Boundaries, boundaryViewOf(b))
	}
	for _, l := range h.PatternLines {
		v.PatternLines = append(v.PatternLines, patternLineView{
			Angle:  l.Angle,
			Base:   pt(l.BasePoint),
			Offset: pt(l.Offset),
			Dashes: append([]float64{}, l.DashLengths...),
		})
	}
	return v
}

func boundaryViewOf(b hatch.BoundaryData) boundaryView {
	v := boundaryView{Type: b.PathType.String(), Sources: b.SourceObjects}
	switch path := b.Path.(type) {
	case *hatch.PolylineBoundary:
		v.Kind = "polyline"
		v.Closed = path.IsClosed
		for _, vx := range path.Vertices {
			v.Vertices = append(v.Vertices, [3]float64{vx.X, vx.Y, vx.Bulge})
		}
	case *hatch.EdgeBoundary:
		v.Kind = "edges"
		for _, e := range path.Edges {
			v.Edges = append(v.Edges, edgeViewOf(e))
		}
	}
	return v
}

func edgeViewOf(e hatch.Edge) edgeView {
	v := edgeView{Kind: e.EdgeType().String()}
	switch e := e.(type) {
	case *hatch.LineEdge:
		v.Start, v.End = pt(e.P1), pt(e.P2)
	case *hatch.CircularArcEdge:
		v.Center = pt(e.Center)
		v.Radius = e.Radius
		v.StartAngle, v.EndAngle = e.StartAngle, e.EndAngle
		v.CCW = e.CounterClockwise
	case *hatch.EllipticArcEdge:
		v.Center, v.MajorAxis = pt(e.Center), pt(e.MajorAxis)
		v.AxisRatio = e.MinorAxisRatio
		v.StartAngle, v.EndAngle = e.StartAngle, e.EndAngle
		v.CCW = e.CounterClockwise
	case *hatch.SplineEdge:
		v.Degree = e.Degree
		v.Rational, v.Periodic = e.Rational, e.Periodic
		v.Knots = e.Knots
		v.Control = pts(e.ControlPoints)
		v.Weights = e.Weights
		v.Fit = pts(e.FitPoints)
		v.StartTangent, v.EndTangent = pt(e.StartTangent), pt(e.EndTangent)
	}
	return v
}
