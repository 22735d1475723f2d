package hatch

import (
	"seehuhn.de/go/geom/vec"

	"github.com/synadia-labs/dxf.go/color"
)

// BoundaryPath is one closed outline of a hatch: a *PolylineBoundary or
// an *EdgeBoundary.
type BoundaryPath interface {
	isBoundaryPath()
}

// PolylineBoundary is a boundary given as a polygon with optional bulges.
type PolylineBoundary struct {
	IsClosed bool
	Vertices []Vertex
}

// EdgeBoundary is a boundary given as a chain of curve edges.
type EdgeBoundary struct {
	Edges []Edge
}

func (*PolylineBoundary) isBoundaryPath() {}
func (*EdgeBoundary) isBoundaryPath()     {}

// Vertex is a polyline boundary vertex. Bulge is the tangent of a quarter
// of the included angle of the segment starting here; 0 is straight.
type Vertex struct {
	X, Y  float64
	Bulge float64
}

// Edge is one segment of an edge boundary: *LineEdge, *CircularArcEdge,
// *EllipticArcEdge or *SplineEdge.
type Edge interface {
	EdgeType() EdgeType
	isEdge()
}

// LineEdge is a straight edge.
type LineEdge struct {
	P1, P2 vec.Vec2
}

// CircularArcEdge is an arc of a circle. Angles are stored as read.
type CircularArcEdge struct {
	Center           vec.Vec2
	Radius           float64
	StartAngle       float64
	EndAngle         float64
	CounterClockwise bool
}

// EllipticArcEdge is an arc of an ellipse. MajorAxis is the endpoint of
// the major axis relative to Center.
type EllipticArcEdge struct {
	Center           vec.Vec2
	MajorAxis        vec.Vec2
	MinorAxisRatio   float64
	StartAngle       float64
	EndAngle         float64
	CounterClockwise bool
}

// SplineEdge is a B-spline edge.
//
// Weights has one slot per control point; a nil slot means the file
// omitted the weight.
type SplineEdge struct {
	Degree        int16
	Rational      bool
	Periodic      bool
	Knots         []float64
	ControlPoints []vec.Vec2
	Weights       []*float64
	FitPoints     []vec.Vec2
	StartTangent  vec.Vec2
	EndTangent    vec.Vec2
}

func (*LineEdge) EdgeType() EdgeType        { return EdgeLine }
func (*CircularArcEdge) EdgeType() EdgeType { return EdgeCircularArc }
func (*EllipticArcEdge) EdgeType() EdgeType { return EdgeEllipticArc }
func (*SplineEdge) EdgeType() EdgeType      { return EdgeSpline }

func (*LineEdge) isEdge()        {}
func (*CircularArcEdge) isEdge() {}
func (*EllipticArcEdge) isEdge() {}
func (*SplineEdge) isEdge()      {}

// BoundaryData is one entry of a hatch's boundary path list.
type BoundaryData struct {
	PathType PathType
	Path     BoundaryPath
	// SourceObjects are the handles of the entities the boundary was
	// derived from, when the file lists them.
	SourceObjects []string
}

// PatternLine is one family of parallel dashed lines of a user-defined
// fill pattern. A negative dash length is a gap.
type PatternLine struct {
	Angle       float64 // degrees
	BasePoint   vec.Vec2
	Offset      vec.Vec2
	DashLengths []float64
}

// Hatch is a HATCH entity.
type Hatch struct {
	Handle       string
	Owner        string
	Layer        string
	Color        color.Color
	TrueColor    *color.RGB
	Transparency *int32

	Elevation   float64
	Extrusion   [3]float64
	PatternName string
	SolidFill   bool
	Associative bool
	Style       int16 // 0 odd parity, 1 outermost, 2 entire area
	PatternType int16 // 0 user-defined, 1 predefined, 2 custom

	PatternAngle  float64
	PatternScale  float64
	PatternDouble bool
	PixelSize     float64
	SeedPoints    []vec.Vec2

	Gradient     bool
	GradientName string

	BoundaryPaths []BoundaryData
	PatternLines  []PatternLine
}

// NewHatch returns a hatch with the format's defaults: by-layer colour,
// +Z extrusion and unit pattern scale.
func NewHatch() *Hatch {
	return &Hatch{
		Color:        color.ByLayer(),
		Extrusion:    [3]float64{0, 0, 1},
		PatternScale: 1,
	}
}

// RGBA resolves the hatch's display colour. Colours that defer to the
// layer or block resolve to ok == false.
func (h *Hatch) RGBA() (c color.RGBA, ok bool) {
	switch {
	case h.TrueColor != nil:
		c = h.TrueColor.RGBA()
	case h.Color.IsIndex():
		idx, _ := h.Color.Index()
		rgb, found := color.RGBFromIndex(int16(idx))
		if !found {
			return color.RGBA{}, false
		}
		c = rgb.RGBA()
	default:
		return color.RGBA{}, false
	}
	if h.Transparency != nil {
		c.SetOpacity32(*h.Transparency)
	}
	return c, true
}
