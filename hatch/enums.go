package hatch

import (
	"strconv"
	"strings"

	dxf "github.com/synadia-labs/dxf.go/runtime"
)

// PathType is the boundary path type flag set (code 92).
type PathType int32

const (
	PathDefault   PathType = 0
	PathExternal  PathType = 1
	PathPolyline  PathType = 2
	PathDerived   PathType = 4
	PathTextbox   PathType = 8
	PathOutermost PathType = 16

	pathTypeMask = PathExternal | PathPolyline | PathDerived | PathTextbox | PathOutermost
)

// ParsePathType converts a code 92 value. Values with bits outside the
// published flags fall back to PathDefault, which selects edge encoding.
func ParsePathType(v int32) PathType {
	t := PathType(v)
	if t&^pathTypeMask != 0 {
		dxf.Logger().Debug("unknown boundary path type, using default", "value", v)
		return PathDefault
	}
	return t
}

// IsPolyline reports whether the path is encoded as a polyline.
func (t PathType) IsPolyline() bool { return t&PathPolyline != 0 }

// String implements fmt.Stringer
func (t PathType) String() string {
	if t == PathDefault {
		return "default"
	}
	var parts []string
	for _, f := range []struct {
		bit  PathType
		name string
	}{
		{PathExternal, "external"},
		{PathPolyline, "polyline"},
		{PathDerived, "derived"},
		{PathTextbox, "textbox"},
		{PathOutermost, "outermost"},
	} {
		if t&f.bit != 0 {
			parts = append(parts, f.name)
		}
	}
	if rest := t &^ pathTypeMask; rest != 0 {
		parts = append(parts, strconv.Itoa(int(rest)))
	}
	return strings.Join(parts, "|")
}

// EdgeType is the edge type of an edge boundary segment (code 72).
type EdgeType int16

const (
	EdgeLine        EdgeType = 1
	EdgeCircularArc EdgeType = 2
	EdgeEllipticArc EdgeType = 3
	EdgeSpline      EdgeType = 4
)

// ParseEdgeType converts a code 72 value inside an edge boundary. Unknown
// values fall back to EdgeLine.
func ParseEdgeType(v int16) EdgeType {
	switch t := EdgeType(v); t {
	case EdgeLine, EdgeCircularArc, EdgeEllipticArc, EdgeSpline:
		return t
	}
	dxf.Logger().Debug("unknown boundary edge type, using line", "value", v)
	return EdgeLine
}

// String implements fmt.Stringer
func (t EdgeType) String() string {
	switch t {
	case EdgeLine:
		return "line"
	case EdgeCircularArc:
		return "circular-arc"
	case EdgeEllipticArc:
		return "elliptic-arc"
	case EdgeSpline:
		return "spline"
	}
	return "EdgeType(" + strconv.Itoa(int(t)) + ")"
}
