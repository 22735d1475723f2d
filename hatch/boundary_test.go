package hatch

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	dxf "github.com/synadia-labs/dxf.go/runtime"
)

func TestPolylineBoundary(t *testing.T) {
	got, _ := readBoundaries(t, text(
		"92", "2",
		"72", "0",
		"73", "1",
		"93", "4",
		"10", "0.0", "20", "0.0",
		"10", "1.0", "20", "0.0",
		"10", "1.0", "20", "1.0",
		"10", "0.0", "20", "1.0",
		"97", "0",
	), 1)

	want := []BoundaryData{{
		PathType: PathPolyline,
		Path: &PolylineBoundary{
			IsClosed: true,
			Vertices: []Vertex{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		},
	}}
	if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
		t.Errorf("boundary mismatch (-want +got):\n%s", diff)
	}
}

func TestPolylineBulgePerVertex(t *testing.T) {
	// The has-bulge flag says no, yet the second vertex carries one: the
	// 42 pair decides.
	got, _ := readBoundaries(t, text(
		"92", "3",
		"72", "0",
		"73", "0",
		"93", "3",
		"10", "0.0", "20", "0.0",
		"10", "2.0", "20", "0.0", "42", "1.0",
		"10", "2.0", "20", "2.0",
	), 1)

	if len(got) != 1 {
		t.Fatalf("got %d boundaries", len(got))
	}
	if got[0].PathType != PathExternal|PathPolyline {
		t.Fatalf("path type: got %v", got[0].PathType)
	}
	poly := got[0].Path.(*PolylineBoundary)
	want := []Vertex{{X: 0, Y: 0}, {X: 2, Y: 0, Bulge: 1}, {X: 2, Y: 2}}
	if diff := cmp.Diff(want, poly.Vertices); diff != "" {
		t.Errorf("vertices mismatch (-want +got):\n%s", diff)
	}
	if poly.IsClosed {
		t.Errorf("polyline must not be closed")
	}
}

func TestPolylineFlagsInAnyOrder(t *testing.T) {
	got, _ := readBoundaries(t, text(
		"92", "2",
		"73", "1",
		"72", "1",
		"93", "1",
		"10", "5.0", "20", "6.0", "42", "0.5",
	), 1)
	poly := got[0].Path.(*PolylineBoundary)
	if !poly.IsClosed || len(poly.Vertices) != 1 || poly.Vertices[0].Bulge != 0.5 {
		t.Fatalf("unexpected polyline: %+v", poly)
	}
}

func TestEmptyPolylineIsSkipped(t *testing.T) {
	got, d := readBoundaries(t, text(
		"92", "2",
		"72", "0",
		"73", "0",
		"93", "0",
		"92", "2",
		"72", "0",
		"73", "1",
		"93", "1",
		"10", "7.0", "20", "8.0",
		"75", "1",
	), 2)

	if len(got) != 1 {
		t.Fatalf("the empty polyline must not produce an entry, got %d", len(got))
	}
	if v := got[0].Path.(*PolylineBoundary).Vertices; len(v) != 1 || v[0].X != 7 {
		t.Fatalf("unexpected vertices: %+v", v)
	}
	p, err := d.Source().Next()
	if err != nil || p.Code != 75 {
		t.Fatalf("the pair after the boundaries must stay available, got %v err=%v", p, err)
	}
}

func TestPolylineTruncated(t *testing.T) {
	d := NewDecoder(text(
		"92", "2",
		"72", "0",
		"73", "1",
		"93", "3",
		"10", "0.0", "20", "0.0",
		"10", "1.0", "20", "0.0",
	), Options{})
	err := d.ReadBoundaryPaths(NewHatch(), 1)
	if !errors.Is(err, dxf.ErrUnexpectedEndOfInput) {
		t.Fatalf("expected ErrUnexpectedEndOfInput, got %v", err)
	}
	if !strings.HasSuffix(err.Error(), "at boundary[0]/polyline/vertex[2]") {
		t.Errorf("error does not locate the vertex: %v", err)
	}
}

func TestPolylineClosedByNextEntity(t *testing.T) {
	d := NewDecoder(text(
		"92", "2",
		"72", "0",
		"73", "1",
		"93", "2",
		"10", "0.0", "20", "0.0",
		"0", "LINE",
	), Options{})
	err := d.ReadBoundaryPaths(NewHatch(), 1)
	if !errors.Is(err, dxf.ErrEntityClosed) {
		t.Fatalf("expected ErrEntityClosed, got %v", err)
	}
	if !dxf.Resumable(err) {
		t.Fatalf("entity closed must be resumable")
	}
	if p, _ := d.Source().Next(); p.Code != 0 {
		t.Fatalf("the code 0 pair must stay in the source, got %v", p)
	}
}

func TestPolylineExhausted(t *testing.T) {
	d := NewDecoder(text(
		"92", "2",
		"72", "0",
		"73", "1",
		"93", "2",
		"10", "0.0", "20", "0.0",
	), Options{})
	err := d.ReadBoundaryPaths(NewHatch(), 1)
	if !errors.Is(err, dxf.ErrUnexpectedEndOfInput) {
		t.Fatalf("expected ErrUnexpectedEndOfInput, got %v", err)
	}
	if errors.Is(err, dxf.ErrEntityClosed) {
		t.Fatalf("exhausted input reported as a closed entity: %v", err)
	}
	if dxf.Resumable(err) {
		t.Fatalf("exhausted input is not resumable")
	}
}

func TestPolylineUnexpectedCode(t *testing.T) {
	d := NewDecoder(text("92", "2", "10", "0.0"), Options{})
	err := d.ReadBoundaryPaths(NewHatch(), 1)
	var uc dxf.UnexpectedCodeError
	if !errors.As(err, &uc) || uc.Code != 10 {
		t.Fatalf("expected UnexpectedCodeError for code 10, got %v", err)
	}
}

func TestNegativeCount(t *testing.T) {
	d := NewDecoder(text("92", "2", "72", "0", "73", "0", "93", "-1"), Options{})
	err := d.ReadBoundaryPaths(NewHatch(), 1)
	var mv dxf.MalformedValueError
	if !errors.As(err, &mv) || mv.Code != 93 {
		t.Fatalf("expected MalformedValueError for code 93, got %v", err)
	}
}

func TestSourceObjects(t *testing.T) {
	got, _ := readBoundaries(t, text(
		"92", "1",
		"93", "0",
		"97", "2",
		"330", "2A",
		"330", "2B",
	), 1)
	if diff := cmp.Diff([]string{"2A", "2B"}, got[0].SourceObjects); diff != "" {
		t.Errorf("source objects mismatch (-want +got):\n%s", diff)
	}
	if b, ok := got[0].Path.(*EdgeBoundary); !ok || len(b.Edges) != 0 {
		t.Errorf("expected an empty edge boundary, got %#v", got[0].Path)
	}
}

func TestSourceObjectsTruncated(t *testing.T) {
	d := NewDecoder(text("92", "1", "93", "0", "97", "2", "330", "2A"), Options{})
	err := d.ReadBoundaryPaths(NewHatch(), 1)
	if !errors.Is(err, dxf.ErrUnexpectedEndOfInput) {
		t.Fatalf("expected ErrUnexpectedEndOfInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "sources/handle[1]") {
		t.Errorf("error does not locate the handle: %v", err)
	}
}

func TestUnknownPathTypeUsesEdges(t *testing.T) {
	got, _ := readBoundaries(t, text(
		"92", "64",
		"93", "1",
		"72", "1",
		"10", "0.0", "20", "0.0", "11", "1.0", "21", "1.0",
	), 1)
	if got[0].PathType != PathDefault {
		t.Fatalf("path type: got %v", got[0].PathType)
	}
	if _, ok := got[0].Path.(*EdgeBoundary); !ok {
		t.Fatalf("expected edge boundary, got %T", got[0].Path)
	}
}

func TestPathTypeString(t *testing.T) {
	cases := map[PathType]string{
		PathDefault:                 "default",
		PathExternal | PathPolyline: "external|polyline",
		PathDerived | PathOutermost: "derived|outermost",
		PathTextbox:                 "textbox",
		PathType(32) | PathPolyline: "polyline|32",
	}
	for in, want := range cases {
		if got := in.String(); got != want {
			t.Errorf("%d: got %q want %q", int32(in), got, want)
		}
	}
}
