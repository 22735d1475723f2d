package hatch

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	"github.com/synadia-labs/dxf.go/color"
)

func TestReadHatch(t *testing.T) {
	d := NewDecoder(text(
		"5", "3E",
		"330", "1F",
		"100", "AcDbEntity",
		"8", "Hatch",
		"62", "3",
		"100", "AcDbHatch",
		"10", "0.0", "20", "0.0", "30", "1.5",
		"210", "0.0", "220", "0.0", "230", "-1.0",
		"2", "ANSI31",
		"70", "0",
		"71", "1",
		"91", "1",
		"92", "7",
		"72", "0", "73", "1", "93", "2",
		"10", "0.0", "20", "0.0",
		"10", "4.0", "20", "0.0",
		"97", "1", "330", "41",
		"75", "1",
		"76", "1",
		"52", "0.0",
		"41", "2.0",
		"77", "1",
		"78", "1",
		"53", "45.0", "43", "0.0", "44", "0.0", "45", "-2.2", "46", "2.2", "79", "0",
		"47", "0.25",
		"98", "2",
		"10", "1.0", "20", "1.0",
		"10", "2.0", "20", "2.0",
		"450", "0",
		"0", "ENDSEC",
	), Options{})

	h, err := d.ReadHatch()
	if err != nil {
		t.Fatalf("ReadHatch: %v", err)
	}

	want := &Hatch{
		Handle:        "3E",
		Owner:         "1F",
		Layer:         "Hatch",
		Color:         color.FromIndex(3),
		Elevation:     1.5,
		Extrusion:     [3]float64{0, 0, -1},
		PatternName:   "ANSI31",
		Associative:   true,
		Style:         1,
		PatternType:   1,
		PatternScale:  2,
		PatternDouble: true,
		PixelSize:     0.25,
		SeedPoints:    []vec.Vec2{{X: 1, Y: 1}, {X: 2, Y: 2}},
		BoundaryPaths: []BoundaryData{{
			PathType: PathExternal | PathPolyline | PathDerived,
			Path: &PolylineBoundary{
				IsClosed: true,
				Vertices: []Vertex{{}, {X: 4}},
			},
			SourceObjects: []string{"41"},
		}},
		PatternLines: []PatternLine{{
			Angle:  45,
			Offset: vec.Vec2{X: -2.2, Y: 2.2},
		}},
	}
	if diff := cmp.Diff(want, h, cmpOpts...); diff != "" {
		t.Errorf("hatch mismatch (-want +got):\n%s", diff)
	}

	p, err := d.Source().Next()
	if err != nil || p.Code != 0 {
		t.Fatalf("ReadHatch must leave the next entity in the source, got %v err=%v", p, err)
	}
}

func TestReadHatchDefaults(t *testing.T) {
	h, err := NewDecoder(text("8", "0"), Options{}).ReadHatch()
	if err != nil {
		t.Fatalf("ReadHatch: %v", err)
	}
	if !h.Color.IsByLayer() || h.Extrusion != [3]float64{0, 0, 1} || h.PatternScale != 1 {
		t.Errorf("defaults not applied: %+v", h)
	}
	if _, ok := h.RGBA(); ok {
		t.Errorf("a by-layer colour must not resolve")
	}
}

func TestHatchRGBA(t *testing.T) {
	transparency := color.FloatToTransparency(0.5)
	cases := []struct {
		name string
		h    Hatch
		want string
		ok   bool
	}{
		{"index", Hatch{Color: color.FromIndex(1)}, "#FF0000FF", true},
		{"true colour wins", Hatch{Color: color.FromIndex(1), TrueColor: &color.RGB{R: 0x12, G: 0x34, B: 0x56}}, "#123456FF", true},
		{"transparency", Hatch{Color: color.FromIndex(5), Transparency: &transparency}, "#0000FF80", true},
		{"by block", Hatch{Color: color.ByBlock()}, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := tc.h.RGBA()
			if ok != tc.ok {
				t.Fatalf("ok: got %v want %v", ok, tc.ok)
			}
			if ok && c.Hex() != tc.want {
				t.Errorf("got %s want %s", c.Hex(), tc.want)
			}
		})
	}
}
