package hatch

import (
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	dxf "github.com/synadia-labs/dxf.go/runtime"
)

func readPattern(t *testing.T, src dxf.Source, opts Options, n int) []PatternLine {
	t.Helper()
	h := NewHatch()
	if err := NewDecoder(src, opts).ReadPatternLines(h, n); err != nil {
		t.Fatalf("ReadPatternLines: %v", err)
	}
	return h.PatternLines
}

var ansi31 = []string{
	"53", "45.0",
	"43", "0.0", "44", "0.0",
	"45", "-0.0883883476483184", "46", "0.0883883476483184",
	"79", "2",
	"49", "0.5", "49", "-0.25",
}

func TestPatternLine(t *testing.T) {
	want := []PatternLine{{
		Angle:       45,
		Offset:      vec.Vec2{X: -0.0883883476483184, Y: 0.0883883476483184},
		DashLengths: []float64{0.5, -0.25},
	}}
	for _, opts := range []Options{{}, {StrictPatternLines: true}} {
		got := readPattern(t, text(ansi31...), opts, 1)
		if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
			t.Errorf("strict=%v: pattern mismatch (-want +got):\n%s", opts.StrictPatternLines, diff)
		}
	}
}

func TestPatternLinesBackToBack(t *testing.T) {
	src := append(append([]string{}, ansi31...),
		"53", "135.0",
		"43", "1.0", "44", "2.0",
		"45", "0.0", "46", "1.0",
		"79", "0",
		"98", "0",
	)
	got := readPattern(t, text(src...), Options{}, 2)
	if len(got) != 2 {
		t.Fatalf("got %d lines", len(got))
	}
	second := got[1]
	if second.Angle != 135 || second.BasePoint != (vec.Vec2{X: 1, Y: 2}) || len(second.DashLengths) != 0 {
		t.Errorf("second line: %+v", second)
	}
}

func TestPatternLineAnyOrder(t *testing.T) {
	got := readPattern(t, text(
		"79", "2",
		"49", "0.5",
		"46", "0.125",
		"53", "0.0",
		"49", "-0.25",
		"45", "0.0",
		"44", "3.0",
		"43", "4.0",
	), Options{}, 1)

	want := []PatternLine{{
		BasePoint:   vec.Vec2{X: 4, Y: 3},
		Offset:      vec.Vec2{Y: 0.125},
		DashLengths: []float64{0.5, -0.25},
	}}
	if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
		t.Errorf("pattern mismatch (-want +got):\n%s", diff)
	}
}

func TestPatternLineStrictRejectsReordering(t *testing.T) {
	h := NewHatch()
	d := NewDecoder(text("43", "0.0", "53", "45.0"), Options{StrictPatternLines: true})
	err := d.ReadPatternLines(h, 1)
	var uc dxf.UnexpectedCodeError
	if !errors.As(err, &uc) || uc.Code != 43 {
		t.Fatalf("expected UnexpectedCodeError for 43, got %v", err)
	}
}

func TestPatternLineMissingField(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		want  error
		not   error
	}{
		{
			name:  "closed",
			lines: []string{"53", "0.0", "43", "0.0", "44", "0.0", "45", "0.0", "79", "0", "0", "ENDSEC"},
			want:  dxf.ErrEntityClosed,
		},
		{
			name:  "exhausted",
			lines: []string{"53", "0.0", "43", "0.0", "44", "0.0", "46", "0.0", "79", "0"},
			want:  dxf.ErrUnexpectedEndOfInput,
			not:   dxf.ErrEntityClosed,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := NewDecoder(text(tc.lines...), Options{}).ReadPatternLines(NewHatch(), 1)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if tc.not != nil && errors.Is(err, tc.not) {
				t.Fatalf("%v must not match %v", err, tc.not)
			}
		})
	}
}

func TestPatternLineDashShortfall(t *testing.T) {
	head := []string{
		"53", "0.0", "43", "0.0", "44", "0.0", "45", "0.0", "46", "1.0",
		"79", "3",
		"49", "1.0", "49", "-1.0",
	}
	cases := []struct {
		name     string
		tail     []string
		want     error
		not      error
		wantMsg  string
		nextCode int
	}{
		{
			name:     "closed",
			tail:     []string{"0", "ENDSEC"},
			want:     dxf.ErrEntityClosed,
			wantMsg:  "dxf: unexpected end of input (entity closed) at pattern[0]/dashes",
			nextCode: 0,
		},
		{
			name:     "exhausted",
			want:     dxf.ErrUnexpectedEndOfInput,
			not:      dxf.ErrEntityClosed,
			wantMsg:  "dxf: unexpected end of input at pattern[0]/dashes",
			nextCode: -1,
		},
		{
			name:     "other tag",
			tail:     []string{"98", "0"},
			wantMsg:  "dxf: wanted 3 elements; got 2 at pattern[0]/dashes",
			nextCode: 98,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines := append(append([]string(nil), head...), tc.tail...)
			d := NewDecoder(text(lines...), Options{})
			err := d.ReadPatternLines(NewHatch(), 1)
			if tc.want != nil {
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
				var ce dxf.CountError
				if errors.As(err, &ce) {
					t.Fatalf("a shortfall at the end of the record is not a CountError: %v", err)
				}
			} else {
				var ce dxf.CountError
				if !errors.As(err, &ce) || ce.Wanted != 3 || ce.Got != 2 {
					t.Fatalf("expected CountError{3, 2}, got %v", err)
				}
				if errors.Is(err, dxf.ErrUnexpectedEndOfInput) {
					t.Fatalf("a CountError is not end of input: %v", err)
				}
			}
			if tc.not != nil && errors.Is(err, tc.not) {
				t.Fatalf("%v must not match %v", err, tc.not)
			}
			if got := err.Error(); got != tc.wantMsg {
				t.Errorf("unexpected message: %s", got)
			}
			p, nerr := d.Source().Next()
			switch {
			case tc.nextCode < 0:
				if !errors.Is(nerr, io.EOF) {
					t.Errorf("expected io.EOF after the record, got %v %v", p, nerr)
				}
			case nerr != nil || p.Code != tc.nextCode:
				t.Errorf("the code %d pair must stay in the source, got %v %v", tc.nextCode, p, nerr)
			}
		})
	}
}

func TestPatternLineNoDashes(t *testing.T) {
	got := readPattern(t, text(
		"53", "90.0", "43", "0.0", "44", "0.0", "45", "0.0", "46", "1.0",
		"79", "0",
	), Options{StrictPatternLines: true}, 1)
	if len(got) != 1 || got[0].Angle != 90 || len(got[0].DashLengths) != 0 {
		t.Fatalf("unexpected lines: %+v", got)
	}
}
