package hatch

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/synadia-labs/dxf.go/color"
	dxf "github.com/synadia-labs/dxf.go/runtime"
)

// cmpOpts treats nil and empty slices alike: the decoder always allocates
// the slices it fills.
var cmpOpts = []cmp.Option{
	cmpopts.EquateEmpty(),
	cmpopts.EquateNaNs(),
	cmp.Comparer(func(a, b color.Color) bool { return a == b }),
}

// text builds an ASCII DXF source from alternating code and value lines.
func text(lines ...string) *dxf.Reader {
	return dxf.NewReaderBytes([]byte(strings.Join(lines, "\n") + "\n"))
}

// render writes pairs back out as DXF text.
func render(pairs []dxf.CodePair) []byte {
	var sb strings.Builder
	for _, p := range pairs {
		fmt.Fprintf(&sb, "%3d\n%s\n", p.Code, p.Value)
	}
	return []byte(sb.String())
}

func readBoundaries(t *testing.T, src dxf.Source, n int) ([]BoundaryData, *Decoder) {
	t.Helper()
	d := NewDecoder(src, Options{})
	h := NewHatch()
	if err := d.ReadBoundaryPaths(h, n); err != nil {
		t.Fatalf("ReadBoundaryPaths: %v", err)
	}
	return h.BoundaryPaths, d
}

func ptr(f float64) *float64 { return &f }
