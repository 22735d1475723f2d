package hatch

import (
	"errors"
	"io"

	"seehuhn.de/go/geom/vec"

	"github.com/synadia-labs/dxf.go/color"
	dxf "github.com/synadia-labs/dxf.go/runtime"
)

// Entity-level group codes.
const (
	codeLayer        = 8
	codePatternName  = 2
	codeColor        = 62
	codeTrueColor    = 420
	codeTransparency = 440
	codeElevationZ   = 30
	codeExtrusionX   = 210
	codeExtrusionY   = 220
	codeExtrusionZ   = 230
	codeSolidFill    = 70
	codeAssociative  = 71
	codeStyle        = 75
	codePatternType  = 76
	codePatternAngle = 52
	codePatternScale = 41
	codeDouble       = 77
	codePixelSize    = 47
	codeSeedCount    = 98
	codeGradient     = 450
	codeGradientName = 470
)

// ReadHatch decodes one HATCH entity. The source must be positioned just
// after the "0/HATCH" pair; decoding stops before the next code 0 pair,
// which is left in the source.
func (d *Decoder) ReadHatch() (*Hatch, error) {
	h := NewHatch()
	for {
		p, err := d.src.Next()
		if errors.Is(err, io.EOF) {
			return h, nil
		}
		if err != nil {
			return nil, err
		}
		if p.Code == dxf.CodeEntityType {
			if err := d.unread(p); err != nil {
				return nil, err
			}
			return h, nil
		}
		if err := d.hatchField(h, p); err != nil {
			return nil, dxf.WrapError(err, entityCtx(h))
		}
	}
}

func entityCtx(h *Hatch) string {
	if h.Handle == "" {
		return "HATCH"
	}
	return "HATCH(" + h.Handle + ")"
}

func (d *Decoder) hatchField(h *Hatch, p dxf.CodePair) error {
	var err error
	switch p.Code {
	case codePathCount:
		n, err := countOf(p)
		if err != nil {
			return err
		}
		return d.ReadBoundaryPaths(h, n)
	case codePatternLineCount:
		n, err := countOf(p)
		if err != nil {
			return err
		}
		return d.ReadPatternLines(h, n)
	case codeSeedCount:
		n, err := countOf(p)
		if err != nil {
			return err
		}
		return d.readSeedPoints(h, n)

	case dxf.CodeHandle:
		h.Handle, err = p.Str()
	case codeSourceHandle:
		// Outside the boundary data 330 is the owner.
		h.Owner, err = p.Str()
	case codeLayer:
		h.Layer, err = p.Str()
	case codePatternName:
		h.PatternName, err = p.Str()
	case codeColor:
		var v int16
		if v, err = p.Int16(); err == nil {
			h.Color = color.FromRaw(v)
		}
	case codeTrueColor:
		var v int32
		if v, err = p.Int32(); err == nil {
			rgb := color.RGBFromInt(v)
			h.TrueColor = &rgb
		}
	case codeTransparency:
		var v int32
		if v, err = p.Int32(); err == nil {
			h.Transparency = &v
		}
	case codeElevationZ:
		h.Elevation, err = p.Float64()
	case codeExtrusionX:
		h.Extrusion[0], err = p.Float64()
	case codeExtrusionY:
		h.Extrusion[1], err = p.Float64()
	case codeExtrusionZ:
		h.Extrusion[2], err = p.Float64()
	case codeSolidFill:
		h.SolidFill, err = p.Bool()
	case codeAssociative:
		h.Associative, err = p.Bool()
	case codeStyle:
		h.Style, err = p.Int16()
	case codePatternType:
		h.PatternType, err = p.Int16()
	case codePatternAngle:
		h.PatternAngle, err = p.Float64()
	case codePatternScale:
		h.PatternScale, err = p.Float64()
	case codeDouble:
		h.PatternDouble, err = p.Bool()
	case codePixelSize:
		h.PixelSize, err = p.Float64()
	case codeGradient:
		var v int32
		if v, err = p.Int32(); err == nil {
			h.Gradient = v != 0
		}
	case codeGradientName:
		h.GradientName, err = p.Str()
	}
	return err
}

func (d *Decoder) readSeedPoints(h *Hatch, n int) error {
	for i := 0; i < n; i++ {
		x, y, err := d.point(codeX, codeY)
		if err != nil {
			return dxf.WrapError(err, idx("seed", i))
		}
		h.SeedPoints = append(h.SeedPoints, vec.Vec2{X: x, Y: y})
	}
	return nil
}
