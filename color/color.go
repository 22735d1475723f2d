// Package color implements the DXF colour model: indexed AutoCAD Colour
// Index values (code 62), 24-bit true colour (code 420) and transparency
// (code 440).
package color

// Color is an indexed colour as stored in code 62.
type Color struct {
	raw int16
}

const (
	rawByBlock  = 0
	rawByLayer  = 256
	rawByEntity = 257
)

// FromRaw wraps a code 62 value.
func FromRaw(v int16) Color { return Color{raw: v} }

// FromIndex returns the colour with index i.
func FromIndex(i uint8) Color { return Color{raw: int16(i)} }

// ByLayer returns a colour that defers to the layer's colour.
func ByLayer() Color { return Color{raw: rawByLayer} }

// ByBlock returns a colour that defers to the containing block.
func ByBlock() Color { return Color{raw: rawByBlock} }

// ByEntity returns a colour that defers to the containing entity.
func ByEntity() Color { return Color{raw: rawByEntity} }

// Raw returns the code 62 value.
func (c Color) Raw() int16 { return c.raw }

func (c Color) IsByLayer() bool  { return c.raw == rawByLayer }
func (c Color) IsByEntity() bool { return c.raw == rawByEntity }
func (c Color) IsByBlock() bool  { return c.raw == rawByBlock }

// IsTurnedOff reports whether the colour marks a layer that is off.
func (c Color) IsTurnedOff() bool { return c.raw < 0 }

// IsIndex reports whether the colour is a proper index 1..255.
func (c Color) IsIndex() bool { return c.raw >= 1 && c.raw <= 255 }

// Index returns the colour index, if the colour is one.
func (c Color) Index() (uint8, bool) {
	if !c.IsIndex() {
		return 0, false
	}
	return uint8(c.raw), true
}

func (c *Color) SetByLayer()  { c.raw = rawByLayer }
func (c *Color) SetByBlock()  { c.raw = rawByBlock }
func (c *Color) SetByEntity() { c.raw = rawByEntity }
func (c *Color) TurnOff()     { c.raw = -1 }

// LayerValue returns the value a layer record stores for this colour: the
// magnitude, negated when the layer is off.
func (c Color) LayerValue(layerOn bool) int16 {
	v := c.raw
	if v < 0 {
		v = -v
	}
	if !layerOn {
		return -v
	}
	return v
}
