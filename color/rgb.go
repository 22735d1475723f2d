package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is a 24-bit colour.
type RGB struct {
	R, G, B uint8
}

// RGBA is a colour with alpha; A == 0 is fully transparent, 255 opaque.
type RGBA struct {
	R, G, B, A uint8
}

// RGBFromInt decodes a code 420 value, 0x00RRGGBB. The sign is ignored.
func RGBFromInt(v int32) RGB {
	if v < 0 {
		v = -v
	}
	u := uint32(v)
	return RGB{R: uint8(u >> 16), G: uint8(u >> 8), B: uint8(u)}
}

// RGBFromIndex looks up the default RGB value of a colour index. ok is
// false outside 1..255.
func RGBFromIndex(index int16) (RGB, bool) {
	if index < 1 || index > 255 {
		return RGB{}, false
	}
	return RGBFromInt(aciTable[index]), true
}

// Int encodes c as a code 420 value.
func (c RGB) Int() int32 {
	return int32(c.R)<<16 | int32(c.G)<<8 | int32(c.B)
}

// TrueColorValue returns the code 420 value a layer record stores: negated
// when the layer is off.
func (c RGB) TrueColorValue(layerOn bool) int32 {
	if layerOn {
		return c.Int()
	}
	return -c.Int()
}

// RGBA returns c as an opaque RGBA.
func (c RGB) RGBA() RGBA { return RGBA{R: c.R, G: c.G, B: c.B, A: 255} }

// Floats returns the channels scaled to [0, 1].
func (c RGB) Floats() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// RGBFromFloats converts channels in [0, 1], clamping out-of-range values.
func RGBFromFloats(r, g, b float64) RGB {
	return RGB{R: floatByte(r), G: floatByte(g), B: floatByte(b)}
}

// Hex formats c as "#RRGGBB".
func (c RGB) Hex() string { return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B) }

// ParseHex parses "#RRGGBB" (the '#' is optional).
func ParseHex(s string) (RGB, error) {
	b, err := hexBytes(s, 3)
	if err != nil {
		return RGB{}, err
	}
	return RGB{R: b[0], G: b[1], B: b[2]}, nil
}

// Luminance returns the perceived brightness of c in [0, 1].
func (c RGB) Luminance() float64 { return luminance(c.R, c.G, c.B) }

// RGB drops the alpha channel.
func (c RGBA) RGB() RGB { return RGB{R: c.R, G: c.G, B: c.B} }

// Floats returns the channels scaled to [0, 1].
func (c RGBA) Floats() (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

// RGBAFromFloats converts channels in [0, 1]. A missing alpha is opaque.
func RGBAFromFloats(v ...float64) RGBA {
	c := RGBA{A: 255}
	if len(v) > 0 {
		c.R = floatByte(v[0])
	}
	if len(v) > 1 {
		c.G = floatByte(v[1])
	}
	if len(v) > 2 {
		c.B = floatByte(v[2])
	}
	if len(v) > 3 {
		c.A = floatByte(v[3])
	}
	return c
}

// Hex formats c as "#RRGGBBAA".
func (c RGBA) Hex() string { return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A) }

// ParseHexRGBA parses "#RRGGBB" or "#RRGGBBAA"; without alpha the colour
// is opaque.
func ParseHexRGBA(s string) (RGBA, error) {
	t := strings.TrimPrefix(s, "#")
	if len(t) < 8 {
		c, err := ParseHex(s)
		if err != nil {
			return RGBA{}, err
		}
		return c.RGBA(), nil
	}
	b, err := hexBytes(s, 4)
	if err != nil {
		return RGBA{}, err
	}
	return RGBA{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
}

// Luminance returns the perceived brightness of the colour channels.
func (c RGBA) Luminance() float64 { return luminance(c.R, c.G, c.B) }

// SetOpacity32 sets alpha from a code 440 value (its low byte).
func (c *RGBA) SetOpacity32(v int32) { c.A = uint8(v & 0xFF) }

// SetOpacity sets alpha directly.
func (c *RGBA) SetOpacity(a uint8) { c.A = a }

// SetTransparency sets alpha from a transparency fraction, 0 opaque and 1
// fully transparent.
func (c *RGBA) SetTransparency(t float64) { c.SetOpacity32(FloatToTransparency(t)) }

// FloatToTransparency encodes a transparency fraction (0 opaque, 1 fully
// transparent) as a code 440 value, 0x020000TT with TT the alpha byte.
func FloatToTransparency(t float64) int32 {
	alpha := int32(math.Round(clamp01(1-t) * 255))
	return alpha | 0x02000000
}

func luminance(r, g, b uint8) float64 {
	fr, fg, fb := float64(r)/255, float64(g)/255, float64(b)/255
	return clamp01(math.Sqrt(0.299*fr*fr + 0.587*fg*fg + 0.114*fb*fb))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func floatByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func hexBytes(s string, n int) ([]byte, error) {
	t := strings.TrimPrefix(s, "#")
	if len(t) < 2*n {
		return nil, fmt.Errorf("color: %q: want %d hex digits", s, 2*n)
	}
	out := make([]byte, n)
	for i := range out {
		v, err := strconv.ParseUint(t[2*i:2*i+2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("color: %q: %w", s, err)
		}
		out[i] = byte(v)
	}
	return out, nil
}
