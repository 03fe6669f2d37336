package svgcolor

import "fmt"

// Color is one color literal from an SVG document. RGB and RGBA literals
// are distinct values even when the alpha is 255, mirroring how they are
// written in the document.
//
// Color is comparable and usable as a map key.
type Color struct {
	R, G, B uint8
	A       uint8
	// HasAlpha distinguishes an RGBA literal from an RGB one.
	HasAlpha bool
}

// RGB builds an opaque RGB color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA builds an RGBA color.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a, HasAlpha: true}
}

// Reserved REAPER marker colors in their literal RGB form.
var (
	ReservedYellow = RGB(255, 255, 0)
	ReservedPink   = RGB(255, 0, 255)
)

// IsReserved reports whether c is one of the two REAPER marker colors.
// An RGBA literal counts when it is fully opaque.
func (c Color) IsReserved() bool {
	if c.HasAlpha && c.A != 255 {
		return false
	}
	rgb := RGB(c.R, c.G, c.B)
	return rgb == ReservedYellow || rgb == ReservedPink
}

// String formats the color as a lowercase hex literal.
func (c Color) String() string {
	if c.HasAlpha {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBString formats the color in the functional form used when writing
// replacements back into a document.
func (c Color) RGBString() string {
	if c.HasAlpha {
		return fmt.Sprintf("rgba(%d,%d,%d,%d)", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// ParseColor parses a single color literal, as accepted on the command
// line for remap arguments. The whole string must be one literal.
func ParseColor(s string) (Color, error) {
	segs, err := Scan(s, true)
	if err != nil {
		return Color{}, err
	}
	if len(segs) != 1 || segs[0].Color == nil {
		return Color{}, fmt.Errorf("%q is not a color literal", s)
	}
	return *segs[0].Color, nil
}
