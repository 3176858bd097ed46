package minimap

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/gogpu/gg"
)

// Color is a packed 0xRRGGBB value. Alpha is never part of a Color: opacity
// is passed separately to the draw calls. Only the low 24 bits are rendered,
// so wider values wrap around, with one exception: 0xFFFFFFFF is reserved for
// NoColor. Convert packed 0xRRGGBBAA values with FromRGBA, which drops the
// alpha byte, instead of casting them.
type Color uint32

const (
	// NoColor marks a point whose color was not specified. The compositor
	// resolves it to its default user color before grouping. A packed
	// opaque-white RGBA value has the same bits, see FromRGBA.
	NoColor Color = 0xFFFFFFFF

	Black Color = 0x000000
	White Color = 0xFFFFFF
	Red   Color = 0xFF0000
	Green Color = 0x00FF00
	Blue  Color = 0x0000FF
)

// ErrBadColor is returned by ParseColor for strings that are not hex colors.
var ErrBadColor = errors.New("minimap: invalid color")

// RGB unpacks the low 24 bits.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// IsSet reports whether c is a concrete color rather than NoColor.
func (c Color) IsSet() bool {
	return c != NoColor
}

// Or returns c, or fallback when c is NoColor.
func (c Color) Or(fallback Color) Color {
	if c == NoColor {
		return fallback
	}
	return c
}

// NRGBA converts c to a straight-alpha color with the given opacity in [0, 1].
func (c Color) NRGBA(alpha float64) color.NRGBA {
	r, g, b := c.RGB()
	return color.NRGBA{R: r, G: g, B: b, A: AlphaByte(alpha)}
}

func (c Color) String() string {
	if c == NoColor {
		return "none"
	}
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}

// RGBOf packs three channels into a Color.
func RGBOf(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// FromRGBA converts a packed 0xRRGGBBAA value. The alpha byte is dropped,
// so the result is always a concrete color, never NoColor.
func FromRGBA(packed uint32) Color {
	return Color(packed >> 8)
}

// FromColor drops alpha and packs any color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBOf(n.R, n.G, n.B)
}

// ParseColor accepts "#rgb", "#rrggbb" and the same forms without '#'.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 3 && len(hex) != 6 {
		return 0, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return 0, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
	}
	v := gg.Hex(hex)
	return RGBOf(unit8(v.R), unit8(v.G), unit8(v.B)), nil
}

// AlphaByte maps an opacity in [0, 1] to a byte, clamping out-of-range values.
func AlphaByte(alpha float64) uint8 {
	return unit8(ClampAlpha(alpha))
}

// ClampAlpha restricts alpha to [0, 1]; NaN becomes 0.
func ClampAlpha(alpha float64) float64 {
	switch {
	case alpha != alpha:
		return 0
	case alpha < 0:
		return 0
	case alpha > 1:
		return 1
	}
	return alpha
}

func unit8(v float64) uint8 {
	return uint8(math.Round(ClampAlpha(v) * 255))
}
