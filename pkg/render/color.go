// pkg/render/color.go
package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"go-minimap/internal/minimap"
)

// DarkenColor halves each channel. Used for the minimap frame.
func DarkenColor(c minimap.Color) minimap.Color {
	r, g, b := c.RGB()
	return minimap.RGBOf(r/2, g/2, b/2)
}

// ggColor converts a straight-alpha color to gg's [0, 1] components. Byte
// values survive the round trip through gg.Pixmap unchanged.
func ggColor(c color.NRGBA) gg.RGBA {
	return gg.RGBA2(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
}

// compositeBatch draws every cursor's cell over dst with draw.Over. Cells
// outside dst are clipped by draw.Draw.
func compositeBatch(dst draw.Image, batch []*minimap.Cursor, alpha float64, touched func(x, y int)) {
	var (
		src  *image.Uniform
		last minimap.Color
	)
	for _, c := range batch {
		if src == nil || c.Fill != last {
			src = image.NewUniform(c.Fill.NRGBA(alpha))
			last = c.Fill
		}
		x, y := c.Cell()
		r := image.Rect(x, y, x+1, y+1)
		if !r.Overlaps(dst.Bounds()) {
			continue
		}
		draw.Draw(dst, r, src, image.Point{}, draw.Over)
		if touched != nil {
			touched(x, y)
		}
	}
}
