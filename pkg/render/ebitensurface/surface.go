// Package ebitensurface draws the minimap into an offscreen ebiten image.
package ebitensurface

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"go-minimap/internal/minimap"
)

// maxQuadsPerDraw keeps vertex indices within uint16.
const maxQuadsPerDraw = (1 << 16) / 4

// Surface is a GPU minimap surface: an offscreen ebiten.Image sized to
// the grid. Each Composite becomes DrawTriangles calls over a reused vertex
// buffer with a white source pixel, so a batch costs one draw no matter how
// many cursors it holds.
type Surface struct {
	img           *ebiten.Image
	whiteImg      *ebiten.Image
	whiteSubImg   *ebiten.Image
	vs            []ebiten.Vertex
	is            []uint16
	width         int
	height        int
	displayWidth  int
	displayHeight int
	draws         int
}

var (
	_ minimap.Surface       = (*Surface)(nil)
	_ minimap.DisplayScaler = (*Surface)(nil)
)

// New creates a surface of width x height grid cells.
func New(width, height int) *Surface {
	whiteImg := ebiten.NewImage(3, 3)
	whiteImg.Fill(color.White)

	s := &Surface{
		whiteImg: whiteImg,
		// sampling the centre pixel avoids bleeding from the atlas edge
		whiteSubImg: whiteImg.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		vs:          make([]ebiten.Vertex, 0, 256),
		is:          make([]uint16, 0, 384),
	}
	s.Resize(width, height)
	return s
}

// Resize replaces the offscreen image; the old contents are dropped.
func (s *Surface) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if s.img != nil {
		if s.width == width && s.height == height {
			return
		}
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(width, height)
	s.width, s.height = width, height
}

// Size returns the grid resolution.
func (s *Surface) Size() (int, int) { return s.width, s.height }

// Fill replaces every pixel.
func (s *Surface) Fill(c minimap.Color, alpha float64) {
	s.img.Fill(c.NRGBA(alpha))
}

// Begin is a no-op: ebiten merges consecutive draws to the same target.
func (s *Surface) Begin() {}

// End is a no-op, see Begin.
func (s *Surface) End() {}

// Composite draws the batch as 1x1 quads.
func (s *Surface) Composite(batch []*minimap.Cursor, alpha float64) {
	for start := 0; start < len(batch); start += maxQuadsPerDraw {
		end := min(start+maxQuadsPerDraw, len(batch))
		s.vs, s.is = appendCursorQuads(s.vs[:0], s.is[:0], batch[start:end], alpha)
		s.img.DrawTriangles(s.vs, s.is, s.whiteSubImg, &ebiten.DrawTrianglesOptions{})
		s.draws++
	}
}

// SetDisplaySize sets the on-screen size used by DrawTo.
func (s *Surface) SetDisplaySize(width, height int) {
	s.displayWidth, s.displayHeight = width, height
}

// DisplaySize returns the presented size, defaulting to the grid size.
func (s *Surface) DisplaySize() (int, int) {
	if s.displayWidth <= 0 || s.displayHeight <= 0 {
		return s.width, s.height
	}
	return s.displayWidth, s.displayHeight
}

// Image returns the offscreen image at grid resolution.
func (s *Surface) Image() *ebiten.Image { return s.img }

// Draws returns the number of DrawTriangles calls issued.
func (s *Surface) Draws() int { return s.draws }

// DrawTo blits the minimap onto dst at (x, y), scaled to the display size.
func (s *Surface) DrawTo(dst *ebiten.Image, x, y float64) {
	dw, dh := s.DisplaySize()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dw)/float64(s.width), float64(dh)/float64(s.height))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(s.img, op)
}

// appendCursorQuads appends four vertices and six indices per cursor. Quads
// snap to the cursor's cell; the source rectangle is the centre pixel of the
// 3x3 white image.
func appendCursorQuads(vs []ebiten.Vertex, is []uint16, batch []*minimap.Cursor, alpha float64) ([]ebiten.Vertex, []uint16) {
	a := float32(minimap.ClampAlpha(alpha))
	for _, c := range batch {
		x, y := c.Cell()
		r, g, b := c.Fill.RGB()
		cr, cg, cb := float32(r)/255, float32(g)/255, float32(b)/255
		x0, y0 := float32(x), float32(y)
		x1, y1 := x0+1, y0+1

		base := uint16(len(vs))
		vs = append(vs,
			ebiten.Vertex{DstX: x0, DstY: y0, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: a},
			ebiten.Vertex{DstX: x1, DstY: y0, SrcX: 2, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: a},
			ebiten.Vertex{DstX: x0, DstY: y1, SrcX: 1, SrcY: 2, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: a},
			ebiten.Vertex{DstX: x1, DstY: y1, SrcX: 2, SrcY: 2, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: a},
		)
		is = append(is, base, base+1, base+2, base+1, base+3, base+2)
	}
	return vs, is
}
