package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"go-minimap/internal/minimap"
)

// PixmapSurface is a CPU minimap surface backed by a gg.Pixmap. It needs no
// window or GPU, so headless tools and tests use it.
//
// view shares the pixmap's bytes as an *image.NRGBA so that x/image/draw
// can composite into it directly.
type PixmapSurface struct {
	pm            *gg.Pixmap
	view          *image.NRGBA
	displayWidth  int
	displayHeight int
	depth         int
	draws         int
}

var (
	_ minimap.Surface       = (*PixmapSurface)(nil)
	_ minimap.DisplayScaler = (*PixmapSurface)(nil)
)

// NewPixmapSurface allocates a transparent width x height surface.
func NewPixmapSurface(width, height int) *PixmapSurface {
	s := &PixmapSurface{}
	s.Resize(width, height)
	return s
}

// Resize reallocates the pixmap when the size changes.
func (s *PixmapSurface) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if s.pm != nil && width == s.pm.Width() && height == s.pm.Height() {
		return
	}
	s.pm = gg.NewPixmap(width, height)
	s.view = &image.NRGBA{
		Pix:    s.pm.Data(),
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// Size returns the grid resolution.
func (s *PixmapSurface) Size() (int, int) {
	return s.pm.Width(), s.pm.Height()
}

// Fill replaces every pixel.
func (s *PixmapSurface) Fill(c minimap.Color, alpha float64) {
	s.pm.Clear(ggColor(c.NRGBA(alpha)))
}

// Begin opens a composite bracket. Writes go straight to memory, so it only
// tracks nesting.
func (s *PixmapSurface) Begin() { s.depth++ }

// End closes a composite bracket.
func (s *PixmapSurface) End() {
	if s.depth > 0 {
		s.depth--
	}
}

// Composite draws each cursor's cell source-over. Cells outside the pixmap
// are skipped.
func (s *PixmapSurface) Composite(batch []*minimap.Cursor, alpha float64) {
	s.draws++
	compositeBatch(s.view, batch, alpha, nil)
}

// SetDisplaySize sets the size Scaled and SavePNG produce.
func (s *PixmapSurface) SetDisplaySize(width, height int) {
	s.displayWidth, s.displayHeight = width, height
}

// Draws returns how many Composite calls the surface has received.
func (s *PixmapSurface) Draws() int { return s.draws }

// Pixmap exposes the backing pixmap.
func (s *PixmapSurface) Pixmap() *gg.Pixmap { return s.pm }

// At returns the pixel at grid cell (x, y); out of range reads are transparent.
func (s *PixmapSurface) At(x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(s.pm.GetPixel(x, y).Color()).(color.NRGBA)
}

// Image copies the surface at grid resolution.
func (s *PixmapSurface) Image() *image.NRGBA {
	img := image.NewNRGBA(s.pm.Bounds())
	copy(img.Pix, s.view.Pix)
	return img
}

// Scaled returns the surface at display size using nearest-neighbour
// sampling, so every grid cell stays a crisp block.
func (s *PixmapSurface) Scaled() image.Image {
	src := s.Image()
	if s.displayWidth <= 0 || s.displayHeight <= 0 {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, s.displayWidth, s.displayHeight))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// SavePNG writes the display-size image to path.
func (s *PixmapSurface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, s.Scaled()); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode minimap png: %w", err)
	}
	return f.Close()
}
