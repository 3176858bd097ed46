package render

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"go-minimap/internal/minimap"
)

// upperHalf paints the top half of a cell in the foreground color and the
// bottom half in the background color: two grid rows per terminal row.
const upperHalf = '▀'

// TerminalSurface renders the minimap into a region of a tcell screen. Pixels
// are kept in memory and only dirty terminal rows are rewritten when a
// composite bracket closes. Showing the screen is left to the caller.
type TerminalSurface struct {
	screen  tcell.Screen
	originX int
	originY int
	width   int
	height  int
	pix     *image.NRGBA
	dirty   []bool
	depth   int
}

var _ minimap.Surface = (*TerminalSurface)(nil)

// NewTerminalSurface creates a width x height surface drawn at the top-left
// corner of screen.
func NewTerminalSurface(screen tcell.Screen, width, height int) *TerminalSurface {
	s := &TerminalSurface{screen: screen}
	s.Resize(width, height)
	return s
}

// SetOrigin moves the surface to terminal cell (x, y) and redraws it.
func (s *TerminalSurface) SetOrigin(x, y int) {
	s.originX, s.originY = x, y
	s.markAll()
	s.flush()
}

// Resize reallocates the pixel buffer.
func (s *TerminalSurface) Resize(width, height int) {
	s.width, s.height = max(width, 1), max(height, 1)
	s.pix = image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	s.dirty = make([]bool, (s.height+1)/2)
}

// Size returns the grid resolution.
func (s *TerminalSurface) Size() (int, int) { return s.width, s.height }

// Cells returns how many terminal columns and rows the surface occupies.
func (s *TerminalSurface) Cells() (int, int) { return s.width, (s.height + 1) / 2 }

// Fill replaces every pixel and redraws unless a bracket is open.
func (s *TerminalSurface) Fill(c minimap.Color, alpha float64) {
	px := c.NRGBA(alpha)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.pix.SetNRGBA(x, y, px)
		}
	}
	s.markAll()
	if s.depth == 0 {
		s.flush()
	}
}

// Begin defers terminal writes until End.
func (s *TerminalSurface) Begin() { s.depth++ }

// End flushes dirty rows once the outermost bracket closes.
func (s *TerminalSurface) End() {
	if s.depth > 0 {
		s.depth--
	}
	if s.depth == 0 {
		s.flush()
	}
}

// Composite draws each cursor into the buffer source-over.
func (s *TerminalSurface) Composite(batch []*minimap.Cursor, alpha float64) {
	compositeBatch(s.pix, batch, alpha, s.markRow)
	if s.depth == 0 {
		s.flush()
	}
}

// Pixel returns the buffered color of grid cell (x, y).
func (s *TerminalSurface) Pixel(x, y int) color.NRGBA {
	return s.pix.NRGBAAt(x, y)
}

func (s *TerminalSurface) markRow(_, y int) {
	s.dirty[y/2] = true
}

func (s *TerminalSurface) markAll() {
	for i := range s.dirty {
		s.dirty[i] = true
	}
}

func (s *TerminalSurface) flush() {
	for row, dirty := range s.dirty {
		if !dirty {
			continue
		}
		top := row * 2
		for x := 0; x < s.width; x++ {
			upper := s.pix.NRGBAAt(x, top)
			lower := upper
			if top+1 < s.height {
				lower = s.pix.NRGBAAt(x, top+1)
			}
			style := tcell.StyleDefault.Foreground(termColor(upper)).Background(termColor(lower))
			s.screen.SetContent(s.originX+x, s.originY+row, upperHalf, nil, style)
		}
		s.dirty[row] = false
	}
}

// termColor maps a pixel to a terminal color; fully transparent pixels show
// the terminal's own background.
func termColor(c color.NRGBA) tcell.Color {
	if c.A == 0 {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
