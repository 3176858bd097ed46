package minimap

// recordingSurface keeps a last-writer-wins pixel map and a log of every call
// so tests can check batching as well as the result.
type recordingSurface struct {
	width, height int
	pixels        map[[2]int]Color
	fills         []fillCall
	batches       []batchCall
	depth         int
	brackets      int
	resizes       int
	display       [2]int
}

type fillCall struct {
	color Color
	alpha float64
}

type batchCall struct {
	colors  []Color
	points  [][2]int
	alpha   float64
	bracket bool
}

func newRecordingSurface(w, h int) *recordingSurface {
	return &recordingSurface{width: w, height: h, pixels: make(map[[2]int]Color)}
}

func (s *recordingSurface) Resize(w, h int) {
	s.width, s.height = w, h
	s.resizes++
	// contents are undefined after a resize; make that visible
	for k := range s.pixels {
		s.pixels[k] = 0xDEAD
	}
}

func (s *recordingSurface) Size() (int, int) { return s.width, s.height }

func (s *recordingSurface) Fill(c Color, alpha float64) {
	s.fills = append(s.fills, fillCall{color: c, alpha: alpha})
	clear(s.pixels)
}

func (s *recordingSurface) Begin() {
	s.depth++
	s.brackets++
}

func (s *recordingSurface) End() { s.depth-- }

func (s *recordingSurface) Composite(batch []*Cursor, alpha float64) {
	call := batchCall{alpha: alpha, bracket: s.depth > 0}
	for _, c := range batch {
		x, y := c.Cell()
		call.colors = append(call.colors, c.Fill)
		call.points = append(call.points, [2]int{x, y})
		if x < 0 || y < 0 || x >= s.width || y >= s.height {
			continue
		}
		s.pixels[[2]int{x, y}] = c.Fill
	}
	s.batches = append(s.batches, call)
}

func (s *recordingSurface) SetDisplaySize(w, h int) { s.display = [2]int{w, h} }

func (s *recordingSurface) reset() {
	s.fills = nil
	s.batches = nil
	s.brackets = 0
}
