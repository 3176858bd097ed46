package render

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"golang.org/x/image/draw"

	"go-minimap/internal/minimap"
)

func opaque(c minimap.Color) color.NRGBA { return c.NRGBA(1) }

func TestPixmapScenario(t *testing.T) {
	s := NewPixmapSurface(1, 1)
	m := minimap.New(s, minimap.WithWallColor(0x808080)).SetSize(64, 48).Clear()

	m.DrawPoints([]minimap.GridPoint{
		minimap.ColoredPoint(10, 10, 0xff0000),
		minimap.ColoredPoint(20, 20, 0x00ff00),
		minimap.ColoredPoint(10, 10, 0xff0000),
	}, []minimap.GridPoint{minimap.Point(0, 0)})

	if w, h := s.Size(); w != 64 || h != 48 {
		t.Fatalf("Size() = %dx%d, want 64x48", w, h)
	}
	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{10, 10, opaque(0xff0000)},
		{20, 20, opaque(0x00ff00)},
		{0, 0, opaque(0x808080)},
		{5, 5, opaque(minimap.Black)},
	}
	for _, tt := range tests {
		if got := s.At(tt.x, tt.y); got != tt.want {
			t.Errorf("At(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if s.Draws() != 3 {
		t.Errorf("Draws() = %d, want 3 (one wall batch, two color batches)", s.Draws())
	}
}

func TestPixmapUserOverWall(t *testing.T) {
	s := NewPixmapSurface(8, 8)
	minimap.New(s).Clear().
		DrawPoints([]minimap.GridPoint{minimap.ColoredPoint(5, 5, minimap.Blue)}, []minimap.GridPoint{minimap.Point(5, 5)})

	if got := s.At(5, 5); got != opaque(minimap.Blue) {
		t.Errorf("At(5, 5) = %v, want the user color on top", got)
	}
}

func TestPixmapEmptyDrawEqualsClear(t *testing.T) {
	a := NewPixmapSurface(4, 4)
	b := NewPixmapSurface(4, 4)
	minimap.New(a).DrawPoints([]minimap.GridPoint{minimap.ColoredPoint(1, 1, minimap.Red)}, nil).DrawPoints(nil, nil)
	minimap.New(b).Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("pixel (%d, %d): %v != %v", x, y, a.At(x, y), b.At(x, y))
			}
		}
	}
}

func TestPixmapClipsOutOfRange(t *testing.T) {
	s := NewPixmapSurface(4, 4)
	s.Fill(minimap.Black, 1)
	s.Composite([]*minimap.Cursor{
		{X: -1, Y: 0, Fill: minimap.Red},
		{X: 4, Y: 1, Fill: minimap.Red},
		{X: 1, Y: 99, Fill: minimap.Red},
		{X: 3.9, Y: 3.9, Fill: minimap.Red},
	}, 1)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := opaque(minimap.Black)
			if x == 3 && y == 3 {
				want = opaque(minimap.Red)
			}
			if got := s.At(x, y); got != want {
				t.Errorf("At(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPixmapAlphaBlend(t *testing.T) {
	s := NewPixmapSurface(2, 1)
	s.Fill(minimap.Black, 1)
	s.Composite([]*minimap.Cursor{{X: 0, Y: 0, Fill: minimap.White}}, 0.5)

	got := s.At(0, 0)
	if got.A != 255 || got.R < 127 || got.R > 128 {
		t.Errorf("half white over black = %v, want mid grey", got)
	}
	if s.At(1, 0) != opaque(minimap.Black) {
		t.Errorf("untouched pixel changed to %v", s.At(1, 0))
	}
}

func TestPixmapTransparentClear(t *testing.T) {
	s := NewPixmapSurface(2, 2)
	minimap.New(s).ClearWithColor(0xa1e064, 0)
	if got := s.At(1, 1); got.A != 0 {
		t.Errorf("alpha after transparent clear = %d, want 0", got.A)
	}
	s.Composite([]*minimap.Cursor{{X: 1, Y: 1, Fill: minimap.Red}}, 0.5)
	if got := s.At(1, 1); got.R != 255 || got.A != 128 {
		t.Errorf("half red over transparent = %v, want straight red at half alpha", got)
	}
}

func TestPixmapScaled(t *testing.T) {
	s := NewPixmapSurface(4, 3)
	m := minimap.New(s).Clear().SetDisplaySize(16, 12)
	m.DrawPoints([]minimap.GridPoint{minimap.ColoredPoint(1, 2, minimap.Green)}, nil)

	img := s.Scaled()
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 12 {
		t.Fatalf("Scaled() bounds = %v, want 16x12", b)
	}
	for _, p := range [][2]int{{4, 8}, {7, 11}} {
		if got := color.NRGBAModel.Convert(img.At(p[0], p[1])); got != opaque(minimap.Green) {
			t.Errorf("scaled pixel %v = %v, want green", p, got)
		}
	}
	if got := color.NRGBAModel.Convert(img.At(8, 8)); got != opaque(minimap.Black) {
		t.Errorf("scaled pixel (8, 8) = %v, want black", got)
	}
}

func TestPixmapSavePNG(t *testing.T) {
	s := NewPixmapSurface(4, 4)
	s.Fill(minimap.Red, 1)
	path := filepath.Join(t.TempDir(), "minimap.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}
	if err := s.SavePNG(filepath.Join(t.TempDir(), "missing", "x.png")); err == nil {
		t.Error("SavePNG() into a missing directory succeeded")
	}
}

func TestDarkenColor(t *testing.T) {
	if got := DarkenColor(0xff8040); got != 0x7f4020 {
		t.Errorf("DarkenColor(#ff8040) = %v, want #7f4020", got)
	}
}

// overReference fills a w x h image with bg and draws each cursor over it
// with draw.Over.
func overReference(w, h int, bg color.NRGBA, batches [][]*minimap.Cursor, alphas []float64) *image.NRGBA {
	ref := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ref.SetNRGBA(x, y, bg)
		}
	}
	for i, batch := range batches {
		for _, c := range batch {
			x, y := c.Cell()
			src := image.NewUniform(c.Fill.NRGBA(alphas[i]))
			draw.Draw(ref, image.Rect(x, y, x+1, y+1), src, image.Point{}, draw.Over)
		}
	}
	return ref
}

func TestPixmapCompositeMatchesDrawOver(t *testing.T) {
	batches := [][]*minimap.Cursor{
		{{X: 0, Y: 0, Fill: 0x336699}, {X: 1, Y: 0, Fill: 0x336699}, {X: 2, Y: 1, Fill: 0x336699}},
		{{X: 1, Y: 0, Fill: 0xf0a010}, {X: 2, Y: 1, Fill: 0xf0a010}},
		{{X: 2, Y: 1, Fill: minimap.White}},
	}
	alphas := []float64{0.3, 0.65, 0.1}

	for _, bgAlpha := range []float64{1, 0.4, 0} {
		s := NewPixmapSurface(3, 2)
		s.Fill(0x204060, bgAlpha)
		for i, batch := range batches {
			s.Composite(batch, alphas[i])
		}

		ref := overReference(3, 2, minimap.Color(0x204060).NRGBA(bgAlpha), batches, alphas)
		for y := 0; y < 2; y++ {
			for x := 0; x < 3; x++ {
				if got, want := s.At(x, y), ref.NRGBAAt(x, y); got != want {
					t.Errorf("background alpha %v: At(%d, %d) = %v, want %v", bgAlpha, x, y, got, want)
				}
			}
		}
	}
}

func TestPixmapSharesGGBuffer(t *testing.T) {
	s := NewPixmapSurface(3, 3)
	s.Fill(0x102030, 0.5)
	s.Composite([]*minimap.Cursor{{X: 1, Y: 2, Fill: minimap.Red}}, 1)

	pm := s.Pixmap()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got, want := pm.GetPixel(x, y).Color(), s.At(x, y); got != want {
				t.Errorf("pixmap (%d, %d) = %v, surface = %v", x, y, got, want)
			}
		}
	}
	if got := pm.GetPixel(1, 2).Color(); got != opaque(minimap.Red) {
		t.Errorf("composited pixel in pixmap = %v, want red", got)
	}
	if got := pm.GetPixel(0, 0).Color(); got != minimap.Color(0x102030).NRGBA(0.5) {
		t.Errorf("filled pixel in pixmap = %v", got)
	}
	if img := s.Image(); img.NRGBAAt(1, 2) != s.At(1, 2) {
		t.Errorf("Image() = %v, want a copy of the pixmap", img.NRGBAAt(1, 2))
	}
}
