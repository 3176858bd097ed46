package minimap

import (
	"errors"
	"reflect"
	"testing"
)

func TestGroupByColorOrder(t *testing.T) {
	groups := GroupByColor([]GridPoint{
		ColoredPoint(0, 0, Blue),
		ColoredPoint(1, 0, Red),
		Point(2, 0),
		ColoredPoint(3, 0, Blue),
	}, Green)

	var colors []Color
	var sizes []int
	for _, g := range groups {
		colors = append(colors, g.Color)
		sizes = append(sizes, len(g.Points))
	}
	if want := []Color{Blue, Red, Green}; !reflect.DeepEqual(colors, want) {
		t.Errorf("colors = %v, want %v", colors, want)
	}
	if want := []int{2, 1, 1}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("sizes = %v, want %v", sizes, want)
	}
	if groups[2].Points[0].Color != Green {
		t.Errorf("fallback point color = %v, want resolved %v", groups[2].Points[0].Color, Green)
	}
}

func TestGrouperReusesBuckets(t *testing.T) {
	var g grouper
	g.group([]GridPoint{ColoredPoint(0, 0, Red), ColoredPoint(0, 0, Blue), ColoredPoint(0, 0, Green)}, White)
	groups := g.group([]GridPoint{ColoredPoint(1, 1, Blue)}, White)

	if len(groups) != 1 {
		t.Fatalf("len(groups) = %d, want 1", len(groups))
	}
	if groups[0].Color != Blue || len(groups[0].Points) != 1 {
		t.Errorf("groups[0] = %+v", groups[0])
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		err  bool
	}{
		{"#ff0000", Red, false},
		{"00ff00", Green, false},
		{"#fff", White, false},
		{"#a1e064", 0xa1e064, false},
		{"", 0, true},
		{"#12345", 0, true},
		{"#gg0000", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.err {
			if !errors.Is(err, ErrBadColor) {
				t.Errorf("ParseColor(%q) error = %v, want ErrBadColor", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseColor(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestColorConversions(t *testing.T) {
	c := Color(0x123456)
	if r, g, b := c.RGB(); r != 0x12 || g != 0x34 || b != 0x56 {
		t.Errorf("RGB() = %x %x %x", r, g, b)
	}
	if n := c.NRGBA(0.5); n.A != 128 {
		t.Errorf("NRGBA(0.5).A = %d, want 128", n.A)
	}
	if got := FromColor(c.NRGBA(1)); got != c {
		t.Errorf("FromColor(NRGBA()) = %v, want %v", got, c)
	}
	// only the low 24 bits are rendered
	if r, g, b := Color(0x01FF8040).RGB(); r != 0xFF || g != 0x80 || b != 0x40 {
		t.Errorf("RGB() of wide value = %x %x %x", r, g, b)
	}
	if got := FromRGBA(0xFFFFFFFF); got != White || !got.IsSet() {
		t.Errorf("FromRGBA(0xFFFFFFFF) = %v, want opaque white, not NoColor", got)
	}
	if got := FromRGBA(0x12345680); got != 0x123456 {
		t.Errorf("FromRGBA(0x12345680) = %v, want #123456", got)
	}
	if NoColor.String() != "none" || Red.String() != "#ff0000" {
		t.Errorf("String() = %q, %q", NoColor.String(), Red.String())
	}
}

func TestGridSurfaceSize(t *testing.T) {
	g := Grid{CellSize: 16}
	if w, h := g.SurfaceSize(1024, 768); w != 64 || h != 48 {
		t.Errorf("SurfaceSize(1024, 768) = %dx%d, want 64x48", w, h)
	}
	if w, h := g.SurfaceSize(1030, 1); w != 65 || h != 1 {
		t.Errorf("SurfaceSize(1030, 1) = %dx%d, want 65x1", w, h)
	}
	if x, y := g.ToGrid(160, 40); x != 10 || y != 2.5 {
		t.Errorf("ToGrid(160, 40) = %v, %v", x, y)
	}
	if cx, cy := g.Point(170, 47, Red).Cell(); cx != 10 || cy != 2 {
		t.Errorf("Cell() = %d, %d, want 10, 2", cx, cy)
	}
}
