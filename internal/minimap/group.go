package minimap

// ColorGroup is every point of one color, in input order.
type ColorGroup struct {
	Color  Color
	Points []GridPoint
}

// GroupByColor buckets points by color. Groups come out in the order their
// color first appears; points without a color fall into fallback's group.
func GroupByColor(points []GridPoint, fallback Color) []ColorGroup {
	var g grouper
	return g.group(points, fallback)
}

// grouper keeps its buckets between frames so steady-state grouping does not
// allocate.
type grouper struct {
	groups []ColorGroup
	index  map[Color]int
}

func (g *grouper) group(points []GridPoint, fallback Color) []ColorGroup {
	for i := range g.groups {
		g.groups[i].Points = g.groups[i].Points[:0]
	}
	all := g.groups[:cap(g.groups)]
	g.groups = g.groups[:0]
	if g.index == nil {
		g.index = make(map[Color]int)
	}
	clear(g.index)

	for _, p := range points {
		c := p.Color.Or(fallback)
		p.Color = c
		i, ok := g.index[c]
		if !ok {
			i = len(g.groups)
			g.index[c] = i
			if i < len(all) {
				// reuse the bucket left from a previous frame
				g.groups = g.groups[:i+1]
				g.groups[i].Color = c
				g.groups[i].Points = g.groups[i].Points[:0]
			} else {
				g.groups = append(g.groups, ColorGroup{Color: c})
			}
		}
		g.groups[i].Points = append(g.groups[i].Points, p)
	}
	return g.groups
}
