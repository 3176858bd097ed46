package minimap

// Option configures a Compositor.
type Option func(*Compositor)

// WithWallColor sets the color every wall point is drawn in. Default white.
func WithWallColor(c Color) Option {
	return func(m *Compositor) { m.wallColor = c.Or(White) }
}

// WithWallAlpha sets the opacity of the wall batch. Default 1.
func WithWallAlpha(alpha float64) Option {
	return func(m *Compositor) { m.wallAlpha = ClampAlpha(alpha) }
}

// WithUserColor sets the color used for user points without one. Default white.
func WithUserColor(c Color) Option {
	return func(m *Compositor) { m.userColor = c.Or(White) }
}

// WithUserAlpha sets the opacity of every user color batch. Default 1.
func WithUserAlpha(alpha float64) Option {
	return func(m *Compositor) { m.userAlpha = ClampAlpha(alpha) }
}

// WithClearColor sets the color Clear fills with. Default black.
func WithClearColor(c Color) Option {
	return func(m *Compositor) { m.clearColor = c.Or(Black) }
}

// WithPoolSize pre-allocates n cursors.
func WithPoolSize(n int) Option {
	return func(m *Compositor) { m.pool.Grow(n) }
}

// Compositor batches colored grid points onto a Surface. Walls go down first
// as one batch, then users as one batch per distinct color, so the number of
// draw operations is bounded by the number of colors rather than points.
//
// The compositor owns its pool exclusively. It is not safe for concurrent
// use: one update loop drives it.
type Compositor struct {
	surface Surface
	pool    *Pool
	groups  grouper

	wallColor  Color
	wallAlpha  float64
	userColor  Color
	userAlpha  float64
	clearColor Color

	displayWidth  int
	displayHeight int

	stats FrameStats
}

// New creates a compositor over s.
func New(s Surface, opts ...Option) *Compositor {
	m := &Compositor{
		surface:    s,
		pool:       NewPool(),
		wallColor:  White,
		wallAlpha:  1,
		userColor:  White,
		userAlpha:  1,
		clearColor: Black,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Surface returns the surface the compositor draws into.
func (m *Compositor) Surface() Surface { return m.surface }

// Size returns the grid resolution of the surface.
func (m *Compositor) Size() (int, int) { return m.surface.Size() }

// DisplaySize returns the on-screen size set by SetDisplaySize, or the grid
// size when none was set.
func (m *Compositor) DisplaySize() (int, int) {
	if m.displayWidth == 0 || m.displayHeight == 0 {
		return m.surface.Size()
	}
	return m.displayWidth, m.displayHeight
}

// SetSize resizes the surface to width x height grid cells. Resizing is
// destructive: call Clear before relying on the contents. Dimensions below 1
// are clamped to 1.
func (m *Compositor) SetSize(width, height int) *Compositor {
	if width < 1 || height < 1 {
		Logger().Warn("minimap: surface size clamped", "width", width, "height", height)
		width, height = max(width, 1), max(height, 1)
	}
	m.surface.Resize(width, height)
	Logger().Debug("minimap: surface resized", "width", width, "height", height)
	return m
}

// SetDisplaySize sets the presented size, independent of the grid resolution.
func (m *Compositor) SetDisplaySize(width, height int) *Compositor {
	m.displayWidth, m.displayHeight = width, height
	if ds, ok := m.surface.(DisplayScaler); ok {
		ds.SetDisplaySize(width, height)
	}
	return m
}

// Clear fills the surface with the clear color at full opacity.
func (m *Compositor) Clear() *Compositor {
	return m.ClearWithColor(m.clearColor, 1)
}

// ClearWithColor fills the surface with c at alpha, discarding everything
// drawn so far.
func (m *Compositor) ClearWithColor(c Color, alpha float64) *Compositor {
	m.surface.Fill(c.Or(m.clearColor), ClampAlpha(alpha))
	m.stats.reset()
	m.stats.Cleared = true
	return m
}

// DrawPoints draws walls in the configured wall color and alpha, then users.
func (m *Compositor) DrawPoints(users, walls []GridPoint) *Compositor {
	return m.DrawPointsStyled(users, walls, m.wallColor, m.wallAlpha)
}

// DrawPointsStyled draws walls as a single batch of wallColor at wallAlpha,
// then users grouped by color inside one composite bracket. Users land on top
// of walls; across user colors the first color seen is drawn first.
//
// With no points at all the surface is cleared instead.
func (m *Compositor) DrawPointsStyled(users, walls []GridPoint, wallColor Color, wallAlpha float64) *Compositor {
	if len(users) == 0 && len(walls) == 0 {
		return m.Clear()
	}
	m.stats.reset()
	created := m.pool.Created()

	if len(walls) > 0 {
		batch := m.pool.Prepare(walls, wallColor.Or(m.wallColor))
		m.surface.Composite(batch, ClampAlpha(wallAlpha))
		m.pool.ReleaseAll()
		m.stats.WallPoints = len(walls)
		m.stats.WallBatches = 1
	}

	if groups := m.groups.group(users, m.userColor); len(groups) > 0 {
		m.surface.Begin()
		for _, g := range groups {
			batch := m.pool.Prepare(g.Points, g.Color)
			m.surface.Composite(batch, m.userAlpha)
			m.pool.ReleaseAll()
			m.stats.Groups = append(m.stats.Groups, GroupStat{Color: g.Color, Points: len(g.Points)})
		}
		m.surface.End()
		m.stats.UserPoints = len(users)
		m.stats.UserBatches = len(groups)
	}

	if grown := m.pool.Created() - created; grown > 0 {
		Logger().Debug("minimap: cursor pool grew", "new", grown, "total", m.pool.Created())
	}
	return m
}

// Stats describes the most recent Clear or DrawPoints call.
func (m *Compositor) Stats() FrameStats {
	s := m.stats
	s.Groups = append([]GroupStat(nil), m.stats.Groups...)
	return s
}

// PoolStats reports cursor pool occupancy.
func (m *Compositor) PoolStats() PoolStats {
	return PoolStats{
		Created: m.pool.Created(),
		Free:    m.pool.FreeLen(),
		Active:  m.pool.ActiveLen(),
	}
}

// FrameStats counts what one draw call issued.
type FrameStats struct {
	Cleared     bool
	WallPoints  int
	UserPoints  int
	WallBatches int
	UserBatches int
	Groups      []GroupStat
}

// Batches is the total number of composite operations.
func (s FrameStats) Batches() int {
	return s.WallBatches + s.UserBatches
}

func (s *FrameStats) reset() {
	groups := s.Groups[:0]
	*s = FrameStats{Groups: groups}
}

// GroupStat is one user color batch.
type GroupStat struct {
	Color  Color
	Points int
}

// PoolStats is a snapshot of cursor ownership.
type PoolStats struct {
	Created int
	Free    int
	Active  int
}
