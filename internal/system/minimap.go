// internal/system/minimap.go
package system

import (
	"time"

	"go-minimap/internal/entity"
	"go-minimap/internal/event"
	"go-minimap/internal/minimap"
	"go-minimap/internal/throttle"
)

// MinimapSystem переводит мир в точки сетки и перерисовывает миникарту
// не чаще, чем раз в интервал.
type MinimapSystem struct {
	ecs        *entity.ECS
	compositor *minimap.Compositor
	grid       minimap.Grid
	throttle   *throttle.Throttle
	dispatcher *event.Dispatcher
	users      []minimap.GridPoint // переиспользуется между кадрами
	clearAlpha float64
	frozen     bool
}

func NewMinimapSystem(ecs *entity.ECS, compositor *minimap.Compositor, grid minimap.Grid, interval time.Duration, dispatcher *event.Dispatcher, opts ...throttle.Option) *MinimapSystem {
	return &MinimapSystem{
		ecs:        ecs,
		compositor: compositor,
		grid:       grid,
		throttle:   throttle.New(interval, opts...),
		dispatcher: dispatcher,
		clearAlpha: 1,
	}
}

// Update вызывается каждый кадр; перерисовка пропускается, пока не прошёл интервал
func (s *MinimapSystem) Update() bool {
	if s.frozen || !s.throttle.Allow() {
		return false
	}
	s.Refresh()
	return true
}

// Refresh очищает поверхность и рисует стены и сущности без учёта интервала
func (s *MinimapSystem) Refresh() {
	s.compositor.ClearWithColor(minimap.NoColor, s.clearAlpha)
	s.dispatcher.Dispatch(event.Event{Type: event.MinimapCleared})

	// Без точек DrawPoints сам очищает поверхность непрозрачно и перекрыл бы
	// фон с clearAlpha, поэтому пустой кадр остаётся только очищенным.
	if users := s.UserPoints(); len(users) > 0 || len(s.ecs.Walls) > 0 {
		s.compositor.DrawPoints(users, s.ecs.Walls)
	}
	s.dispatcher.Dispatch(event.Event{Type: event.MinimapRedrawn, Data: s.compositor.Stats()})
}

// UserPoints возвращает сущности с маркером в координатах сетки.
// Срез принадлежит системе и действителен до следующего вызова.
func (s *MinimapSystem) UserPoints() []minimap.GridPoint {
	s.users = s.users[:0]
	for _, id := range s.ecs.MarkedIDs() {
		pos := s.ecs.Positions[id]
		s.users = append(s.users, s.grid.Point(pos.X, pos.Y, s.ecs.Markers[id].Color))
	}
	return s.users
}

// Resize подгоняет сетку под размер мира и задаёт размер на экране.
// Содержимое поверхности теряется, следующий Update рисует сразу.
func (s *MinimapSystem) Resize(worldWidth, worldHeight float64, displayWidth, displayHeight int) {
	w, h := s.grid.SurfaceSize(worldWidth, worldHeight)
	s.compositor.SetSize(w, h).SetDisplaySize(displayWidth, displayHeight).Clear()
	s.throttle.Reset()

	w, h = s.compositor.Size()
	dw, dh := s.compositor.DisplaySize()
	s.dispatcher.Dispatch(event.Event{Type: event.MinimapResized, Data: event.Resize{
		Width: w, Height: h, DisplayWidth: dw, DisplayHeight: dh,
	}})
}

// SetClearAlpha задаёт прозрачность фона при перерисовке; 0 оставляет
// видимыми только стены и сущности. Кадр без стен и сущностей тоже
// очищается с этой прозрачностью.
func (s *MinimapSystem) SetClearAlpha(alpha float64) { s.clearAlpha = alpha }

// SetFrozen останавливает перерисовку, например на паузе
func (s *MinimapSystem) SetFrozen(frozen bool) { s.frozen = frozen }

func (s *MinimapSystem) Frozen() bool { return s.frozen }

func (s *MinimapSystem) Compositor() *minimap.Compositor { return s.compositor }

// Stats возвращает число выполненных и пропущенных перерисовок
func (s *MinimapSystem) Stats() (redrawn, skipped uint64) {
	return s.throttle.Stats()
}
