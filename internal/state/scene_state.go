// internal/state/scene_state.go
package state

import (
	"fmt"
	"log"

	"go-minimap/internal/config"
	"go-minimap/internal/entity"
	"go-minimap/internal/event"
	"go-minimap/internal/minimap"
	"go-minimap/internal/system"
	"go-minimap/internal/throttle"
	"go-minimap/internal/ui"
	"go-minimap/internal/utils"
	"go-minimap/pkg/render"
	"go-minimap/pkg/render/ebitensurface"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что SceneState соответствует интерфейсу State
var _ State = (*SceneState)(nil)

// SceneState демо-сцена: сущности летают по экрану, миникарта в углу
type SceneState struct {
	sm         *StateMachine
	settings   config.Settings
	ecs        *entity.ECS
	clock      *utils.Clock
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher

	movement *system.MovementSystem
	minimap  *system.MinimapSystem
	renderer *system.RenderSystem
	surface  *ebitensurface.Surface

	infoPanel *ui.InfoPanel
}

func NewSceneState(sm *StateMachine, settings config.Settings) *SceneState {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	clock := utils.NewClock()

	// Панель подписывается раньше, чем появятся сущности
	infoPanel := ui.NewInfoPanel(basicfont.Face7x13, dispatcher)

	rng := utils.NewPRNGService(settings.Seed)
	system.Populate(ecs, rng, dispatcher, settings)

	w, h := settings.SurfaceSize()
	surface := ebitensurface.New(w, h)
	compositor := minimap.New(surface, settings.MinimapOptions()...)
	minimapSystem := system.NewMinimapSystem(ecs, compositor, settings.Grid(), settings.UpdateInterval(), dispatcher, throttle.WithClock(clock.Now))
	minimapSystem.Resize(settings.WorldWidth, settings.WorldHeight, settings.DisplayWidth, settings.DisplayHeight)

	return &SceneState{
		sm:         sm,
		settings:   settings,
		ecs:        ecs,
		clock:      clock,
		rng:        rng,
		dispatcher: dispatcher,
		movement:   system.NewMovementSystem(ecs, settings.WorldWidth, settings.WorldHeight),
		minimap:    minimapSystem,
		renderer:   system.NewRenderSystem(ecs),
		surface:    surface,
		infoPanel:  infoPanel,
	}
}

func (s *SceneState) Enter() {
	s.minimap.SetFrozen(false)
}

func (s *SceneState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		ids := system.SpawnMovers(s.ecs, s.rng, s.dispatcher, 1, s.settings.WorldWidth/2, s.settings.WorldHeight/2, s.settings.MaxSpeed)
		log.Printf("mover %d spawned", ids[0])
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.infoPanel.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		// Перерисовка вне очереди, интервал не учитывается
		s.minimap.Refresh()
	}

	s.clock.Advance(deltaTime)
	s.movement.Update(deltaTime)
	s.minimap.Update()
	s.infoPanel.Update()
}

func (s *SceneState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.renderer.Draw(screen)
	s.surface.DrawTo(screen, config.MinimapMargin, config.MinimapMargin)
	s.drawFrame(screen)
	s.infoPanel.Draw(screen)

	redrawn, skipped := s.minimap.Stats()
	pool := s.minimap.Compositor().PoolStats()
	msg := fmt.Sprintf("TPS: %0.1f  FPS: %0.1f\nMovers: %d\nRedraws: %d  Skipped: %d\nCursors: %d\n[Space] spawn  [Tab] stats  [R] redraw  [P] pause",
		ebiten.ActualTPS(), ebiten.ActualFPS(), len(s.ecs.Markers), redrawn, skipped, pool.Created)
	ebitenutil.DebugPrintAt(screen, msg, config.ScreenWidth-320, config.MinimapMargin)
}

// drawFrame обводит миникарту рамкой темнее цвета стен
func (s *SceneState) drawFrame(screen *ebiten.Image) {
	wall, err := minimap.ParseColor(s.settings.WallColor)
	if err != nil {
		wall = config.WallColor
	}
	dw, dh := s.minimap.Compositor().DisplaySize()
	vector.StrokeRect(screen, config.MinimapMargin-1, config.MinimapMargin-1, float32(dw)+2, float32(dh)+2, 2, render.DarkenColor(wall).NRGBA(1), false)
}

func (s *SceneState) Exit() {
	// Пока сцена не активна, миникарта показывает последний кадр
	s.minimap.SetFrozen(true)
}
