// internal/state/pause_state.go
package state

import (
	"go-minimap/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.Resume()
	}
}

// Resume возвращает предыдущее состояние
func (s *PauseState) Resume() {
	s.stateMachine.SetState(s.previousState)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}

	vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), float32(config.ScreenHeight), config.PausedOverlay, false)

	pauseText := "PAUSED"
	bounds := text.BoundString(basicfont.Face7x13, pauseText)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	y := config.ScreenHeight / 2
	text.Draw(screen, pauseText, basicfont.Face7x13, x, y, config.TextLightColor)
}

func (s *PauseState) Exit() {}
