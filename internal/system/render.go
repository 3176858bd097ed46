// internal/system/render.go
package system

import (
	"go-minimap/internal/config"
	"go-minimap/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.ecs.MarkedIDs() {
		pos := s.ecs.Positions[id]
		x, y := float32(pos.X), float32(pos.Y)
		vector.DrawFilledCircle(screen, x, y, config.MoverRadius+2, config.MoverStrokeColor, true)
		vector.DrawFilledCircle(screen, x, y, config.MoverRadius, config.MoverColor, true)
	}
}
