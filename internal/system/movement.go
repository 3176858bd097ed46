// internal/system/movement.go
package system

import (
	"go-minimap/internal/entity"
)

// MovementSystem двигает сущности и отражает их от границ мира
type MovementSystem struct {
	ecs           *entity.ECS
	width, height float64
}

func NewMovementSystem(ecs *entity.ECS, worldWidth, worldHeight float64) *MovementSystem {
	return &MovementSystem{ecs: ecs, width: worldWidth, height: worldHeight}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, pos := range s.ecs.Positions {
		vel, hasVel := s.ecs.Velocities[id]
		if !hasVel {
			continue
		}
		pos.X += vel.X * deltaTime
		pos.Y += vel.Y * deltaTime

		// Вылетели за границу: разворачиваем скорость.
		// Позицию не зажимаем, сущность вернётся сама на следующем шаге.
		if (pos.X > s.width && vel.X > 0) || (pos.X < 0 && vel.X < 0) {
			vel.X = -vel.X
		}
		if (pos.Y > s.height && vel.Y > 0) || (pos.Y < 0 && vel.Y < 0) {
			vel.Y = -vel.Y
		}
	}
}
