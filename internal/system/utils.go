// internal/system/utils.go
package system

import (
	"math"

	"go-minimap/internal/component"
	"go-minimap/internal/config"
	"go-minimap/internal/entity"
	"go-minimap/internal/event"
	"go-minimap/internal/minimap"
	"go-minimap/internal/types"
	"go-minimap/internal/utils"
)

// MoverColor даёт каждой сущности свой цвет, чтобы следить за ней на карте.
// Значение растёт как 255·idx³ и обрезается до 24 бит, поэтому никогда
// не совпадает с minimap.NoColor.
func MoverColor(idx int) minimap.Color {
	return minimap.Color(uint32(idx*255*(idx*idx)) & 0xFFFFFF)
}

// SpawnMovers создаёт n сущностей в точке (x, y) со случайной скоростью
// по каждой оси в диапазоне [0, maxSpeed).
func SpawnMovers(ecs *entity.ECS, rng *utils.PRNGService, dispatcher *event.Dispatcher, n int, x, y, maxSpeed float64) []types.EntityID {
	ids := make([]types.EntityID, 0, n)
	for i := 0; i < n; i++ {
		id := ecs.NewEntity()
		ecs.Positions[id] = &component.Position{X: x, Y: y}
		ecs.Velocities[id] = &component.Velocity{
			X: rng.Range(0, maxSpeed),
			Y: rng.Range(0, maxSpeed),
		}
		ecs.Markers[id] = &component.Marker{Color: MoverColor(len(ecs.Markers))}
		ids = append(ids, id)
		dispatcher.Dispatch(event.Event{Type: event.MoverSpawned, Data: id})
	}
	return ids
}

// WallRing возвращает точки стен на окружности в координатах сетки:
// steps точек с центром в (offset+radius, offset+radius).
func WallRing(offset, radius float64, steps int) []minimap.GridPoint {
	walls := make([]minimap.GridPoint, 0, steps)
	for i := 0; i < steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		walls = append(walls, minimap.Point(
			offset+radius+math.Cos(angle)*radius,
			offset+radius+math.Sin(angle)*radius,
		))
	}
	return walls
}

// Populate наполняет пустой мир по настройкам: сущности стартуют из центра,
// вокруг угла карты стоит кольцо стен.
func Populate(ecs *entity.ECS, rng *utils.PRNGService, dispatcher *event.Dispatcher, settings config.Settings) {
	SpawnMovers(ecs, rng, dispatcher, settings.Movers, settings.WorldWidth/2, settings.WorldHeight/2, settings.MaxSpeed)
	ecs.Walls = WallRing(config.WallRingOffset, config.WallRingRadius, config.WallRingSteps)
}
