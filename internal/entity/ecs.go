// internal/entity/ecs.go
package entity

import (
	"slices"

	"go-minimap/internal/component"
	"go-minimap/internal/minimap"
	"go-minimap/internal/types"
)

// ECS хранит компоненты демо-мира
type ECS struct {
	NextID     types.EntityID
	Positions  map[types.EntityID]*component.Position
	Velocities map[types.EntityID]*component.Velocity
	Markers    map[types.EntityID]*component.Marker
	Walls      []minimap.GridPoint // уже в координатах сетки
}

func NewECS() *ECS {
	return &ECS{
		NextID:     1,
		Positions:  make(map[types.EntityID]*component.Position),
		Velocities: make(map[types.EntityID]*component.Velocity),
		Markers:    make(map[types.EntityID]*component.Marker),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Markers, id)
}

// MarkedIDs возвращает отсортированные ID сущностей с маркером и позицией.
// Порядок стабилен, поэтому порядок цветовых групп на миникарте тоже.
func (ecs *ECS) MarkedIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Markers))
	for id := range ecs.Markers {
		if _, ok := ecs.Positions[id]; ok {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}
