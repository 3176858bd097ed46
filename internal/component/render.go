// component/render.go
package component

import "go-minimap/internal/minimap"

// Marker помечает сущность, видимую на миникарте
type Marker struct {
	Color minimap.Color // minimap.NoColor, если цвет не задан
}
