// internal/event/types.go
package event

const (
	MinimapResized EventType = "MinimapResized" // Data: Resize
	MinimapCleared EventType = "MinimapCleared" // Data: nil
	MinimapRedrawn EventType = "MinimapRedrawn" // Data: minimap.FrameStats
	MoverSpawned   EventType = "MoverSpawned"   // Data: types.EntityID
)

// Resize описывает новый размер поверхности миникарты
type Resize struct {
	Width, Height               int // в клетках сетки
	DisplayWidth, DisplayHeight int // в пикселях экрана
}
