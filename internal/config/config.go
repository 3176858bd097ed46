// internal/config/config.go
package config

import (
	"image/color"

	"go-minimap/internal/minimap"
)

const (
	ScreenWidth  = 1024
	ScreenHeight = 768
	MaxDeltaTime = 0.06

	// Мир совпадает с экраном, как в исходной сцене
	WorldWidth  = 1024.0
	WorldHeight = 768.0

	// Сколько мировых единиц покрывает один пиксель миникарты.
	// Больше значение: карта грубее, но рисуется быстрее.
	GridCellSize = 16.0

	// Миникарта показывается в 1/4 размера экрана
	DisplayDivisor = 4
	MinimapMargin  = 8

	// Обновлений миникарты в секунду. Держать низким ради производительности.
	UpdateRate = 10.0

	NumMovers     = 10
	MoverMaxSpeed = 500.0
	MoverRadius   = 16.0

	// Кольцо стен в координатах сетки
	WallRingOffset = 4.0
	WallRingRadius = 4.0
	WallRingSteps  = 16

	WallAlpha = 1.0
	Seed      = 0 // 0: сид от текущего времени

	HUDLineHeight = 16
)

const (
	ClearColor minimap.Color = 0x000000
	WallColor  minimap.Color = 0xffffff
	UserColor  minimap.Color = 0xffffff
)

var (
	BackgroundColor  = color.RGBA{161, 224, 100, 255}
	MoverColor       = color.RGBA{220, 60, 60, 255}
	MoverStrokeColor = color.RGBA{255, 255, 255, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	PausedOverlay    = color.RGBA{0, 0, 0, 128}
)
