// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"go-minimap/internal/config"
	"go-minimap/internal/event"
	"go-minimap/internal/minimap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 110
	panelWidth     = 300
	panelMargin    = 5
	animationSpeed = 10.0
	maxGroupLines  = 3
)

// InfoPanel показывает статистику последней перерисовки миникарты.
// Данные приходят через диспетчер событий.
type InfoPanel struct {
	IsVisible bool
	fontFace  font.Face
	currentY  float64
	targetY   float64

	stats   minimap.FrameStats
	size    event.Resize
	redraws int
	clears  int
	movers  int
}

// NewInfoPanel создаёт скрытую панель и подписывает её на события миникарты
func NewInfoPanel(face font.Face, dispatcher *event.Dispatcher) *InfoPanel {
	p := &InfoPanel{
		fontFace: face,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
	dispatcher.SubscribeMany(p, event.MinimapResized, event.MinimapCleared, event.MinimapRedrawn, event.MoverSpawned)
	return p
}

func (p *InfoPanel) OnEvent(e event.Event) {
	switch e.Type {
	case event.MinimapResized:
		if r, ok := e.Data.(event.Resize); ok {
			p.size = r
		}
	case event.MinimapCleared:
		p.clears++
	case event.MinimapRedrawn:
		if s, ok := e.Data.(minimap.FrameStats); ok {
			p.stats = s
			p.redraws++
		}
	case event.MoverSpawned:
		p.movers++
	}
}

func (p *InfoPanel) Show() {
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

func (p *InfoPanel) Toggle() {
	if p.IsVisible && p.targetY < config.ScreenHeight {
		p.Hide()
		return
	}
	p.Show()
}

func (p *InfoPanel) Update() {
	// Анимация панели
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}

		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
		}
	}
}

// Lines возвращает строки панели сверху вниз
func (p *InfoPanel) Lines() []string {
	lines := []string{
		fmt.Sprintf("Grid: %dx%d  Display: %dx%d", p.size.Width, p.size.Height, p.size.DisplayWidth, p.size.DisplayHeight),
		fmt.Sprintf("Redraws: %d  Clears: %d  Movers: %d", p.redraws, p.clears, p.movers),
		fmt.Sprintf("Walls: %d  Users: %d  Batches: %d", p.stats.WallPoints, p.stats.UserPoints, p.stats.Batches()),
	}
	for i, g := range p.stats.Groups {
		if i == maxGroupLines {
			lines = append(lines, fmt.Sprintf("  ... %d more", len(p.stats.Groups)-maxGroupLines))
			break
		}
		lines = append(lines, fmt.Sprintf("  %s x%d", g.Color, g.Points))
	}
	return lines
}

func (p *InfoPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		panelWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	y := panelRect.Min.Y + config.HUDLineHeight
	for _, line := range p.Lines() {
		text.Draw(screen, line, p.fontFace, panelRect.Min.X+10, y, config.TextLightColor)
		y += config.HUDLineHeight
	}
}
