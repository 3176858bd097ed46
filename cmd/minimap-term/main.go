// cmd/minimap-term/main.go
//
// minimap-term runs the demo world and draws only its minimap, live, in the
// terminal. Keys: space spawns a mover, p pauses, r redraws, q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-minimap/internal/config"
	"go-minimap/internal/entity"
	"go-minimap/internal/event"
	"go-minimap/internal/minimap"
	"go-minimap/internal/system"
	"go-minimap/internal/throttle"
	"go-minimap/internal/utils"
	"go-minimap/pkg/render"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

type termApp struct {
	screen     tcell.Screen
	settings   config.Settings
	ecs        *entity.ECS
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	clock      *utils.Clock
	movement   *system.MovementSystem
	minimap    *system.MinimapSystem
	surface    *render.TerminalSurface
	paused     bool
	lastFrame  minimap.FrameStats
}

func newTermApp(screen tcell.Screen, settings config.Settings) *termApp {
	a := &termApp{
		screen:     screen,
		settings:   settings,
		ecs:        entity.NewECS(),
		rng:        utils.NewPRNGService(settings.Seed),
		dispatcher: event.NewDispatcher(),
		clock:      utils.NewClock(),
	}
	a.dispatcher.Subscribe(event.MinimapRedrawn, event.ListenerFunc(func(e event.Event) {
		a.lastFrame, _ = e.Data.(minimap.FrameStats)
	}))
	system.Populate(a.ecs, a.rng, a.dispatcher, settings)

	w, h := settings.SurfaceSize()
	a.surface = render.NewTerminalSurface(screen, w, h)
	a.surface.SetOrigin(0, 1)
	compositor := minimap.New(a.surface, settings.MinimapOptions()...)
	a.minimap = system.NewMinimapSystem(a.ecs, compositor, settings.Grid(), settings.UpdateInterval(), a.dispatcher, throttle.WithClock(a.clock.Now))
	a.minimap.Resize(settings.WorldWidth, settings.WorldHeight, w, h)
	a.movement = system.NewMovementSystem(a.ecs, settings.WorldWidth, settings.WorldHeight)
	return a
}

// handleInput returns false when the app should quit.
func (a *termApp) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case 'p':
			a.paused = !a.paused
			a.minimap.SetFrozen(a.paused)
		case 'r':
			a.minimap.Refresh()
		case ' ':
			system.SpawnMovers(a.ecs, a.rng, a.dispatcher, 1, a.settings.WorldWidth/2, a.settings.WorldHeight/2, a.settings.MaxSpeed)
		}
	case *tcell.EventResize:
		a.screen.Clear()
		a.surface.SetOrigin(0, 1)
		a.screen.Sync()
	}
	return true
}

func (a *termApp) update(deltaTime float64) {
	if !a.paused {
		a.clock.Advance(deltaTime)
		a.movement.Update(deltaTime)
		a.minimap.Update()
	}
	a.drawStatus()
	a.screen.Show()
}

func (a *termApp) drawStatus() {
	redrawn, skipped := a.minimap.Stats()
	status := fmt.Sprintf(" movers %d  redraws %d  skipped %d  batches %d ", len(a.ecs.Markers), redrawn, skipped, a.lastFrame.Batches())
	if a.paused {
		status += " PAUSED "
	}
	width, _ := a.screen.Size()
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		a.screen.SetContent(x, 0, r, nil, style)
	}
}

func (a *termApp) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			deltaTime := min(now.Sub(last).Seconds(), config.MaxDeltaTime)
			last = now
			a.update(deltaTime)
		}
	}
}

func main() {
	configPath := flag.String("config", "", "JSON settings file (defaults if empty)")
	logPath := flag.String("log", "", "write minimap debug logs to this file")
	flag.Parse()

	settings := config.DefaultSettings()
	if *configPath != "" {
		var err error
		if settings, err = config.LoadSettings(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	// stderr belongs to the terminal UI, so logs go to a file
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		minimap.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	newTermApp(screen, settings).run()
}
