// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-minimap/internal/config"
	"go-minimap/internal/minimap"
	"go-minimap/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "JSON settings file (defaults if empty)")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	verbose := flag.Bool("v", false, "log minimap internals")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}
	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		minimap.SetLogger(slog.Default())
	}

	settings := config.DefaultSettings()
	if *configPath != "" {
		var err error
		if settings, err = config.LoadSettings(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewSceneState(sm, settings))
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Minimap")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
