// cmd/minimap-snapshot/main.go
//
// minimap-snapshot runs the demo world without a window for a number of
// fixed-step ticks and writes the minimap at display size as a PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"time"

	"go-minimap/internal/config"
	"go-minimap/internal/entity"
	"go-minimap/internal/event"
	"go-minimap/internal/minimap"
	"go-minimap/internal/system"
	"go-minimap/internal/throttle"
	"go-minimap/internal/utils"
	"go-minimap/pkg/render"
)

func main() {
	configPath := flag.String("config", "", "JSON settings file (defaults if empty)")
	ticks := flag.Int("ticks", 120, "simulation ticks to run")
	tps := flag.Float64("tps", 60, "ticks per simulated second")
	out := flag.String("out", "minimap.png", "PNG output path")
	transparent := flag.Bool("transparent", false, "clear to a transparent background")
	preview := flag.Bool("preview", false, "print an ANSI preview of the grid to stdout")
	seed := flag.Int64("seed", 0, "PRNG seed overriding the settings, 0 keeps the configured one")
	verbose := flag.Bool("v", false, "log minimap internals")
	flag.Parse()

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
	if *seed != 0 {
		settings.Seed = *seed
	}
	if *ticks < 0 || *tps <= 0 {
		log.Fatalf("invalid -ticks %d / -tps %v", *ticks, *tps)
	}

	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	clock := utils.NewClock()
	system.Populate(ecs, utils.NewPRNGService(settings.Seed), dispatcher, settings)

	surface := render.NewPixmapSurface(settings.SurfaceSize())
	compositor := minimap.New(surface, settings.MinimapOptions()...)
	minimapSystem := system.NewMinimapSystem(ecs, compositor, settings.Grid(), settings.UpdateInterval(), dispatcher, throttle.WithClock(clock.Now))
	if *transparent {
		minimapSystem.SetClearAlpha(0)
	}
	minimapSystem.Resize(settings.WorldWidth, settings.WorldHeight, settings.DisplayWidth, settings.DisplayHeight)
	movement := system.NewMovementSystem(ecs, settings.WorldWidth, settings.WorldHeight)

	dt := 1 / *tps
	minimapSystem.Update()
	for i := 0; i < *ticks; i++ {
		clock.Advance(dt)
		movement.Update(dt)
		minimapSystem.Update()
	}

	if err := surface.SavePNG(*out); err != nil {
		log.Fatal(err)
	}

	redrawn, skipped := minimapSystem.Stats()
	stats := compositor.Stats()
	w, h := compositor.Size()
	dw, dh := compositor.DisplaySize()
	log.Printf("%s: grid %dx%d, display %dx%d, %v simulated, %d redraws (%d skipped), %d batches in the last frame",
		*out, w, h, dw, dh, clock.Elapsed().Round(time.Millisecond), redrawn, skipped, stats.Batches())

	if *preview {
		fmt.Print(render.ANSI(surface.Image()))
	}
}
