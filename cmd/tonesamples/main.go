package main

import (
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/cartmarsh/toneSamples/core/play"
	"github.com/cartmarsh/toneSamples/core/session"
	game_log "github.com/cartmarsh/toneSamples/internal/log"
	"github.com/cartmarsh/toneSamples/internal/synth"
	"github.com/cartmarsh/toneSamples/internal/ui"
)

func main() {
	// Optional .env; env vars win either way.
	_ = godotenv.Load()

	logger := game_log.New(os.Stderr, game_log.LevelFromString(os.Getenv("LOG_LEVEL")))

	cfg := ui.DefaultConfig()
	if v, err := strconv.Atoi(os.Getenv("WINDOW_WIDTH")); err == nil && v > 0 {
		cfg.Width = v
	}
	if v, err := strconv.Atoi(os.Getenv("WINDOW_HEIGHT")); err == nil && v > 0 {
		cfg.Height = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("GAP_SCALE"), 64); err == nil && v > 0 {
		cfg.GapScale = v
	}

	layers := play.DefaultLayers
	if os.Getenv("CHORD_MODE") == "1" {
		layers = play.ChordLayers
	}

	engine := synth.NewEngine(logger)
	defer engine.Close()

	canvasH := float64(cfg.Height - ui.PanelHeight - 200)
	sess := session.New(session.Config{
		Synth:   engine,
		Control: engine,
		CanvasW: float64(cfg.Width),
		CanvasH: canvasH,
		Layers:  layers,
		Logger:  logger,
	})

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("toneSamples")
	if err := ebiten.RunGame(ui.New(sess, logger, cfg)); err != nil {
		logger.Errorf("[MAIN] %v", err)
		os.Exit(1)
	}
}
