package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cartmarsh/toneSamples/core/bank"
	"github.com/cartmarsh/toneSamples/core/session"
	"github.com/cartmarsh/toneSamples/internal/export"
	game_log "github.com/cartmarsh/toneSamples/internal/log"
)

// Config sizes the window and tunes the view layer.
type Config struct {
	Width, Height int
	// GapScale converts gap-handle drag pixels into seconds of silence.
	GapScale float64
}

func DefaultConfig() Config {
	return Config{Width: 960, Height: 640, GapScale: 0.01}
}

const bankWidth = 220

// Game wires the session to ebiten: one canvas, the control panel, the
// bank list and the timeline lanes.
type Game struct {
	sess   *session.Session
	logger *game_log.Logger
	cfg    Config

	panel    *Panel
	canvas   *CanvasView
	bankView *BankView
	timeline *TimelineView
}

func New(sess *session.Session, logger *game_log.Logger, cfg Config) *Game {
	if cfg.Width == 0 || cfg.Height == 0 {
		cfg = DefaultConfig()
	}
	canvasRect := image.Rect(0, PanelHeight, cfg.Width, cfg.Height-200)
	bankRect := image.Rect(0, cfg.Height-200, bankWidth, cfg.Height)
	tlRect := image.Rect(bankWidth, cfg.Height-200, cfg.Width, cfg.Height)

	g := &Game{sess: sess, logger: logger, cfg: cfg}
	g.panel = NewPanel(sess)
	g.canvas = NewCanvasView(canvasRect, sess, cfg.GapScale)
	g.bankView = NewBankView(bankRect, sess)
	g.bankView.Export = func(s bank.Sound) error {
		err := export.WriteSound(s.Name+".wav", s, float64(canvasRect.Dy()))
		if err != nil {
			logger.Warnf("[UI] export %q: %v", s.Name, err)
		}
		return err
	}
	g.timeline = NewTimelineView(tlRect, sess, g.bankView)
	return g
}

func (g *Game) Update() error {
	g.panel.Update()
	g.canvas.Update()
	g.bankView.Update()
	g.timeline.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBG)
	g.canvas.Draw(screen)
	g.bankView.Draw(screen)
	g.timeline.Draw(screen)
	g.panel.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
