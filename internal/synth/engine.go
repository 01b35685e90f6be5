package synth

import (
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/cartmarsh/toneSamples/core/play"
	game_log "github.com/cartmarsh/toneSamples/internal/log"
)

const bufferSizeBytes10ms = SampleRate / 100 * 2 // 10ms of 16-bit mono audio

// Engine realizes scheduled synth commands through an oto playback device.
// When the device cannot be opened the engine stays inert: commands are
// accepted and dropped, and Now falls back to wall time, so the rest of the
// app keeps working without sound.
type Engine struct {
	mu     sync.Mutex
	r      *renderer
	ctx    *oto.Context
	player *oto.Player
	start  time.Time
	logger *game_log.Logger
}

var _ play.Synth = (*Engine)(nil)
var _ play.Control = (*Engine)(nil)

func NewEngine(logger *game_log.Logger) *Engine {
	e := &Engine{r: newRenderer(), start: time.Now(), logger: logger}
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		logger.Errorf("[SYNTH] Audio device unavailable, running silent: %v", err)
		return e
	}
	<-ready
	e.ctx = ctx
	p := ctx.NewPlayer(e)
	p.SetBufferSize(bufferSizeBytes10ms)
	p.Play()
	e.player = p
	return e
}

// Read implements io.Reader for oto.Player.
func (e *Engine) Read(p []byte) (int, error) {
	samples := len(p) / 2
	buf := make([]float64, samples)
	e.mu.Lock()
	e.r.render(buf)
	e.mu.Unlock()
	for i, s := range buf {
		v := int16(s * 32767)
		p[2*i] = byte(v)
		p[2*i+1] = byte(v >> 8)
	}
	return len(p), nil
}

// Now returns seconds on the engine clock: the sample position when the
// device is live, wall time since start otherwise.
func (e *Engine) Now() float64 {
	if e.ctx == nil {
		return time.Since(e.start).Seconds()
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.r.now()
}

func (e *Engine) schedule(c command) {
	if e.ctx == nil {
		return
	}
	e.mu.Lock()
	e.r.schedule(c)
	e.mu.Unlock()
}

func (e *Engine) Attack(voice int, freqHz, at float64) {
	e.schedule(command{at: at, kind: cmdAttack, voice: voice, freq: freqHz})
}

func (e *Engine) Release(voice int, at float64) {
	e.schedule(command{at: at, kind: cmdRelease, voice: voice})
}

func (e *Engine) RampFrequency(voice int, freqHz, at float64) {
	e.schedule(command{at: at, kind: cmdRamp, voice: voice, freq: freqHz})
}

func (e *Engine) SetOscillatorShape(s play.Shape) {
	e.mu.Lock()
	e.r.shape = s
	e.mu.Unlock()
}

func (e *Engine) SetVolumeDB(db float64) {
	e.mu.Lock()
	e.r.gain = math.Pow(10, db/20)
	e.mu.Unlock()
}

func (e *Engine) SetReverbWet(wet float64) {
	e.mu.Lock()
	e.r.wet = wet
	e.mu.Unlock()
}

func (e *Engine) SetDistortionAmount(amount float64) {
	e.mu.Lock()
	e.r.dist = amount
	e.mu.Unlock()
}

// Close releases the playback device.
func (e *Engine) Close() {
	if e.player != nil {
		_ = e.player.Close()
	}
}
