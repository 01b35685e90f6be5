package synth

import (
	"math"

	"github.com/cartmarsh/toneSamples/core/play"
)

// Offline is the renderer without a playback device: the same scheduling
// and sample math, pulled by Render instead of the device. Used for WAV
// export and tests.
type Offline struct {
	r *renderer
}

var _ play.Synth = (*Offline)(nil)
var _ play.Control = (*Offline)(nil)

func NewOffline() *Offline {
	return &Offline{r: newRenderer()}
}

func (o *Offline) Now() float64 { return o.r.now() }

func (o *Offline) Attack(voice int, freqHz, at float64) {
	o.r.schedule(command{at: at, kind: cmdAttack, voice: voice, freq: freqHz})
}

func (o *Offline) Release(voice int, at float64) {
	o.r.schedule(command{at: at, kind: cmdRelease, voice: voice})
}

func (o *Offline) RampFrequency(voice int, freqHz, at float64) {
	o.r.schedule(command{at: at, kind: cmdRamp, voice: voice, freq: freqHz})
}

func (o *Offline) SetOscillatorShape(s play.Shape)    { o.r.shape = s }
func (o *Offline) SetVolumeDB(db float64)             { o.r.gain = math.Pow(10, db/20) }
func (o *Offline) SetReverbWet(wet float64)           { o.r.wet = wet }
func (o *Offline) SetDistortionAmount(amount float64) { o.r.dist = amount }

// Render advances the clock by seconds and returns the samples produced.
func (o *Offline) Render(seconds float64) []float64 {
	n := int(seconds * SampleRate)
	if n <= 0 {
		return nil
	}
	buf := make([]float64, n)
	o.r.render(buf)
	return buf
}
