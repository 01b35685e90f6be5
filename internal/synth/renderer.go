package synth

import (
	"math"
	"sort"

	"github.com/cartmarsh/toneSamples/core/play"
)

const (
	// SampleRate of all rendering, matching the output device format.
	SampleRate = 44100

	maxVoices = 8

	attackTime  = 0.005 // envelope rise, keeps note-ons click free
	releaseTime = 0.04  // envelope fall
	portamento  = 0.01  // glide time for frequency ramps

	voiceGain = 0.2 // headroom for layered voices
)

type cmdKind int

const (
	cmdAttack cmdKind = iota
	cmdRelease
	cmdRamp
)

// command is one future-timestamped synth event on the renderer's sample
// clock.
type command struct {
	at    float64
	kind  cmdKind
	voice int
	freq  float64
}

type envStage int

const (
	envIdle envStage = iota
	envAttack
	envSustain
	envRelease
)

// voice is a single monophonic oscillator with a linear envelope and a
// short portamento toward ramp targets.
type voice struct {
	shape  play.Shape
	phase  float64
	freq   float64
	target float64
	stage  envStage
	env    float64
}

func (v *voice) attack(freq float64, shape play.Shape) {
	v.freq = freq
	v.target = freq
	v.shape = shape
	v.stage = envAttack
}

func (v *voice) release() {
	if v.stage != envIdle {
		v.stage = envRelease
	}
}

func (v *voice) ramp(freq float64) {
	v.target = freq
}

func (v *voice) sample() float64 {
	if v.stage == envIdle {
		return 0
	}
	if v.freq != v.target {
		step := (v.target - v.freq) / (portamento * SampleRate)
		v.freq += step
		if (step > 0 && v.freq > v.target) || (step < 0 && v.freq < v.target) {
			v.freq = v.target
		}
	}
	v.phase += v.freq / SampleRate
	if v.phase >= 1 {
		v.phase -= math.Floor(v.phase)
	}

	var osc float64
	switch v.shape {
	case play.ShapeSquare:
		if v.phase < 0.5 {
			osc = 1
		} else {
			osc = -1
		}
	case play.ShapeSawtooth:
		osc = 2*v.phase - 1
	case play.ShapeTriangle:
		osc = 4*math.Abs(v.phase-0.5) - 1
	default:
		osc = math.Sin(2 * math.Pi * v.phase)
	}

	switch v.stage {
	case envAttack:
		v.env += 1 / (attackTime * SampleRate)
		if v.env >= 1 {
			v.env = 1
			v.stage = envSustain
		}
	case envRelease:
		v.env -= 1 / (releaseTime * SampleRate)
		if v.env <= 0 {
			v.env = 0
			v.stage = envIdle
		}
	}
	return osc * v.env
}

// renderer realizes scheduled commands into PCM samples. Its clock is the
// sample position, shared by scheduling and realization, so an event's
// wall-clock accuracy is bounded only by the device buffer.
type renderer struct {
	voices  [maxVoices]voice
	pending []command // sorted by at
	pos     int64

	shape play.Shape
	gain  float64
	wet   float64
	dist  float64
	rev   *comb
}

func newRenderer() *renderer {
	return &renderer{gain: 0.5, rev: newComb()}
}

func (r *renderer) now() float64 {
	return float64(r.pos) / SampleRate
}

func (r *renderer) schedule(c command) {
	if c.voice < 0 || c.voice >= maxVoices {
		return
	}
	i := sort.Search(len(r.pending), func(i int) bool { return r.pending[i].at > c.at })
	r.pending = append(r.pending, command{})
	copy(r.pending[i+1:], r.pending[i:])
	r.pending[i] = c
}

func (r *renderer) apply(c command) {
	v := &r.voices[c.voice]
	switch c.kind {
	case cmdAttack:
		v.attack(c.freq, r.shape)
	case cmdRelease:
		v.release()
	case cmdRamp:
		v.ramp(c.freq)
	}
}

// render fills out with the next len(out) samples.
func (r *renderer) render(out []float64) {
	for i := range out {
		now := float64(r.pos) / SampleRate
		for len(r.pending) > 0 && r.pending[0].at <= now {
			r.apply(r.pending[0])
			r.pending = r.pending[1:]
		}

		var sum float64
		for vi := range r.voices {
			sum += r.voices[vi].sample()
		}
		sum *= voiceGain

		if r.dist > 0 {
			drive := 1 + 9*r.dist
			sum = math.Tanh(sum*drive) / math.Tanh(drive)
		}
		sum = r.rev.process(sum, r.wet)
		sum *= r.gain
		if sum > 1 {
			sum = 1
		} else if sum < -1 {
			sum = -1
		}
		out[i] = sum
		r.pos++
	}
}

// comb is a single feedback comb delay used as a cheap reverb.
type comb struct {
	buf      []float64
	idx      int
	feedback float64
}

func newComb() *comb {
	return &comb{buf: make([]float64, int(0.08*SampleRate)), feedback: 0.55}
}

func (c *comb) process(x, wet float64) float64 {
	d := c.buf[c.idx]
	c.buf[c.idx] = x + d*c.feedback
	c.idx++
	if c.idx == len(c.buf) {
		c.idx = 0
	}
	return x*(1-wet) + d*wet
}
