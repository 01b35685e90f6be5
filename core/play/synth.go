package play

// Shape selects the oscillator waveform.
type Shape int

const (
	ShapeSine Shape = iota
	ShapeSquare
	ShapeSawtooth
	ShapeTriangle
)

func (s Shape) String() string {
	switch s {
	case ShapeSine:
		return "sine"
	case ShapeSquare:
		return "square"
	case ShapeSawtooth:
		return "sawtooth"
	case ShapeTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Next cycles to the following shape, wrapping after triangle.
func (s Shape) Next() Shape {
	return (s + 1) % 4
}

// Synth is the scheduling surface of the external synthesis capability.
// Time arguments are absolute seconds on the clock returned by Now. The
// engine realizes future-timestamped commands on its own; callers never
// block. Event times for a given voice must be non-decreasing (see Guard).
type Synth interface {
	Attack(voice int, freqHz, at float64)
	Release(voice int, at float64)
	RampFrequency(voice int, freqHz, at float64)
	Now() float64
}

// Control is the configuration surface of the synthesis capability.
type Control interface {
	SetOscillatorShape(Shape)
	SetVolumeDB(db float64)
	SetReverbWet(wet float64)
	SetDistortionAmount(amount float64)
}

// guardEpsilon separates clamped events from the one before them.
const guardEpsilon = 0.001

// Guard wraps a Synth and enforces per-voice monotonic event times. A
// command timestamped at or before the voice's previous command is clamped
// to the previous time plus guardEpsilon; commands are never dropped.
type Guard struct {
	synth Synth
	last  map[int]float64
}

func NewGuard(s Synth) *Guard {
	return &Guard{synth: s, last: map[int]float64{}}
}

func (g *Guard) clamp(voice int, at float64) float64 {
	if last, ok := g.last[voice]; ok && at <= last {
		at = last + guardEpsilon
	}
	g.last[voice] = at
	return at
}

func (g *Guard) Attack(voice int, freqHz, at float64) {
	g.synth.Attack(voice, freqHz, g.clamp(voice, at))
}

func (g *Guard) Release(voice int, at float64) {
	g.synth.Release(voice, g.clamp(voice, at))
}

func (g *Guard) RampFrequency(voice int, freqHz, at float64) {
	g.synth.RampFrequency(voice, freqHz, g.clamp(voice, at))
}

func (g *Guard) Now() float64 { return g.synth.Now() }
