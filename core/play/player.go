package play

import (
	"sort"

	"github.com/cartmarsh/toneSamples/core/stream"
)

const (
	// releaseEpsilon pads the guaranteed final release past the last
	// event so the tone always terminates.
	releaseEpsilon = 0.05
	// durationTail is added to the point span when no duration override
	// is given.
	durationTail = 0.5
	// voicePool is the number of synth voices rotated across plays so
	// overlapping timeline events do not share a voice.
	voicePool = 8
)

// Layer describes one synthesis voice of a layered playback: its frequency
// ratio relative to the drawn pitch and its start offset in seconds.
type Layer struct {
	Ratio  float64
	Offset float64
}

// DefaultLayers is the single-voice configuration.
var DefaultLayers = []Layer{{Ratio: 1}}

// ChordLayers layers the drawn pitch with a sub-octave and a fifth above,
// each slightly staggered for a thicker texture.
var ChordLayers = []Layer{
	{Ratio: 1},
	{Ratio: 0.5, Offset: 0.03},
	{Ratio: 1.5, Offset: 0.06},
}

// Player re-synthesizes point streams as absolutely timed attack, release
// and frequency-ramp commands. It never blocks: commands carry future
// timestamps and the synth realizes them.
type Player struct {
	guard   *Guard
	layers  []Layer
	canvasH float64
	next    int // next voice group base, rotated per play
}

// NewPlayer wraps the synth in a monotonic-time guard. With no layers the
// single-voice default is used.
func NewPlayer(s Synth, canvasH float64, layers ...Layer) *Player {
	if len(layers) == 0 {
		layers = DefaultLayers
	}
	return &Player{guard: NewGuard(s), layers: layers, canvasH: canvasH}
}

// Play schedules the whole stream starting startDelay seconds from now and
// returns the effective duration: the point span plus a fixed tail, or
// durationOverride when positive. An empty stream schedules nothing and
// returns zero.
func (p *Player) Play(pts []stream.Point, durationOverride, startDelay float64) float64 {
	if len(pts) == 0 {
		return 0
	}
	sorted := make([]stream.Point, len(pts))
	copy(sorted, pts)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].T < sorted[j].T })

	base := p.guard.Now() + startDelay
	t0 := sorted[0].T
	voiceBase := p.next
	p.next = (p.next + len(p.layers)) % voicePool

	for li, layer := range p.layers {
		voice := (voiceBase + li) % voicePool
		anchor := base + layer.Offset
		var last float64
		for i, pt := range sorted {
			at := anchor + pt.T - t0
			freq := stream.FreqForY(pt.Y, p.canvasH) * layer.Ratio
			switch {
			case pt.LineStart:
				// End the previous line before the recorded
				// silence, then start the new one after it.
				if i > 0 && pt.GapBefore > 0 {
					p.guard.Release(voice, at-pt.GapBefore)
				}
				p.guard.Attack(voice, freq, at)
			default:
				p.guard.RampFrequency(voice, freq, at)
			}
			last = at
		}
		p.guard.Release(voice, last+releaseEpsilon)
	}

	if durationOverride > 0 {
		return durationOverride
	}
	return sorted[len(sorted)-1].T - t0 + durationTail
}

// Now exposes the synth clock.
func (p *Player) Now() float64 { return p.guard.Now() }
