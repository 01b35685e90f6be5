package play

import (
	"github.com/cartmarsh/toneSamples/core/stream"
)

// GapThreshold is the pointer-move pause, in seconds, beyond which a sample
// starts a new line instead of continuing the drag.
const GapThreshold = 0.1

// liveVoice is the synth voice driven while drawing.
const liveVoice = 0

// Recorder converts raw pointer events into a point stream and drives the
// synth in real time so the user hears the line as it is drawn. Times passed
// in are absolute seconds on the synth clock; stored point times are
// relative to the first sample of the recording.
type Recorder struct {
	stream  *stream.Stream
	synth   Synth
	canvasH float64

	drawing bool
	started bool
	startT  float64 // synth time of the first sample ever recorded
	lastT   float64 // synth time of the previous sample
	lineEnd float64 // relative time the previous line ended, -1 before any
}

func NewRecorder(s *stream.Stream, synth Synth, canvasH float64) *Recorder {
	return &Recorder{stream: s, synth: synth, canvasH: canvasH, lineEnd: -1}
}

// Drawing reports whether a pointer-down is in progress.
func (r *Recorder) Drawing() bool { return r.drawing }

// PointerDown starts a new line and sounds it immediately.
func (r *Recorder) PointerDown(x, y, now float64) {
	if !r.started {
		r.started = true
		r.startT = now
	}
	t := now - r.startT
	gap := 0.0
	if r.lineEnd >= 0 {
		gap = t - r.lineEnd
		if gap < 0 {
			gap = 0
		}
	}
	r.stream.Append(stream.Point{X: x, Y: y, T: t, LineStart: true, GapBefore: gap})
	r.synth.Attack(liveVoice, stream.FreqForY(y, r.canvasH), now)
	r.drawing = true
	r.lastT = now
}

// PointerMove appends a sample while drawing. A pause longer than
// GapThreshold is treated as a deliberate pen lift: the sample starts a new
// line and the tone is retriggered; otherwise the tone glides without a
// retrigger.
func (r *Recorder) PointerMove(x, y, now float64) {
	if !r.drawing {
		return
	}
	t := now - r.startT
	dt := now - r.lastT
	freq := stream.FreqForY(y, r.canvasH)
	if dt > GapThreshold {
		r.stream.Append(stream.Point{X: x, Y: y, T: t, LineStart: true, GapBefore: dt})
		r.synth.Release(liveVoice, now)
		r.synth.Attack(liveVoice, freq, now)
	} else {
		r.stream.Append(stream.Point{X: x, Y: y, T: t})
		r.synth.RampFrequency(liveVoice, freq, now)
	}
	r.lastT = now
}

// PointerUp ends the line and records its end time for the next line's gap.
func (r *Recorder) PointerUp(now float64) {
	if !r.drawing {
		return
	}
	r.synth.Release(liveVoice, now)
	r.lineEnd = now - r.startT
	r.drawing = false
}
