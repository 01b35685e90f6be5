package stream

// Frequency range mapped onto the canvas: the top edge plays FreqHigh, the
// bottom edge FreqLow, linear in pixel y.
const (
	FreqHigh = 880.0
	FreqLow  = 110.0
)

// Point is one discretized sample of pointer motion.
type Point struct {
	X, Y float64
	// T is seconds elapsed since the recording began; non-decreasing
	// across a stream.
	T float64
	// LineStart marks the first point of a disconnected line.
	LineStart bool
	// GapBefore is the silence before this line's first sound event.
	// Meaningful only when LineStart is set.
	GapBefore float64
}

// FreqForY maps a backing-store y coordinate to Hz. Out-of-canvas y is a
// caller error and is not validated here.
func FreqForY(y, canvasH float64) float64 {
	return FreqHigh - y/canvasH*(FreqHigh-FreqLow)
}

// Stream is an ordered point sequence; insertion order is temporal order is
// playback order. The stream is owned by whichever session is recording or
// editing it and must be copied, not aliased, when snapshotted.
type Stream struct {
	pts []Point
}

func New() *Stream {
	return &Stream{}
}

// Append adds a point, enforcing the stream invariants: the first point is
// always a line start and T never decreases.
func (s *Stream) Append(p Point) {
	if len(s.pts) == 0 {
		p.LineStart = true
	} else if last := s.pts[len(s.pts)-1].T; p.T < last {
		p.T = last
	}
	s.pts = append(s.pts, p)
}

func (s *Stream) Len() int { return len(s.pts) }

// At returns the point at index i.
func (s *Stream) At(i int) Point { return s.pts[i] }

// Points returns the backing slice. Callers must not mutate it; use Clone
// for an independent copy.
func (s *Stream) Points() []Point { return s.pts }

// Clone returns an independently owned copy of the point sequence.
func (s *Stream) Clone() []Point {
	out := make([]Point, len(s.pts))
	copy(out, s.pts)
	return out
}

// SetGapBefore updates the recorded silence before the line starting at
// point index i. No-op unless that point is a line start.
func (s *Stream) SetGapBefore(i int, gap float64) {
	if i < 0 || i >= len(s.pts) || !s.pts[i].LineStart {
		return
	}
	if gap < 0 {
		gap = 0
	}
	s.pts[i].GapBefore = gap
}

// Span is the time covered by the stream, last T minus first T.
func (s *Stream) Span() float64 {
	if len(s.pts) == 0 {
		return 0
	}
	return s.pts[len(s.pts)-1].T - s.pts[0].T
}

// Strips returns the stream partitioned into drawable line strips, one per
// line, in stream order. Each strip aliases the backing slice.
func (s *Stream) Strips() [][]Point {
	var out [][]Point
	for _, seg := range s.Segments() {
		out = append(out, seg.Points)
	}
	return out
}
