package stream

// Transform identifies a shape edit applied to one segment's points.
type Transform int

const (
	TransformSmooth Transform = iota
	TransformStretch
	TransformArpeggio
)

func (t Transform) String() string {
	switch t {
	case TransformSmooth:
		return "smooth"
	case TransformStretch:
		return "stretch"
	case TransformArpeggio:
		return "arpeggio"
	default:
		return "unknown"
	}
}

// arpeggioOffset is the y step, in backing-store pixels, applied by the
// arpeggio transform.
const arpeggioOffset = 30.0

// Smooth replaces each interior point's y with the mean of itself and its
// two neighbors. Endpoints, x and t are untouched.
func Smooth(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	for i := 1; i+1 < len(pts); i++ {
		out[i].Y = (pts[i-1].Y + pts[i].Y + pts[i+1].Y) / 3
	}
	return out
}

// Stretch scales each point's deviation from the segment's mean y by
// factor: >1 amplifies, <1 compresses. Factor 1 is the identity.
func Stretch(pts []Point, factor float64) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	if len(pts) == 0 {
		return out
	}
	var mean float64
	for _, p := range pts {
		mean += p.Y
	}
	mean /= float64(len(pts))
	for i := range out {
		out[i].Y = mean + (pts[i].Y-mean)*factor
	}
	return out
}

// Arpeggio offsets alternate points from the first point's y: even indices
// up by arpeggioOffset, odd indices down, producing a stepped pattern.
func Arpeggio(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	if len(pts) == 0 {
		return out
	}
	base := pts[0].Y
	for i := range out {
		if i%2 == 0 {
			out[i].Y = base + arpeggioOffset
		} else {
			out[i].Y = base - arpeggioOffset
		}
	}
	return out
}

// Apply runs the named transform over a copy of pts. factor is used only by
// TransformStretch.
func Apply(kind Transform, pts []Point, factor float64) []Point {
	switch kind {
	case TransformSmooth:
		return Smooth(pts)
	case TransformStretch:
		return Stretch(pts, factor)
	case TransformArpeggio:
		return Arpeggio(pts)
	default:
		out := make([]Point, len(pts))
		copy(out, pts)
		return out
	}
}

// Splice replaces the segment's index range with repl. Points outside the
// range and their absolute times are unaffected. Editing never issues sound
// events; re-sonification requires an explicit playback.
func (s *Stream) Splice(seg Segment, repl []Point) {
	out := make([]Point, 0, len(s.pts)-(seg.End-seg.Start)+len(repl))
	out = append(out, s.pts[:seg.Start]...)
	out = append(out, repl...)
	out = append(out, s.pts[seg.End:]...)
	s.pts = out
}
