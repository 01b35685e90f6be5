package stream

import "math"

// HitThreshold is the hit-test distance in backing-store pixels.
const HitThreshold = 15.0

// Segment is a non-owning view of one line: the contiguous run of points
// from a LineStart marker (inclusive) to the next one (exclusive). It is a
// query result, invalidated whenever the backing stream mutates.
type Segment struct {
	Start, End int // [Start, End)
	Points     []Point
}

// Segments partitions the stream into its lines, in stream order.
func (s *Stream) Segments() []Segment {
	var out []Segment
	start := -1
	for i, p := range s.pts {
		if p.LineStart {
			if start >= 0 {
				out = append(out, Segment{Start: start, End: i, Points: s.pts[start:i]})
			}
			start = i
		}
	}
	if start >= 0 {
		out = append(out, Segment{Start: start, End: len(s.pts), Points: s.pts[start:]})
	}
	return out
}

// FindSegment hit-tests a query point given in on-screen pixels against the
// stream's lines. scaleX and scaleY rescale screen coordinates into the
// backing store (backingWidth/displayWidth); pass 1 when they match. The
// first line within HitThreshold of the query wins; ok is false when no
// line is close enough.
func (s *Stream) FindSegment(x, y, scaleX, scaleY float64) (Segment, bool) {
	qx := x * scaleX
	qy := y * scaleY
	for _, seg := range s.Segments() {
		if segmentHit(seg.Points, qx, qy) {
			return seg, true
		}
	}
	return Segment{}, false
}

func segmentHit(pts []Point, qx, qy float64) bool {
	if len(pts) == 1 {
		return math.Hypot(qx-pts[0].X, qy-pts[0].Y) <= HitThreshold
	}
	for i := 0; i+1 < len(pts); i++ {
		d := distToPiece(qx, qy, pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y)
		if d <= HitThreshold {
			return true
		}
	}
	return false
}

// distToPiece is the distance from (px,py) to the segment (x1,y1)-(x2,y2),
// using the closest-point projection clamped to the endpoints.
func distToPiece(px, py, x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-x1, py-y1)
	}
	t := ((px-x1)*dx + (py-y1)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(px-(x1+t*dx), py-(y1+t*dy))
}
