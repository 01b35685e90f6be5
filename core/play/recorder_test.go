package play

import (
	"math"
	"testing"

	"github.com/cartmarsh/toneSamples/core/stream"
)

func TestPointerDownStartsLineAndAttacks(t *testing.T) {
	fake := &fakeSynth{}
	st := stream.New()
	r := NewRecorder(st, fake, testCanvasH)

	r.PointerDown(10, 25, 5.0)

	if st.Len() != 1 {
		t.Fatalf("expected one point, got %d", st.Len())
	}
	p := st.At(0)
	if !p.LineStart || p.T != 0 || p.GapBefore != 0 {
		t.Fatalf("first point must be a gapless line start at t=0: %+v", p)
	}
	if len(fake.calls) != 1 || fake.calls[0].kind != "attack" {
		t.Fatalf("expected an immediate attack, got %+v", fake.calls)
	}
	wantFreq := stream.FreqForY(25, testCanvasH)
	if fake.calls[0].freq != wantFreq {
		t.Fatalf("attack freq %v, want %v", fake.calls[0].freq, wantFreq)
	}
}

func TestContinuationRampsWithoutRetrigger(t *testing.T) {
	fake := &fakeSynth{}
	st := stream.New()
	r := NewRecorder(st, fake, testCanvasH)

	r.PointerDown(10, 25, 5.0)
	r.PointerMove(12, 30, 5.05)
	r.PointerMove(14, 35, 5.09)

	if got := len(fake.calls); got != 3 {
		t.Fatalf("expected attack + 2 ramps, got %d calls", got)
	}
	for _, c := range fake.calls[1:] {
		if c.kind != "ramp" {
			t.Fatalf("continuation samples must ramp, got %q", c.kind)
		}
	}
	if st.At(1).LineStart || st.At(2).LineStart {
		t.Fatalf("continuation samples must not start lines")
	}
}

func TestPauseBeyondThresholdStartsNewLine(t *testing.T) {
	fake := &fakeSynth{}
	st := stream.New()
	r := NewRecorder(st, fake, testCanvasH)

	r.PointerDown(10, 25, 5.0)
	r.PointerMove(50, 40, 5.25) // 0.25s pause while held

	p := st.At(1)
	if !p.LineStart {
		t.Fatalf("pause beyond %vs must start a new line", GapThreshold)
	}
	if math.Abs(p.GapBefore-0.25) > 1e-9 {
		t.Fatalf("gap %v, want 0.25", p.GapBefore)
	}
	kinds := []string{fake.calls[1].kind, fake.calls[2].kind}
	if kinds[0] != "release" || kinds[1] != "attack" {
		t.Fatalf("expected release then retrigger, got %v", kinds)
	}
}

func TestPointerUpRecordsGapForNextLine(t *testing.T) {
	fake := &fakeSynth{}
	st := stream.New()
	r := NewRecorder(st, fake, testCanvasH)

	r.PointerDown(10, 25, 5.0)
	r.PointerUp(5.3)
	r.PointerDown(60, 40, 5.8)

	if last := fake.calls[1]; last.kind != "release" || last.at != 5.3 {
		t.Fatalf("pointer up must release at its own time, got %+v", last)
	}
	p := st.At(1)
	if !p.LineStart {
		t.Fatalf("next pointer down must start a line")
	}
	if math.Abs(p.GapBefore-0.5) > 1e-9 {
		t.Fatalf("gap %v, want 0.5", p.GapBefore)
	}
	if math.Abs(p.T-0.8) > 1e-9 {
		t.Fatalf("time %v, want 0.8 since recording start", p.T)
	}
}

func TestMoveWithoutDownIsIgnored(t *testing.T) {
	fake := &fakeSynth{}
	st := stream.New()
	r := NewRecorder(st, fake, testCanvasH)

	r.PointerMove(10, 25, 5.0)
	r.PointerUp(5.1)

	if st.Len() != 0 || len(fake.calls) != 0 {
		t.Fatalf("moves without a pointer down must be ignored")
	}
}

func TestStreamTimesStayMonotonic(t *testing.T) {
	fake := &fakeSynth{}
	st := stream.New()
	r := NewRecorder(st, fake, testCanvasH)

	r.PointerDown(10, 25, 5.0)
	for i := 0; i < 20; i++ {
		r.PointerMove(float64(10+i), 30, 5.0+float64(i+1)*0.016)
	}
	prev := -1.0
	for i := 0; i < st.Len(); i++ {
		if tt := st.At(i).T; tt < prev {
			t.Fatalf("time went backwards at index %d: %v < %v", i, tt, prev)
		} else {
			prev = tt
		}
	}
}
