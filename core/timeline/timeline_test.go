package timeline

import (
	"io"
	"sync"
	"testing"
	"time"

	"github.com/cartmarsh/toneSamples/core/bank"
	"github.com/cartmarsh/toneSamples/core/play"
	"github.com/cartmarsh/toneSamples/core/stream"
	game_log "github.com/cartmarsh/toneSamples/internal/log"
)

// countingSynth is a fake clock and command sink; the clock is read from
// the playhead goroutine, so it is mutex guarded.
type countingSynth struct {
	mu      sync.Mutex
	now     float64
	attacks int
}

func (c *countingSynth) Attack(voice int, freq, at float64)        { c.attacks++ }
func (c *countingSynth) Release(voice int, at float64)             {}
func (c *countingSynth) RampFrequency(voice int, freq, at float64) {}

func (c *countingSynth) Now() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *countingSynth) setNow(v float64) {
	c.mu.Lock()
	c.now = v
	c.mu.Unlock()
}

func testLogger() *game_log.Logger {
	return game_log.New(io.Discard, game_log.LevelNone)
}

func soundPoints() []stream.Point {
	return []stream.Point{
		{X: 0, Y: 10, T: 0, LineStart: true},
		{X: 20, Y: 30, T: 0.4},
	}
}

func fixture(t *testing.T) (*Timeline, *bank.Bank, *play.Player, *countingSynth) {
	t.Helper()
	synth := &countingSynth{}
	b := bank.New(testLogger())
	p := play.NewPlayer(synth, 100)
	tl := New(testLogger(), synth.Now)
	return tl, b, p, synth
}

func TestAddValidatesTrackStartDuration(t *testing.T) {
	tl, _, _, _ := fixture(t)
	if _, err := tl.Add(0, -1, 0, 1); err != ErrBadTrack {
		t.Fatalf("expected ErrBadTrack, got %v", err)
	}
	if _, err := tl.Add(0, TrackCount, 0, 1); err != ErrBadTrack {
		t.Fatalf("expected ErrBadTrack, got %v", err)
	}
	if _, err := tl.Add(0, 0, -0.5, 1); err != ErrBadStart {
		t.Fatalf("expected ErrBadStart, got %v", err)
	}
	if _, err := tl.Add(0, 0, 0, 0); err != ErrBadDuration {
		t.Fatalf("expected ErrBadDuration, got %v", err)
	}
	e, err := tl.Add(0, 1, 0.5, 2)
	if err != nil {
		t.Fatal(err)
	}
	if e.ID == "" {
		t.Fatalf("events must get generated IDs")
	}
}

func TestPlayEmptyTimelineIsRejected(t *testing.T) {
	tl, b, p, _ := fixture(t)
	if err := tl.Play(b, p); err != ErrEmpty {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestEventStatesAtPlayheadPositions(t *testing.T) {
	tl, b, p, synth := fixture(t)
	soundA, _ := b.Save("A", soundPoints(), play.ShapeSine, 0, 0)
	soundB, _ := b.Save("B", soundPoints(), play.ShapeSine, 0, 0)
	evA, _ := tl.Add(soundA.ID, 0, 0, 2)
	evB, _ := tl.Add(soundB.ID, 1, 1, 2)

	synth.setNow(10)
	if err := tl.Play(b, p); err != nil {
		t.Fatal(err)
	}
	defer tl.Stop()

	synth.setNow(10.5)
	head := tl.PlayheadTime()
	if s := tl.StateAt(evA, head); s != StateActive {
		t.Fatalf("at 0.5s event A must be active, got %v", s)
	}
	if s := tl.StateAt(evB, head); s != StateScheduled {
		t.Fatalf("at 0.5s event B must still be scheduled, got %v", s)
	}

	synth.setNow(11.5)
	head = tl.PlayheadTime()
	if s := tl.StateAt(evA, head); s != StateActive {
		t.Fatalf("at 1.5s event A must be active, got %v", s)
	}
	if s := tl.StateAt(evB, head); s != StateActive {
		t.Fatalf("at 1.5s event B must be active, got %v", s)
	}

	synth.setNow(12.5)
	head = tl.PlayheadTime()
	if s := tl.StateAt(evA, head); s != StateCompleted {
		t.Fatalf("at 2.5s event A must be completed, got %v", s)
	}
}

func TestStatesAreIdleWhenStopped(t *testing.T) {
	tl, _, _, _ := fixture(t)
	e, _ := tl.Add(0, 0, 0, 2)
	if s := tl.StateAt(e, 1); s != StateIdle {
		t.Fatalf("stopped timeline must report idle, got %v", s)
	}
}

func TestMissingSoundIsSkippedSilently(t *testing.T) {
	tl, b, p, synth := fixture(t)
	sound, _ := b.Save("real", soundPoints(), play.ShapeSine, 0, 0)
	tl.Add(sound.ID, 0, 0, 1)
	tl.Add(999, 1, 0.5, 1) // dangling reference

	if err := tl.Play(b, p); err != nil {
		t.Fatalf("a dangling event must not abort playback: %v", err)
	}
	defer tl.Stop()
	if synth.attacks != 1 {
		t.Fatalf("expected exactly the real sound scheduled, got %d attacks", synth.attacks)
	}
}

func TestPlaybackStopsAtComputedEndTime(t *testing.T) {
	tl, b, p, synth := fixture(t)
	sound, _ := b.Save("s", soundPoints(), play.ShapeSine, 0, 0)
	tl.Add(sound.ID, 0, 0, 0.05)

	if err := tl.Play(b, p); err != nil {
		t.Fatal(err)
	}
	synth.setNow(1) // well past the stop time
	deadline := time.Now().Add(time.Second)
	for tl.Playing() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if tl.Playing() {
		t.Fatalf("playback must stop itself at the computed end time")
	}
}

func TestStopCancelsThePlayheadLoop(t *testing.T) {
	tl, b, p, _ := fixture(t)
	sound, _ := b.Save("s", soundPoints(), play.ShapeSine, 0, 0)
	tl.Add(sound.ID, 0, 0, 60)

	if err := tl.Play(b, p); err != nil {
		t.Fatal(err)
	}
	tl.Stop()
	if tl.Playing() {
		t.Fatalf("stop must end playback")
	}
	if tl.PlayheadTime() != 0 {
		t.Fatalf("stopped playhead must read zero")
	}
	tl.Stop() // stopping twice is fine
}

func TestPlayheadHandleStopsTicking(t *testing.T) {
	ticks := make(chan struct{}, 64)
	p := startPlayhead(func() bool {
		ticks <- struct{}{}
		return true
	})
	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatalf("expected at least one tick")
	}
	p.Stop()
	// drain, then verify silence
	for len(ticks) > 0 {
		<-ticks
	}
	select {
	case <-ticks:
		t.Fatalf("tick after stop: the loop leaked")
	case <-time.After(60 * time.Millisecond):
	}
}

func TestPruneSoundRemovesAllReferences(t *testing.T) {
	tl, _, _, _ := fixture(t)
	tl.Add(7, 0, 0, 1)
	tl.Add(7, 1, 2, 1)
	tl.Add(8, 2, 0, 1)

	if n := tl.PruneSound(7); n != 2 {
		t.Fatalf("expected 2 pruned, got %d", n)
	}
	events := tl.Events()
	if len(events) != 1 || events[0].SoundID != 8 {
		t.Fatalf("unexpected events after prune: %+v", events)
	}
}

func TestMoveUpdatesStartAndTrackOnly(t *testing.T) {
	tl, _, _, _ := fixture(t)
	e, _ := tl.Add(1, 0, 0, 2)
	if !tl.Move(e.ID, 3, 4.5) {
		t.Fatalf("move of existing event must succeed")
	}
	got := tl.Events()[0]
	if got.Track != 3 || got.Start != 4.5 || got.Duration != 2 || got.SoundID != 1 {
		t.Fatalf("unexpected event after move: %+v", got)
	}
	if tl.Move(e.ID, TrackCount, 0) {
		t.Fatalf("move to invalid track must fail")
	}
	if tl.Move("nope", 0, 0) {
		t.Fatalf("move of unknown event must fail")
	}
}
