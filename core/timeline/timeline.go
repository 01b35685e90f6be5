package timeline

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/cartmarsh/toneSamples/core/bank"
	"github.com/cartmarsh/toneSamples/core/play"
	game_log "github.com/cartmarsh/toneSamples/internal/log"
)

// TrackCount is the fixed number of timeline tracks.
const TrackCount = 4

var (
	ErrBadTrack    = errors.New("timeline: track out of range")
	ErrBadStart    = errors.New("timeline: start time must be >= 0")
	ErrBadDuration = errors.New("timeline: duration must be > 0")
	ErrEmpty       = errors.New("timeline: no events to play")
)

// State is the lifecycle of one event during playback.
type State int

const (
	StateIdle State = iota
	StateScheduled
	StateActive
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScheduled:
		return "scheduled"
	case StateActive:
		return "active"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Event places a saved sound on a track. SoundID is a weak reference into
// the bank: lookup, not ownership.
type Event struct {
	ID       string
	SoundID  int
	Track    int
	Start    float64
	Duration float64
}

// Timeline arranges saved sounds against a shared clock and drives the
// player for each event at its offset. All mutation happens on the UI
// thread; the mutex only covers the playhead state shared with the tick
// loop.
type Timeline struct {
	logger *game_log.Logger
	now    func() float64
	events []Event

	mu      sync.Mutex
	playing bool
	startAt float64 // clock time playback began
	stopAt  float64 // relative stop time, fixed at play start
	head    *Playhead
}

// New builds a timeline over the given clock (normally the synth's Now).
func New(logger *game_log.Logger, now func() float64) *Timeline {
	return &Timeline{logger: logger, now: now}
}

// Add places a sound on a track.
func (t *Timeline) Add(soundID, track int, start, duration float64) (Event, error) {
	if track < 0 || track >= TrackCount {
		return Event{}, ErrBadTrack
	}
	if start < 0 {
		return Event{}, ErrBadStart
	}
	if duration <= 0 {
		return Event{}, ErrBadDuration
	}
	e := Event{
		ID:       uuid.NewString(),
		SoundID:  soundID,
		Track:    track,
		Start:    start,
		Duration: duration,
	}
	t.events = append(t.events, e)
	t.logger.Debugf("[TIMELINE] Added event %s: sound %d on track %d at %.2fs", e.ID, soundID, track, start)
	return e, nil
}

// Move updates an event's start time and track, as from a drag. It does not
// reschedule an in-flight playback.
func (t *Timeline) Move(id string, track int, start float64) bool {
	if track < 0 || track >= TrackCount || start < 0 {
		return false
	}
	for i := range t.events {
		if t.events[i].ID == id {
			t.events[i].Track = track
			t.events[i].Start = start
			return true
		}
	}
	return false
}

// Remove deletes one event.
func (t *Timeline) Remove(id string) bool {
	for i := range t.events {
		if t.events[i].ID == id {
			t.events = append(t.events[:i], t.events[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every event.
func (t *Timeline) Clear() {
	t.events = nil
}

// PruneSound removes all events referencing soundID and returns how many
// were dropped. Called by the session when a bank entry is deleted.
func (t *Timeline) PruneSound(soundID int) int {
	kept := t.events[:0]
	dropped := 0
	for _, e := range t.events {
		if e.SoundID == soundID {
			dropped++
			continue
		}
		kept = append(kept, e)
	}
	t.events = kept
	if dropped > 0 {
		t.logger.Infof("[TIMELINE] Pruned %d event(s) for deleted sound %d", dropped, soundID)
	}
	return dropped
}

// Events returns the events in insertion order.
func (t *Timeline) Events() []Event {
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

func (t *Timeline) Len() int { return len(t.events) }

// Play schedules every event through the player, earliest first. Events
// referencing a missing sound are skipped silently. The overall stop time
// is computed once, here; later edits do not reschedule. Playback stops by
// itself when the playhead passes the last event.
func (t *Timeline) Play(b *bank.Bank, p *play.Player) error {
	if len(t.events) == 0 {
		return ErrEmpty
	}
	t.Stop()

	sorted := make([]Event, len(t.events))
	copy(sorted, t.events)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	stopAt := 0.0
	scheduled := 0
	for _, e := range sorted {
		sound, ok := b.Get(e.SoundID)
		if !ok {
			t.logger.Warnf("[TIMELINE] Event %s references missing sound %d, skipping", e.ID, e.SoundID)
			continue
		}
		p.Play(sound.Points, e.Duration, e.Start)
		scheduled++
		if end := e.Start + e.Duration; end > stopAt {
			stopAt = end
		}
	}

	t.mu.Lock()
	t.playing = true
	t.startAt = t.now()
	t.stopAt = stopAt
	t.head = startPlayhead(t.tick)
	t.mu.Unlock()
	t.logger.Infof("[TIMELINE] Playing %d event(s), stop at %.2fs", scheduled, stopAt)
	return nil
}

// tick advances the playhead once; returning false ends the loop.
func (t *Timeline) tick() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.playing {
		return false
	}
	if t.now()-t.startAt >= t.stopAt {
		t.playing = false
		return false
	}
	return true
}

// Stop halts playback and cancels the playhead loop. Commands already
// issued to the synth are left to complete; the timeline only stops issuing
// new ones and resets its own state.
func (t *Timeline) Stop() {
	t.mu.Lock()
	head := t.head
	t.head = nil
	t.playing = false
	t.mu.Unlock()
	if head != nil {
		head.Stop()
	}
}

// Playing reports whether a playback is in flight.
func (t *Timeline) Playing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.playing
}

// PlayheadTime is the current playback position, zero when stopped.
func (t *Timeline) PlayheadTime() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.playing {
		return 0
	}
	return t.now() - t.startAt
}

// StateAt reports an event's display state for a playhead position. An
// event is active while the playhead lies in [Start, Start+Duration).
func (t *Timeline) StateAt(e Event, playhead float64) State {
	if !t.Playing() {
		return StateIdle
	}
	switch {
	case playhead < e.Start:
		return StateScheduled
	case playhead < e.Start+e.Duration:
		return StateActive
	default:
		return StateCompleted
	}
}
