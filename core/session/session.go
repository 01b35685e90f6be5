package session

import (
	"github.com/cartmarsh/toneSamples/core/bank"
	"github.com/cartmarsh/toneSamples/core/play"
	"github.com/cartmarsh/toneSamples/core/stream"
	"github.com/cartmarsh/toneSamples/core/timeline"
	game_log "github.com/cartmarsh/toneSamples/internal/log"
)

// Selection is the transient edit-mode state: the hovered and the
// click-committed segment plus the selected gap handle. It exists only
// while edit mode is on and is cleared on mode exit or on a committed edit.
type Selection struct {
	Hovered     stream.Segment
	HasHovered  bool
	Selected    stream.Segment
	HasSelected bool
	GapHandle   int // index into Stream.Segments, -1 when none
}

func (s *Selection) reset() {
	*s = Selection{GapHandle: -1}
}

// Config wires a session to the external synthesis capability.
type Config struct {
	Synth   play.Synth
	Control play.Control
	CanvasW float64
	CanvasH float64
	Layers  []play.Layer
	Logger  *game_log.Logger
}

// Session owns the active drawing and all per-run state: the in-progress
// point stream, the recorder over it, the bank, the timeline and the
// current synthesis settings. There is no ambient global state; "clear
// drawing" swaps in a fresh stream and recorder.
type Session struct {
	logger  *game_log.Logger
	synth   play.Synth
	control play.Control

	Stream   *stream.Stream
	Recorder *play.Recorder
	Player   *play.Player
	Bank     *bank.Bank
	Timeline *timeline.Timeline

	CanvasW, CanvasH float64

	Shape      play.Shape
	VolumeDB   float64
	Reverb     float64
	Distortion float64

	EditMode  bool
	Selection Selection

	// Status is a transient user-facing message set by rejected
	// operations; the UI draws and fades it.
	Status string
}

func New(cfg Config) *Session {
	s := &Session{
		logger:   cfg.Logger,
		synth:    cfg.Synth,
		control:  cfg.Control,
		Player:   play.NewPlayer(cfg.Synth, cfg.CanvasH, cfg.Layers...),
		Bank:     bank.New(cfg.Logger),
		Timeline: timeline.New(cfg.Logger, cfg.Synth.Now),
		CanvasW:  cfg.CanvasW,
		CanvasH:  cfg.CanvasH,
	}
	s.Selection.reset()
	s.Clear()
	return s
}

// Now exposes the synth clock.
func (s *Session) Now() float64 { return s.synth.Now() }

// AdjustGap changes the silence recorded before the line starting at point
// index i by delta seconds, clamped at zero.
func (s *Session) AdjustGap(i int, delta float64) {
	if i < 0 || i >= s.Stream.Len() {
		return
	}
	p := s.Stream.At(i)
	if !p.LineStart {
		return
	}
	s.Stream.SetGapBefore(i, p.GapBefore+delta)
}

// Clear discards the drawing and starts a fresh recording session. Saved
// sounds and timeline events are untouched.
func (s *Session) Clear() {
	s.Stream = stream.New()
	s.Recorder = play.NewRecorder(s.Stream, s.synth, s.CanvasH)
	s.Selection.reset()
}

// SetEditMode toggles edit mode; leaving it drops any selection.
func (s *Session) SetEditMode(on bool) {
	s.EditMode = on
	if !on {
		s.Selection.reset()
	}
}

// Hover updates the hovered segment from pointer proximity. Coordinates are
// on-screen pixels; scaleX/scaleY map them into the canvas backing store.
func (s *Session) Hover(x, y, scaleX, scaleY float64) {
	if !s.EditMode {
		return
	}
	seg, ok := s.Stream.FindSegment(x, y, scaleX, scaleY)
	s.Selection.Hovered = seg
	s.Selection.HasHovered = ok
}

// SelectAt commits the segment under the pointer, if any.
func (s *Session) SelectAt(x, y, scaleX, scaleY float64) bool {
	if !s.EditMode {
		return false
	}
	seg, ok := s.Stream.FindSegment(x, y, scaleX, scaleY)
	if ok {
		s.Selection.Selected = seg
		s.Selection.HasSelected = true
	}
	return ok
}

// ApplyEdit transforms the selected segment and splices the result back
// into the stream. The selection is cleared afterwards: the old segment
// view is invalid once the stream has mutated.
func (s *Session) ApplyEdit(kind stream.Transform, factor float64) bool {
	if !s.Selection.HasSelected {
		s.Status = "select a line first"
		return false
	}
	seg := s.Selection.Selected
	repl := stream.Apply(kind, seg.Points, factor)
	s.Stream.Splice(seg, repl)
	s.Selection.reset()
	s.logger.Debugf("[SESSION] Applied %s to points [%d,%d)", kind, seg.Start, seg.End)
	return true
}

// SaveSound snapshots the current drawing into the bank.
func (s *Session) SaveSound(name string) (bank.Sound, bool) {
	sound, err := s.Bank.Save(name, s.Stream.Points(), s.Shape, s.Reverb, s.Distortion)
	if err != nil {
		s.Status = err.Error()
		return bank.Sound{}, false
	}
	s.Status = "saved " + sound.Name
	return sound, true
}

// DeleteSound removes a bank entry and cascades: every timeline event
// referencing it is pruned as well, so no dangling references survive.
func (s *Session) DeleteSound(id int) bool {
	if !s.Bank.Delete(id) {
		return false
	}
	s.Timeline.PruneSound(id)
	return true
}

// AddToTimeline drops a saved sound onto a track. The event duration is the
// sound's own playback duration.
func (s *Session) AddToTimeline(soundID, track int, start float64) bool {
	sound, ok := s.Bank.Get(soundID)
	if !ok {
		s.Status = "no such sound"
		return false
	}
	dur := sound.Span() + 0.5
	if _, err := s.Timeline.Add(soundID, track, start, dur); err != nil {
		s.Status = err.Error()
		return false
	}
	return true
}

// PlayDrawing schedules the current drawing from now and returns its
// duration. Zero points is a rejected no-op.
func (s *Session) PlayDrawing() float64 {
	if s.Stream.Len() == 0 {
		s.Status = "draw something first"
		return 0
	}
	return s.Player.Play(s.Stream.Points(), 0, 0)
}

// PlayTimeline starts timeline playback.
func (s *Session) PlayTimeline() bool {
	if err := s.Timeline.Play(s.Bank, s.Player); err != nil {
		s.Status = err.Error()
		return false
	}
	return true
}

// StopPlayback cancels the playhead loop and stops issuing new commands.
func (s *Session) StopPlayback() {
	s.Timeline.Stop()
}

// SetShape forwards the oscillator shape to the synth and remembers it for
// future saves.
func (s *Session) SetShape(shape play.Shape) {
	s.Shape = shape
	s.control.SetOscillatorShape(shape)
}

// SetVolume sets the master volume in dB (0 is unity).
func (s *Session) SetVolume(db float64) {
	s.VolumeDB = db
	s.control.SetVolumeDB(db)
}

// SetReverb sets the reverb wet level, 0..1.
func (s *Session) SetReverb(wet float64) {
	s.Reverb = clamp01(wet)
	s.control.SetReverbWet(s.Reverb)
}

// SetDistortion sets the distortion amount, 0..1.
func (s *Session) SetDistortion(amount float64) {
	s.Distortion = clamp01(amount)
	s.control.SetDistortionAmount(s.Distortion)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
