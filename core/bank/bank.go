package bank

import (
	"errors"

	"github.com/cartmarsh/toneSamples/core/play"
	"github.com/cartmarsh/toneSamples/core/stream"
	game_log "github.com/cartmarsh/toneSamples/internal/log"
)

// MaxSounds caps the number of live bank entries.
const MaxSounds = 10

var (
	ErrBankFull  = errors.New("bank: sound limit reached")
	ErrEmptyName = errors.New("bank: name must not be empty")
	ErrNoPoints  = errors.New("bank: nothing drawn to save")
)

// Sound is an immutable snapshot of a drawn point stream plus the synthesis
// configuration it was saved with. IDs are creation-order monotonic.
type Sound struct {
	ID         int
	Name       string
	Points     []stream.Point
	Shape      play.Shape
	Reverb     float64
	Distortion float64
}

// Span is the time covered by the snapshot's points.
func (s Sound) Span() float64 {
	if len(s.Points) == 0 {
		return 0
	}
	return s.Points[len(s.Points)-1].T - s.Points[0].T
}

// Bank is the append-only store of saved sounds.
type Bank struct {
	sounds []Sound
	nextID int
	logger *game_log.Logger
}

func New(logger *game_log.Logger) *Bank {
	return &Bank{logger: logger}
}

// Save snapshots pts into a new entry. The points are copied, never
// aliased, so later edits to the drawing cannot reach saved sounds. Saves
// beyond MaxSounds or with an empty name are rejected and leave the bank
// untouched.
func (b *Bank) Save(name string, pts []stream.Point, shape play.Shape, reverb, distortion float64) (Sound, error) {
	if name == "" {
		return Sound{}, ErrEmptyName
	}
	if len(pts) == 0 {
		return Sound{}, ErrNoPoints
	}
	if len(b.sounds) >= MaxSounds {
		return Sound{}, ErrBankFull
	}
	snap := make([]stream.Point, len(pts))
	copy(snap, pts)
	s := Sound{
		ID:         b.nextID,
		Name:       name,
		Points:     snap,
		Shape:      shape,
		Reverb:     reverb,
		Distortion: distortion,
	}
	b.nextID++
	b.sounds = append(b.sounds, s)
	b.logger.Infof("[BANK] Saved sound %d %q (%d points)", s.ID, s.Name, len(snap))
	return s, nil
}

// Get looks up a sound by ID.
func (b *Bank) Get(id int) (Sound, bool) {
	for _, s := range b.sounds {
		if s.ID == id {
			return s, true
		}
	}
	return Sound{}, false
}

// Sounds returns the live entries in creation order.
func (b *Bank) Sounds() []Sound {
	out := make([]Sound, len(b.sounds))
	copy(out, b.sounds)
	return out
}

func (b *Bank) Len() int { return len(b.sounds) }

// Delete removes a sound by ID. Timeline events referencing it must be
// pruned by the caller (the session cascades this).
func (b *Bank) Delete(id int) bool {
	for i, s := range b.sounds {
		if s.ID == id {
			b.sounds = append(b.sounds[:i], b.sounds[i+1:]...)
			b.logger.Infof("[BANK] Deleted sound %d %q", s.ID, s.Name)
			return true
		}
	}
	return false
}
