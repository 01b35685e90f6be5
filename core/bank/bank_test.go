package bank

import (
	"fmt"
	"io"
	"reflect"
	"testing"

	"github.com/cartmarsh/toneSamples/core/play"
	"github.com/cartmarsh/toneSamples/core/stream"
	game_log "github.com/cartmarsh/toneSamples/internal/log"
)

func testLogger() *game_log.Logger {
	return game_log.New(io.Discard, game_log.LevelNone)
}

func somePoints() []stream.Point {
	return []stream.Point{
		{X: 0, Y: 10, T: 0, LineStart: true},
		{X: 10, Y: 20, T: 0.1},
		{X: 20, Y: 30, T: 0.2},
	}
}

func TestSaveAssignsMonotonicIDs(t *testing.T) {
	b := New(testLogger())
	first, err := b.Save("one", somePoints(), play.ShapeSine, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	second, err := b.Save("two", somePoints(), play.ShapeSquare, 0.5, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	if second.ID <= first.ID {
		t.Fatalf("IDs must be creation-order monotonic: %d then %d", first.ID, second.ID)
	}
}

func TestSaveRejectsEmptyNameAndEmptyPoints(t *testing.T) {
	b := New(testLogger())
	if _, err := b.Save("", somePoints(), play.ShapeSine, 0, 0); err != ErrEmptyName {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if _, err := b.Save("x", nil, play.ShapeSine, 0, 0); err != ErrNoPoints {
		t.Fatalf("expected ErrNoPoints, got %v", err)
	}
	if b.Len() != 0 {
		t.Fatalf("rejected saves must not create entries")
	}
}

func TestSaveSnapshotsThePoints(t *testing.T) {
	b := New(testLogger())
	pts := somePoints()
	saved, err := b.Save("snap", pts, play.ShapeSine, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	pts[1].Y = 999
	got, _ := b.Get(saved.ID)
	if got.Points[1].Y == 999 {
		t.Fatalf("saved sound must own an independent copy of the points")
	}
}

func TestEleventhSaveIsRejectedAndExistingUntouched(t *testing.T) {
	b := New(testLogger())
	for i := 0; i < MaxSounds; i++ {
		if _, err := b.Save(fmt.Sprintf("s%d", i), somePoints(), play.ShapeSine, 0, 0); err != nil {
			t.Fatal(err)
		}
	}
	before := b.Sounds()

	if _, err := b.Save("overflow", somePoints(), play.ShapeSine, 0, 0); err != ErrBankFull {
		t.Fatalf("expected ErrBankFull, got %v", err)
	}
	after := b.Sounds()
	if len(after) != MaxSounds {
		t.Fatalf("bank size changed: %d", len(after))
	}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("existing entries must be value-for-value identical after a rejected save")
	}
}

func TestDelete(t *testing.T) {
	b := New(testLogger())
	s, _ := b.Save("gone", somePoints(), play.ShapeSine, 0, 0)
	if !b.Delete(s.ID) {
		t.Fatalf("delete of existing sound must succeed")
	}
	if b.Delete(s.ID) {
		t.Fatalf("second delete must report missing")
	}
	if _, ok := b.Get(s.ID); ok {
		t.Fatalf("deleted sound still resolvable")
	}
}
