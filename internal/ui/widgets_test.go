package ui

import (
	"image"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestSliderValueFollowsDrag(t *testing.T) {
	s := NewSlider("rev", 0)
	s.SetRect(image.Rect(100, 10, 201, 26))

	if !s.Handle(150, 18, true) {
		t.Fatalf("press inside the slider must grab it")
	}
	if math.Abs(s.Value-0.5) > 0.02 {
		t.Fatalf("value %v, want about 0.5", s.Value)
	}
	// dragging keeps tracking even outside the rect
	s.Handle(300, 40, true)
	if s.Value != 1 {
		t.Fatalf("value %v, want clamp to 1", s.Value)
	}
	s.Handle(300, 40, false)
	if s.Handle(150, 18, false) {
		t.Fatalf("released slider must not report changes")
	}
}

func TestSliderIgnoresPressesOutside(t *testing.T) {
	s := NewSlider("dist", 0.3)
	s.SetRect(image.Rect(100, 10, 200, 26))
	if s.Handle(50, 18, true) {
		t.Fatalf("press outside the slider must be ignored")
	}
	if s.Value != 0.3 {
		t.Fatalf("value must be unchanged, got %v", s.Value)
	}
}

func TestTextInputTypingAndBackspace(t *testing.T) {
	ti := NewTextInput(image.Rect(0, 0, 100, 20))

	chars := []rune("hi")
	keys := map[ebiten.Key]bool{}
	restore := SetInputForTest(
		func() (int, int) { return 10, 10 },
		func(b ebiten.MouseButton) bool { return b == ebiten.MouseButtonLeft },
		func(k ebiten.Key) bool { return keys[k] },
		func() []rune { out := chars; chars = nil; return out },
	)
	defer restore()

	ti.Update() // click focuses and consumes the typed runes
	if !ti.Focused() {
		t.Fatalf("click inside must focus the input")
	}
	if ti.Value() != "hi" {
		t.Fatalf("value %q, want %q", ti.Value(), "hi")
	}

	keys[ebiten.KeyBackspace] = true
	ti.Update()
	if ti.Value() != "h" {
		t.Fatalf("backspace must delete one rune, got %q", ti.Value())
	}
}

func TestTextInputLosesFocusOnOutsideClick(t *testing.T) {
	ti := NewTextInput(image.Rect(0, 0, 100, 20))
	cursor := [2]int{10, 10}
	restore := SetInputForTest(
		func() (int, int) { return cursor[0], cursor[1] },
		func(b ebiten.MouseButton) bool { return b == ebiten.MouseButtonLeft },
		func(k ebiten.Key) bool { return false },
		func() []rune { return nil },
	)
	defer restore()

	ti.Update()
	if !ti.Focused() {
		t.Fatalf("click inside must focus")
	}
	cursor = [2]int{300, 300}
	ti.Update()
	if ti.Focused() {
		t.Fatalf("click outside must blur")
	}
}

func TestPtHitTest(t *testing.T) {
	r := image.Rect(10, 10, 20, 20)
	if !pt(10, 10, r) || pt(20, 20, r) || pt(9, 15, r) {
		t.Fatalf("pt must be inclusive of min and exclusive of max")
	}
}
