package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// TextInput is a minimal editable text box used for the sound name.
type TextInput struct {
	Rect    image.Rectangle
	Text    string
	focused bool
	blink   int
	backRep int
}

func NewTextInput(r image.Rectangle) *TextInput {
	return &TextInput{Rect: r}
}

func (t *TextInput) Focused() bool { return t.focused }

func (t *TextInput) SetText(s string) { t.Text = s }

func (t *TextInput) Value() string { return t.Text }

// Update processes focus clicks and typed characters.
func (t *TextInput) Update() {
	mx, my := cursorPosition()
	if isMouseButtonPressed(ebiten.MouseButtonLeft) {
		t.focused = pt(mx, my, t.Rect)
	}
	if !t.focused {
		t.blink = 0
		return
	}

	t.blink++
	if t.blink > 60 {
		t.blink = 0
	}

	for _, r := range inputChars() {
		if r == '\n' || r == '\r' {
			continue
		}
		if len(t.Text) < 24 {
			t.Text += string(r)
		}
	}

	if isKeyPressed(ebiten.KeyBackspace) {
		// fire on first press, then repeat while held
		if t.backRep == 0 || (t.backRep > 20 && t.backRep%4 == 0) {
			if len(t.Text) > 0 {
				rs := []rune(t.Text)
				t.Text = string(rs[:len(rs)-1])
			}
		}
		t.backRep++
	} else {
		t.backRep = 0
	}

	if isKeyPressed(ebiten.KeyEscape) {
		t.focused = false
	}
}

func (t *TextInput) Draw(dst *ebiten.Image) {
	drawRect(dst, t.Rect, colNameBox, true)
	border := colCanvasEdge
	if t.focused {
		border = colButtonBorder
	}
	drawRect(dst, t.Rect, border, false)
	txt := t.Text
	if t.focused && t.blink < 30 {
		txt += "_"
	}
	ebitenutil.DebugPrintAt(dst, txt, t.Rect.Min.X+4, t.Rect.Min.Y+3)
}
