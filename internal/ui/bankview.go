package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/cartmarsh/toneSamples/core/bank"
	"github.com/cartmarsh/toneSamples/core/session"
)

const bankRowH = 22

// BankView lists the saved sounds. Clicking a row arms it for placement on
// the timeline; the small x deletes it (cascading to timeline events), wav
// exports it.
type BankView struct {
	rect image.Rectangle
	sess *session.Session

	// Export writes a sound to disk; wired by the game so the view stays
	// free of file concerns.
	Export func(bank.Sound) error

	// Pending is the sound armed for timeline placement, -1 when none.
	Pending int

	leftPrev bool
}

func NewBankView(r image.Rectangle, sess *session.Session) *BankView {
	return &BankView{rect: r, sess: sess, Pending: -1}
}

func (b *BankView) rowRect(i int) image.Rectangle {
	y := b.rect.Min.Y + 24 + i*bankRowH
	return image.Rect(b.rect.Min.X+4, y, b.rect.Max.X-4, y+bankRowH-2)
}

func (b *BankView) Update() {
	mx, my := cursorPosition()
	pressed := isMouseButtonPressed(ebiten.MouseButtonLeft)
	clicked := pressed && !b.leftPrev
	b.leftPrev = pressed
	if !clicked || !pt(mx, my, b.rect) {
		return
	}

	for i, s := range b.sess.Bank.Sounds() {
		row := b.rowRect(i)
		if !pt(mx, my, row) {
			continue
		}
		delRect := image.Rect(row.Max.X-18, row.Min.Y, row.Max.X, row.Max.Y)
		wavRect := image.Rect(row.Max.X-52, row.Min.Y, row.Max.X-22, row.Max.Y)
		switch {
		case pt(mx, my, delRect):
			if b.sess.DeleteSound(s.ID) && b.Pending == s.ID {
				b.Pending = -1
			}
		case pt(mx, my, wavRect) && b.Export != nil:
			if err := b.Export(s); err != nil {
				b.sess.Status = err.Error()
			} else {
				b.sess.Status = "exported " + s.Name + ".wav"
			}
		default:
			b.Pending = s.ID
		}
		return
	}
}

func (b *BankView) Draw(dst *ebiten.Image) {
	drawRect(dst, b.rect, colBar, true)
	drawRect(dst, b.rect, colCanvasEdge, false)
	sounds := b.sess.Bank.Sounds()
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("bank %d/%d", len(sounds), bank.MaxSounds), b.rect.Min.X+6, b.rect.Min.Y+4)

	for i, s := range sounds {
		row := b.rowRect(i)
		fill := colBankItem
		if s.ID == b.Pending {
			fill = colBankPending
		}
		drawRect(dst, row, fill, true)
		ebitenutil.DebugPrintAt(dst, s.Name, row.Min.X+4, row.Min.Y+2)
		ebitenutil.DebugPrintAt(dst, "wav", row.Max.X-48, row.Min.Y+2)
		ebitenutil.DebugPrintAt(dst, "x", row.Max.X-12, row.Min.Y+2)
	}
}
