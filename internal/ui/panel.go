package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/cartmarsh/toneSamples/core/session"
	"github.com/cartmarsh/toneSamples/core/stream"
)

// PanelHeight is the control bar height in px.
const PanelHeight = 72

// Panel is the two-row control bar: transport, shape, save and clear on the
// first row; effect sliders, edit tools and the status line on the second.
type Panel struct {
	sess *session.Session

	playRect  image.Rectangle
	stopRect  image.Rectangle
	editRect  image.Rectangle
	clearRect image.Rectangle
	shapeRect image.Rectangle
	saveRect  image.Rectangle
	nameBox   *TextInput

	volume     *Slider
	reverb     *Slider
	distortion *Slider

	smoothRect   image.Rectangle
	stretchUp    image.Rectangle
	stretchDown  image.Rectangle
	arpeggioRect image.Rectangle

	leftPrev    bool
	statusFrame int
	lastStatus  string
}

func NewPanel(sess *session.Session) *Panel {
	p := &Panel{
		sess:      sess,
		playRect:  image.Rect(10, 8, 40, 30),
		stopRect:  image.Rect(48, 8, 78, 30),
		editRect:  image.Rect(90, 8, 130, 30),
		clearRect: image.Rect(138, 8, 186, 30),
		shapeRect: image.Rect(198, 8, 272, 30),
		saveRect:  image.Rect(456, 8, 500, 30),
		nameBox:   NewTextInput(image.Rect(284, 8, 448, 30)),

		volume:     NewSlider("vol", 1),
		reverb:     NewSlider("rev", sess.Reverb),
		distortion: NewSlider("dist", sess.Distortion),

		smoothRect:   image.Rect(10, 44, 70, 64),
		stretchUp:    image.Rect(78, 44, 128, 64),
		stretchDown:  image.Rect(136, 44, 186, 64),
		arpeggioRect: image.Rect(194, 44, 244, 64),
	}
	p.volume.SetRect(image.Rect(430, 46, 520, 62))
	p.reverb.SetRect(image.Rect(560, 46, 680, 62))
	p.distortion.SetRect(image.Rect(720, 46, 840, 62))
	return p
}

func (p *Panel) Update() {
	mx, my := cursorPosition()
	pressed := isMouseButtonPressed(ebiten.MouseButtonLeft)
	clicked := pressed && !p.leftPrev
	p.leftPrev = pressed

	p.nameBox.Update()

	if p.volume.Handle(mx, my, pressed) {
		// slider 0..1 maps to -40..0 dB
		p.sess.SetVolume(40 * (p.volume.Value - 1))
	}
	if p.reverb.Handle(mx, my, pressed) {
		p.sess.SetReverb(p.reverb.Value)
	}
	if p.distortion.Handle(mx, my, pressed) {
		p.sess.SetDistortion(p.distortion.Value)
	}

	if !clicked {
		p.fadeStatus()
		return
	}

	switch {
	case pt(mx, my, p.playRect):
		p.sess.PlayDrawing()
	case pt(mx, my, p.stopRect):
		p.sess.StopPlayback()
	case pt(mx, my, p.editRect):
		p.sess.SetEditMode(!p.sess.EditMode)
	case pt(mx, my, p.clearRect):
		p.sess.Clear()
	case pt(mx, my, p.shapeRect):
		p.sess.SetShape(p.sess.Shape.Next())
	case pt(mx, my, p.saveRect):
		if _, ok := p.sess.SaveSound(p.nameBox.Value()); ok {
			p.nameBox.SetText("")
		}
	}

	if p.sess.EditMode {
		switch {
		case pt(mx, my, p.smoothRect):
			p.sess.ApplyEdit(stream.TransformSmooth, 0)
		case pt(mx, my, p.stretchUp):
			p.sess.ApplyEdit(stream.TransformStretch, 1.5)
		case pt(mx, my, p.stretchDown):
			p.sess.ApplyEdit(stream.TransformStretch, 0.66)
		case pt(mx, my, p.arpeggioRect):
			p.sess.ApplyEdit(stream.TransformArpeggio, 0)
		}
	}
	p.fadeStatus()
}

// fadeStatus clears the session status a few seconds after it changes.
func (p *Panel) fadeStatus() {
	if p.sess.Status != p.lastStatus {
		p.lastStatus = p.sess.Status
		p.statusFrame = 0
	}
	if p.sess.Status == "" {
		return
	}
	p.statusFrame++
	if p.statusFrame > 180 {
		p.sess.Status = ""
		p.lastStatus = ""
		p.statusFrame = 0
	}
}

func (p *Panel) Draw(dst *ebiten.Image) {
	bar := image.Rect(0, 0, dst.Bounds().Dx(), PanelHeight)
	drawRect(dst, bar, colBar, true)

	drawButton(dst, p.playRect, colPlayButton, colButtonBorder, false)
	ebitenutil.DebugPrintAt(dst, ">", p.playRect.Min.X+11, p.playRect.Min.Y+3)
	drawButton(dst, p.stopRect, colStopButton, colButtonBorder, false)
	ebitenutil.DebugPrintAt(dst, "[]", p.stopRect.Min.X+8, p.stopRect.Min.Y+3)
	drawButton(dst, p.editRect, colEditButton, colButtonBorder, p.sess.EditMode)
	ebitenutil.DebugPrintAt(dst, "edit", p.editRect.Min.X+6, p.editRect.Min.Y+3)
	drawButton(dst, p.clearRect, colClearButton, colButtonBorder, false)
	ebitenutil.DebugPrintAt(dst, "clear", p.clearRect.Min.X+5, p.clearRect.Min.Y+3)
	drawButton(dst, p.shapeRect, colShapeButton, colButtonBorder, false)
	ebitenutil.DebugPrintAt(dst, p.sess.Shape.String(), p.shapeRect.Min.X+6, p.shapeRect.Min.Y+3)

	p.nameBox.Draw(dst)
	drawButton(dst, p.saveRect, colSaveButton, colButtonBorder, false)
	ebitenutil.DebugPrintAt(dst, "save", p.saveRect.Min.X+6, p.saveRect.Min.Y+3)

	p.volume.Draw(dst)
	p.reverb.Draw(dst)
	p.distortion.Draw(dst)

	if p.sess.EditMode {
		drawButton(dst, p.smoothRect, colEditButton, colButtonBorder, false)
		ebitenutil.DebugPrintAt(dst, "smooth", p.smoothRect.Min.X+4, p.smoothRect.Min.Y+2)
		drawButton(dst, p.stretchUp, colEditButton, colButtonBorder, false)
		ebitenutil.DebugPrintAt(dst, "str +", p.stretchUp.Min.X+4, p.stretchUp.Min.Y+2)
		drawButton(dst, p.stretchDown, colEditButton, colButtonBorder, false)
		ebitenutil.DebugPrintAt(dst, "str -", p.stretchDown.Min.X+4, p.stretchDown.Min.Y+2)
		drawButton(dst, p.arpeggioRect, colEditButton, colButtonBorder, false)
		ebitenutil.DebugPrintAt(dst, "arp", p.arpeggioRect.Min.X+8, p.arpeggioRect.Min.Y+2)
	}

	if p.sess.Status != "" {
		ebitenutil.DebugPrintAt(dst, p.sess.Status, 260, 48)
	}
}
