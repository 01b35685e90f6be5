package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cartmarsh/toneSamples/core/session"
	"github.com/cartmarsh/toneSamples/core/stream"
)

const gapHandleHalf = 5 // px hit box around a gap handle

// CanvasView is the drawing surface. In draw mode it feeds pointer motion
// to the recorder; in edit mode it hit-tests lines and gap handles. Points
// are stored in canvas-local coordinates.
type CanvasView struct {
	rect image.Rectangle
	sess *session.Session

	// backing-store scale relative to on-screen pixels; 1 unless the
	// canvas is rendered at a different resolution than it stores.
	scaleX, scaleY float64

	// gapScale converts horizontal handle-drag pixels into seconds.
	gapScale float64

	leftPrev   bool
	dragHandle int // segment index of the gap handle being dragged, -1 none
	lastMx     int
}

func NewCanvasView(r image.Rectangle, sess *session.Session, gapScale float64) *CanvasView {
	return &CanvasView{rect: r, sess: sess, scaleX: 1, scaleY: 1, gapScale: gapScale, dragHandle: -1}
}

func (c *CanvasView) local(mx, my int) (float64, float64) {
	return float64(mx - c.rect.Min.X), float64(my - c.rect.Min.Y)
}

func (c *CanvasView) Update() {
	mx, my := cursorPosition()
	pressed := isMouseButtonPressed(ebiten.MouseButtonLeft)
	clicked := pressed && !c.leftPrev
	released := !pressed && c.leftPrev
	c.leftPrev = pressed
	inside := pt(mx, my, c.rect)
	x, y := c.local(mx, my)

	if c.sess.EditMode {
		c.updateEdit(x, y, inside, pressed, clicked, mx)
		return
	}

	rec := c.sess.Recorder
	switch {
	case clicked && inside:
		rec.PointerDown(x, y, c.sess.Now())
	case pressed && rec.Drawing():
		rec.PointerMove(x, y, c.sess.Now())
	case released && rec.Drawing():
		rec.PointerUp(c.sess.Now())
	}
}

func (c *CanvasView) updateEdit(x, y float64, inside, pressed, clicked bool, mx int) {
	if c.dragHandle >= 0 {
		if !pressed {
			c.dragHandle = -1
		} else {
			dx := float64(mx - c.lastMx)
			segs := c.sess.Stream.Segments()
			if c.dragHandle < len(segs) {
				c.sess.AdjustGap(segs[c.dragHandle].Start, dx*c.gapScale)
			}
			c.lastMx = mx
		}
		return
	}

	if !inside {
		return
	}
	c.sess.Hover(x, y, c.scaleX, c.scaleY)

	if !clicked {
		return
	}
	if idx, ok := c.handleAt(x, y); ok {
		c.sess.Selection.GapHandle = idx
		c.dragHandle = idx
		c.lastMx = mx
		return
	}
	c.sess.SelectAt(x, y, c.scaleX, c.scaleY)
}

// handleAt hit-tests the gap handles, one per line after the first.
func (c *CanvasView) handleAt(x, y float64) (int, bool) {
	for _, h := range c.handles() {
		if x >= h.x-gapHandleHalf && x <= h.x+gapHandleHalf &&
			y >= h.y-gapHandleHalf && y <= h.y+gapHandleHalf {
			return h.seg, true
		}
	}
	return 0, false
}

type gapHandle struct {
	seg  int
	x, y float64
}

// handles places one draggable marker per gap, midway between the previous
// line's end and the next line's start.
func (c *CanvasView) handles() []gapHandle {
	segs := c.sess.Stream.Segments()
	var out []gapHandle
	for i := 1; i < len(segs); i++ {
		prev := segs[i-1].Points[len(segs[i-1].Points)-1]
		next := segs[i].Points[0]
		out = append(out, gapHandle{
			seg: i,
			x:   (prev.X + next.X) / 2,
			y:   (prev.Y + next.Y) / 2,
		})
	}
	return out
}

func (c *CanvasView) Draw(dst *ebiten.Image) {
	drawRect(dst, c.rect, colCanvas, true)
	drawRect(dst, c.rect, colCanvasEdge, false)

	ox := float64(c.rect.Min.X)
	oy := float64(c.rect.Min.Y)
	sel := c.sess.Selection
	for si, strip := range c.sess.Stream.Strips() {
		col := colLine
		if c.sess.EditMode {
			segs := c.sess.Stream.Segments()
			if sel.HasSelected && si < len(segs) && segs[si].Start == sel.Selected.Start {
				col = colSelected
			} else if sel.HasHovered && si < len(segs) && segs[si].Start == sel.Hovered.Start {
				col = colHovered
			}
		}
		c.drawStrip(dst, strip, ox, oy, col)
	}

	if c.sess.EditMode {
		for _, h := range c.handles() {
			col := colGapHandle
			if sel.GapHandle == h.seg {
				col = colSelected
			}
			r := image.Rect(
				c.rect.Min.X+int(h.x)-gapHandleHalf, c.rect.Min.Y+int(h.y)-gapHandleHalf,
				c.rect.Min.X+int(h.x)+gapHandleHalf, c.rect.Min.Y+int(h.y)+gapHandleHalf,
			)
			drawRect(dst, r, col, true)
		}
	}
}

func (c *CanvasView) drawStrip(dst *ebiten.Image, strip []stream.Point, ox, oy float64, col color.Color) {
	if len(strip) == 1 {
		p := strip[0]
		r := image.Rect(int(ox+p.X)-2, int(oy+p.Y)-2, int(ox+p.X)+2, int(oy+p.Y)+2)
		drawRect(dst, r, col, true)
		return
	}
	for i := 0; i+1 < len(strip); i++ {
		a, b := strip[i], strip[i+1]
		strokeLine(dst, ox+a.X, oy+a.Y, ox+b.X, oy+b.Y, 2, col)
	}
}
