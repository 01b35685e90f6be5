package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/cartmarsh/toneSamples/core/session"
	"github.com/cartmarsh/toneSamples/core/timeline"
)

const pxPerSec = 60.0

// TimelineView draws the track lanes, the placed events and the playhead,
// and handles placement and dragging. A drag only moves the event's start
// and track; an in-flight playback is never rescheduled.
type TimelineView struct {
	rect image.Rectangle
	sess *session.Session
	bank *BankView

	playRect image.Rectangle
	stopRect image.Rectangle

	dragID   string
	dragOffX int
	leftPrev bool
}

func NewTimelineView(r image.Rectangle, sess *session.Session, bank *BankView) *TimelineView {
	return &TimelineView{
		rect:     r,
		sess:     sess,
		bank:     bank,
		playRect: image.Rect(r.Min.X+6, r.Min.Y+2, r.Min.X+36, r.Min.Y+20),
		stopRect: image.Rect(r.Min.X+42, r.Min.Y+2, r.Min.X+72, r.Min.Y+20),
	}
}

func (t *TimelineView) lanesTop() int { return t.rect.Min.Y + 24 }

func (t *TimelineView) laneH() int {
	return (t.rect.Max.Y - t.lanesTop()) / timeline.TrackCount
}

func (t *TimelineView) trackAt(my int) int {
	track := (my - t.lanesTop()) / t.laneH()
	if track < 0 {
		track = 0
	}
	if track >= timeline.TrackCount {
		track = timeline.TrackCount - 1
	}
	return track
}

func (t *TimelineView) timeAt(mx int) float64 {
	s := float64(mx-t.rect.Min.X) / pxPerSec
	if s < 0 {
		s = 0
	}
	return s
}

func (t *TimelineView) eventRect(e timeline.Event) image.Rectangle {
	x := t.rect.Min.X + int(e.Start*pxPerSec)
	w := int(e.Duration * pxPerSec)
	if w < 8 {
		w = 8
	}
	y := t.lanesTop() + e.Track*t.laneH()
	return image.Rect(x, y+2, x+w, y+t.laneH()-2)
}

func (t *TimelineView) Update() {
	mx, my := cursorPosition()
	pressed := isMouseButtonPressed(ebiten.MouseButtonLeft)
	clicked := pressed && !t.leftPrev
	t.leftPrev = pressed

	if t.dragID != "" {
		if !pressed {
			t.dragID = ""
			return
		}
		start := t.timeAt(mx - t.dragOffX)
		t.sess.Timeline.Move(t.dragID, t.trackAt(my), start)
		return
	}

	if !clicked || !pt(mx, my, t.rect) {
		return
	}

	switch {
	case pt(mx, my, t.playRect):
		t.sess.PlayTimeline()
		return
	case pt(mx, my, t.stopRect):
		t.sess.StopPlayback()
		return
	}

	if my < t.lanesTop() {
		return
	}
	for _, e := range t.sess.Timeline.Events() {
		if pt(mx, my, t.eventRect(e)) {
			t.dragID = e.ID
			t.dragOffX = mx - t.rect.Min.X - int(e.Start*pxPerSec)
			return
		}
	}
	if t.bank.Pending >= 0 {
		if t.sess.AddToTimeline(t.bank.Pending, t.trackAt(my), t.timeAt(mx)) {
			t.bank.Pending = -1
		}
	}
}

func (t *TimelineView) Draw(dst *ebiten.Image) {
	drawRect(dst, t.rect, colBG, true)
	drawRect(dst, t.rect, colCanvasEdge, false)

	playing := t.sess.Timeline.Playing()
	drawButton(dst, t.playRect, colPlayButton, colButtonBorder, playing)
	ebitenutil.DebugPrintAt(dst, ">", t.playRect.Min.X+11, t.playRect.Min.Y+2)
	drawButton(dst, t.stopRect, colStopButton, colButtonBorder, !playing)
	ebitenutil.DebugPrintAt(dst, "[]", t.stopRect.Min.X+8, t.stopRect.Min.Y+2)

	for track := 0; track < timeline.TrackCount; track++ {
		y := t.lanesTop() + track*t.laneH()
		lane := image.Rect(t.rect.Min.X+1, y+1, t.rect.Max.X-1, y+t.laneH()-1)
		drawRect(dst, lane, colTrack, true)
		drawRect(dst, image.Rect(lane.Min.X, lane.Max.Y-1, lane.Max.X, lane.Max.Y), colTrackLine, true)
	}

	head := t.sess.Timeline.PlayheadTime()
	for _, e := range t.sess.Timeline.Events() {
		col := colEventIdle
		switch t.sess.Timeline.StateAt(e, head) {
		case timeline.StateActive:
			col = colEventHot
		case timeline.StateCompleted:
			col = colEventDone
		}
		r := t.eventRect(e)
		drawRect(dst, r, col, true)
		if sound, ok := t.sess.Bank.Get(e.SoundID); ok {
			ebitenutil.DebugPrintAt(dst, sound.Name, r.Min.X+2, r.Min.Y+2)
		}
	}

	if playing {
		x := t.rect.Min.X + int(head*pxPerSec)
		drawRect(dst, image.Rect(x, t.lanesTop(), x+2, t.rect.Max.Y), colPlayhead, true)
	}
}
