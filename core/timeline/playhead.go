package timeline

import (
	"context"
	"time"
)

// tickInterval approximates one display frame.
const tickInterval = 16 * time.Millisecond

// Playhead is the handle of the cooperative playback tick loop. Every
// started loop must be stopped: Stop cancels the pending tick and waits for
// the loop goroutine to exit, so a stopped timeline can never leak a
// perpetual tick.
type Playhead struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// startPlayhead runs tick on every interval until it returns false or the
// handle is stopped.
func startPlayhead(tick func() bool) *Playhead {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Playhead{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(p.done)
		ticker := time.NewTicker(tickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if !tick() {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return p
}

// Stop cancels the loop and blocks until it has exited. Safe to call more
// than once.
func (p *Playhead) Stop() {
	p.cancel()
	<-p.done
}
