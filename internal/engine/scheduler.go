package engine

import "time"

// pollInterval bounds input latency: the longest a queued button press can
// sit before the state machine sees it.
const pollInterval = time.Millisecond

// Wait is the cooperative suspension primitive. Render routines call it after
// every frame instead of sleeping; it paces the animation (speed-scaled),
// keeps draining remote commands while it waits, and returns true when the
// routine must stop rendering and return. A routine that checks the result of
// every Wait call never overruns a switch by more than one wait granularity.
//
// Wait(0) still polls exactly once, which is how routines with no natural
// per-frame delay stay responsive: call Wait(0) every iteration.
func (e *Engine) Wait(d time.Duration) bool {
	if e.ctx != nil && e.ctx.Err() != nil {
		return true
	}
	now := e.nowFn()
	if e.rotateDue(now) {
		e.rotate(now)
		return true
	}
	deadline := now.Add(scaleWait(d, e.set.Speed))
	for {
		if e.ctx != nil && e.ctx.Err() != nil {
			return true
		}
		if e.Apply(e.dec.Poll()) {
			return true
		}
		remain := deadline.Sub(e.nowFn())
		if remain <= 0 {
			return false
		}
		if remain > pollInterval {
			remain = pollInterval
		}
		e.sleepFn(remain)
	}
}
