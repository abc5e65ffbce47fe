package engine

import "time"

// rotateDue reports whether the auto-rotate window has elapsed. The window is
// unscaled device time: the speed setting changes animations, not the rotate
// cadence. The count guard keeps the distinct-pick loop below well-founded
// even if auto-rotate was somehow enabled with a single scenario.
func (e *Engine) rotateDue(now time.Time) bool {
	return e.set.AutoRotate && e.reg.Count() >= 2 && now.Sub(e.set.lastRotate) > RotatePeriod
}

// rotate force-switches to a uniformly random different scenario with a
// random variant. Bounded rejection sampling: with >= 2 scenarios each try
// hits a distinct index with probability >= 1/2.
func (e *Engine) rotate(now time.Time) {
	e.set.lastRotate = now
	e.blank()
	next := e.set.Scenario
	for next == e.set.Scenario {
		next = e.rnd.Intn(e.reg.Count())
	}
	e.set.Scenario = next
	e.set.Variant = e.rnd.Intn(e.reg.Get(next).Variants())
	e.log.Info().
		Int("scenario", next).
		Str("name", e.reg.Get(next).Name()).
		Int("variant", e.set.Variant).
		Msg("auto-rotate switch")
}
