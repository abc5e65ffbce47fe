package engine

import "github.com/coreman2200/funtimes-lumastrip/internal/ir"

// brightnessByte maps a volume level to the strip's 0..255 global scale.
// Level 0 is dim but never off; power is a separate button.
func brightnessByte(level int) uint8 {
	return uint8((level+1)*256/BrightnessSteps - 1)
}

// Apply feeds one decoded command through the controller state machine.
// It returns true iff the caller must treat the active scenario as canceled:
// power, scenario and variant changes cancel (and blank the strip first);
// brightness and speed apply to the running animation in place.
func (e *Engine) Apply(cmd ir.Command) bool {
	if !e.set.Powered && cmd != ir.Power {
		// Unpowered: nothing but the power button is honored, and whatever
		// routine is asking must stop rendering.
		return true
	}
	if cmd == ir.None {
		return false
	}

	switch cmd {
	case ir.Power:
		e.set.Powered = !e.set.Powered
		e.log.Info().Bool("on", e.set.Powered).Msg("power")
		if !e.set.Powered {
			e.blank()
			return true
		}
		// Fresh power-on: restart the rotate window, nothing to cancel.
		e.set.lastRotate = e.nowFn()
		return false

	case ir.VolumeUp, ir.VolumeDown:
		delta := 1
		if cmd == ir.VolumeDown {
			delta = -1
		}
		e.set.Brightness = clampInt(e.set.Brightness+delta, 0, BrightnessSteps-1)
		e.strip.SetBrightness(brightnessByte(e.set.Brightness))
		e.log.Debug().Int("level", e.set.Brightness).Msg("brightness")
		return false

	case ir.SpeedUp, ir.SpeedDown:
		delta := 1
		if cmd == ir.SpeedDown {
			delta = -1
		}
		e.set.Speed = clampInt(e.set.Speed+delta, 0, SpeedSteps-1)
		e.log.Debug().Int("level", e.set.Speed).Msg("speed")
		return false

	case ir.NextVariant, ir.PrevVariant:
		vc := e.reg.Get(e.set.Scenario).Variants()
		if vc <= 1 {
			return false
		}
		delta := 1
		if cmd == ir.PrevVariant {
			delta = vc - 1
		}
		e.set.Variant = (e.set.Variant + delta) % vc
		e.log.Debug().Int("variant", e.set.Variant).Msg("variant switch")
		e.blank()
		return true

	case ir.AutoRotate:
		if !e.set.AutoRotate && e.reg.Count() < 2 {
			// Rotating among fewer than 2 scenarios cannot pick a distinct one.
			e.log.Warn().Msg("auto-rotate needs at least 2 scenarios")
			return false
		}
		e.set.AutoRotate = !e.set.AutoRotate
		e.set.lastRotate = e.nowFn()
		e.log.Info().Bool("on", e.set.AutoRotate).Msg("auto-rotate")
		return false
	}

	if idx, ok := cmd.Digit(); ok {
		if idx >= e.reg.Count() || idx == e.set.Scenario {
			// Unknown slot, or redundant re-select: the running animation
			// continues undisturbed.
			return false
		}
		e.set.Scenario = idx
		e.set.Variant = 0
		e.log.Info().Int("scenario", idx).Str("name", e.reg.Get(idx).Name()).Msg("scenario switch")
		e.blank()
		return true
	}

	return false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
