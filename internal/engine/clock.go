package engine

import "time"

// The speed setting scales animation time by the integer ratio
// (level+1)/(SpeedMidpoint+1): 1:1 at the midpoint, slower below, faster
// above, never zero or negative. Now multiplies by the ratio and Wait divides
// by it, so the two stay exact multiplicative inverses at every level and a
// scenario mixing both never drifts against itself.

const speedDen = int64(SpeedMidpoint + 1)

func speedNum(level int) int64 {
	return int64(clampInt(level, 0, SpeedSteps-1) + 1)
}

// Now returns animation time: device uptime scaled by the speed factor.
func (e *Engine) Now() time.Duration {
	elapsed := e.nowFn().Sub(e.epoch)
	return time.Duration(int64(elapsed) * speedNum(e.set.Speed) / speedDen)
}

// scaleWait converts a requested animation-time delay into wall time.
func scaleWait(d time.Duration, level int) time.Duration {
	if d <= 0 {
		return 0
	}
	return time.Duration(int64(d) * speedDen / speedNum(level))
}
