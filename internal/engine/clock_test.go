package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// The time-scaling contract: whatever factor Now applies to wall time, Wait
// applies its inverse to requested durations. Waiting "1 second of animation
// time" must therefore advance Now by 1 second at every speed level.
func TestWaitAndNowAreInverse(t *testing.T) {
	for level := 0; level < SpeedSteps; level++ {
		e, _, clk := newTestEngine(t)
		e.set.Speed = level
		e.epoch = clk.t

		canceled := e.Wait(time.Second)
		assert.False(t, canceled)
		anim := e.Now()
		assert.InDelta(t, float64(time.Second), float64(anim), 10,
			"level %d: waited 1s of animation time, Now reports %v", level, anim)
	}
}

func TestSpeedFactorMonotonicAndPositive(t *testing.T) {
	var prev time.Duration
	for level := 0; level < SpeedSteps; level++ {
		w := scaleWait(time.Second, level)
		assert.Greater(t, w, time.Duration(0))
		if level > 0 {
			assert.Less(t, w, prev, "higher speed waits less wall time")
		}
		prev = w
	}
	assert.Equal(t, time.Second, scaleWait(time.Second, SpeedMidpoint), "midpoint is 1:1")
}

func TestNowAtMidpointTracksWallClock(t *testing.T) {
	e, _, clk := newTestEngine(t)
	clk.advance(1500 * time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, e.Now())
}

func TestNowScalesElapsedTime(t *testing.T) {
	e, _, clk := newTestEngine(t)
	clk.advance(5 * time.Second)

	e.set.Speed = SpeedSteps - 1 // factor 9/5
	assert.Equal(t, 9*time.Second, e.Now())

	e.set.Speed = 0 // factor 1/5
	assert.Equal(t, time.Second, e.Now())
}

func TestScaleWaitClampsLevel(t *testing.T) {
	assert.Equal(t, scaleWait(time.Second, 0), scaleWait(time.Second, -5))
	assert.Equal(t, scaleWait(time.Second, SpeedSteps-1), scaleWait(time.Second, 99))
	assert.Equal(t, time.Duration(0), scaleWait(0, 3))
}
