package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/coreman2200/funtimes-lumastrip/internal/ir"
)

func TestAutoRotateFiresOncePerPeriod(t *testing.T) {
	e, _, clk := newTestEngine(t)
	e.Apply(ir.AutoRotate)

	clk.advance(RotatePeriod - time.Second)
	assert.False(t, e.Wait(time.Millisecond), "59s in: not yet due")

	clk.advance(2 * time.Second)
	prev := e.set.Scenario
	assert.True(t, e.Wait(time.Millisecond), "past 60s of unscaled time: rotates")
	assert.NotEqual(t, prev, e.set.Scenario)

	// Window restarted: quiet again until another full period elapses.
	assert.False(t, e.Wait(time.Millisecond))
	clk.advance(RotatePeriod + time.Second)
	assert.True(t, e.Wait(time.Millisecond))
}

func TestAutoRotatePeriodIsUnscaled(t *testing.T) {
	e, _, clk := newTestEngine(t)
	e.Apply(ir.AutoRotate)
	e.set.Speed = 0 // slowest animation time

	clk.advance(RotatePeriod + time.Second)
	assert.True(t, e.Wait(time.Millisecond), "rotate cadence ignores the speed setting")
}

func TestAutoRotateNeverRepicksCurrentScenario(t *testing.T) {
	for count := 2; count <= ScenarioCount; count++ {
		variants := make([]int, count)
		for i := range variants {
			variants[i] = 3
		}
		e, sim, clk := newTestEngine(t, variants...)
		e.Apply(ir.AutoRotate)

		for fire := 0; fire < 50; fire++ {
			prev := e.set.Scenario
			e.Strip().Fill(4, 4, 4)
			e.Strip().Push()
			clk.advance(RotatePeriod + time.Second)
			assert.True(t, e.Wait(time.Millisecond))
			assert.NotEqual(t, prev, e.set.Scenario, "count=%d fire=%d", count, fire)
			assert.GreaterOrEqual(t, e.set.Variant, 0)
			assert.Less(t, e.set.Variant, 3, "variant valid for the new scenario")
			assert.True(t, sim.Dark(), "rotation blanks before the new scenario")
		}
	}
}

func TestAutoRotateDisabledNeverFires(t *testing.T) {
	e, _, clk := newTestEngine(t)
	clk.advance(10 * RotatePeriod)
	assert.False(t, e.Wait(time.Millisecond))
	assert.Equal(t, 0, e.set.Scenario)
}
