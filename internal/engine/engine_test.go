package engine

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/coreman2200/funtimes-lumastrip/internal/ir"
	"github.com/coreman2200/funtimes-lumastrip/internal/strip"
)

type stubScenario struct {
	name     string
	variants int
	render   func(e *Engine)
}

func (s *stubScenario) Name() string  { return s.name }
func (s *stubScenario) Variants() int { return s.variants }
func (s *stubScenario) Render(e *Engine) {
	if s.render != nil {
		s.render(e)
	}
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) sleep(d time.Duration)   { c.t = c.t.Add(d) }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// newTestEngine wires an engine over a sim strip, an injection-only decoder
// and a fake clock. variants lists the per-slot variant counts.
func newTestEngine(t *testing.T, variants ...int) (*Engine, *strip.Sim, *fakeClock) {
	t.Helper()
	if len(variants) == 0 {
		variants = []int{7, 7, 7, 7, 1, 1, 1, 1, 1, 1}
	}
	scenarios := make([]Scenario, len(variants))
	for i, v := range variants {
		scenarios[i] = &stubScenario{name: "stub", variants: v}
	}
	reg, err := NewRegistry(scenarios...)
	assert.NoError(t, err)

	sim := strip.NewSim()
	st, err := strip.New(16, sim, zerolog.Nop())
	assert.NoError(t, err)

	e, err := New(st, ir.NewDecoder(nil, zerolog.Nop()), reg, zerolog.Nop())
	assert.NoError(t, err)

	clk := &fakeClock{t: time.Unix(1000, 0)}
	e.nowFn = clk.now
	e.sleepFn = clk.sleep
	e.epoch = clk.t
	e.set.lastRotate = clk.t
	e.rnd = rand.New(rand.NewSource(1))
	return e, sim, clk
}

func (e *Engine) inject(cmds ...ir.Command) {
	for _, c := range cmds {
		e.dec.Inject(c)
	}
}

// Canonical button sequence: from scenario 0 variant 0 at midpoint speed,
// [digit 3, next, next, vol+] lands on scenario 3 variant 2, brightness stays
// clamped at max, and exactly the two variant switches after the scenario
// switch signal cancellation.
func TestEndToEndCommandSequence(t *testing.T) {
	e, _, _ := newTestEngine(t)

	results := []bool{
		e.Apply(ir.Digit3),
		e.Apply(ir.NextVariant),
		e.Apply(ir.NextVariant),
		e.Apply(ir.VolumeUp),
	}
	assert.Equal(t, []bool{true, true, true, false}, results)

	cancelsAfterFirst := 0
	for _, r := range results[1:] {
		if r {
			cancelsAfterFirst++
		}
	}
	assert.Equal(t, 2, cancelsAfterFirst)

	assert.Equal(t, 3, e.set.Scenario)
	assert.Equal(t, 2, e.set.Variant)
	assert.Equal(t, BrightnessSteps-1, e.set.Brightness, "already at max, clamped")
}

func TestRunRendersAndBlanksOnShutdown(t *testing.T) {
	sc := &stubScenario{name: "frames", variants: 1}
	sc.render = func(e *Engine) {
		for {
			e.Strip().Fill(10, 20, 30)
			e.Strip().Push()
			if e.Wait(time.Millisecond) {
				return
			}
		}
	}
	reg, _ := NewRegistry(sc, &stubScenario{name: "other", variants: 1})
	sim := strip.NewSim()
	st, _ := strip.New(4, sim, zerolog.Nop())
	e, _ := New(st, ir.NewDecoder(nil, zerolog.Nop()), reg, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := e.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Greater(t, sim.Frames(), 1)
	assert.True(t, sim.Dark(), "shutdown blanks the strip")
}

func TestRunIdlesWhilePoweredOff(t *testing.T) {
	rendered := 0
	sc := &stubScenario{name: "counting", variants: 1}
	sc.render = func(e *Engine) {
		rendered++
		e.Wait(time.Millisecond)
	}
	reg, _ := NewRegistry(sc, &stubScenario{name: "other", variants: 1})
	sim := strip.NewSim()
	st, _ := strip.New(4, sim, zerolog.Nop())
	dec := ir.NewDecoder(nil, zerolog.Nop())
	e, _ := New(st, dec, reg, zerolog.Nop())

	dec.Inject(ir.Power) // off before the first render

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_ = e.Run(ctx)
	assert.Equal(t, 0, rendered, "no render passes while unpowered")
	assert.True(t, sim.Dark())
}
