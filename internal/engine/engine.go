package engine

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreman2200/funtimes-lumastrip/internal/ir"
	"github.com/coreman2200/funtimes-lumastrip/internal/strip"
)

// Compiled-in control ranges, fixed by the remote's key layout, not by config.
const (
	// BrightnessSteps is the number of volume levels; default is the top one.
	BrightnessSteps = 8
	// SpeedSteps is the number of speed levels; the midpoint is 1:1 time.
	SpeedSteps    = 9
	SpeedMidpoint = SpeedSteps / 2
	// RotatePeriod is unscaled device time between auto-rotate switches.
	RotatePeriod = 60 * time.Second
)

// Settings is the controller state: everything the remote can change. It is
// owned by the Engine and only ever touched from the engine's goroutine.
type Settings struct {
	Powered    bool
	Brightness int // 0..BrightnessSteps-1
	Speed      int // 0..SpeedSteps-1
	Scenario   int // 0..reg.Count()-1
	Variant    int // 0..Variants(Scenario)-1
	AutoRotate bool

	lastRotate time.Time
}

// Engine is the cooperative scenario-execution core: a single-threaded loop
// that runs the selected scenario's render routine while staying responsive
// to the remote through the Wait primitive.
type Engine struct {
	log   zerolog.Logger
	strip *strip.Strip
	dec   *ir.Decoder
	reg   *Registry
	set   Settings
	rnd   *rand.Rand
	epoch time.Time

	// set by Run; Wait treats cancellation like a power-off switch so render
	// routines unwind cooperatively on shutdown
	ctx context.Context

	// swapped out by tests
	nowFn   func() time.Time
	sleepFn func(time.Duration)
}

func New(st *strip.Strip, dec *ir.Decoder, reg *Registry, log zerolog.Logger) (*Engine, error) {
	e := &Engine{
		log:   log,
		strip: st,
		dec:   dec,
		reg:   reg,
		set: Settings{
			Powered:    true,
			Brightness: BrightnessSteps - 1,
			Speed:      SpeedMidpoint,
		},
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
		nowFn:   time.Now,
		sleepFn: time.Sleep,
	}
	e.epoch = e.nowFn()
	e.set.lastRotate = e.epoch
	st.SetBrightness(brightnessByte(e.set.Brightness))
	return e, nil
}

// Strip exposes the pixel buffer to render routines.
func (e *Engine) Strip() *strip.Strip { return e.strip }

// Variant is the active variant of the active scenario.
func (e *Engine) Variant() int { return e.set.Variant }

// Rand is the engine's random source, shared with render routines so the
// whole core stays single-threaded and seedable.
func (e *Engine) Rand() *rand.Rand { return e.rnd }

// Settings returns a snapshot of the controller state.
func (e *Engine) Settings() Settings { return e.set }

// blank zeroes the display and pushes the blank frame, so the next render
// routine starts from a known-clean strip.
func (e *Engine) blank() {
	e.strip.Clear()
	e.strip.Push()
}

// Run is the master loop: drain one pending command, then hand control to the
// selected scenario until its next Wait reports a cancellation.
func (e *Engine) Run(ctx context.Context) error {
	e.ctx = ctx
	e.log.Info().
		Int("scenarios", e.reg.Count()).
		Int("pixels", e.strip.Count()).
		Msg("engine running")
	for {
		select {
		case <-ctx.Done():
			e.blank()
			return ctx.Err()
		default:
		}
		e.Apply(e.dec.Poll())
		if !e.set.Powered {
			e.sleepFn(pollInterval)
			continue
		}
		e.reg.Get(e.set.Scenario).Render(e)
	}
}
