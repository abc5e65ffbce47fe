package scenarios

import (
	"time"

	"github.com/coreman2200/funtimes-lumastrip/internal/engine"
)

// Solid lights the whole strip in the variant color.
type Solid struct{}

func (Solid) Name() string  { return "solid" }
func (Solid) Variants() int { return len(variantColors) }

func (Solid) Render(e *engine.Engine) {
	s := e.Strip()
	r, g, b := variantRGB(e.Variant())
	for {
		s.Fill(r, g, b)
		s.Push()
		if e.Wait(50 * time.Millisecond) {
			return
		}
	}
}

// Blink flashes the variant color at a steady half-second cadence.
type Blink struct{}

func (Blink) Name() string  { return "blink" }
func (Blink) Variants() int { return len(variantColors) }

func (Blink) Render(e *engine.Engine) {
	s := e.Strip()
	r, g, b := variantRGB(e.Variant())
	for {
		s.Fill(r, g, b)
		s.Push()
		if e.Wait(500 * time.Millisecond) {
			return
		}
		s.Clear()
		s.Push()
		if e.Wait(500 * time.Millisecond) {
			return
		}
	}
}
