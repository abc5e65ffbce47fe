package scenarios

import (
	"time"

	"github.com/coreman2200/funtimes-lumastrip/internal/engine"
)

// Rainbow spreads the full hue wheel across the strip and scrolls it.
type Rainbow struct{}

func (Rainbow) Name() string  { return "rainbow" }
func (Rainbow) Variants() int { return 1 }

func (Rainbow) Render(e *engine.Engine) {
	s := e.Strip()
	n := s.Count()
	for {
		offset := e.Now().Seconds() * 36 // one full scroll every 10s at 1:1
		for i := 0; i < n; i++ {
			r, g, b := hueRGB(offset + float64(i)*360/float64(n))
			s.SetRGB(i, r, g, b)
		}
		s.Push()
		if e.Wait(20 * time.Millisecond) {
			return
		}
	}
}

// Cycle washes the whole strip through the hue wheel as one color.
type Cycle struct{}

func (Cycle) Name() string  { return "cycle" }
func (Cycle) Variants() int { return 1 }

func (Cycle) Render(e *engine.Engine) {
	s := e.Strip()
	for {
		r, g, b := hueRGB(e.Now().Seconds() * 18) // full wheel in 20s at 1:1
		s.Fill(r, g, b)
		s.Push()
		if e.Wait(20 * time.Millisecond) {
			return
		}
	}
}
