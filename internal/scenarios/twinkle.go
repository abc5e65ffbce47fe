package scenarios

import (
	"time"

	"github.com/coreman2200/funtimes-lumastrip/internal/engine"
)

// Twinkle ignites random pixels in white and lets them decay.
type Twinkle struct{}

func (Twinkle) Name() string  { return "twinkle" }
func (Twinkle) Variants() int { return 1 }

func (Twinkle) Render(e *engine.Engine) {
	s := e.Strip()
	n := s.Count()
	levels := make([]float64, n)
	for {
		for i := 0; i < n; i++ {
			levels[i] *= 0.9
		}
		// a couple of fresh sparks per frame on average
		for k := 0; k < 1+n/32; k++ {
			if e.Rand().Intn(4) == 0 {
				levels[e.Rand().Intn(n)] = 1
			}
		}
		for i := 0; i < n; i++ {
			v := scale8(255, levels[i])
			s.SetRGB(i, v, v, v)
		}
		s.Push()
		if e.Wait(30 * time.Millisecond) {
			return
		}
	}
}

// Meteor drops a bright head down the strip; the tail it leaves decays with
// random per-pixel flicker. One pass covers twice the strip so the tail fully
// burns out before the next drop.
type Meteor struct{}

func (Meteor) Name() string  { return "meteor" }
func (Meteor) Variants() int { return 1 }

func (Meteor) Render(e *engine.Engine) {
	s := e.Strip()
	n := s.Count()
	for pos := 0; ; pos = (pos + 1) % (2 * n) {
		for i := 0; i < n; i++ {
			if e.Rand().Intn(10) > 3 {
				r, g, b := s.RGB(i)
				s.SetRGB(i, fade8(r), fade8(g), fade8(b))
			}
		}
		if pos < n {
			s.SetRGB(pos, 255, 255, 220)
		}
		s.Push()
		if e.Wait(15 * time.Millisecond) {
			return
		}
	}
}

func fade8(v uint8) uint8 {
	return v - v/4
}
