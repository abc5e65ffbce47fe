package scenarios

import (
	"time"

	"github.com/coreman2200/funtimes-lumastrip/internal/engine"
)

const chaseWidth = 4

// Chase runs a short pulse of the variant color down the strip, with a dim
// trailing tail, wrapping at the end.
type Chase struct{}

func (Chase) Name() string  { return "chase" }
func (Chase) Variants() int { return len(variantColors) }

func (Chase) Render(e *engine.Engine) {
	s := e.Strip()
	r, g, b := variantRGB(e.Variant())
	n := s.Count()
	for pos := 0; ; pos = (pos + 1) % n {
		s.Clear()
		for k := 0; k < chaseWidth; k++ {
			// head at full, tail falling off
			f := 1.0 - float64(k)/chaseWidth
			i := pos - k
			if i < 0 {
				i += n
			}
			s.SetRGB(i, scale8(r, f), scale8(g, f), scale8(b, f))
		}
		s.Push()
		if e.Wait(30 * time.Millisecond) {
			return
		}
	}
}

// Theater is the classic marquee: every third pixel lit, marching one step
// per frame, tinted along the rainbow as it goes.
type Theater struct{}

func (Theater) Name() string  { return "theater" }
func (Theater) Variants() int { return 1 }

func (Theater) Render(e *engine.Engine) {
	s := e.Strip()
	n := s.Count()
	for q := 0; ; q = (q + 1) % 3 {
		hue := e.Now().Seconds() * 30
		s.Clear()
		for i := q; i < n; i += 3 {
			r, g, b := hueRGB(hue + float64(i)*360/float64(n))
			s.SetRGB(i, r, g, b)
		}
		s.Push()
		if e.Wait(80 * time.Millisecond) {
			return
		}
	}
}
