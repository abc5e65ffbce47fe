package scenarios

import (
	"time"

	"github.com/coreman2200/funtimes-lumastrip/internal/engine"
)

// Fire is the usual one-dimensional flame: heat cells cool, drift toward the
// far end and reignite near pixel zero.
type Fire struct{}

func (Fire) Name() string  { return "fire" }
func (Fire) Variants() int { return 1 }

func (Fire) Render(e *engine.Engine) {
	s := e.Strip()
	n := s.Count()
	heat := make([]int, n)
	for {
		for i := 0; i < n; i++ {
			heat[i] -= e.Rand().Intn(340/n + 2)
			if heat[i] < 0 {
				heat[i] = 0
			}
		}
		for i := n - 1; i >= 2; i-- {
			heat[i] = (heat[i-1] + 2*heat[i-2]) / 3
		}
		if e.Rand().Intn(100) < 60 {
			i := e.Rand().Intn(min(7, n))
			heat[i] += 160 + e.Rand().Intn(95)
			if heat[i] > 255 {
				heat[i] = 255
			}
		}
		for i := 0; i < n; i++ {
			r, g, b := heatRGB(heat[i])
			s.SetRGB(i, r, g, b)
		}
		s.Push()
		if e.Wait(35 * time.Millisecond) {
			return
		}
	}
}

// heatRGB ramps black -> red -> orange -> white.
func heatRGB(h int) (r, g, b uint8) {
	switch {
	case h <= 85:
		return uint8(h * 3), 0, 0
	case h <= 170:
		return 255, uint8((h - 85) * 3), 0
	default:
		return 255, 255, uint8((h - 170) * 3)
	}
}
