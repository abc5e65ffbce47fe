package scenarios

import (
	"math"
	"time"

	"github.com/coreman2200/funtimes-lumastrip/internal/engine"
)

const breathePeriod = 4 * time.Second

// Breathe swells the variant color in and out on a cosine envelope. The
// envelope runs on animation time, so the speed buttons stretch or compress
// the breath directly.
type Breathe struct{}

func (Breathe) Name() string  { return "breathe" }
func (Breathe) Variants() int { return len(variantColors) }

func (Breathe) Render(e *engine.Engine) {
	s := e.Strip()
	r, g, b := variantRGB(e.Variant())
	for {
		phase := float64(e.Now()%breathePeriod) / float64(breathePeriod)
		level := 0.5 - 0.5*math.Cos(2*math.Pi*phase)
		s.Fill(scale8(r, level), scale8(g, level), scale8(b, level))
		s.Push()
		if e.Wait(20 * time.Millisecond) {
			return
		}
	}
}

func scale8(v uint8, f float64) uint8 {
	return uint8(float64(v) * f)
}
