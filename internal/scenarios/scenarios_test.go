package scenarios

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/coreman2200/funtimes-lumastrip/internal/engine"
	"github.com/coreman2200/funtimes-lumastrip/internal/ir"
	"github.com/coreman2200/funtimes-lumastrip/internal/strip"
)

func TestRosterShape(t *testing.T) {
	all := All()
	assert.Len(t, all, engine.ScenarioCount)

	total := 0
	for _, s := range all {
		assert.GreaterOrEqual(t, s.Variants(), 1, s.Name())
		total += s.Variants()
	}
	assert.Equal(t, 34, total, "34 variants across the 10 scenarios")

	assert.Equal(t, "chase", all[3].Name())
	assert.Equal(t, 7, all[3].Variants(), "digit 3 selects the 7-variant chase")
}

func TestRegistryAcceptsRoster(t *testing.T) {
	reg, err := engine.NewRegistry(All()...)
	assert.NoError(t, err)
	assert.Equal(t, engine.ScenarioCount, reg.Count())
}

// Every render routine must notice a pending cancellation at its first Wait
// and return promptly, leaving the strip blanked by the power-off path.
func TestEveryScenarioHonorsCancellation(t *testing.T) {
	for idx, sc := range All() {
		sc := sc
		t.Run(sc.Name(), func(t *testing.T) {
			reg, err := engine.NewRegistry(All()...)
			assert.NoError(t, err)

			sim := strip.NewSim()
			st, err := strip.New(32, sim, zerolog.Nop())
			assert.NoError(t, err)

			dec := ir.NewDecoder(nil, zerolog.Nop())
			e, err := engine.New(st, dec, reg, zerolog.Nop())
			assert.NoError(t, err)

			dec.Inject(ir.Power)
			sc.Render(e) // must return at the first Wait
			assert.True(t, sim.Dark(), "scenario %d left light after power-off", idx)
		})
	}
}

func TestVariantPalette(t *testing.T) {
	assert.Len(t, variantColors, 7)
	r, g, b := variantRGB(0)
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, b}, "variant 0 is white")
	r, g, b = variantRGB(1)
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b}, "variant 1 is red")
	// indexes past the palette wrap around
	r2, _, _ := variantRGB(8)
	assert.Equal(t, r2, uint8(255))
}

func TestFireHeatRamp(t *testing.T) {
	r, g, b := heatRGB(0)
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b}, "cold cell is off")
	r, g, b = heatRGB(170)
	assert.Equal(t, [3]uint8{255, 255, 0}, [3]uint8{r, g, b}, "mid heat is orange-yellow")
	r, g, b = heatRGB(255)
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, b}, "full heat is white")
}

func TestHueWheelEndpoints(t *testing.T) {
	r, g, b := hueRGB(0)
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})
	r, g, b = hueRGB(120)
	assert.Equal(t, [3]uint8{0, 255, 0}, [3]uint8{r, g, b})
	r, g, b = hueRGB(-120) // negative angles normalize
	assert.Equal(t, [3]uint8{0, 0, 255}, [3]uint8{r, g, b})
}
