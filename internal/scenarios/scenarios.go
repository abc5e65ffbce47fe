// Package scenarios holds the animation programs selectable from the remote,
// in digit order. Every render routine paces itself through Engine.Wait and
// returns the moment a wait reports cancellation; no routine performs
// unbounded work between two waits.
package scenarios

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/coreman2200/funtimes-lumastrip/internal/engine"
)

// All returns the scenario roster in remote-digit order.
func All() []engine.Scenario {
	return []engine.Scenario{
		Solid{},   // 0
		Blink{},   // 1
		Breathe{}, // 2
		Chase{},   // 3
		Rainbow{}, // 4
		Cycle{},   // 5
		Theater{}, // 6
		Twinkle{}, // 7
		Meteor{},  // 8
		Fire{},    // 9
	}
}

// The seven standard variant colors shared by the color-variant scenarios.
var variantColors = []colorful.Color{
	{R: 1, G: 1, B: 1},      // white
	{R: 1},                  // red
	colorful.Hsv(30, 1, 1),  // orange
	colorful.Hsv(60, 1, 1),  // yellow
	{G: 1},                  // green
	{B: 1},                  // blue
	colorful.Hsv(280, 1, 1), // purple
}

func variantRGB(v int) (r, g, b uint8) {
	return variantColors[v%len(variantColors)].RGB255()
}

func hueRGB(deg float64) (r, g, b uint8) {
	return colorful.Hsv(math.Mod(math.Mod(deg, 360)+360, 360), 1, 1).RGB255()
}
