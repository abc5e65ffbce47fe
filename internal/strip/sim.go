package strip

import (
	"fmt"
	"sync"
)

// Sim is a headless driver that remembers the last frame, useful for tests
// and the simulator binary. With Verbose set it prints a compact summary of
// each frame (average & first pixel).
type Sim struct {
	Verbose bool

	mu     sync.Mutex
	frames int
	last   []byte
}

func NewSim() *Sim { return &Sim{} }

func (d *Sim) Write(rgb []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frames++
	d.last = append(d.last[:0], rgb...)
	if d.Verbose {
		var r, g, b int
		for i := 0; i+2 < len(rgb); i += 3 {
			r += int(rgb[i])
			g += int(rgb[i+1])
			b += int(rgb[i+2])
		}
		n := len(rgb) / 3
		if n == 0 {
			n = 1
		}
		fmt.Printf("[frame %04d] avg=(%d,%d,%d) first=(%d,%d,%d)\n",
			d.frames, r/n, g/n, b/n, rgb[0], rgb[1], rgb[2])
	}
	return nil
}

func (d *Sim) Close() error { return nil }

func (d *Sim) Frames() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames
}

// Last returns a copy of the most recent frame.
func (d *Sim) Last() []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]byte(nil), d.last...)
}

// Dark reports whether the last pushed frame was fully blank.
func (d *Sim) Dark() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, v := range d.last {
		if v != 0 {
			return false
		}
	}
	return true
}
