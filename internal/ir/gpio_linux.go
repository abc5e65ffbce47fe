//go:build linux

package ir

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// Receiver reads edge timings from a demodulating IR receiver on a GPIO pin
// and feeds them through the NEC state machine. The receiver module idles
// high; line-low time is carrier ("mark") time.
type Receiver struct {
	pin gpio.PinIO
	src *ChanSource
	log zerolog.Logger
}

func NewReceiver(pinName string, log zerolog.Logger) (*Receiver, error) {
	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, fmt.Errorf("ir: no such pin %q", pinName)
	}
	if err := pin.In(gpio.PullUp, gpio.BothEdges); err != nil {
		return nil, fmt.Errorf("ir: configure %s: %w", pinName, err)
	}
	return &Receiver{pin: pin, src: NewChanSource(8), log: log}, nil
}

// Source returns the frame source to hand to NewDecoder.
func (r *Receiver) Source() Source { return r.src }

// Run blocks, timing edges until ctx is canceled.
func (r *Receiver) Run(ctx context.Context) {
	var demod Demodulator
	last := time.Now()
	level := r.pin.Read()
	for ctx.Err() == nil {
		if !r.pin.WaitForEdge(100 * time.Millisecond) {
			continue
		}
		now := time.Now()
		d := now.Sub(last)
		last = now
		prev := level
		level = r.pin.Read()
		if prev == level {
			// Missed an edge; resync on the next header burst.
			continue
		}
		// The interval that just ended was a mark iff the line was low.
		if f, ok := demod.Pulse(prev == gpio.Low, d); ok {
			r.src.Offer(f)
		}
	}
	_ = r.pin.Halt()
}
