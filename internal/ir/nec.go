package ir

import "time"

// Frame is one demodulated NEC transmission. Repeat frames carry no payload;
// Addr/Cmd are only meaningful when Repeat is false.
type Frame struct {
	Addr   uint16
	Cmd    uint8
	Repeat bool
}

// NEC timing. The 38kHz receiver idles high and pulls the line low while the
// carrier is present, so a "mark" here is line-low time. Real receivers show
// around +/-15% jitter on every edge, hence the generous thresholds.
const (
	headerMarkMin  = 8 * time.Millisecond        // nominal 9ms burst
	headerSpaceMin = 3800 * time.Microsecond     // nominal 4.5ms -> data frame
	repeatSpaceMin = 1900 * time.Microsecond     // nominal 2.25ms -> repeat frame
	oneSpaceMin    = 1200 * time.Microsecond     // nominal 1.69ms -> bit 1
	bitSpaceMax    = repeatSpaceMin              // anything longer mid-frame is a gap
	frameBits      = 32
)

type demodState int

const (
	demodIdle demodState = iota
	demodHeader // saw the header mark, waiting on the header space
	demodSpace  // inside the bit stream, waiting on a space
	demodMark   // inside the bit stream, waiting on the next bit mark
	demodRepeat // saw a repeat space, waiting on the terminating burst
)

// Demodulator turns a stream of mark/space durations into NEC frames. Feed it
// every edge-to-edge interval via Pulse; it is a pure state machine with no
// clock access of its own, so it can be driven from a GPIO edge loop or a test.
type Demodulator struct {
	state demodState
	bits  int
	value uint32
}

// Pulse consumes one interval. mark is true while the carrier was present.
// It returns a completed frame, if this interval finished one.
func (m *Demodulator) Pulse(mark bool, d time.Duration) (Frame, bool) {
	if mark {
		return m.mark(d)
	}
	return m.space(d)
}

func (m *Demodulator) mark(d time.Duration) (Frame, bool) {
	if d >= headerMarkMin {
		// A header burst unconditionally restarts the frame.
		m.state = demodHeader
		m.bits = 0
		m.value = 0
		return Frame{}, false
	}
	switch m.state {
	case demodMark:
		m.state = demodSpace
	case demodRepeat:
		m.state = demodIdle
		return Frame{Repeat: true}, true
	default:
		m.state = demodIdle
	}
	return Frame{}, false
}

func (m *Demodulator) space(d time.Duration) (Frame, bool) {
	switch m.state {
	case demodHeader:
		switch {
		case d >= headerSpaceMin:
			// The first bit mark follows.
			m.state = demodMark
		case d >= repeatSpaceMin:
			m.state = demodRepeat
		default:
			m.state = demodIdle
		}
	case demodSpace:
		if d > bitSpaceMax {
			m.state = demodIdle
			return Frame{}, false
		}
		m.value >>= 1
		if d >= oneSpaceMin {
			m.value |= 1 << (frameBits - 1)
		}
		m.bits++
		if m.bits == frameBits {
			m.state = demodIdle
			return decodeFrame(m.value)
		}
		m.state = demodMark
	default:
		m.state = demodIdle
	}
	return Frame{}, false
}

// decodeFrame validates the LSB-first addr/~addr/cmd/~cmd layout. Extended NEC
// drops the address check and uses all 16 address bits.
func decodeFrame(v uint32) (Frame, bool) {
	addr := uint8(v)
	addrInv := uint8(v >> 8)
	cmd := uint8(v >> 16)
	cmdInv := uint8(v >> 24)
	if cmd != ^cmdInv {
		return Frame{}, false
	}
	if addr == ^addrInv {
		return Frame{Addr: uint16(addr), Cmd: cmd}, true
	}
	return Frame{Addr: uint16(addrInv)<<8 | uint16(addr), Cmd: cmd}, true
}
