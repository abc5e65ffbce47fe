package ir

import "github.com/rs/zerolog"

// Source hands demodulated frames to the decoder. Read must not block: it
// returns false immediately when nothing arrived since the last call.
type Source interface {
	Read() (Frame, bool)
}

// DeviceAddr is the NEC address of the stock 21-key remote.
const DeviceAddr uint16 = 0x00

// defaultTable maps the remote's NEC command bytes to logical commands.
// Key layout (car-mp3 style remote): CH-/CH+ speed, |<</>>| variant,
// play/pause power, EQ auto-rotate, vol-/vol+ brightness, digits scenario.
func defaultTable() map[uint8]Command {
	return map[uint8]Command{
		0x45: SpeedDown,   // CH-
		0x47: SpeedUp,     // CH+
		0x44: PrevVariant, // |<<
		0x40: NextVariant, // >>|
		0x43: Power,       // play/pause
		0x07: VolumeDown,  // vol-
		0x15: VolumeUp,    // vol+
		0x09: AutoRotate,  // EQ
		0x16: Digit0,
		0x0C: Digit1,
		0x18: Digit2,
		0x5E: Digit3,
		0x08: Digit4,
		0x1C: Digit5,
		0x5A: Digit6,
		0x42: Digit7,
		0x52: Digit8,
		0x4A: Digit9,
	}
}

// CodeFor returns the NEC command byte the stock remote sends for c. Tools
// that synthesize remote traffic use it so they can never drift from the
// decoder's own table.
func CodeFor(c Command) (uint8, bool) {
	for code, cmd := range defaultTable() {
		if cmd == c {
			return code, true
		}
	}
	return 0, false
}

// Decoder maps raw remote frames to logical commands, one per poll. Repeat
// frames never surface as fresh presses, and synthetic commands (duty
// scheduler, simulator scripts) can be injected ahead of the radio path.
type Decoder struct {
	src      Source
	addr     uint16
	table    map[uint8]Command
	injected chan Command
	log      zerolog.Logger
}

func NewDecoder(src Source, log zerolog.Logger) *Decoder {
	return &Decoder{
		src:      src,
		addr:     DeviceAddr,
		table:    defaultTable(),
		injected: make(chan Command, 16),
		log:      log,
	}
}

// Poll consumes at most one pending frame and returns its logical command, or
// None when the buffer is empty, the frame is a repeat, or the code is unknown.
func (d *Decoder) Poll() Command {
	select {
	case c := <-d.injected:
		return c
	default:
	}
	if d.src == nil {
		return None
	}
	f, ok := d.src.Read()
	if !ok || f.Repeat {
		return None
	}
	if f.Addr != d.addr {
		d.log.Debug().Uint16("addr", f.Addr).Msg("frame for another device")
		return None
	}
	cmd, ok := d.table[f.Cmd]
	if !ok {
		d.log.Debug().Uint8("code", f.Cmd).Msg("unrecognized code")
		return None
	}
	d.log.Debug().Stringer("cmd", cmd).Msg("decoded")
	return cmd
}

// Inject queues a synthetic command ahead of the receive path. Drops the
// command when the queue is full rather than block the caller.
func (d *Decoder) Inject(c Command) {
	select {
	case d.injected <- c:
	default:
		d.log.Warn().Stringer("cmd", c).Msg("inject queue full, dropped")
	}
}

// ChanSource is a buffered Source fed from another goroutine (the GPIO edge
// loop, or a simulator script). Offer drops frames when the buffer is full;
// a dropped frame is simply "no command" downstream.
type ChanSource struct {
	ch chan Frame
}

func NewChanSource(depth int) *ChanSource {
	if depth < 1 {
		depth = 1
	}
	return &ChanSource{ch: make(chan Frame, depth)}
}

func (s *ChanSource) Offer(f Frame) {
	select {
	case s.ch <- f:
	default:
	}
}

func (s *ChanSource) Read() (Frame, bool) {
	select {
	case f := <-s.ch:
		return f, true
	default:
		return Frame{}, false
	}
}
