package strip

import (
	"errors"

	"github.com/rs/zerolog"
)

// Driver abstracts an LED output sink.
type Driver interface {
	// Write pushes an RGB frame to hardware. len(rgb) must be 3*N.
	Write(rgb []byte) error
	// Close releases resources.
	Close() error
}

// Strip owns the working pixel buffer for one LED strip. Render code writes
// unscaled colors; global brightness is applied once, at push time, so a
// brightness change takes effect on the next frame without touching the
// running animation's state.
type Strip struct {
	n          int
	buf        []byte // working frame, unscaled
	out        []byte // brightness-scaled scratch handed to the driver
	brightness uint8
	drv        Driver
	log        zerolog.Logger
}

func New(n int, drv Driver, log zerolog.Logger) (*Strip, error) {
	if n < 1 {
		return nil, errors.New("strip: pixel count must be >= 1")
	}
	return &Strip{
		n:          n,
		buf:        make([]byte, n*3),
		out:        make([]byte, n*3),
		brightness: 0xFF,
		drv:        drv,
		log:        log,
	}, nil
}

func (s *Strip) Count() int { return s.n }

// SetRGB writes one pixel. Out-of-range indices are ignored.
func (s *Strip) SetRGB(i int, r, g, b uint8) {
	if i < 0 || i >= s.n {
		return
	}
	s.buf[i*3+0] = r
	s.buf[i*3+1] = g
	s.buf[i*3+2] = b
}

// RGB reads back one pixel from the working buffer.
func (s *Strip) RGB(i int) (r, g, b uint8) {
	if i < 0 || i >= s.n {
		return 0, 0, 0
	}
	return s.buf[i*3+0], s.buf[i*3+1], s.buf[i*3+2]
}

func (s *Strip) Fill(r, g, b uint8) {
	for i := 0; i < s.n; i++ {
		s.buf[i*3+0] = r
		s.buf[i*3+1] = g
		s.buf[i*3+2] = b
	}
}

func (s *Strip) Clear() { s.Fill(0, 0, 0) }

// SetBrightness sets the global 0..255 output scale applied at push time.
func (s *Strip) SetBrightness(b uint8) { s.brightness = b }

func (s *Strip) Brightness() uint8 { return s.brightness }

// Push scales the working frame by the global brightness and hands it to the
// driver. Write failures are logged, never fatal: a dropped frame shows up as
// a stutter, not a crash.
func (s *Strip) Push() {
	scale := uint16(s.brightness)
	for i := range s.buf {
		s.out[i] = uint8(uint16(s.buf[i]) * scale / 255)
	}
	if s.drv == nil {
		return
	}
	if err := s.drv.Write(s.out); err != nil {
		s.log.Warn().Err(err).Msg("frame write failed")
	}
}
