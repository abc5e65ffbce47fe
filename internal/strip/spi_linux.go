//go:build linux

package strip

import (
	"fmt"
	"image"
	"image/color"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/extra/devices/screen"
)

// SPIDriver pushes frames to a WS2812-class strip through nrzled over SPI.
// When no SPI port is available it falls back to the periph console drawer,
// so a dev box without hardware still shows the animation.
type SPIDriver struct {
	drawer display.Drawer
	img    *image.NRGBA
	n      int
}

func NewSPI(dev string, n int, speedHz int, log zerolog.Logger) (*SPIDriver, error) {
	d := &SPIDriver{
		img: image.NewNRGBA(image.Rect(0, 0, n, 1)),
		n:   n,
	}
	port, err := spireg.Open(dev)
	if err != nil {
		log.Warn().Err(err).Str("dev", dev).Msg("no SPI port, drawing to the console")
		d.drawer = screen.New(n)
		return d, nil
	}
	opts := nrzled.Opts{
		NumPixels: n,
		Channels:  3,
		Freq:      physic.Frequency(speedHz) * physic.Hertz,
	}
	dev2, err := nrzled.NewSPI(port, &opts)
	if err != nil {
		return nil, fmt.Errorf("strip: nrzled init: %w", err)
	}
	if err := dev2.Halt(); err != nil {
		return nil, err
	}
	d.drawer = dev2
	return d, nil
}

func (d *SPIDriver) Write(rgb []byte) error {
	if len(rgb) != d.n*3 {
		return fmt.Errorf("strip: frame length %d, want %d", len(rgb), d.n*3)
	}
	for i := 0; i < d.n; i++ {
		d.img.SetNRGBA(i, 0, color.NRGBA{R: rgb[i*3], G: rgb[i*3+1], B: rgb[i*3+2], A: 0xFF})
	}
	return d.drawer.Draw(d.drawer.Bounds(), d.img, image.Point{})
}

func (d *SPIDriver) Close() error {
	if h, ok := d.drawer.(interface{ Halt() error }); ok {
		return h.Halt()
	}
	return nil
}
