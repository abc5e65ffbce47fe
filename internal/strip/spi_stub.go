//go:build !linux

package strip

import (
	"fmt"

	"github.com/rs/zerolog"
)

type SPIDriver struct{}

func NewSPI(dev string, n int, speedHz int, log zerolog.Logger) (*SPIDriver, error) {
	return nil, fmt.Errorf("strip: spi driver not supported on this platform")
}

func (d *SPIDriver) Write(rgb []byte) error {
	return fmt.Errorf("strip: spi driver not supported on this platform")
}

func (d *SPIDriver) Close() error { return nil }
