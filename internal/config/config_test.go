package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &Config{
		Driver: "spi",
		Pixels: 150,
		Addr:   ":8080",
		SPI:    SPI{Dev: "/dev/spidev0.0", SpeedHz: 2400000},
		IR:     IR{Pin: "GPIO23"},
		Duty:   Duty{Enabled: true, ActiveHours: 6, InactiveHours: 18},
	}
	assert.NoError(t, Save(path, in))
	out, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
