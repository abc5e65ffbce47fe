package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type SPI struct {
	Dev     string `yaml:"dev"`      // e.g. /dev/spidev0.0, empty = first port
	SpeedHz int    `yaml:"speed_hz"` // e.g. 2400000
}

type DDP struct {
	Addr string `yaml:"addr"` // host:port of the DDP sink
}

type IR struct {
	Pin string `yaml:"pin"` // GPIO pin name of the receiver, e.g. GPIO23
}

type Duty struct {
	Enabled       bool `yaml:"enabled"`
	ActiveHours   int  `yaml:"active_hours"`
	InactiveHours int  `yaml:"inactive_hours"`
}

// Config selects hardware and transports. Control ranges (brightness and
// speed steps, rotate period) are compiled into the engine, same as on the
// original controller.
type Config struct {
	Driver string `yaml:"driver"` // "sim" | "spi" | "ddp"
	Pixels int    `yaml:"pixels"`
	Addr   string `yaml:"addr"` // monitor listen address, empty disables

	SPI  SPI  `yaml:"spi,omitempty"`
	DDP  DDP  `yaml:"ddp,omitempty"`
	IR   IR   `yaml:"ir,omitempty"`
	Duty Duty `yaml:"duty,omitempty"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
