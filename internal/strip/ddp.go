package strip

import (
	"fmt"

	"github.com/coral/ddp"
)

// DDPDriver streams frames to a DDP sink (WLED, xLights, ...) over UDP.
type DDPDriver struct {
	client *ddp.DDPController
}

func NewDDP(addr string) (*DDPDriver, error) {
	client := ddp.NewDDPController()
	if err := client.ConnectUDP(addr); err != nil {
		return nil, fmt.Errorf("strip: ddp connect %s: %w", addr, err)
	}
	return &DDPDriver{client: client}, nil
}

func (d *DDPDriver) Write(rgb []byte) error {
	_, err := d.client.Write(rgb)
	return err
}

func (d *DDPDriver) Close() error { return d.client.Close() }
