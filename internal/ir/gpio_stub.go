//go:build !linux

package ir

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

type Receiver struct{}

func NewReceiver(pinName string, log zerolog.Logger) (*Receiver, error) {
	return nil, fmt.Errorf("ir: gpio receiver not supported on this platform")
}

func (r *Receiver) Source() Source          { return nil }
func (r *Receiver) Run(ctx context.Context) {}
