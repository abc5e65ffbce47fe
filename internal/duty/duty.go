// Package duty implements the multi-hour activation window: after the active
// window elapses the strip powers down, and after the (longer) inactive
// window it powers back up. It sits entirely outside the scenario engine and
// talks to it the same way the remote does, by injecting a power command.
package duty

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreman2200/funtimes-lumastrip/internal/ir"
)

type Scheduler struct {
	active   time.Duration
	inactive time.Duration
	inject   func(ir.Command)
	log      zerolog.Logger
}

func New(active, inactive time.Duration, inject func(ir.Command), log zerolog.Logger) (*Scheduler, error) {
	if active <= 0 || inactive <= 0 {
		return nil, errors.New("duty: windows must be positive")
	}
	if inject == nil {
		return nil, errors.New("duty: nil inject func")
	}
	return &Scheduler{active: active, inactive: inactive, inject: inject, log: log}, nil
}

// Run alternates the two windows until ctx is canceled, toggling power at
// every boundary. The device starts its active window now.
func (s *Scheduler) Run(ctx context.Context) {
	onDuty := true
	timer := time.NewTimer(s.active)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
		onDuty = !onDuty
		next := s.active
		if !onDuty {
			next = s.inactive
		}
		s.log.Info().Bool("on_duty", onDuty).Dur("next_window", next).Msg("duty window flip")
		s.inject(ir.Power)
		timer.Reset(next)
	}
}
