// stripsim drives the full engine headlessly: it replays a scripted sequence
// of remote button presses through the real NEC decode path against the sim
// driver. Handy for eyeballing scenario/command behavior without hardware.
package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-lumastrip/internal/engine"
	"github.com/coreman2200/funtimes-lumastrip/internal/ir"
	"github.com/coreman2200/funtimes-lumastrip/internal/scenarios"
	"github.com/coreman2200/funtimes-lumastrip/internal/strip"
)

// buttons maps script tokens to logical commands; the NEC byte for each press
// comes from the decoder's own table, so the script exercises the real decode
// path and can never drift from it.
var buttons = map[string]ir.Command{
	"power": ir.Power, "vol+": ir.VolumeUp, "vol-": ir.VolumeDown,
	"speed+": ir.SpeedUp, "speed-": ir.SpeedDown,
	"next": ir.NextVariant, "prev": ir.PrevVariant, "rotate": ir.AutoRotate,
	"0": ir.Digit0, "1": ir.Digit1, "2": ir.Digit2, "3": ir.Digit3, "4": ir.Digit4,
	"5": ir.Digit5, "6": ir.Digit6, "7": ir.Digit7, "8": ir.Digit8, "9": ir.Digit9,
}

func main() {
	var (
		pixels  = flag.Int("pixels", 30, "number of LEDs")
		script  = flag.String("script", "3,next,next,vol+", "comma-separated button presses")
		every   = flag.Duration("every", 2*time.Second, "delay between presses")
		runFor  = flag.Duration("for", 15*time.Second, "total run time")
		verbose = flag.Bool("verbose", false, "print every pushed frame")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05.000"})

	sim := strip.NewSim()
	sim.Verbose = *verbose
	st, err := strip.New(*pixels, sim, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("strip init")
	}

	src := ir.NewChanSource(16)
	dec := ir.NewDecoder(src, log.Logger)

	reg, err := engine.NewRegistry(scenarios.All()...)
	if err != nil {
		log.Fatal().Err(err).Msg("registry")
	}
	eng, err := engine.New(st, dec, reg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("engine init")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *runFor)
	defer cancel()

	go func() {
		for _, tok := range strings.Split(*script, ",") {
			select {
			case <-ctx.Done():
				return
			case <-time.After(*every):
			}
			tok = strings.TrimSpace(strings.ToLower(tok))
			cmd, ok := buttons[tok]
			if !ok {
				log.Warn().Str("button", tok).Msg("unknown button in script")
				continue
			}
			code, ok := ir.CodeFor(cmd)
			if !ok {
				log.Warn().Stringer("cmd", cmd).Msg("no code for command")
				continue
			}
			log.Info().Str("button", tok).Msg("press")
			src.Offer(ir.Frame{Addr: ir.DeviceAddr, Cmd: code})
		}
	}()

	_ = eng.Run(ctx)
	log.Info().Int("frames", sim.Frames()).Msg("done")
}
