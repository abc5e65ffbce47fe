package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/host/v3"

	"github.com/coreman2200/funtimes-lumastrip/internal/config"
	"github.com/coreman2200/funtimes-lumastrip/internal/duty"
	"github.com/coreman2200/funtimes-lumastrip/internal/engine"
	"github.com/coreman2200/funtimes-lumastrip/internal/ir"
	"github.com/coreman2200/funtimes-lumastrip/internal/monitor"
	"github.com/coreman2200/funtimes-lumastrip/internal/scenarios"
	"github.com/coreman2200/funtimes-lumastrip/internal/strip"
)

func main() {
	// ---- Flags (config.yaml can override most) ----
	var (
		pixels     = flag.Int("pixels", 150, "number of LEDs on the strip")
		driver     = flag.String("driver", "sim", "driver: spi | ddp | sim")
		spiDev     = flag.String("spi-dev", "", "SPI port name (empty = first available)")
		spiHz      = flag.Int("spi-hz", 2400000, "SPI clock for the nrzled driver")
		ddpAddr    = flag.String("ddp", "127.0.0.1:4048", "DDP sink address")
		irPin      = flag.String("ir-pin", "", "GPIO pin of the IR receiver (empty = no remote)")
		addr       = flag.String("addr", "", "monitor HTTP listen address (empty = disabled)")
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		simOnly    = flag.Bool("sim-only", false, "force simulation (no hardware output)")
		debug      = flag.Bool("debug", false, "debug logging")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	if !*debug {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// ---- Load config.yaml (optional) ----
	var cfg *config.Config
	if c, err := config.Load(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with flags")
	} else {
		cfg = c
	}

	// ---- Effective params (config overrides flags where available) ----
	ePixels := *pixels
	eDriver := *driver
	eSPIDev, eSPIHz := *spiDev, *spiHz
	eDDP := *ddpAddr
	eIRPin := *irPin
	eAddr := *addr
	if cfg != nil {
		if cfg.Pixels > 0 {
			ePixels = cfg.Pixels
		}
		if cfg.Driver != "" {
			eDriver = cfg.Driver
		}
		if cfg.SPI.Dev != "" {
			eSPIDev = cfg.SPI.Dev
		}
		if cfg.SPI.SpeedHz > 0 {
			eSPIHz = cfg.SPI.SpeedHz
		}
		if cfg.DDP.Addr != "" {
			eDDP = cfg.DDP.Addr
		}
		if cfg.IR.Pin != "" {
			eIRPin = cfg.IR.Pin
		}
		if cfg.Addr != "" {
			eAddr = cfg.Addr
		}
	}
	if *simOnly {
		eDriver = "sim"
	}

	if _, err := host.Init(); err != nil {
		log.Warn().Err(err).Msg("periph host init failed; hardware drivers unavailable")
	}

	// ---- Output driver ----
	var drv strip.Driver
	switch eDriver {
	case "sim":
		sim := strip.NewSim()
		sim.Verbose = *debug
		drv = sim
	case "spi":
		d, err := strip.NewSPI(eSPIDev, ePixels, eSPIHz, log.Logger)
		if err != nil {
			log.Warn().Err(err).Str("driver", "spi").Msg("SPI init failed; falling back to SIM")
			drv = strip.NewSim()
		} else {
			drv = d
		}
	case "ddp":
		d, err := strip.NewDDP(eDDP)
		if err != nil {
			log.Warn().Err(err).Str("addr", eDDP).Msg("DDP init failed; falling back to SIM")
			drv = strip.NewSim()
		} else {
			drv = d
		}
	default:
		log.Warn().Str("driver", eDriver).Msg("unknown driver; using SIM")
		drv = strip.NewSim()
	}

	// ---- Monitor (optional) ----
	if eAddr != "" {
		mon := monitor.New(drv, ePixels, log.Logger)
		drv = mon
		srv := &http.Server{
			Addr:         eAddr,
			Handler:      mon.Handler(),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		}
		go func() {
			log.Info().Str("addr", eAddr).Msg("monitor listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("monitor server crashed")
			}
		}()
	}

	st, err := strip.New(ePixels, drv, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("strip init")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ---- IR input ----
	var src ir.Source
	if eIRPin != "" {
		rcv, err := ir.NewReceiver(eIRPin, log.Logger)
		if err != nil {
			log.Warn().Err(err).Str("pin", eIRPin).Msg("IR receiver unavailable")
		} else {
			src = rcv.Source()
			go rcv.Run(ctx)
			log.Info().Str("pin", eIRPin).Msg("IR receiver listening")
		}
	}
	dec := ir.NewDecoder(src, log.Logger)

	// ---- Engine ----
	reg, err := engine.NewRegistry(scenarios.All()...)
	if err != nil {
		log.Fatal().Err(err).Msg("scenario registry")
	}
	eng, err := engine.New(st, dec, reg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("engine init")
	}

	// ---- Duty windows (optional) ----
	if cfg != nil && cfg.Duty.Enabled {
		d, err := duty.New(
			time.Duration(cfg.Duty.ActiveHours)*time.Hour,
			time.Duration(cfg.Duty.InactiveHours)*time.Hour,
			dec.Inject, log.Logger)
		if err != nil {
			log.Warn().Err(err).Msg("duty scheduler disabled")
		} else {
			go d.Run(ctx)
			log.Info().
				Int("active_h", cfg.Duty.ActiveHours).
				Int("inactive_h", cfg.Duty.InactiveHours).
				Msg("duty scheduler running")
		}
	}

	if err := eng.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("engine stopped")
	}
	log.Info().Msg("shutting down")
	if err := drv.Close(); err != nil {
		log.Warn().Err(err).Msg("driver close")
	}
}
