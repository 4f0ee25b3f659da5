// Command polarsim launches the interactive Malus-law polarization
// simulator.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/polarsim/audio"
	"github.com/lixenwraith/polarsim/config"
	"github.com/lixenwraith/polarsim/logger"
	"github.com/lixenwraith/polarsim/sim"
)

var (
	configFlag   = flag.String("config", "", "Path to config file (default: standard locations)")
	logLevelFlag = flag.String("log-level", "", "Override log level: debug, info, warn, error")
	noAudioFlag  = flag.Bool("no-audio", false, "Disable audio cues")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *logLevelFlag != "" {
		cfg.Logging.Level = *logLevelFlag
	}
	if *noAudioFlag {
		cfg.Audio.Enabled = false
	}

	if err := logger.Init(cfg.Logging.Level, logger.FileConfig{
		Path:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before printing the stack, so
	// the trace is readable after a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nPOLARSIM CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	// Audio failure is non-fatal, the simulator runs silent
	player, err := audio.NewPlayer(cfg.Audio.Enabled)
	if err != nil {
		logger.Log.Warn("audio unavailable, running silent", zap.Error(err))
	}

	logger.Log.Info("simulator starting",
		zap.Float64("incident", cfg.Simulation.IncidentIntensity),
		zap.Int("polarizers", cfg.Simulation.PolarizerCount),
	)

	sim.New(screen, player, cfg).Run()

	logger.Log.Info("simulator stopped")
}
