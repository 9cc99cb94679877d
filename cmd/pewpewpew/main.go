package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sort"

	"github.com/lixenwraith/pewpewpew/config"
	"github.com/lixenwraith/pewpewpew/constant"
	"github.com/lixenwraith/pewpewpew/engine"
	"github.com/lixenwraith/pewpewpew/metrics"
	"github.com/lixenwraith/pewpewpew/terminal"
	"github.com/lixenwraith/pewpewpew/window"
)

var (
	configFlag  = flag.String("config", "", "Path to a .toml or .yaml config file")
	backendFlag = flag.String("backend", config.BackendTerminal, "Display backend: terminal, window")
	colorFlag   = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	seedFlag    = flag.Uint64("seed", 0, "Random seed (0 = time based)")
	debugFlag   = flag.Bool("debug", false, "Write debug log to the log directory")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPEWPEWPEW CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := resolveConfig(*configFlag, setFlags())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// setFlags returns the names of flags given on the command line
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// resolveConfig layers defaults, the optional config file, then explicit flags
func resolveConfig(path string, set map[string]bool) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if set["backend"] {
		cfg.Backend = *backendFlag
	}
	if set["color"] {
		cfg.ColorMode = *colorFlag
	}
	if set["seed"] {
		cfg.Seed = *seedFlag
	}
	if set["debug"] {
		cfg.Debug = *debugFlag
	}
	return cfg, cfg.Validate()
}

func run(cfg config.Config) error {
	logFile := setupLogging(cfg.LogDir, cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	log.Printf("starting: backend=%s color=%s seed=%d", cfg.Backend, cfg.ColorMode, cfg.Seed)

	rec := metrics.NewRecorder()
	defer logSummary(rec)

	switch cfg.Backend {
	case config.BackendWindow:
		world := engine.NewPopulatedWorld(float64(cfg.WindowWidth), float64(cfg.WindowHeight), newRandom(cfg.Seed))
		return window.Run(newGame(world, rec), cfg.WindowWidth, cfg.WindowHeight, cfg.Title)

	default:
		mode, err := terminal.ParseColorMode(cfg.ColorMode)
		if err != nil {
			return err
		}
		screen, err := terminal.Open(mode, cfg.CellWidth, cfg.CellHeight)
		if err != nil {
			return fmt.Errorf("failed to initialize terminal: %w", err)
		}
		defer screen.Fini()

		w, h := screen.Size()
		world := engine.NewPopulatedWorld(w, h, newRandom(cfg.Seed))
		screen.Run(newGame(world, rec), constant.FrameUpdateInterval)
		return nil
	}
}

func newRandom(seed uint64) engine.Random {
	if seed == 0 {
		return engine.NewTimeSeededRand()
	}
	return engine.NewFastRand(seed)
}

func logSummary(rec *metrics.Recorder) {
	summary, err := rec.Summary()
	if err != nil {
		log.Printf("metrics gather failed: %v", err)
		return
	}
	names := make([]string, 0, len(summary))
	for name := range summary {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		log.Printf("%s %g", name, summary[name])
	}
}
