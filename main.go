package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spookymaze/config"
	"github.com/milk9111/spookymaze/prefabs"
	"github.com/milk9111/spookymaze/system"
	"go.uber.org/zap"
)

type options struct {
	configPath string
	dataDir    string
	fullscreen bool
	size       string
	seed       int64
	debug      bool
	level      string
}

func parseFlags(args []string) (options, map[string]bool, error) {
	var o options
	fs := flag.NewFlagSet("spooky-maze", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", config.DefaultPath, "config file")
	fs.StringVar(&o.dataDir, "d", "", "data directory holding levels/ and prefabs/")
	fs.StringVar(&o.dataDir, "datadir", "", "same as -d")
	fs.BoolVar(&o.fullscreen, "f", false, "start fullscreen")
	fs.BoolVar(&o.fullscreen, "fullscreen", false, "same as -f")
	fs.StringVar(&o.size, "s", "", "window size as WxH")
	fs.StringVar(&o.size, "size", "", "same as -s")
	fs.Int64Var(&o.seed, "seed", 0, "random seed, 0 for time based")
	fs.BoolVar(&o.debug, "debug", false, "enable debug mode and prefab hot reload")
	fs.StringVar(&o.level, "level", "", "always load this level file from levels/")
	if err := fs.Parse(args); err != nil {
		return o, nil, err
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return o, set, nil
}

// applyFlags lays explicitly set flags over the loaded config.
func applyFlags(cfg *config.Config, o options, set map[string]bool) error {
	if set["d"] || set["datadir"] {
		cfg.Game.DataDir = o.dataDir
	}
	if set["f"] || set["fullscreen"] {
		cfg.Window.Fullscreen = o.fullscreen
	}
	if set["s"] || set["size"] {
		w, h, err := config.ParseSize(o.size)
		if err != nil {
			return err
		}
		cfg.Window.Width, cfg.Window.Height = w, h
	}
	if set["seed"] {
		cfg.Game.Seed = o.seed
	}
	if set["debug"] {
		cfg.Game.Debug = o.debug
	}
	if set["level"] {
		cfg.Game.Level = o.level
	}
	return cfg.Validate()
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	o, set, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cfg, o, set); err != nil {
		return fmt.Errorf("flags: %w", err)
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	prefabs.DataDir = cfg.Game.DataDir
	specs, err := prefabs.LoadAll()
	if err != nil {
		logger.Warn("prefab specs unusable, using defaults", zap.Error(err))
		specs = prefabs.DefaultSpecs()
	}
	rules, err := system.LoadRules(specs.Session.Rules, logger)
	if err != nil {
		logger.Warn("rules script unusable, using defaults", zap.Error(err))
		rules = system.DefaultRules()
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	world := system.NewWorld(cfg.Game.DataDir, rand.New(rand.NewSource(seed)), logger)
	world.Fixed = cfg.Game.Level
	session := system.NewSession(world, rules, specs, logger)
	if err := session.Start(); err != nil {
		return err
	}
	logger.Info("starting",
		zap.Int64("seed", seed),
		zap.String("datadir", cfg.Game.DataDir),
		zap.Bool("debug", cfg.Game.Debug),
	)

	game := NewGame(session, cfg.Window.Width, cfg.Window.Height, cfg.Game.Debug, logger)
	if cfg.Game.Debug {
		w, err := prefabs.NewWatcher()
		if err != nil {
			logger.Warn("prefab hot reload disabled", zap.Error(err))
		} else {
			defer w.Close()
			game.WatchPrefabs(w)
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Spooky Maze")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game exited", zap.Error(err))
		return err
	}
	return nil
}
