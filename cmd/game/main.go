package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/Garsondee/No-Loose-Threads/internal/config"
	"github.com/Garsondee/No-Loose-Threads/internal/game"
	"github.com/Garsondee/No-Loose-Threads/internal/log"
	"github.com/Garsondee/No-Loose-Threads/internal/sfx"
)

type options struct {
	configPath string
	watch      bool
	seed       int64
	level      int
	noSFX      bool
	debug      bool
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "no-loose-threads",
		Short: "Evidence board puzzle: string the evidence from victims to suspects",
		Long: `No Loose Threads is an evidence board puzzle. Drag evidence tiles from the
workbench onto the board and run threads between tacks to link each victim to
the right suspect through the right evidence, without tangling the threads.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}
	bindFlags(cmd, &opts)
	return cmd
}

func bindFlags(cmd *cobra.Command, opts *options) {
	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "TOML settings file")
	f.BoolVarP(&opts.watch, "watch", "w", false, "reload the settings file when it changes")
	f.Int64Var(&opts.seed, "seed", 1, "seed for random tack placement")
	f.IntVarP(&opts.level, "level", "l", 0, "level to start on (0-based)")
	f.BoolVar(&opts.noSFX, "no-sfx", false, "start with sound effects off")
	f.BoolVar(&opts.debug, "debug", false, "enable level-authoring keys")
	f.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn, error or none")
}

// resolveConfig loads the file, if any, then applies flags the user set
// explicitly.
func resolveConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	f := cmd.Flags()
	if f.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if f.Changed("level") {
		cfg.Level = opts.level
	}
	if f.Changed("no-sfx") {
		cfg.SFX = !opts.noSFX
	}
	if f.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if f.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

func run(cmd *cobra.Command, opts options) error {
	if opts.watch && opts.configPath == "" {
		return fmt.Errorf("--watch needs --config")
	}
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger := log.New(os.Stderr, cfg.LoggerLevel())

	player := sfx.NewPlayer(cfg.Volume, logger)
	if err := player.Init(); err != nil {
		logger.Warnf("audio unavailable, continuing silently: %v", err)
	}
	defer player.Close()

	gopts := []game.Option{game.WithLogger(logger), game.WithPlayer(player)}
	if opts.watch {
		w, err := config.Watch(opts.configPath, 200*time.Millisecond, logger)
		if err != nil {
			return err
		}
		defer w.Close()
		gopts = append(gopts, game.WithConfigChanges(w.Changes()))
	}

	ebiten.SetWindowTitle("No Loose Threads")
	ebiten.SetWindowSize(int(1600*cfg.WindowScale), int(900*cfg.WindowScale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Infof("starting on level %d (seed %d)", cfg.Level, cfg.Seed)
	if err := ebiten.RunGame(game.New(cfg, gopts...)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
