package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/astralworks/starcharter/internal/bus"
	"github.com/astralworks/starcharter/internal/config"
	"github.com/astralworks/starcharter/internal/logger"
	"github.com/astralworks/starcharter/internal/registry"
	"github.com/astralworks/starcharter/internal/tui"
	"github.com/astralworks/starcharter/internal/world"
)

var playFlags struct {
	worldFile  string
	dataDir    string
	profile    string
	seed       int64
	noRegistry bool
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Launch the charter wizard",
	Long: `Launch the full-screen charter wizard.

Loads a world snapshot (or generates a demo one), walks you through founding
an organization, and records the signed charter in the embedded registry.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&playFlags.worldFile, "world", "w", "", "World snapshot file (default: generated demo world)")
	playCmd.Flags().StringVar(&playFlags.dataDir, "data-dir", "", "Data directory for the registry store")
	playCmd.Flags().StringVarP(&playFlags.profile, "profile", "p", "", "Player profile name")
	playCmd.Flags().Int64Var(&playFlags.seed, "seed", 0, "Seed for the demo world and livery shuffle, 0=random")
	playCmd.Flags().BoolVar(&playFlags.noRegistry, "no-registry", false, "Run without the registry (charters are not recorded)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyLogConfig(cfg)

	worldFile := playFlags.worldFile
	if worldFile == "" {
		worldFile = cfg.WorldFile
	}
	seed := playFlags.seed
	if seed == 0 {
		seed = cfg.PaletteSeed
	}
	profile := playFlags.profile
	if profile == "" {
		profile = cfg.Profile
	}
	dataDir := playFlags.dataDir
	if dataDir == "" {
		dataDir = cfg.DataDir
	}

	var snap *world.Snapshot
	if worldFile != "" {
		snap, err = world.Load(worldFile)
		if err != nil {
			return fmt.Errorf("failed to load world %s: %w", worldFile, err)
		}
		logger.Info("World loaded from %s: %d locations, %d candidates",
			worldFile, len(snap.Locations), len(snap.Candidates))
	} else {
		snap = world.Demo(seed)
		logger.Info("Using demo world (seed=%d)", seed)
	}

	ctx := cmd.Context()

	var store *registry.Store
	if !playFlags.noRegistry {
		ns, err := bus.StartEmbedded(dataDir)
		if err != nil {
			return fmt.Errorf("failed to start registry server: %w", err)
		}
		nc, err := bus.ConnectInProcess(ns)
		if err != nil {
			ns.Shutdown()
			return fmt.Errorf("failed to connect to registry server: %w", err)
		}
		defer func() {
			if err := bus.Shutdown(nc, ns); err != nil {
				fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
			}
		}()

		js, stream, err := bus.SetupStream(ctx, nc)
		if err != nil {
			return fmt.Errorf("failed to set up registry stream: %w", err)
		}
		store = registry.NewStore(js, stream)
	}

	return tui.Run(ctx, snap, store, profile, seed)
}

// applyLogConfig overrides the env-derived logger defaults with config
// values, when set.
func applyLogConfig(cfg *config.Config) {
	if level, err := logger.ParseLevel(cfg.LogLevel); err == nil {
		logger.Default.SetLevel(level)
	}
	if cfg.LogFile != "" && os.Getenv("STARCHARTER_LOG_FILE") == "" {
		if f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			logger.Default.SetOutput(f)
		}
	}
}
