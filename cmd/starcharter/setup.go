package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/astralworks/starcharter/internal/config"
	"github.com/astralworks/starcharter/internal/world"
)

var setupFlags struct {
	project bool
	force   bool
	world   string
	seed    int64
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create starcharter configuration file",
	Long: `Create a starcharter configuration file with sensible defaults.

By default, creates a global config at ~/.config/starcharter/starcharter.yml.
Use --project to create a project-local config in the current directory.
With --world, a demo world snapshot is written next to it and referenced
from the config.`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVarP(&setupFlags.project, "project", "p", false, "Create config in current directory instead of global location")
	setupCmd.Flags().BoolVarP(&setupFlags.force, "force", "f", false, "Overwrite existing config file")
	setupCmd.Flags().StringVarP(&setupFlags.world, "world", "w", "", "Also write a demo world snapshot to this path")
	setupCmd.Flags().Int64Var(&setupFlags.seed, "seed", 0, "Seed for the demo world, 0=random")
}

func runSetup(cmd *cobra.Command, args []string) error {
	// Determine target path
	targetPath := config.GlobalPath()
	if setupFlags.project {
		targetPath = config.ProjectPath()
	}

	// Check if config already exists
	if !setupFlags.force && fileExists(targetPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", targetPath)
	}

	cfg := &config.Config{
		DataDir:     ".starcharter",
		LogLevel:    "info",
		LogFile:     "",
		WorldFile:   setupFlags.world,
		PaletteSeed: setupFlags.seed,
		Profile:     "default",
	}

	if setupFlags.world != "" {
		if !setupFlags.force && fileExists(setupFlags.world) {
			return fmt.Errorf("world file already exists at %s\n\nUse --force to overwrite", setupFlags.world)
		}
		if err := world.Save(setupFlags.world, world.Demo(setupFlags.seed)); err != nil {
			return fmt.Errorf("failed to write world snapshot: %w", err)
		}
		fmt.Printf("Demo world written to: %s\n", setupFlags.world)
	}

	// Write config to target location
	var err error
	if setupFlags.project {
		err = config.WriteProject(cfg)
	} else {
		err = config.WriteGlobal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Config written to: %s\n\n", targetPath)
	fmt.Println("Run 'starcharter play' to charter your first organization.")

	return nil
}

// fileExists checks if a file exists (helper for setup command).
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
