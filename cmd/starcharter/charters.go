package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/astralworks/starcharter/internal/bus"
	"github.com/astralworks/starcharter/internal/config"
	"github.com/astralworks/starcharter/internal/registry"
)

var chartersFlags struct {
	dataDir string
	profile string
}

var chartersCmd = &cobra.Command{
	Use:   "charters",
	Short: "List chartered organizations",
	Long:  `List the organizations chartered under a profile, newest last.`,
	RunE:  runCharters,
}

func init() {
	chartersCmd.Flags().StringVar(&chartersFlags.dataDir, "data-dir", "", "Data directory for the registry store")
	chartersCmd.Flags().StringVarP(&chartersFlags.profile, "profile", "p", "", "Player profile name")
}

func runCharters(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyLogConfig(cfg)

	dataDir := chartersFlags.dataDir
	if dataDir == "" {
		dataDir = cfg.DataDir
	}
	profile := chartersFlags.profile
	if profile == "" {
		profile = cfg.Profile
	}

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

	ctx := cmd.Context()
	js, stream, err := bus.SetupStream(ctx, nc)
	if err != nil {
		return fmt.Errorf("failed to set up registry stream: %w", err)
	}

	state, err := registry.NewStore(js, stream).LoadState(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	if len(state.Organizations) == 0 {
		fmt.Printf("No charters recorded for profile %q.\n", profile)
		return nil
	}

	fmt.Printf("Charters for profile %q:\n\n", profile)
	for _, org := range state.Organizations {
		fmt.Printf("  %s\n", org.Name)
		fmt.Printf("    Vessel:    %s (%s)\n", org.VesselName, org.HullClass)
		fmt.Printf("    Home:      %s\n", org.LocationName)
		fmt.Printf("    Livery:    %s %s\n", org.Pattern, strings.Join(org.Livery[:], " "))
		fmt.Printf("    Crew:      %d\n", len(org.CrewIDs))
		fmt.Printf("    Balance:   %d cr\n", org.Balance)
		fmt.Printf("    Chartered: %s\n\n", org.CharteredAt.Format("2006-01-02 15:04"))
	}

	return nil
}
