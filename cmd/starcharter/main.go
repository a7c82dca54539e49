package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/astralworks/starcharter/internal/logger"
	"github.com/astralworks/starcharter/internal/tui/theme"
)

const (
	logoText1 = "█▀ ▀█▀ ▄▀█ █▀█ █▀▀ █ █ ▄▀█ █▀█ ▀█▀ █▀▀ █▀█"
	logoText2 = "▄█  █  █▀█ █▀▄ █▄▄ █▀█ █▀█ █▀▄  █  ██▄ █▀▄"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starcharter",
	Short: "Charter deep-space organizations from your terminal",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.GradientText(logoText1, t.Primary, t.Secondary)
	line2 := theme.GradientText(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

starcharter is a terminal front-end for founding deep-space organizations.
It walks you through naming your org and vessel, picking a home location,
livery, hull class and starting crew, then records the signed charter in an
embedded NATS JetStream registry.`

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(chartersCmd)
	rootCmd.AddCommand(setupCmd)
}
