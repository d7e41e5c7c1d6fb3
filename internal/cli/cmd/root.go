// Package cmd provides Cobra CLI commands for kterm.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/koder-native/kterm/internal/cli"
	"github.com/koder-native/kterm/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "kterm",
		Short: "A tiling terminal shell with split panes and session restore",
		Long: `kterm - terminals, file explorers and browsers tiled in split panes.

Panes are arranged in a binary tree of horizontal and vertical splits,
one tree per tab. The layout is saved as JSON and restored on the next
start.

Use 'kterm play' to drive a workspace from the terminal, or the session
and config subcommands to inspect what is stored on disk.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(configFile)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/kterm/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information from main.go.
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
