package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/koder-native/kterm/internal/cli"
	"github.com/koder-native/kterm/internal/cli/model"
)

var playNoSession bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Drive a workspace from the terminal",
	Long: `Open a workspace whose panes are drawn as boxes in the terminal.

Splits, closes, focus moves, swaps and tabs use the configured
keybindings, and the layout is saved to and restored from the session
file like the graphical window does. Press ? for the full key list.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playNoSession, "no-session", false, "neither restore nor save the session")
}

func runPlay(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	cfg := model.PlayModelConfig{
		Config:     app.Config,
		FileSystem: app.FileSystem,
		GenerateID: cli.NewID,
		Watcher:    app.ConfigMgr,
	}
	if !playNoSession {
		cfg.Repository = app.SessionRepo
	}

	m, err := model.NewPlayModel(app.Ctx(), app.Theme, cfg)
	if err != nil {
		return fmt.Errorf("start workspace: %w", err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
