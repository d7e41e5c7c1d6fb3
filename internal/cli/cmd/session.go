package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/koder-native/kterm/internal/cli/styles"
	"github.com/koder-native/kterm/internal/domain/repository"
	"github.com/koder-native/kterm/internal/infrastructure/persistence/sessionfile"
)

var (
	sessionJSON bool
	sessionYes  bool
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect the saved session",
	Long: `View, validate and reset the session file.

The session is written whenever the layout changes and when the window
closes. It is deleted when the last pane of the window closes.`,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved pane trees",
	RunE:  runSessionShow,
}

var sessionValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Report how the saved session would be restored",
	Long: `Walks the saved session with the restore rules without opening any
pane, and lists every place where the restored layout would differ from
the file: dropped tabs, collapsed splits, unknown pane types and missing
directories.`,
	RunE: runSessionValidate,
}

var sessionResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved session",
	RunE:  runSessionReset,
}

var sessionPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the session file location",
	RunE: func(_ *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		fmt.Println(sessionfile.Path(app.SessionRepo))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionShowCmd, sessionValidateCmd, sessionResetCmd, sessionPathCmd)
	sessionShowCmd.Flags().BoolVar(&sessionJSON, "json", false, "output the raw document as JSON")
	sessionResetCmd.Flags().BoolVarP(&sessionYes, "yes", "y", false, "skip confirmation prompt")
}

func runSessionShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	doc, err := app.SessionRepo.Load(app.Ctx())
	if errors.Is(err, repository.ErrSessionNotFound) {
		fmt.Println(app.Theme.Subtle.Render("No saved session."))
		return nil
	}
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	if sessionJSON {
		data, err := sessionfile.Encode(doc)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	fmt.Println(styles.NewSessionRenderer(app.Theme).Render(doc))
	return nil
}

func runSessionValidate(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	report, err := app.InspectSessionUC.Execute(app.Ctx())
	if errors.Is(err, repository.ErrSessionNotFound) {
		fmt.Println(app.Theme.Subtle.Render("No saved session; a fresh terminal opens on start."))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println(styles.NewSessionRenderer(app.Theme).RenderReport(report))
	return nil
}

func runSessionReset(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path := sessionfile.Path(app.SessionRepo)
	if !sessionYes {
		fmt.Printf("Delete %s? [y/N] ", path)
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println(app.Theme.Subtle.Render("Cancelled."))
			return nil
		}
	}

	if err := app.SessionRepo.Delete(app.Ctx()); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	fmt.Println(app.Theme.SuccessStyle.Render(styles.IconCheck + " session deleted"))
	return nil
}
