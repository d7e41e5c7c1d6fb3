package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/koder-native/kterm/internal/infrastructure/config"
)

var schemaWrite bool

var schemaCmd = &cobra.Command{
	Use:       "schema [config|session]",
	Short:     "Print a JSON schema",
	Long:      `Print the JSON schema of config.toml (the default) or of the session file.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"config", "session"},
	RunE:      runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolVarP(&schemaWrite, "write", "w", false, "write config.schema.json next to config.toml")
}

func runSchema(_ *cobra.Command, args []string) error {
	target := "config"
	if len(args) == 1 {
		target = args[0]
	}

	if schemaWrite {
		if target != "config" {
			return fmt.Errorf("--write only applies to the config schema")
		}
		path, err := config.WriteSchemaFile()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	}

	var (
		data []byte
		err  error
	)
	switch target {
	case "session":
		data, err = config.GenerateSessionSchema()
	default:
		data, err = config.GenerateConfigSchema()
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}
