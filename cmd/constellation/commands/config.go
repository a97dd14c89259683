package commands

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// ConfigCmd groups configuration commands.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := currentConfig().Validate(); err != nil {
			return err
		}
		pterm.Success.Println("Configuration is valid")
		return nil
	},
}

var configFormat string

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json")
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configValidateCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	c := currentConfig()
	w := cmd.OutOrStdout()
	switch configFormat {
	case "toml":
		fmt.Fprintln(w, "# constellation configuration")
		return c.Encode(w)
	case "json":
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshal config")
		}
		fmt.Fprintln(w, string(data))
		return nil
	default:
		return errors.Newf("unsupported format %q (supported: toml, json)", configFormat)
	}
}
