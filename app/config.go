package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kj-requests/kj-requests/internal/config"
)

func init() { //nolint:gochecknoinits
	configCmd.Flags().BoolVar(&asJSON, "json", false, "Print the configuration as JSON")

	rootCmd.AddCommand(configCmd)
}

var (
	asJSON bool

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after main.toml, the KJ_REQUESTS_CONFIG_JSON
override and the defaults have been applied.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.ReadConfig(configPath)
			if err != nil {
				return err
			}

			dump := config.DumpConfig
			if asJSON {
				dump = config.DumpConfigJSON
			}

			out, err := dump(&cfg)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}
)
