// Package app implements the command line interface.
package app

import (
	"github.com/spf13/cobra"
)

const defaultConfigPath = "./etc"

var (
	configPath string // directory holding main.toml

	rootCmd = &cobra.Command{
		Use:   "kj-requests",
		Short: "kj-requests collects song requests for a karaoke night",
		Long: `kj-requests lets attendees submit song requests from their phones
and gives the KJ a dashboard to work through the queue and open or close
requests.`,
		Args:          cobra.OnlyValidArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

func init() { //nolint:gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "directory containing main.toml")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
