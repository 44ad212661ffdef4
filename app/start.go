package app

import (
	"github.com/spf13/cobra"

	"github.com/kj-requests/kj-requests/internal/config"
	"github.com/kj-requests/kj-requests/internal/daemon"
)

func init() { //nolint:gochecknoinits
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	startCmd.Flags().BoolVar(
		&browseStatic,
		"browse",
		false,
		"Enable static file browsing (for development purposes only)",
	)

	startCmd.Flags().BoolVar(&fastShutDown, "fast-shutdown", false, "Skip the health check drain on shutdown")

	rootCmd.AddCommand(startCmd)
}

var (
	devMode      bool
	browseStatic bool
	fastShutDown bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the kj-requests web service",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.ReadConfig(configPath)
			if err != nil {
				return err
			}

			if devMode {
				cfg.DevMode = true
			}

			if browseStatic {
				cfg.Webserver.BrowseStatic = true
			}

			d, err := daemon.New(&cfg, fastShutDown)
			if err != nil {
				return err
			}

			return d.Start()
		},
	}
)
