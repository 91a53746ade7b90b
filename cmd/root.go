package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"glomnidesigns.GO/app"
	"glomnidesigns.GO/config"
	"glomnidesigns.GO/core/logging"
)

// newApp builds the App commands run against. Tests replace it.
var newApp = app.Default

var rootCmd = &cobra.Command{
	Use:          "glomni",
	Short:        "Glomni Designs content tools",
	SilenceUsage: true,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		config.LoadAppConfig()
		_, err := logging.Init(config.AppConfig.Debug)
		return err
	},
	PersistentPostRun: func(c *cobra.Command, args []string) {
		logging.Sync()
	},
}

// Execute applies registered commands and runs the root command.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
