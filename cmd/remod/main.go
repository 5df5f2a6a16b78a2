package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/remod/config"
)

const version = "0.1.0"

var (
	flagConfig  string
	flagVerbose int
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "remod",
		Short:        "Find and remove redundant Java modifiers",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(flagVerbose, nil)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to .remod.toml")
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newFixCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig honors --config and otherwise searches upward from dir.
func loadConfig(dir string) (config.Config, error) {
	if flagConfig != "" {
		return config.Load(flagConfig)
	}
	return config.FindUpward(dir)
}
