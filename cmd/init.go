package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mermaidviz/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize mermaidviz configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to choose a provider, quality tier and styling policy, and writes the answers to the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
