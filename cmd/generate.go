package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mermaidviz/internal/flows"
)

var generateCmd = &cobra.Command{
	Use:   "generate <description>",
	Short: "Generate a Mermaid diagram from a description",
	Long:  `Asks the configured language model for a diagram matching the description and prints the cleaned Mermaid code.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		svc, err := newFlowsService(cfg)
		if err != nil {
			return err
		}

		out, err := svc.Generate(context.Background(), flows.GenerateInput{
			Description: strings.Join(args, " "),
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out.MermaidCode)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
