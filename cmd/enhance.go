package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mermaidviz/internal/flows"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance [file]",
	Short: "Enhance an existing Mermaid diagram",
	Long: `Reads a diagram from file, or from stdin when file is omitted or "-",
applies the change described by --prompt and prints the result. A theme
block in the input is kept.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, _ := cmd.Flags().GetString("prompt")

		code, err := readSource(argOrEmpty(args), cmd.InOrStdin())
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		svc, err := newFlowsService(cfg)
		if err != nil {
			return err
		}

		out, err := svc.Enhance(context.Background(), flows.EnhanceInput{
			DiagramCode:       code,
			EnhancementPrompt: prompt,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out.EnhancedDiagramCode)
		return nil
	},
}

func init() {
	enhanceCmd.Flags().StringP("prompt", "p", "", "the change to make (required)")
	enhanceCmd.MarkFlagRequired("prompt")
	rootCmd.AddCommand(enhanceCmd)
}
