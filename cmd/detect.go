package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mermaidviz/internal/editor"
)

var detectCmd = &cobra.Command{
	Use:   "detect [file]",
	Short: "Print the diagram type and theming warnings of one diagram",
	Long:  `Reads a diagram from file, or from stdin when file is omitted or "-", and prints its analysis.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := readSource(argOrEmpty(args), cmd.InOrStdin())
		if err != nil {
			return err
		}

		analysis := editor.Analyze(code)
		out := cmd.OutOrStdout()

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(analysis)
		}

		fmt.Fprintf(out, "Type:        %s\n", analysis.DiagramType)
		fmt.Fprintf(out, "Theme block: %t\n", analysis.HasThemeBlock)
		if analysis.Limitation != "" {
			fmt.Fprintf(out, "Limitation:  %s\n", analysis.Limitation)
		}
		if analysis.Styling.HasUnsupportedAttempt {
			fmt.Fprintf(out, "Warning:     %s\n", analysis.Styling.Message)
		}
		return nil
	},
}

func init() {
	detectCmd.Flags().Bool("json", false, "print the analysis as JSON")
	rootCmd.AddCommand(detectCmd)
}
