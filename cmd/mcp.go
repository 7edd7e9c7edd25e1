package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/mermaidviz/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long: `Starts a Model Context Protocol (MCP) server on stdio exposing diagram
type detection, styling checks, theming limitations and the example gallery.
The generate and enhance tools are added when a provider is configured.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		svc, err := newFlowsService(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v; generate_diagram and enhance_diagram are disabled\n", err)
		}

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "mermaidviz MCP server started on stdio (flows=%t)\n", svc != nil)

		return mcpserver.NewServer(svc).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
