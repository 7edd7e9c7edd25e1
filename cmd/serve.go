package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/mermaidviz/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the editor, gallery and diagram API over HTTP",
	Long: `Starts the HTTP server. The editor and gallery work without a language
model; generate and enhance answer 503 until the provider's API key is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort > 0 {
			cfg.Server.Port = servePort
		}

		svc, err := newFlowsService(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			fmt.Fprintf(os.Stderr, "Generate and enhance are disabled.\n")
		}

		srv := server.New(server.Config{
			Addr:           cfg.Addr(),
			AllowedOrigins: cfg.Server.AllowedOrigins,
			RequestTimeout: cfg.RequestTimeout(),
		}, svc)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "mermaidviz %s serving on http://%s\n", Version, cfg.Addr())
		if verbose {
			fmt.Fprintf(os.Stderr, "  Provider: %s (%s)\n", cfg.Provider, cfg.Model)
			fmt.Fprintf(os.Stderr, "  Styling policy: %s\n", cfg.Flows.StylingPolicy)
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
