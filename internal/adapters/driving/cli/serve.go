package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/minutes-cli/internal/adapters/driving/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the built site for local preview",
	Long: `Serves the emitted site directory over HTTP, including the meeting
pages and search-index.json, plus a /api/search endpoint backed by the
same scoring engine as the tui and search commands.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides configuration)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if cfg == nil || cfg.SiteDir == "" {
		return errors.New("site directory not configured")
	}

	addr := serveAddr
	if addr == "" {
		addr = cfg.ListenAddr
	}
	if addr == "" {
		return errors.New("listen address not configured")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cmd.Printf("Serving %s on http://%s\n", cfg.SiteDir, addr)

	err := web.NewServer(addr, cfg.SiteDir, cfg.Search).Start(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
