package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	// Loads .env so PORT and FOLIO_* can be set there.
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/llehouerou/folio/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	Long: `Serves the portfolio as an HTML page, with the content as JSON under
/api/portfolio and the nearest-to-center selection under /api/track.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, p, err := loadPortfolio()
		if err != nil {
			return err
		}

		addr := cfg.GetServerConfig().Addr
		if cmd.Flags().Changed("addr") {
			addr = serveAddr
		}

		srv, err := server.New(p, addr)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(os.Stderr, "folio %s serving %s on %s\n", Version, p.Owner.Name, addr)
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: [server] addr, or :$PORT)")
	rootCmd.AddCommand(serveCmd)
}
