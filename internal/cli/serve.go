package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/terracore/terracore-site/internal/config"
	"github.com/terracore/terracore-site/internal/logging"
	"github.com/terracore/terracore-site/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Start the JSON API server for the public site and the admin panel.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (default: TC_PORT or 8080)")

	return cmd
}

func runServe(cmd *cobra.Command, port int) error {
	cfg := config.Load()
	if port != 0 {
		cfg.Port = port
	}

	logging.Setup(cfg.DevMode)

	database, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: closing database: %v\n", cerr)
		}
	}()

	srv, err := web.NewServer(database, cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return srv.ListenAndServe(cfg.Port)
}
