// Package cli defines the cobra command tree for the site server.
package cli

import (
	"database/sql"

	"github.com/spf13/cobra"

	"github.com/terracore/terracore-site/internal/config"
	"github.com/terracore/terracore-site/internal/db"
)

var flagDB string

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tcsite",
		Short:         "Terracore marketing site backend",
		Long:          "JSON API backend for the Terracore marketing site: public inquiry intake plus the admin content panel.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default: ~/.terracore/site.db)")

	root.AddCommand(
		newServeCmd(),
		newCreateAdminCmd(),
		newSeedCmd(),
		newVersionCmd(),
	)

	return root
}

// openDB opens the SQLite database using, in order: the --db flag, the
// TC_DB_PATH environment variable, the default path.
func openDB(cfg config.Config) (*sql.DB, error) {
	path := flagDB
	if path == "" {
		path = cfg.DatabasePath
	}
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return db.Open(path)
}
