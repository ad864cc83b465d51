package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/terracore/terracore-site/internal/auth"
	"github.com/terracore/terracore-site/internal/config"
)

func newCreateAdminCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		Long:  "Create an admin account for the content panel. There is no public signup; this is the only way accounts are made.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreateAdmin(cmd, username, password)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "admin username")
	cmd.Flags().StringVar(&password, "password", "", "admin password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runCreateAdmin(cmd *cobra.Command, username, password string) error {
	cfg := config.Load()

	database, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: closing database: %v\n", cerr)
		}
	}()

	user, err := auth.NewUserStore(database).Create(username, password, true)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Admin user created: %s (%s)\n", user.Username, user.ID)
	return nil
}
