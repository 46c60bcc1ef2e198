package command

import (
	"fmt"

	"skillswap/database"

	"github.com/spf13/cobra"
)

func newMigrateCmd(current func() *session) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update every table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := current()
			if err := database.Migrate(s.db, s.logger); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
			return nil
		},
	}
}
