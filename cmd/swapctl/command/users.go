package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUsersCmd(current func() *session) *cobra.Command {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "User moderation commands",
	}

	setBanned := func(banned bool) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			s := current()
			if err := s.svc.Moderation.SetBanned(cmd.Context(), args[0], banned); err != nil {
				return fmt.Errorf("failed to update user %s: %w", args[0], err)
			}
			state := "unbanned"
			if banned {
				state = "banned"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User %s %s.\n", args[0], state)
			return nil
		}
	}

	usersCmd.AddCommand(
		&cobra.Command{
			Use:   "ban [user-id]",
			Short: "Ban a user",
			Args:  cobra.ExactArgs(1),
			RunE:  setBanned(true),
		},
		&cobra.Command{
			Use:   "unban [user-id]",
			Short: "Lift a ban",
			Args:  cobra.ExactArgs(1),
			RunE:  setBanned(false),
		},
	)
	return usersCmd
}
