package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newMessagesCmd(current func() *session) *cobra.Command {
	messagesCmd := &cobra.Command{
		Use:   "messages",
		Short: "Platform message commands",
	}

	var title, body string
	postCmd := &cobra.Command{
		Use:   "post",
		Short: "Broadcast a platform message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(title) == "" || strings.TrimSpace(body) == "" {
				return errors.New("--title and --body must not be blank")
			}
			msg, err := current().svc.Moderation.PostMessage(cmd.Context(), title, body)
			if err != nil {
				return fmt.Errorf("failed to post message: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Message %d posted.\n", msg.ID)
			return nil
		},
	}
	postCmd.Flags().StringVar(&title, "title", "", "message title")
	postCmd.Flags().StringVar(&body, "body", "", "message body")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List platform messages, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := current().svc.Moderation.ListMessages(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list messages: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(msgs) == 0 {
				fmt.Fprintln(out, "No messages found.")
				return nil
			}
			for _, m := range msgs {
				fmt.Fprintf(out, "[%d] %s | %s\n    %s\n", m.ID, m.CreatedAt.Format("2006-01-02 15:04"), m.Title, m.Body)
			}
			return nil
		},
	}

	messagesCmd.AddCommand(postCmd, listCmd)
	return messagesCmd
}
