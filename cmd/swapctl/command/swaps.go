package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSwapsCmd(current func() *session) *cobra.Command {
	swapsCmd := &cobra.Command{
		Use:   "swaps",
		Short: "Swap request commands",
	}

	var status string
	monitorCmd := &cobra.Command{
		Use:   "monitor",
		Short: "List all swap requests, newest first",
		Long:  "List all swap requests. --status filters by pending, accepted, rejected or cancelled; any other value lists everything.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			swaps, err := current().svc.Swaps.Monitor(cmd.Context(), status)
			if err != nil {
				return fmt.Errorf("failed to list swaps: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(swaps) == 0 {
				fmt.Fprintln(out, "No swap requests found.")
				return nil
			}
			fmt.Fprintf(out, "Swap requests (%d total):\n\n", len(swaps))
			for _, sw := range swaps {
				fmt.Fprintf(out, "ID: %d | %s -> %s | %s | %s\n",
					sw.ID, sw.Requester.Email, sw.Receiver.Email, sw.Status, sw.CreatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
	monitorCmd.Flags().StringVar(&status, "status", "", "filter by status")

	swapsCmd.AddCommand(monitorCmd)
	return swapsCmd
}
