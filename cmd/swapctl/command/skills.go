package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSkillsCmd(current func() *session) *cobra.Command {
	skillsCmd := &cobra.Command{
		Use:   "skills",
		Short: "Skill catalog commands",
	}

	skillsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every known skill",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			skills, err := current().svc.Catalog.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list skills: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(skills) == 0 {
				fmt.Fprintln(out, "No skills found.")
				return nil
			}
			for _, sk := range skills {
				fmt.Fprintf(out, "ID: %d | Name: %s\n", sk.ID, sk.Name)
			}
			return nil
		},
	})
	return skillsCmd
}
