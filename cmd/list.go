package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered gestures",
	Args:  cobra.NoArgs,
	RunE:  listGestures,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listGestures(cmd *cobra.Command, args []string) error {
	stored, err := loadStore()
	if err != nil {
		return fmt.Errorf("failed to load gestures: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(stored) == 0 {
		fmt.Fprintln(out, "No gestures registered")
		return nil
	}

	fmt.Fprintln(out, "Registered gestures:")
	for _, g := range stored {
		line := fmt.Sprintf("   %s (%d template(s))", g.Name, len(g.Templates))
		if g.Command != "" {
			line += ": " + g.Command
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
