package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/qdollar/internal/config"
	gestures "github.com/ThatOtherAndrew/qdollar/internal/gesture"
)

var removeCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Remove a gesture by name",
	Args:  cobra.ExactArgs(1),
	RunE:  removeGesture,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func removeGesture(cmd *cobra.Command, args []string) error {
	dir, err := config.GetDir(configDir)
	if err != nil {
		return err
	}

	err = gestures.RemoveGesture(config.GetPath(dir), args[0])
	if errors.Is(err, gestures.ErrGestureNotFound) {
		return fmt.Errorf("gesture not found: %s", args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to save gestures: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Removed gesture:", args[0])
	return nil
}
