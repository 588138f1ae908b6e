package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/qdollar/internal/config"
	gestures "github.com/ThatOtherAndrew/qdollar/internal/gesture"
	"github.com/ThatOtherAndrew/qdollar/pkg/qdollar"
)

var learnCommand string

var learnCmd = &cobra.Command{
	Use:   "learn NAME FILE...",
	Short: "Learn a gesture from recorded point files",
	Long: `Learn a gesture from one or more recorded samples. Each FILE is a JSON
array of {"x", "y", "stroke"} points, or - for stdin. Learning a name again
replaces its samples.`,
	Args: cobra.MinimumNArgs(2),
	RunE: learnGesture,
}

func init() {
	rootCmd.AddCommand(learnCmd)
	learnCmd.Flags().StringVarP(&learnCommand, "command", "c", "", "shell command to run when the gesture is recognized")
}

func learnGesture(cmd *cobra.Command, args []string) error {
	name, files := args[0], args[1:]

	dir, settings, err := loadConfig()
	if err != nil {
		return err
	}
	if len(files) < settings.Samples {
		log.Printf("Warning: %d sample(s) given for '%s', %d recommended", len(files), name, settings.Samples)
	}

	templates := make([][]qdollar.Point, 0, len(files))
	for i, file := range files {
		points, err := gestures.ReadPointsFile(file)
		if err != nil {
			return fmt.Errorf("failed to read sample: %w", err)
		}
		templates = append(templates, points)
		log.Printf("Captured gesture %d/%d", i+1, len(files))
	}

	if err := gestures.SaveGesture(config.GetPath(dir), name, learnCommand, templates); err != nil {
		return fmt.Errorf("failed to save gesture: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Gesture saved: %s (%d template(s))\n", name, len(templates))
	return nil
}
