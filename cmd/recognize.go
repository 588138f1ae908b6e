package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/qdollar/internal/config"
	"github.com/ThatOtherAndrew/qdollar/internal/execute"
	gestures "github.com/ThatOtherAndrew/qdollar/internal/gesture"
	"github.com/ThatOtherAndrew/qdollar/internal/models"
	"github.com/ThatOtherAndrew/qdollar/pkg/qdollar"
)

var execMatch bool

var recognizeCmd = &cobra.Command{
	Use:   "recognize FILE",
	Short: "Recognize a recorded gesture",
	Args:  cobra.ExactArgs(1),
	RunE:  recognizeGesture,
}

func init() {
	rootCmd.AddCommand(recognizeCmd)
	recognizeCmd.Flags().BoolVarP(&execMatch, "exec", "x", false, "run the matched gesture's command")
}

func recognizeGesture(cmd *cobra.Command, args []string) error {
	dir, settings, err := loadConfig()
	if err != nil {
		return err
	}

	points, err := gestures.ReadPointsFile(args[0])
	if err != nil {
		return err
	}

	stored, err := gestures.LoadGestures(config.GetPath(dir))
	if err != nil {
		return fmt.Errorf("failed to load gestures: %w", err)
	}
	log.Printf("Loaded %d gesture(s)", len(stored))

	res, err := gestures.NewRecognizer(stored).Recognize(points)
	if errors.Is(err, qdollar.ErrNoRegisteredGestures) {
		return fmt.Errorf("%w, learn one with 'qdollar learn'", err)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.3f\t%s\n", res.Name, res.Score, res.Elapsed)

	if res.Score < settings.MinScore {
		log.Printf("No confident match (best score: %.3f)", res.Score)
		return nil
	}
	log.Printf("Matched gesture: %s (score: %.3f)", res.Name, res.Score)

	if !execMatch {
		return nil
	}
	return runMatched(stored, res)
}

// runMatched runs the command stored for the recognized gesture.
func runMatched(stored []models.GestureConfig, res qdollar.Result) error {
	g, ok := gestures.Find(stored, res.Name)
	if !ok {
		return fmt.Errorf("%w: %s", gestures.ErrGestureNotFound, res.Name)
	}
	if g.Command == "" {
		log.Printf("No command bound to gesture: %s", g.Name)
		return nil
	}
	if err := execute.Command(g.Command, res); err != nil {
		return fmt.Errorf("failed to execute command: %w", err)
	}
	log.Printf("Executed: %s", g.Command)
	return nil
}
