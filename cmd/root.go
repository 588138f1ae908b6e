package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/qdollar/internal/config"
	gestures "github.com/ThatOtherAndrew/qdollar/internal/gesture"
	"github.com/ThatOtherAndrew/qdollar/internal/models"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:          "qdollar",
	Short:        "Recognize drawn gestures and run the commands bound to them",
	SilenceUsage: true,
}

func init() {
	log.SetFlags(0)
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"directory holding gestures.json and settings.json (default ~/.config/qdollar)")
}

func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves the config directory and its settings.
func loadConfig() (string, *config.Settings, error) {
	dir, err := config.GetDir(configDir)
	if err != nil {
		return "", nil, err
	}
	settings, err := config.LoadSettings(dir)
	if err != nil {
		return "", nil, err
	}
	return dir, settings, nil
}

func loadStore() ([]models.GestureConfig, error) {
	dir, err := config.GetDir(configDir)
	if err != nil {
		return nil, err
	}
	return gestures.LoadGestures(config.GetPath(dir))
}
