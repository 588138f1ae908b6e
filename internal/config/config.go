package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

type Settings struct {
	// MinScore is the lowest recognition score that still triggers a command.
	MinScore float64 `json:"min_score"`
	// Samples is how many drawings learn expects per gesture.
	Samples int `json:"samples"`
}

func DefaultSettings() *Settings {
	return &Settings{
		MinScore: 0.6,
		Samples:  3,
	}
}

// GetDir returns dir, or ~/.config/qdollar when dir is empty, creating it if
// needed.
func GetDir(dir string) (string, error) {
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(homeDir, ".config", "qdollar")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

func GetPath(dir string) string {
	return filepath.Join(dir, "gestures.json")
}

func GetSettingsPath(dir string) string {
	return filepath.Join(dir, "settings.json")
}

func LoadSettings(dir string) (*Settings, error) {
	settingsPath := GetSettingsPath(dir)
	defaultSettings := DefaultSettings()

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Creating default settings file at %s", settingsPath)
			if err := createDefaultSettings(settingsPath, defaultSettings); err != nil {
				log.Printf("Failed to create default settings file: %v", err)
			}
			return defaultSettings, nil
		}
		return nil, err
	}

	// Check for unrecognised keys
	var rawSettings map[string]any
	if err := json.Unmarshal(data, &rawSettings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaultSettings, nil
	}

	knownKeys := getKnownKeys(Settings{})
	for key := range rawSettings {
		if !knownKeys[key] {
			log.Printf("Warning: unrecognised setting key '%s' in settings file", key)
		}
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaultSettings, nil
	}

	if settings.MinScore < 0.0 || settings.MinScore > 1.0 {
		log.Printf("Invalid min_score value %.2f, must be between 0.0 and 1.0, using default %.2f",
			settings.MinScore, defaultSettings.MinScore)
		settings.MinScore = defaultSettings.MinScore
	}
	if settings.Samples < 1 {
		log.Printf("Invalid samples value %d, must be at least 1, using default %d",
			settings.Samples, defaultSettings.Samples)
		settings.Samples = defaultSettings.Samples
	}

	return settings, nil
}

func createDefaultSettings(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func getKnownKeys(v any) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		if jsonTag := t.Field(i).Tag.Get("json"); jsonTag != "" {
			tagName := strings.Split(jsonTag, ",")[0]
			if tagName != "-" {
				keys[tagName] = true
			}
		}
	}
	return keys
}
