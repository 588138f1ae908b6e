package gestures

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/ThatOtherAndrew/qdollar/internal/models"
	"github.com/ThatOtherAndrew/qdollar/pkg/qdollar"
)

var ErrGestureNotFound = errors.New("gesture not found")

// LoadGestures reads the gesture store at path. A missing file is an empty
// store.
func LoadGestures(path string) ([]models.GestureConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.GestureConfig{}, nil
		}
		return nil, err
	}

	var gestures []models.GestureConfig
	if err := json.Unmarshal(data, &gestures); err != nil {
		return nil, err
	}

	return gestures, nil
}

// SaveGesture stores templates under name, replacing any gesture with the
// same name.
func SaveGesture(path, name, command string, templates [][]qdollar.Point) error {
	gestures, err := LoadGestures(path)
	if err != nil {
		return err
	}

	newGesture := models.GestureConfig{
		Name:      name,
		Command:   command,
		Templates: templates,
	}

	found := false
	for i, g := range gestures {
		if g.Name == name {
			gestures[i] = newGesture
			found = true
			break
		}
	}
	if !found {
		gestures = append(gestures, newGesture)
	}

	return writeGestures(path, gestures)
}

func RemoveGesture(path, name string) error {
	gestures, err := LoadGestures(path)
	if err != nil {
		return err
	}

	for i, g := range gestures {
		if g.Name == name {
			gestures = append(gestures[:i], gestures[i+1:]...)
			return writeGestures(path, gestures)
		}
	}
	return ErrGestureNotFound
}

func Find(gestures []models.GestureConfig, name string) (models.GestureConfig, bool) {
	for _, g := range gestures {
		if g.Name == name {
			return g, true
		}
	}
	return models.GestureConfig{}, false
}

// NewRecognizer registers every template of every gesture, in store order.
func NewRecognizer(gestures []models.GestureConfig) *qdollar.Recognizer {
	r := qdollar.NewRecognizer()
	for _, g := range gestures {
		for _, template := range g.Templates {
			if ValidatePoints(template) != nil {
				continue
			}
			r.AddGesture(g.Name, template)
		}
	}
	return r
}

func writeGestures(path string, gestures []models.GestureConfig) error {
	data, err := json.Marshal(gestures)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
