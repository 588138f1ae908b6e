package models

import "github.com/ThatOtherAndrew/qdollar/pkg/qdollar"

// GestureConfig is one stored gesture. Every template is a raw sample and is
// registered separately under Name.
type GestureConfig struct {
	Name      string            `json:"name"`
	Command   string            `json:"command,omitempty"`
	Templates [][]qdollar.Point `json:"templates"`
}
