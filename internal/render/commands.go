// Package render compiles a seat map into a flat list of Canvas2D draw
// commands in pixel space, for hosts that paint the map themselves.
package render

import (
	"encoding/json"
)

// Draw ops understood by the canvas host.
const (
	OpSave      = "save"
	OpRestore   = "restore"
	OpTransform = "transform"
	OpImage     = "image"
	OpRect      = "rect"
	OpText      = "text"
	OpIcon      = "icon"
)

// DrawCommand is a single drawing operation. Shapes are drawn at the
// origin of their own Transform, so Width and Height are the only geometry.
type DrawCommand struct {
	Op          string    `json:"op"`
	ObjectID    string    `json:"objectId,omitempty"` // for hit correlation
	Kind        string    `json:"kind,omitempty"`     // seat, zone, element, background, label
	Transform   []float64 `json:"transform,omitempty"`
	Width       float64   `json:"width,omitempty"`
	Height      float64   `json:"height,omitempty"`
	Radius      float64   `json:"radius,omitempty"`
	Fill        string    `json:"fill,omitempty"`
	Stroke      string    `json:"stroke,omitempty"`
	StrokeWidth float64   `json:"strokeWidth,omitempty"`
	Opacity     float64   `json:"opacity,omitempty"`
	Text        string    `json:"text,omitempty"`
	FontSize    float64   `json:"fontSize,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
}

// ToJSON serializes draw commands; an empty list encodes as [].
func ToJSON(commands []DrawCommand) (string, error) {
	if commands == nil {
		commands = []DrawCommand{}
	}
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}
