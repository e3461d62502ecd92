// internal/defs/types.go
package defs

import "image/color"

// Visuals describes how a definition is drawn.
type Visuals struct {
	Color       color.RGBA `json:"color"`
	Radius      float64    `json:"radius"`
	StrokeWidth float64    `json:"stroke_width"`
}
