// component/render.go
package component

import "image/color"

// Renderable holds circle drawing data for an entity.
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
}
