// pkg/render/color.go
package render

import "image/color"

// Palette holds the colors used for overlay text and backgrounds.
type Palette struct {
	Background color.RGBA
	Text       color.RGBA
	Title      color.RGBA
	Overlay    color.RGBA
	Warning    color.RGBA
}

// Shadow возвращает цвет тени для текста.
func (p Palette) Shadow() color.RGBA {
	return DarkenColor(p.Text)
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
