// pkg/render/canvas.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas — поверхность, на которую рисуются сущности.
// *ebiten.Image удовлетворяет интерфейсу, в тестах используется запись вызовов.
type Canvas interface {
	Fill(clr color.Color)
	DrawImage(img *ebiten.Image, options *ebiten.DrawImageOptions)
}

var _ Canvas = (*ebiten.Image)(nil)

// Centered returns a transform that moves the drawing origin to the middle of a width x height surface.
func Centered(width, height int) ebiten.GeoM {
	var view ebiten.GeoM
	view.Translate(float64(width)/2, float64(height)/2)
	return view
}
