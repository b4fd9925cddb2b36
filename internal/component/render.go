// internal/component/render.go
package component

import "github.com/hajimehoshi/ebiten/v2"

// Sprite — компонент для отрисовки текстуры.
// Размеры хранятся отдельно, чтобы не обращаться к GPU-изображению за Bounds.
type Sprite struct {
	Image  *ebiten.Image
	Width  float64
	Height float64
}
