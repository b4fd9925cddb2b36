// internal/component/movement.go
package component

// Position — компонент позиции относительно центра окна
type Position struct {
	X, Y float64
}
