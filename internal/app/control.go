// internal/app/control.go
package app

import "github.com/hajimehoshi/ebiten/v2"

// KeyStatus — состояние направления управления.
type KeyStatus int

const (
	Released KeyStatus = iota
	Pressed
)

func (s KeyStatus) String() string {
	if s == Pressed {
		return "Pressed"
	}
	return "Released"
}

// Control хранит состояние шести направлений управления.
// Меняется только событиями ввода, время его не сбрасывает.
type Control struct {
	Up          KeyStatus
	Down        KeyStatus
	Left        KeyStatus
	Right       KeyStatus
	TurretLeft  KeyStatus
	TurretRight KeyStatus
}

// ControlKeys — клавиши, на которые реагирует Game.
var ControlKeys = []ebiten.Key{
	ebiten.KeyArrowUp,
	ebiten.KeyArrowDown,
	ebiten.KeyArrowLeft,
	ebiten.KeyArrowRight,
	ebiten.KeyS,
	ebiten.KeyD,
}

// slot возвращает флаг, привязанный к клавише, или nil для прочих клавиш.
func (c *Control) slot(key ebiten.Key) *KeyStatus {
	switch key {
	case ebiten.KeyArrowUp:
		return &c.Up
	case ebiten.KeyArrowDown:
		return &c.Down
	case ebiten.KeyArrowLeft:
		return &c.Left
	case ebiten.KeyArrowRight:
		return &c.Right
	case ebiten.KeyS:
		return &c.TurretLeft
	case ebiten.KeyD:
		return &c.TurretRight
	}
	return nil
}
