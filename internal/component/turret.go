// internal/component/turret.go
package component

// Turret отвечает за вращение башни танка.
type Turret struct {
	// Angle - текущий угол поворота в радианах, 0 — башня смотрит вверх.
	Angle float64
	// TurnSpeed - скорость поворота в радианах в секунду.
	TurnSpeed float64
}
