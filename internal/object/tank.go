// internal/object/tank.go
package object

import (
	"go-tank-battle/internal/component"
	"go-tank-battle/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Tank — танк игрока: позиция, башня и два необязательных спрайта.
type Tank struct {
	Position component.Position
	Turret   component.Turret

	hull   *component.Sprite
	turret *component.Sprite
}

// NewTank создаёт неподвижный танк в точке (0, 0), то есть в центре окна.
func NewTank(turretTurnSpeed float64) *Tank {
	return &Tank{
		Turret: component.Turret{TurnSpeed: turretTurnSpeed},
	}
}

// Mov сдвигает танк на (dx, dy).
func (t *Tank) Mov(dx, dy float64) {
	t.Position.X += dx
	t.Position.Y += dy
}

// RotateTurretLeft поворачивает башню против часовой стрелки.
func (t *Tank) RotateTurretLeft(deltaTime float64) {
	t.Turret.Angle -= t.Turret.TurnSpeed * deltaTime
}

// RotateTurretRight поворачивает башню по часовой стрелке.
func (t *Tank) RotateTurretRight(deltaTime float64) {
	t.Turret.Angle += t.Turret.TurnSpeed * deltaTime
}

func (t *Tank) SetTankSprite(sprite component.Sprite) {
	t.hull = &sprite
}

func (t *Tank) SetTurretSprite(sprite component.Sprite) {
	t.turret = &sprite
}

// HasSprites сообщает, загружены ли обе текстуры.
func (t *Tank) HasSprites() bool {
	return t.hull != nil && t.turret != nil
}

// Render рисует корпус и башню с центром в позиции танка.
// view переводит координаты танка в координаты экрана.
func (t *Tank) Render(view ebiten.GeoM, canvas render.Canvas) {
	if t.hull != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-t.hull.Width/2, -t.hull.Height/2)
		op.GeoM.Translate(t.Position.X, t.Position.Y)
		op.GeoM.Concat(view)
		canvas.DrawImage(t.hull.Image, op)
	}

	if t.turret != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-t.turret.Width/2, -t.turret.Height/2)
		op.GeoM.Rotate(t.Turret.Angle)
		op.GeoM.Translate(t.Position.X, t.Position.Y)
		op.GeoM.Concat(view)
		op.Filter = ebiten.FilterLinear // сглаживание при повороте
		canvas.DrawImage(t.turret.Image, op)
	}
}
