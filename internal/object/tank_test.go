package object

import (
	"image/color"
	"math"
	"testing"

	"go-tank-battle/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
)

type drawCall struct {
	img  *ebiten.Image
	geoM ebiten.GeoM
}

type recordingCanvas struct {
	fills []color.Color
	draws []drawCall
}

func (c *recordingCanvas) Fill(clr color.Color) {
	c.fills = append(c.fills, clr)
}

func (c *recordingCanvas) DrawImage(img *ebiten.Image, op *ebiten.DrawImageOptions) {
	c.draws = append(c.draws, drawCall{img: img, geoM: op.GeoM})
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewTankIsCenteredAndStill(t *testing.T) {
	tank := NewTank(2)
	if tank.Position != (component.Position{}) {
		t.Fatalf("position = %+v, want origin", tank.Position)
	}
	if tank.Turret.Angle != 0 || tank.Turret.TurnSpeed != 2 {
		t.Fatalf("turret = %+v", tank.Turret)
	}
	if tank.HasSprites() {
		t.Fatal("new tank should have no sprites")
	}
}

func TestMovIsAdditive(t *testing.T) {
	tank := NewTank(1)
	tank.Mov(3, -4)
	tank.Mov(-1, 1)
	if tank.Position.X != 2 || tank.Position.Y != -3 {
		t.Fatalf("position = %+v, want (2, -3)", tank.Position)
	}
}

func TestRotateTurret(t *testing.T) {
	tank := NewTank(2)
	tank.RotateTurretRight(0.5)
	if !near(tank.Turret.Angle, 1) {
		t.Fatalf("angle after right = %v, want 1", tank.Turret.Angle)
	}
	tank.RotateTurretLeft(1.5)
	if !near(tank.Turret.Angle, -2) {
		t.Fatalf("angle after left = %v, want -2", tank.Turret.Angle)
	}
}

func TestRenderWithoutSpritesDrawsNothing(t *testing.T) {
	tank := NewTank(1)
	canvas := &recordingCanvas{}
	tank.Render(ebiten.GeoM{}, canvas)
	if len(canvas.draws) != 0 {
		t.Fatalf("draws = %d, want 0", len(canvas.draws))
	}
}

func TestRenderCentersSpritesOnPosition(t *testing.T) {
	hull := &ebiten.Image{}
	turret := &ebiten.Image{}

	tank := NewTank(1)
	tank.SetTankSprite(component.Sprite{Image: hull, Width: 40, Height: 60})
	tank.SetTurretSprite(component.Sprite{Image: turret, Width: 10, Height: 30})
	tank.Mov(5, 7)
	tank.Turret.Angle = math.Pi / 2

	var view ebiten.GeoM
	view.Translate(400, 300)

	canvas := &recordingCanvas{}
	tank.Render(view, canvas)

	if len(canvas.draws) != 2 {
		t.Fatalf("draws = %d, want 2", len(canvas.draws))
	}
	if canvas.draws[0].img != hull || canvas.draws[1].img != turret {
		t.Fatal("hull must be drawn before turret")
	}

	// Центр корпуса попадает в позицию танка на экране.
	x, y := canvas.draws[0].geoM.Apply(20, 30)
	if !near(x, 405) || !near(y, 307) {
		t.Fatalf("hull center at (%v, %v), want (405, 307)", x, y)
	}

	// Центр башни остаётся на месте при повороте.
	x, y = canvas.draws[1].geoM.Apply(5, 15)
	if !near(x, 405) || !near(y, 307) {
		t.Fatalf("turret center at (%v, %v), want (405, 307)", x, y)
	}
	// Верх башни после поворота на 90° смотрит вправо.
	x, y = canvas.draws[1].geoM.Apply(5, 0)
	if !near(x, 420) || !near(y, 307) {
		t.Fatalf("turret tip at (%v, %v), want (420, 307)", x, y)
	}
}
