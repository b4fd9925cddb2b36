// internal/app/game.go
package app

import (
	"log"

	"go-tank-battle/internal/component"
	"go-tank-battle/internal/config"
	"go-tank-battle/internal/event"
	"go-tank-battle/internal/object"
	"go-tank-battle/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteLoader загружает спрайт по пути к файлу.
type SpriteLoader interface {
	Load(path string) (component.Sprite, error)
}

// Game holds the player tank and the current control state.
type Game struct {
	settings   config.Settings
	player     *object.Tank
	controller Control
}

// NewGame создаёт танк в центре окна; все клавиши отпущены.
func NewGame(settings config.Settings) *Game {
	return &Game{
		settings: settings,
		player:   object.NewTank(settings.TurretTurnSpeed),
	}
}

// LoadSprites загружает корпус и башню. Спрайты ставятся только если
// загрузились оба; ошибка лишь пишется в лог.
func (g *Game) LoadSprites(loader SpriteLoader) {
	tankSprite, tankErr := loader.Load(g.settings.TankSprite)
	turretSprite, turretErr := loader.Load(g.settings.TurretSprite)

	if tankErr != nil || turretErr != nil {
		for _, err := range []error{tankErr, turretErr} {
			if err != nil {
				log.Printf("WARNING: %v. Tank will be drawn without sprites.", err)
			}
		}
		return
	}

	g.player.SetTankSprite(tankSprite)
	g.player.SetTurretSprite(turretSprite)
}

// Input записывает состояние клавиши. Неизвестные клавиши игнорируются.
func (g *Game) Input(key ebiten.Key, status KeyStatus) {
	if slot := g.controller.slot(key); slot != nil {
		*slot = status
	}
}

// OnEvent принимает события KeyPressed / KeyReleased от диспетчера.
func (g *Game) OnEvent(e event.Event) {
	key, ok := e.Data.(ebiten.Key)
	if !ok {
		return
	}
	switch e.Type {
	case event.KeyPressed:
		g.Input(key, Pressed)
	case event.KeyReleased:
		g.Input(key, Released)
	}
}

// ReleaseAll отпускает все направления.
func (g *Game) ReleaseAll() {
	g.controller = Control{}
}

// Update сдвигает танк и поворачивает башню по нажатым направлениям.
// Направления независимы: противоположные клавиши взаимно гасятся.
func (g *Game) Update(deltaTime float64) {
	step := g.settings.TankSpeed * deltaTime
	c := &g.controller

	if c.Up == Pressed {
		g.player.Mov(0, -step)
	}
	if c.Down == Pressed {
		g.player.Mov(0, step)
	}
	if c.Left == Pressed {
		g.player.Mov(-step, 0)
	}
	if c.Right == Pressed {
		g.player.Mov(step, 0)
	}
	if c.TurretLeft == Pressed {
		g.player.RotateTurretLeft(deltaTime)
	}
	if c.TurretRight == Pressed {
		g.player.RotateTurretRight(deltaTime)
	}
}

// Render очищает экран и рисует танк относительно центра окна.
func (g *Game) Render(canvas render.Canvas) {
	canvas.Fill(config.BackgroundColor)
	g.player.Render(render.Centered(g.settings.Width, g.settings.Height), canvas)
}

func (g *Game) Tank() *object.Tank {
	return g.player
}

// Controls возвращает копию текущего состояния управления.
func (g *Game) Controls() Control {
	return g.controller
}
