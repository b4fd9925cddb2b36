// internal/state/game_state.go
package state

import (
	"go-tank-battle/internal/app"
	"go-tank-battle/internal/config"
	"go-tank-battle/internal/event"
	"go-tank-battle/internal/system"
	"go-tank-battle/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

// GameState — состояние игры: танк, ввод и HUD
type GameState struct {
	sm              *StateMachine
	settings        config.Settings
	game            *app.Game
	eventDispatcher *event.Dispatcher
	input           *system.InputSystem
	statusPanel     *ui.StatusPanel
}

func NewGameState(sm *StateMachine, settings config.Settings, sprites app.SpriteLoader) *GameState {
	eventDispatcher := event.NewDispatcher()
	gameLogic := app.NewGame(settings)
	gameLogic.LoadSprites(sprites)

	statusPanel := ui.NewStatusPanel(config.HUDOffsetX, config.HUDOffsetY, config.HUDLineHeight, basicfont.Face7x13, defaultPalette(), settings.ShowHUD)

	eventDispatcher.Subscribe(event.KeyPressed, gameLogic)
	eventDispatcher.Subscribe(event.KeyReleased, gameLogic)
	eventDispatcher.Subscribe(event.SpritesLoaded, statusPanel)
	eventDispatcher.Dispatch(event.Event{Type: event.SpritesLoaded, Data: gameLogic.Tank().HasSprites()})

	return &GameState{
		sm:              sm,
		settings:        settings,
		game:            gameLogic,
		eventDispatcher: eventDispatcher,
		input:           system.NewInputSystem(eventDispatcher),
		statusPanel:     statusPanel,
	}
}

// Enter подтягивает клавиши, которые держат прямо сейчас (например, после паузы).
func (g *GameState) Enter() {
	g.input.Resync(app.ControlKeys)
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g, g.settings))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.statusPanel.Toggle()
	}

	g.input.Update(deltaTime)
	g.game.Update(deltaTime)
	g.statusPanel.Update(g.game.Tank(), ebiten.ActualTPS())
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.game.Render(screen)
	g.statusPanel.Draw(screen)
}

// Exit отпускает все клавиши, чтобы танк не ехал сам после возврата.
func (g *GameState) Exit() {
	g.game.ReleaseAll()
}

// GetGame возвращает игровую логику
func (g *GameState) GetGame() *app.Game {
	return g.game
}
