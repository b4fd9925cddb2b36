// internal/state/menu_state.go
package state

import (
	"go-tank-battle/internal/app"
	"go-tank-battle/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — титульный экран
type MenuState struct {
	sm       *StateMachine
	settings config.Settings
	sprites  app.SpriteLoader
}

func NewMenuState(sm *StateMachine, settings config.Settings, sprites app.SpriteLoader) *MenuState {
	return &MenuState{sm: sm, settings: settings, sprites: sprites}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.settings, m.sprites))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	palette := defaultPalette()
	screen.Fill(palette.Background)
	drawCentered(screen, m.settings.Title, m.settings.Height/2-20, palette.Title, m.settings.Width)
	drawCentered(screen, "arrows: move   S/D: turret   P: pause", m.settings.Height/2+10, palette.Text, m.settings.Width)
	drawCentered(screen, "press SPACE to start", m.settings.Height/2+30, palette.Text, m.settings.Width)
}

func (m *MenuState) Exit() {}
