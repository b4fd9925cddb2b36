// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-tank-battle/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает предыдущее состояние и рисует его под затемнением.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	settings      config.Settings
}

func NewPauseState(sm *StateMachine, prevState State, settings config.Settings) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		settings:      settings,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}

	palette := defaultPalette()
	w, h := float32(s.settings.Width), float32(s.settings.Height)
	vector.DrawFilledRect(screen, 0, 0, w, h, palette.Overlay, false)

	drawCentered(screen, "PAUSED", s.settings.Height/2, palette.Text, s.settings.Width)
	drawCentered(screen, "press P to resume", s.settings.Height/2+20, palette.Text, s.settings.Width)
}

func (s *PauseState) Exit() {}

// drawCentered рисует строку basicfont по центру окна шириной width.
func drawCentered(screen *ebiten.Image, str string, y int, clr color.Color, width int) {
	bounds := text.BoundString(basicfont.Face7x13, str)
	x := (width - bounds.Dx()) / 2
	text.Draw(screen, str, basicfont.Face7x13, x, y, clr)
}
