// internal/ui/status_panel.go
package ui

import (
	"fmt"

	"go-tank-battle/internal/event"
	"go-tank-battle/internal/object"
	"go-tank-battle/internal/utils"
	"go-tank-battle/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// StatusPanel — текстовая панель в углу экрана: позиция танка, курс башни, TPS.
type StatusPanel struct {
	X, Y       int
	LineHeight int
	IsVisible  bool

	fontFace       font.Face
	palette        render.Palette
	lines          []string
	spritesMissing bool
}

func NewStatusPanel(x, y, lineHeight int, fontFace font.Face, palette render.Palette, visible bool) *StatusPanel {
	return &StatusPanel{
		X:          x,
		Y:          y,
		LineHeight: lineHeight,
		IsVisible:  visible,
		fontFace:   fontFace,
		palette:    palette,
	}
}

// OnEvent запоминает результат загрузки спрайтов.
func (p *StatusPanel) OnEvent(e event.Event) {
	if e.Type != event.SpritesLoaded {
		return
	}
	if ok, isBool := e.Data.(bool); isBool {
		p.spritesMissing = !ok
	}
}

func (p *StatusPanel) Toggle() {
	p.IsVisible = !p.IsVisible
}

// Update пересобирает строки панели.
func (p *StatusPanel) Update(tank *object.Tank, tps float64) {
	p.lines = p.lines[:0]
	p.lines = append(p.lines,
		fmt.Sprintf("X: %.1f  Y: %.1f", tank.Position.X, tank.Position.Y),
		fmt.Sprintf("Turret: %.0f deg", utils.Heading(tank.Turret.Angle)),
		fmt.Sprintf("TPS: %.0f", tps),
	)
	if p.spritesMissing {
		p.lines = append(p.lines, "Sprites not loaded")
	}
}

func (p *StatusPanel) Lines() []string {
	return p.lines
}

// Draw рисует строки с тенью.
func (p *StatusPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible {
		return
	}
	for i, line := range p.lines {
		y := p.Y + i*p.LineHeight
		clr := p.palette.Text
		if p.spritesMissing && i == len(p.lines)-1 {
			clr = p.palette.Warning
		}
		text.Draw(screen, line, p.fontFace, p.X+1, y+1, p.palette.Shadow())
		text.Draw(screen, line, p.fontFace, p.X, y, clr)
	}
}
