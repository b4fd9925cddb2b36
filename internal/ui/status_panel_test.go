package ui

import (
	"math"
	"testing"

	"go-tank-battle/internal/event"
	"go-tank-battle/internal/object"
	"go-tank-battle/pkg/render"

	"golang.org/x/image/font/basicfont"
)

func newPanel() *StatusPanel {
	return NewStatusPanel(10, 20, 16, basicfont.Face7x13, render.Palette{}, true)
}

func TestUpdateFormatsTankState(t *testing.T) {
	p := newPanel()
	tank := object.NewTank(1)
	tank.Mov(12.34, -5)
	tank.Turret.Angle = -math.Pi / 2

	p.Update(tank, 60)

	want := []string{"X: 12.3  Y: -5.0", "Turret: 270 deg", "TPS: 60"}
	got := p.Lines()
	if len(got) != len(want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMissingSpritesWarning(t *testing.T) {
	p := newPanel()
	d := event.NewDispatcher()
	d.Subscribe(event.SpritesLoaded, p)

	d.Dispatch(event.Event{Type: event.SpritesLoaded, Data: false})
	p.Update(object.NewTank(1), 0)
	if lines := p.Lines(); lines[len(lines)-1] != "Sprites not loaded" {
		t.Fatalf("lines = %q, want a warning last", lines)
	}

	d.Dispatch(event.Event{Type: event.SpritesLoaded, Data: true})
	p.Update(object.NewTank(1), 0)
	if len(p.Lines()) != 3 {
		t.Fatalf("lines = %q, want no warning", p.Lines())
	}
}

func TestToggle(t *testing.T) {
	p := newPanel()
	p.Toggle()
	if p.IsVisible {
		t.Fatal("panel should be hidden after toggle")
	}
	p.Toggle()
	if !p.IsVisible {
		t.Fatal("panel should be visible again")
	}
}
