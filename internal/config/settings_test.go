package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.Width != 800 || s.Height != 600 {
		t.Fatalf("resolution = %dx%d, want 800x600", s.Width, s.Height)
	}
	if s.Title != "R_TankBattle" {
		t.Fatalf("title = %q, want R_TankBattle", s.Title)
	}
	if s.TankSpeed != 150 {
		t.Fatalf("tank speed = %v, want 150", s.TankSpeed)
	}
	if s.TankSprite != "assets/tankBase.png" || s.TurretSprite != "assets/tankTurret.png" {
		t.Fatalf("sprite paths = %q, %q", s.TankSprite, s.TurretSprite)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("default settings should be valid: %v", err)
	}
	x, y := s.Center()
	if x != 400 || y != 300 {
		t.Fatalf("center = (%v, %v), want (400, 300)", x, y)
	}
}

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeSettings(t, `{"title": "Test", "tank_speed": 90, "show_hud": false}`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Title != "Test" || s.TankSpeed != 90 || s.ShowHUD {
		t.Fatalf("overrides not applied: %+v", s)
	}
	if s.Width != ScreenWidth || s.TurretSprite != TurretSpritePath {
		t.Fatalf("defaults lost: %+v", s)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") }},
		{"bad json", func(t *testing.T) string { return writeSettings(t, `{"width": `) }},
		{"zero width", func(t *testing.T) string { return writeSettings(t, `{"width": 0}`) }},
		{"negative speed", func(t *testing.T) string { return writeSettings(t, `{"tank_speed": -1}`) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load(tt.path(t))
			if err == nil {
				t.Fatal("expected an error")
			}
			if s != Default() {
				t.Fatalf("failed load should return defaults, got %+v", s)
			}
		})
	}
}
