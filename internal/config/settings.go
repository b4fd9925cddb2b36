package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Settings — параметры, которые передаются в игру при запуске.
// Значения по умолчанию берутся из констант пакета.
type Settings struct {
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	Title           string  `json:"title"`
	TankSpeed       float64 `json:"tank_speed"`
	TurretTurnSpeed float64 `json:"turret_turn_speed"`
	TankSprite      string  `json:"tank_sprite"`
	TurretSprite    string  `json:"turret_sprite"`
	MaxDeltaTime    float64 `json:"max_delta_time"`
	ShowHUD         bool    `json:"show_hud"`
}

// Default возвращает настройки по умолчанию: окно 800x600 и два стандартных спрайта.
func Default() Settings {
	return Settings{
		Width:           ScreenWidth,
		Height:          ScreenHeight,
		Title:           WindowTitle,
		TankSpeed:       TankSpeed,
		TurretTurnSpeed: TurretTurnSpeed,
		TankSprite:      TankSpritePath,
		TurretSprite:    TurretSpritePath,
		MaxDeltaTime:    MaxDeltaTime,
		ShowHUD:         true,
	}
}

// Load reads a JSON settings file. Fields missing from the file keep their default values.
func Load(path string) (Settings, error) {
	s := Default()

	file, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := json.Unmarshal(file, &s); err != nil {
		return Default(), fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return s, nil
}

// Validate проверяет, что разрешение и скорости положительны.
func (s Settings) Validate() error {
	var errs []error
	if s.Width <= 0 || s.Height <= 0 {
		errs = append(errs, fmt.Errorf("resolution must be positive, got %dx%d", s.Width, s.Height))
	}
	if s.TankSpeed <= 0 {
		errs = append(errs, fmt.Errorf("tank_speed must be positive, got %v", s.TankSpeed))
	}
	if s.TurretTurnSpeed <= 0 {
		errs = append(errs, fmt.Errorf("turret_turn_speed must be positive, got %v", s.TurretTurnSpeed))
	}
	if s.MaxDeltaTime <= 0 {
		errs = append(errs, fmt.Errorf("max_delta_time must be positive, got %v", s.MaxDeltaTime))
	}
	return errors.Join(errs...)
}

// Center возвращает центр окна в пикселях.
func (s Settings) Center() (float64, float64) {
	return float64(s.Width) / 2, float64(s.Height) / 2
}
