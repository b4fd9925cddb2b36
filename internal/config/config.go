// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	WindowTitle  = "R_TankBattle"
	MaxDeltaTime = 0.06

	TankSpeed       = 150.0                 // пикселей в секунду
	TurretTurnSpeed = 150.0 * math.Pi / 180 // радиан в секунду (150°/с)

	TankSpritePath   = "assets/tankBase.png"
	TurretSpritePath = "assets/tankTurret.png"

	HUDOffsetX    = 10
	HUDOffsetY    = 20
	HUDLineHeight = 16
)

var (
	BackgroundColor   = color.RGBA{0, 0, 0, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TitleColor        = color.RGBA{50, 205, 50, 255}
	PauseOverlayColor = color.RGBA{0, 0, 0, 128}
	WarningColor      = color.RGBA{220, 60, 60, 255}
)
