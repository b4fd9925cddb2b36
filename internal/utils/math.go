package utils

import "math"

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	return math.Remainder(angle, 2*math.Pi)
}

// Degrees переводит радианы в градусы
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Heading возвращает направление в градусах в диапазоне [0, 360),
// отсчитываемое по часовой стрелке от "вверх".
func Heading(angle float64) float64 {
	deg := Degrees(NormalizeAngle(angle))
	if deg < 0 {
		deg += 360
	}
	return deg
}
