package domain

import "math"

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ManhattanTo возвращает манхэттенское расстояние до другой точки.
// Вся логика агро/преследования работает именно на нём.
func (p Position) ManhattanTo(other Position) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// DistanceTo возвращает точное евклидово расстояние (float).
func (p Position) DistanceTo(other Position) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Shift возвращает новую позицию со смещением (структура копируется по значению).
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// DirectionTo возвращает знаковые шаги (-1/0/1) в сторону цели.
func (p Position) DirectionTo(other Position) (int, int) {
	return sign(other.X - p.X), sign(other.Y - p.Y)
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
