package dungeon

import (
	"math/rand"

	"github.com/g1tyx/idle-dungeon-runner/internal/domain"
)

// carveWindingCorridor прокладывает извилистый коридор от from к to:
// случайное блуждание со смещением к цели, 30% виляние по каждой оси,
// ширина 1-2 клетки. Используется кляксами, туннелями и ремонтом связности.
func carveWindingCorridor(g *domain.Grid, from, to domain.Position, rng *rand.Rand) {
	x, y := from.X, from.Y
	carveCorridorCell(g, x, y, rng)

	// Предохранитель: коридор не длиннее периметра решетки
	maxSteps := (g.Width + g.Height) * 4

	for steps := 0; (x != to.X || y != to.Y) && steps < maxSteps; steps++ {
		dx, dy := domain.Position{X: x, Y: y}.DirectionTo(to)

		// Виляние: 30% шанс на ось уйти в сторону вместо движения к цели
		if rng.Float64() < 0.3 {
			dx = randRange(rng, -1, 1)
		}
		if rng.Float64() < 0.3 {
			dy = randRange(rng, -1, 1)
		}

		// Ходим по одной оси за шаг, чтобы коридор был связным по 4-соседству
		if dx != 0 && (dy == 0 || rng.Intn(2) == 0) {
			x += dx
		} else if dy != 0 {
			y += dy
		}

		x = clampInt(x, 1, g.Width-2)
		y = clampInt(y, 1, g.Height-2)

		carveCorridorCell(g, x, y, rng)
	}
}

// carveCorridorCell вырезает клетку коридора и с половинным шансом
// утолщает его до 2 тайлов.
func carveCorridorCell(g *domain.Grid, x, y int, rng *rand.Rand) {
	if g.InBounds(x, y, 1) {
		g.SetTile(x, y, domain.TileFloor)
	}
	if rng.Intn(2) == 0 {
		wx, wy := x+randRange(rng, -1, 1), y+randRange(rng, -1, 1)
		if g.InBounds(wx, wy, 1) {
			g.SetTile(wx, wy, domain.TileFloor)
		}
	}
}
