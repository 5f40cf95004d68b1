package dungeon

import (
	"math/rand"

	"github.com/g1tyx/idle-dungeon-runner/internal/domain"
	"github.com/g1tyx/idle-dungeon-runner/pkg/logger"
)

// floodRegions возвращает все 4-связные регионы пола.
func floodRegions(g *domain.Grid) [][]domain.Position {
	visited := make([]bool, g.Width*g.Height)
	var regions [][]domain.Position

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.Tiles[y][x].Walkable() || visited[g.Index(x, y)] {
				continue
			}

			// BFS от непосещенной клетки пола
			var region []domain.Position
			queue := []domain.Position{{X: x, Y: y}}
			visited[g.Index(x, y)] = true

			for len(queue) > 0 {
				p := queue[0]
				queue = queue[1:]
				region = append(region, p)

				for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
					nx, ny := p.X+d[0], p.Y+d[1]
					if !g.IsWalkable(nx, ny) || visited[g.Index(nx, ny)] {
						continue
					}
					visited[g.Index(nx, ny)] = true
					queue = append(queue, domain.Position{X: nx, Y: ny})
				}
			}
			regions = append(regions, region)
		}
	}
	return regions
}

// repairConnectivity гарантирует единственный регион пола.
// Каждый малый регион пришивается к крупнейшему коридором через
// пару точек с минимальным манхэттенским расстоянием.
// Если пола нет вовсе — вырезаем запасную комнату 5x5 в центре.
func repairConnectivity(g *domain.Grid, rng *rand.Rand) {
	regions := floodRegions(g)

	if len(regions) == 0 {
		logger.Log.WithField("component", "dungeon").
			Warn("Generation produced no floor tiles, carving fallback room")
		carveFallbackRoom(g)
		return
	}
	if len(regions) == 1 {
		return
	}

	largest := 0
	for i := 1; i < len(regions); i++ {
		if len(regions[i]) > len(regions[largest]) {
			largest = i
		}
	}

	for i, region := range regions {
		if i == largest {
			continue
		}
		from, to := closestPair(region, regions[largest])
		carveWindingCorridor(g, from, to, rng)
	}

	// Виляющий коридор мог не дотянуться до цели — проверяем и дошиваем
	// прямыми до полной связности.
	for attempts := 0; attempts < 4; attempts++ {
		regions = floodRegions(g)
		if len(regions) <= 1 {
			return
		}
		largest = 0
		for i := 1; i < len(regions); i++ {
			if len(regions[i]) > len(regions[largest]) {
				largest = i
			}
		}
		for i, region := range regions {
			if i == largest {
				continue
			}
			from, to := closestPair(region, regions[largest])
			carveStraightCorridor(g, from, to)
		}
	}
}

// closestPair ищет пару (a из region, b из target) с минимальной
// манхэттенской дистанцией.
func closestPair(region, target []domain.Position) (domain.Position, domain.Position) {
	best := 1 << 30
	var from, to domain.Position
	for _, a := range region {
		for _, b := range target {
			if d := a.ManhattanTo(b); d < best {
				best = d
				from, to = a, b
			}
		}
	}
	return from, to
}

// carveStraightCorridor — Г-образный коридор, гарантированно доходящий до цели.
func carveStraightCorridor(g *domain.Grid, from, to domain.Position) {
	x, y := from.X, from.Y
	for x != to.X {
		x += sign(to.X - x)
		if g.InBounds(x, y, 1) {
			g.SetTile(x, y, domain.TileFloor)
		}
	}
	for y != to.Y {
		y += sign(to.Y - y)
		if g.InBounds(x, y, 1) {
			g.SetTile(x, y, domain.TileFloor)
		}
	}
}

// carveFallbackRoom — комната 5x5 в центре решетки.
func carveFallbackRoom(g *domain.Grid) {
	cx, cy := g.Width/2, g.Height/2
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if g.InBounds(cx+dx, cy+dy, 1) {
				g.SetTile(cx+dx, cy+dy, domain.TileFloor)
			}
		}
	}
}

// cleanup убирает шум после генерации: одинокие стены (≥7 соседей-пол)
// становятся полом, дырки-булавки (≥7 соседей-стен) — стеной.
func cleanup(g *domain.Grid) {
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			floors, walls := neighborCounts(g, x, y)
			switch {
			case g.Tiles[y][x] == domain.TileWall && floors >= 7:
				g.SetTile(x, y, domain.TileFloor)
			case g.Tiles[y][x] == domain.TileFloor && walls >= 7:
				g.SetTile(x, y, domain.TileWall)
			}
		}
	}
}

func neighborCounts(g *domain.Grid, x, y int) (floors, walls int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Tiles[y+dy][x+dx] == domain.TileWall {
				walls++
			} else {
				floors++
			}
		}
	}
	return floors, walls
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
