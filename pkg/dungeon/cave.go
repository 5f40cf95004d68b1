package dungeon

import (
	"math/rand"

	"github.com/g1tyx/idle-dungeon-runner/internal/domain"
)

// carveCave — пещера клеточным автоматом: случайная засыпка интерьера
// стенами на 45%, затем 4 фиксированных шага правила Мура.
// Порог и число итераций — дизайн-константы, по этажам не крутятся.
func carveCave(g *domain.Grid, rng *rand.Rand) {
	// Засыпка: рамка остается стеной
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			if rng.Float64() < caveFillChance {
				g.SetTile(x, y, domain.TileWall)
			} else {
				g.SetTile(x, y, domain.TileFloor)
			}
		}
	}

	for i := 0; i < caveIterations; i++ {
		caveStep(g)
	}
}

// caveStep — один шаг автомата. Считаем по снимку, пишем в решетку,
// иначе правило "смотрит" на уже измененных соседей.
func caveStep(g *domain.Grid) {
	snapshot := make([][]domain.TileType, g.Height)
	for y := range g.Tiles {
		snapshot[y] = append([]domain.TileType(nil), g.Tiles[y]...)
	}

	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			walls := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if snapshot[y+dy][x+dx] == domain.TileWall {
						walls++
					}
				}
			}
			if walls > caveWallThreshold {
				g.SetTile(x, y, domain.TileWall)
			} else {
				g.SetTile(x, y, domain.TileFloor)
			}
		}
	}
}
