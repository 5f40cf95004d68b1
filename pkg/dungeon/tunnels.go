package dungeon

import (
	"math/rand"

	"github.com/g1tyx/idle-dungeon-runner/internal/domain"
)

// carveTunnels — извилистые туннели: 3-5 опорных точек, все пары
// соединяются извилистыми коридорами, в каждой точке вырезается
// маленькая круглая комната.
func carveTunnels(g *domain.Grid, rng *rand.Rand) {
	seedCount := randRange(rng, 3, 5)

	seeds := make([]domain.Position, 0, seedCount)
	for i := 0; i < seedCount; i++ {
		seeds = append(seeds, domain.Position{
			X: randRange(rng, 3, g.Width-4),
			Y: randRange(rng, 3, g.Height-4),
		})
	}

	for i := 0; i < len(seeds); i++ {
		for j := i + 1; j < len(seeds); j++ {
			carveWindingCorridor(g, seeds[i], seeds[j], rng)
		}
	}

	for _, s := range seeds {
		carveCircle(g, s, randRange(rng, 2, 3))
	}
}

// carveCircle вырезает круглую комнату радиуса r вокруг центра.
func carveCircle(g *domain.Grid, center domain.Position, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			x, y := center.X+dx, center.Y+dy
			if g.InBounds(x, y, 1) {
				g.SetTile(x, y, domain.TileFloor)
			}
		}
	}
}
