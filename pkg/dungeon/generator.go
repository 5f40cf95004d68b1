package dungeon

import (
	"math"
	"math/rand"

	"github.com/g1tyx/idle-dungeon-runner/internal/domain"
	"github.com/g1tyx/idle-dungeon-runner/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Константы генерации
const (
	caveFillChance    = 0.45 // стартовая доля стен в пещере
	caveIterations    = 4    // фиксированное число шагов автомата
	caveWallThreshold = 4    // больше 4 соседей-стен из 8 — клетка становится стеной
)

// Result — готовый этаж: решетка плюс размещенные объекты.
type Result struct {
	Grid    *domain.Grid
	Objects []*domain.PlacedObject
}

// Generate создает полностью связный этаж для заданного номера.
// Детерминирован только с точностью до rng вызывающего.
func Generate(floor int, rng *rand.Rand) *Result {
	width, height := floorSize(floor, rng)
	grid := domain.NewGrid(width, height)

	// floor mod 3 выбирает ровно один алгоритм, методы не смешиваются
	method := floor % 3
	switch method {
	case 0:
		carveCave(grid, rng)
	case 1:
		carveBlobRooms(grid, rng)
	default:
		carveTunnels(grid, rng)
	}

	// Пост-обработка в фиксированном порядке: сначала связность, потом чистка
	repairConnectivity(grid, rng)
	cleanup(grid)

	objects := placeObjects(grid, floor, rng)

	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon",
		"floor":     floor,
		"method":    method,
		"size":      []int{width, height},
		"objects":   len(objects),
	}).Debug("Floor generated")

	return &Result{Grid: grid, Objects: objects}
}

// floorSize считает стороны этажа: монотонный рост от номера,
// независимое дрожание ±2 по каждой оси, чтобы этажи не были квадратными.
func floorSize(floor int, rng *rand.Rand) (int, int) {
	base := float64(domain.MinSize) + math.Sqrt(float64(floor))*2.5 + float64(floor)*domain.GrowthRate
	width := clampInt(int(base)+rng.Intn(5)-2, domain.MinSize, domain.MaxSize)
	height := clampInt(int(base)+rng.Intn(5)-2, domain.MinSize, domain.MaxSize)
	return width, height
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func randRange(rng *rand.Rand, min, max int) int {
	return rng.Intn(max-min+1) + min
}
