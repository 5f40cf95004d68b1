package dungeon

import (
	"math/rand"

	"github.com/g1tyx/idle-dungeon-runner/internal/domain"
)

// placeObjects расставляет объекты по финальной решетке.
// Каждая проверка шанса независима; если свободных клеток не осталось,
// размещение молча пропускается — ни ретраев, ни ошибок.
func placeObjects(g *domain.Grid, floor int, rng *rand.Rand) []*domain.PlacedObject {
	var objects []*domain.PlacedObject
	occupied := make(map[int]bool)

	area := g.Width * g.Height
	density := float64(area) / 100

	place := func(kind domain.ObjectKind, mutate func(*domain.PlacedObject)) {
		pos, ok := freeFloorCell(g, occupied, rng)
		if !ok {
			return // голод размещения — пропускаем
		}
		obj := &domain.PlacedObject{Kind: kind, Pos: pos}
		if mutate != nil {
			mutate(obj)
		}
		occupied[g.Index(pos.X, pos.Y)] = true
		g.SetTile(pos.X, pos.Y, tileFor(kind, obj))
		objects = append(objects, obj)
	}

	// Сундуки и ловушки масштабируются от площади
	chestCount := 1 + int(density*0.8)
	for i := 0; i < chestCount; i++ {
		place(domain.ObjectChest, func(o *domain.PlacedObject) {
			o.Gold = 10 + rng.Intn(15) + floor*5
		})
	}

	trapCount := 1 + int(density*0.6)
	for i := 0; i < trapCount; i++ {
		place(domain.ObjectTrap, func(o *domain.PlacedObject) {
			o.Trap = domain.TrapType(rng.Intn(3))
		})
	}

	if rng.Float64() < 0.08+float64(floor)*0.002 {
		place(domain.ObjectSecretRoom, func(o *domain.PlacedObject) {
			o.Gold = 50 + floor*10
		})
	}

	if rng.Float64() < 0.10+density*0.02 {
		place(domain.ObjectNPC, nil)
	}

	if rng.Float64() < 0.06+density*0.01 {
		place(domain.ObjectRoomEvent, func(o *domain.PlacedObject) {
			o.Event = domain.EventShrine
		})
	}
	if rng.Float64() < 0.06+density*0.01 {
		place(domain.ObjectRoomEvent, func(o *domain.PlacedObject) {
			o.Event = domain.EventFountain
		})
	}

	// Проклятый алтарь — только с 5 этажа
	if floor >= 5 && rng.Float64() < 0.10 {
		place(domain.ObjectRoomEvent, func(o *domain.PlacedObject) {
			o.Event = domain.EventAltar
		})
	}

	return objects
}

// freeFloorCell сэмплирует равномерно случайную свободную клетку пола.
func freeFloorCell(g *domain.Grid, occupied map[int]bool, rng *rand.Rand) (domain.Position, bool) {
	var free []domain.Position
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Tiles[y][x] == domain.TileFloor && !occupied[g.Index(x, y)] {
				free = append(free, domain.Position{X: x, Y: y})
			}
		}
	}
	if len(free) == 0 {
		return domain.Position{}, false
	}
	return free[rng.Intn(len(free))], true
}

func tileFor(kind domain.ObjectKind, obj *domain.PlacedObject) domain.TileType {
	switch kind {
	case domain.ObjectChest:
		return domain.TileChest
	case domain.ObjectTrap:
		return domain.TileTrap
	case domain.ObjectNPC:
		return domain.TileNPC
	case domain.ObjectSecretRoom:
		return domain.TileSecret
	case domain.ObjectRoomEvent:
		switch obj.Event {
		case domain.EventFountain:
			return domain.TileFountain
		case domain.EventAltar:
			return domain.TileAltar
		default:
			return domain.TileShrine
		}
	}
	return domain.TileFloor
}
