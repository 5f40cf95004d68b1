package systems

import (
	"github.com/g1tyx/idle-dungeon-runner/internal/domain"
)

// TargetKind — вид цели автономного игрока.
type TargetKind uint8

const (
	TargetNone TargetKind = iota
	TargetMonster
	TargetChest
	TargetExit
)

// PlayerTarget — выбранная на тик цель игрока.
type PlayerTarget struct {
	Kind    TargetKind
	Monster *domain.Agent
	Object  *domain.PlacedObject
	Pos     domain.Position
}

// SelectPlayerTarget выбирает цель для автономного игрока:
// открытый выход важнее всего; монстр в 2 клетках перебивает сундуки;
// иначе ближайший неоткрытый сундук, потом ближайший живой монстр.
func SelectPlayerTarget(rs *domain.RunState) PlayerTarget {
	if rs.Phase == domain.PhaseExitOpen && rs.ExitPos != nil {
		return PlayerTarget{Kind: TargetExit, Pos: *rs.ExitPos}
	}

	nearest := nearestMonster(rs)
	if nearest != nil && rs.Player.Pos.ManhattanTo(nearest.Pos) <= 2 {
		return PlayerTarget{Kind: TargetMonster, Monster: nearest, Pos: nearest.Pos}
	}

	if chest := nearestChest(rs); chest != nil {
		return PlayerTarget{Kind: TargetChest, Object: chest, Pos: chest.Pos}
	}

	if nearest != nil {
		return PlayerTarget{Kind: TargetMonster, Monster: nearest, Pos: nearest.Pos}
	}

	return PlayerTarget{Kind: TargetNone}
}

// MonstersInRange возвращает живых монстров в радиусе атаки,
// ближние раньше (простой отбор, монстров на этаже немного).
func MonstersInRange(rs *domain.RunState, rangeTiles, limit int) []*domain.Agent {
	var inRange []*domain.Agent
	for _, m := range rs.Monsters {
		if m.Alive() && rs.Player.Pos.ManhattanTo(m.Pos) <= rangeTiles {
			inRange = append(inRange, m)
		}
	}

	// Сортировка вставками по дистанции
	for i := 1; i < len(inRange); i++ {
		for j := i; j > 0; j-- {
			if rs.Player.Pos.ManhattanTo(inRange[j].Pos) < rs.Player.Pos.ManhattanTo(inRange[j-1].Pos) {
				inRange[j], inRange[j-1] = inRange[j-1], inRange[j]
			}
		}
	}

	if limit > 0 && len(inRange) > limit {
		inRange = inRange[:limit]
	}
	return inRange
}

func nearestMonster(rs *domain.RunState) *domain.Agent {
	var best *domain.Agent
	bestDist := 1 << 30
	for _, m := range rs.Monsters {
		if !m.Alive() {
			continue
		}
		if d := rs.Player.Pos.ManhattanTo(m.Pos); d < bestDist {
			bestDist = d
			best = m
		}
	}
	return best
}

func nearestChest(rs *domain.RunState) *domain.PlacedObject {
	var best *domain.PlacedObject
	bestDist := 1 << 30
	for _, o := range rs.Objects {
		if o.Kind != domain.ObjectChest || o.Opened || o.Consumed {
			continue
		}
		if d := rs.Player.Pos.ManhattanTo(o.Pos); d < bestDist {
			bestDist = d
			best = o
		}
	}
	return best
}
