package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/g1tyx/idle-dungeon-runner/internal/domain"
)

const exitSamples = 50

// updateProgression двигает этаж по фазам:
// combat -> clearing -> exit_open -> advancing -> (новый этаж, combat).
func (g *Game) updateProgression() {
	rs := g.rs

	switch rs.Phase {
	case domain.PhaseCombat:
		if rs.SpawnTimer <= 0 && rs.AliveMonsters() == 0 {
			rs.Phase = domain.PhaseClearing
			g.addLog("Этаж зачищен. Осматриваем комнаты...", "INFO")
		}

	case domain.PhaseClearing:
		// Задерживаемся, пока остались несобранные сундуки:
		// автономный игрок сам дойдет до них в боевой логике
		if g.unopenedChests() == 0 {
			g.openExit()
		}

	case domain.PhaseExitOpen:
		if rs.ExitPos != nil && rs.Player.Pos == *rs.ExitPos {
			rs.Phase = domain.PhaseAdvancing
		}

	case domain.PhaseAdvancing:
		g.advanceFloor()
	}
}

func (g *Game) unopenedChests() int {
	n := 0
	for _, o := range g.rs.Objects {
		if o.Kind == domain.ObjectChest && !o.Opened && !o.Consumed {
			n++
		}
	}
	return n
}

// openExit размещает выход в самой дальней от игрока точке
// из 50 случайных проходимых кандидатов.
func (g *Game) openExit() {
	rs := g.rs

	var best *domain.Position
	bestDist := -1
	for i := 0; i < exitSamples; i++ {
		pos, ok := rs.RandomWalkableCell()
		if !ok {
			break
		}
		if rs.IsOccupied(pos.X, pos.Y) {
			continue
		}
		if d := rs.Player.Pos.ManhattanTo(pos); d > bestDist {
			bestDist = d
			p := pos
			best = &p
		}
	}
	if best == nil {
		// Пол есть всегда после repair; в крайнем случае выход под ногами
		p := rs.Player.Pos
		best = &p
	}

	rs.ExitPos = best
	rs.Grid.SetTile(best.X, best.Y, domain.TileExit)
	rs.Phase = domain.PhaseExitOpen
	g.addLog("Проход на следующий этаж открыт", "INFO")
}

// advanceFloor — переход: новый этаж, частичное лечение,
// отложенный спавн новой волны.
func (g *Game) advanceFloor() {
	rs := g.rs
	p := rs.Player

	rs.Floor++
	p.Heal(p.Stats.MaxHP / 10)
	p.Effects = nil
	p.MoveTimer = 0
	p.AttackTimer = 0

	g.generateFloor()
	rs.SpawnTimer = domain.SpawnDelay

	logrus.WithFields(logrus.Fields{
		"floor": rs.Floor,
		"hp":    p.HP,
		"gold":  p.Gold,
	}).Info("Спуск на следующий этаж")
	g.addLog(fmt.Sprintf("Этаж %d. Тьма сгущается...", rs.Floor), "INFO")
}
