package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/g1tyx/idle-dungeon-runner/internal/domain"
	"github.com/g1tyx/idle-dungeon-runner/pkg/dungeon"
)

const (
	minSpawnDistance = 8  // монстры не появляются вплотную к игроку
	spawnAttempts    = 40 // после стольких промахов дистанция игнорируется
	eliteChance      = 0.12
)

// spawnWave заселяет этаж волной монстров.
// Каждый 5-й этаж добавляет мини-босса, каждый 10-й — босса.
func (g *Game) spawnWave() {
	rs := g.rs
	count := 3 + rs.Floor/2
	if count > 10 {
		count = 10
	}

	for i := 0; i < count; i++ {
		t := dungeon.PickTemplate(rs.Floor, rs.Rng)
		m := g.spawnAt(t)
		if m == nil {
			continue
		}
		if rs.Rng.Float64() < eliteChance {
			promoteElite(m)
		}
		rs.Monsters = append(rs.Monsters, m)
	}

	if rs.Floor%10 == 0 {
		if boss := g.spawnAt(dungeon.DungeonLord); boss != nil {
			boss.IsBoss = true
			rs.Monsters = append(rs.Monsters, boss)
			g.addLog(fmt.Sprintf("%s выходит из тени!", boss.Name), "COMBAT")
		}
	} else if rs.Floor%5 == 0 {
		if mini := g.spawnAt(dungeon.StoneGolem); mini != nil {
			mini.IsMiniBoss = true
			rs.Monsters = append(rs.Monsters, mini)
			g.addLog(fmt.Sprintf("%s преграждает путь", mini.Name), "COMBAT")
		}
	}

	logrus.WithFields(logrus.Fields{
		"floor":    rs.Floor,
		"monsters": len(rs.Monsters),
	}).Debug("Волна монстров размещена")
}

// spawnAt создает монстра на свободной клетке подальше от игрока.
// nil при полном исчерпании попыток (крошечный этаж).
func (g *Game) spawnAt(t dungeon.MonsterTemplate) *domain.Agent {
	rs := g.rs

	var fallback *domain.Position
	for i := 0; i < spawnAttempts; i++ {
		pos, ok := rs.RandomWalkableCell()
		if !ok {
			return nil
		}
		if rs.IsOccupied(pos.X, pos.Y) {
			continue
		}
		if fallback == nil {
			p := pos
			fallback = &p
		}
		if rs.Player.Pos.ManhattanTo(pos) >= minSpawnDistance {
			return t.SpawnMonster(pos, rs.Floor, rs.Rng)
		}
	}
	if fallback != nil {
		return t.SpawnMonster(*fallback, rs.Floor, rs.Rng)
	}
	return nil
}

// promoteElite усиливает монстра до элитного.
func promoteElite(m *domain.Agent) {
	m.IsElite = true
	m.Name = "Элитный " + m.Name
	m.Stats.MaxHP = m.Stats.MaxHP * 3 / 2
	m.Stats.Attack = m.Stats.Attack * 3 / 2
	m.HP = m.Stats.MaxHP
}
