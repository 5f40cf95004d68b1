package domain

import "math/rand"

// Phase — фаза прогрессии этажа.
type Phase uint8

const (
	PhaseCombat Phase = iota
	PhaseClearing
	PhaseExitOpen
	PhaseAdvancing
)

func (p Phase) String() string {
	switch p {
	case PhaseCombat:
		return "combat"
	case PhaseClearing:
		return "clearing"
	case PhaseExitOpen:
		return "exit_open"
	case PhaseAdvancing:
		return "advancing"
	}
	return "unknown"
}

// RunState — все изменяемое состояние одного забега.
// Им владеет цикл симуляции; подсистемы получают его явно,
// никаких глобальных синглтонов.
type RunState struct {
	Floor   int
	Grid    *Grid
	Player  *Player
	Monsters []*Agent
	Objects  []*PlacedObject

	Phase   Phase
	ExitPos *Position

	Clock      float64 // игровое время забега, сек
	SpawnTimer float64 // отложенный спавн монстров нового этажа

	Rng *rand.Rand
}

// AliveMonsters — число живых монстров.
func (rs *RunState) AliveMonsters() int {
	n := 0
	for _, m := range rs.Monsters {
		if m.Alive() {
			n++
		}
	}
	return n
}

// MonsterAt возвращает живого монстра в клетке, если есть.
func (rs *RunState) MonsterAt(x, y int) *Agent {
	for _, m := range rs.Monsters {
		if m.Alive() && m.Pos.X == x && m.Pos.Y == y {
			return m
		}
	}
	return nil
}

// ObjectAt возвращает непоглощенный объект в клетке, если есть.
func (rs *RunState) ObjectAt(x, y int) *PlacedObject {
	for _, o := range rs.Objects {
		if !o.Consumed && o.Pos.X == x && o.Pos.Y == y {
			return o
		}
	}
	return nil
}

// IsOccupied — занята ли клетка живым агентом или непоглощенным объектом.
// Используется при размещении, не при движении: по объектным клеткам ходят.
func (rs *RunState) IsOccupied(x, y int) bool {
	if rs.Player != nil && rs.Player.Alive() && rs.Player.Pos.X == x && rs.Player.Pos.Y == y {
		return true
	}
	if rs.MonsterAt(x, y) != nil {
		return true
	}
	return rs.ObjectAt(x, y) != nil
}

// IsBlocked — непроходима ли клетка для шага агента:
// стена, граница или другой живой агент.
func (rs *RunState) IsBlocked(x, y int, self *Agent) bool {
	if !rs.Grid.IsWalkable(x, y) {
		return true
	}
	if rs.Player != nil && rs.Player.Alive() && &rs.Player.Agent != self &&
		rs.Player.Pos.X == x && rs.Player.Pos.Y == y {
		return true
	}
	if m := rs.MonsterAt(x, y); m != nil && m != self {
		return true
	}
	return false
}

// RemoveDeadMonsters выметает погибших из списка (swap with last).
func (rs *RunState) RemoveDeadMonsters() {
	for i := 0; i < len(rs.Monsters); {
		if rs.Monsters[i].Dead {
			last := len(rs.Monsters) - 1
			rs.Monsters[i] = rs.Monsters[last]
			rs.Monsters[last] = nil
			rs.Monsters = rs.Monsters[:last]
			continue
		}
		i++
	}
}

// RandomWalkableCell возвращает случайную проходимую клетку.
// ok=false, если пола нет вовсе (дегенеративный случай).
func (rs *RunState) RandomWalkableCell() (Position, bool) {
	cells := rs.Grid.FloorCells()
	if len(cells) == 0 {
		return Position{}, false
	}
	return cells[rs.Rng.Intn(len(cells))], true
}
