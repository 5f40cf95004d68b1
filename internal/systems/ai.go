package systems

import (
	"math/rand"

	"github.com/g1tyx/idle-dungeon-runner/internal/domain"
)

// UpdateMonster продвигает конечный автомат монстра на dt.
// Переходы управляются только манхэттенской дистанцией до игрока:
// <=1 — атака, <=ChaseRadius — преследование, дальше — патруль.
func UpdateMonster(rs *domain.RunState, m *domain.Agent, dt float64, rng *rand.Rand) {
	if !m.Alive() || rs.Player == nil || !rs.Player.Alive() {
		return
	}

	tickAbility(rs, m, dt)

	if FrozenSkip(m, rng) {
		return
	}

	dist := m.Pos.ManhattanTo(rs.Player.Pos)
	switch {
	case dist <= 1:
		m.State = domain.StateAttack
	case dist <= domain.ChaseRadius:
		m.State = domain.StateChase
	default:
		m.State = domain.StatePatrol
	}

	switch m.State {
	case domain.StateAttack:
		attackPlayer(rs, m, dt, rng)
	case domain.StateChase:
		chasePlayer(rs, m, dt)
	case domain.StatePatrol:
		patrol(rs, m, dt)
	}
}

// attackPlayer — атака с темпом AttackCadence, нормированным скоростью.
func attackPlayer(rs *domain.RunState, m *domain.Agent, dt float64, rng *rand.Rand) {
	m.AttackTimer += dt * m.Stats.Speed
	if m.AttackTimer < domain.AttackCadence {
		return
	}
	m.AttackTimer = 0

	// Оглушение подавляет атаку полностью, но таймер не копится впрок
	if Stunned(m) {
		return
	}

	result := ResolveAttack(m, &rs.Player.Agent, rng)

	// Босс поджигает при попадании
	if m.IsBoss && !result.Evaded && rng.Float64() < 0.25 {
		rs.Player.ApplyEffect(domain.Burn(3.0, 0.04))
	}
}

// chasePlayer — шаг к игроку раз в MoveCadence/speed.
func chasePlayer(rs *domain.RunState, m *domain.Agent, dt float64) {
	m.MoveTimer += dt * m.Stats.Speed
	if m.MoveTimer < domain.MoveCadence {
		return
	}
	m.MoveTimer = 0
	StepToward(rs, m, rs.Player.Pos)
}

// patrol — движение к кэшированной случайной точке,
// по прибытии цель переигрывается.
func patrol(rs *domain.RunState, m *domain.Agent, dt float64) {
	m.MoveTimer += dt * m.Stats.Speed
	if m.MoveTimer < domain.MoveCadence {
		return
	}
	m.MoveTimer = 0

	if m.PatrolTarget == nil || m.Pos == *m.PatrolTarget {
		if target, ok := rs.RandomWalkableCell(); ok {
			m.PatrolTarget = &target
			m.Path = nil
		} else {
			return
		}
	}
	StepToward(rs, m, *m.PatrolTarget)
}

// tickAbility — способности особых монстров.
// Мини-босс периодически накрывается щитом.
func tickAbility(rs *domain.RunState, m *domain.Agent, dt float64) {
	if !m.IsMiniBoss {
		return
	}
	m.AbilityTimer += dt
	if m.AbilityTimer >= 10 {
		m.AbilityTimer = 0
		m.Shield += m.Stats.MaxHP / 5
	}
}
