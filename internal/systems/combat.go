package systems

import (
	"math/rand"

	"github.com/g1tyx/idle-dungeon-runner/internal/domain"
	"github.com/g1tyx/idle-dungeon-runner/pkg/logger"
	"github.com/sirupsen/logrus"
)

// AttackResult — итог одного удара.
type AttackResult struct {
	Damage int
	Evaded bool
	Crit   bool
	Killed bool
}

// ResolveAttack применяет один удар attacker -> defender.
func ResolveAttack(attacker, defender *domain.Agent, rng *rand.Rand) AttackResult {
	return ResolveAttackScaled(attacker, defender, 1.0, rng)
}

// ResolveAttackScaled — удар с множителем атаки (спад урона по
// дополнительным целям, усиленные навыки).
//
// Порядок строго такой: сначала независимая проверка уклонения
// (успех полностью отменяет атаку), потом raw = atk*100/(100+def),
// потом крит, пол, минимум 1. Щит поглощает урон раньше HP.
func ResolveAttackScaled(attacker, defender *domain.Agent, scale float64, rng *rand.Rand) AttackResult {
	if rng.Float64()*100 < defender.Stats.Evasion {
		logger.Log.WithFields(logrus.Fields{
			"component": "combat",
			"attacker":  attacker.ID,
			"defender":  defender.ID,
		}).Debug("Attack evaded")
		return AttackResult{Evaded: true}
	}

	raw := float64(attacker.Stats.Attack) * scale * 100 / (100 + float64(defender.Stats.Defense))

	crit := rng.Float64()*100 < attacker.Stats.CritChance
	if crit {
		raw *= attacker.Stats.CritDamage / 100
	}

	damage := int(raw)
	if damage < 1 {
		damage = 1
	}

	killed := defender.TakeDamage(damage)

	logger.Log.WithFields(logrus.Fields{
		"component": "combat",
		"attacker":  attacker.ID,
		"defender":  defender.ID,
		"damage":    damage,
		"crit":      crit,
		"killed":    killed,
	}).Debug("Attack resolved")

	return AttackResult{Damage: damage, Crit: crit, Killed: killed}
}
