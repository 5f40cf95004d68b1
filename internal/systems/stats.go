package systems

import (
	"math"

	"github.com/g1tyx/idle-dungeon-runner/internal/domain"
)

// ComputeStats сворачивает упорядоченный список стадий модификаторов
// над базовым блоком. Порядок стадий значим: процентные стадии
// компаундятся. Функция чистая; при любом изменении источников статы
// пересчитываются целиком, а не патчатся по месту.
//
// Клампы на выходе: Evasion [0,75], CritChance [0,100];
// MaxHP/Attack/Defense — пол до целого; Speed — 2 знака.
func ComputeStats(base domain.StatBlock, stages []domain.ModifierStage) domain.StatBlock {
	maxHP := float64(base.MaxHP)
	attack := float64(base.Attack)
	defense := float64(base.Defense)
	speed := base.Speed
	evasion := base.Evasion
	critChance := base.CritChance
	critDamage := base.CritDamage

	for _, s := range stages {
		switch s.Op {
		case domain.ModifierMul:
			maxHP *= 1 + s.MaxHP
			attack *= 1 + s.Attack
			defense *= 1 + s.Defense
			speed *= 1 + s.Speed
			evasion *= 1 + s.Evasion
			critChance *= 1 + s.CritChance
			critDamage *= 1 + s.CritDamage
		case domain.ModifierAdd:
			maxHP += s.MaxHP
			attack += s.Attack
			defense += s.Defense
			speed += s.Speed
			evasion += s.Evasion
			critChance += s.CritChance
			critDamage += s.CritDamage
		}
	}

	return domain.StatBlock{
		MaxHP:      int(math.Floor(maxHP)),
		Attack:     int(math.Floor(attack)),
		Defense:    int(math.Floor(defense)),
		Speed:      math.Round(speed*100) / 100,
		Evasion:    clampFloat(evasion, 0, domain.MaxEvasion),
		CritChance: clampFloat(critChance, 0, domain.MaxCritChance),
		CritDamage: critDamage,
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
