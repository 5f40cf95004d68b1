package systems

import (
	"math/rand"

	"github.com/g1tyx/idle-dungeon-runner/internal/domain"
)

// TickEffects продвигает таймеры эффектов агента на dt и применяет
// периодический урон. Истекшие эффекты (таймер <= 0) удаляются.
func TickEffects(a *domain.Agent, dt float64) {
	if len(a.Effects) == 0 {
		return
	}

	kept := a.Effects[:0]
	for _, e := range a.Effects {
		if e.TickFraction > 0 && a.Alive() {
			dot := int(float64(a.Stats.MaxHP) * e.TickFraction * dt)
			if dot > 0 {
				a.TakeDamage(dot)
			}
		}

		e.Remaining -= dt
		if e.Remaining > 0 {
			kept = append(kept, e)
		}
	}
	a.Effects = kept
}

// Stunned — подавлена ли атака агента оглушением.
func Stunned(a *domain.Agent) bool {
	return a.HasEffect(domain.EffectStun)
}

// FrozenSkip — пропускает ли замороженный агент действие на этом тике.
// Заморозка моделируется 50% шансом пропуска, не растяжением таймеров.
func FrozenSkip(a *domain.Agent, rng *rand.Rand) bool {
	return a.HasEffect(domain.EffectFreeze) && rng.Float64() < 0.5
}
