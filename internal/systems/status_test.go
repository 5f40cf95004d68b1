package systems

import (
	"math/rand"
	"testing"

	"github.com/g1tyx/idle-dungeon-runner/internal/domain"
)

func TestTickEffectsPoisonDamage(t *testing.T) {
	a := makeAgent("hero", domain.StatBlock{MaxHP: 100, CritDamage: 150})
	a.ApplyEffect(domain.Poison(5.0, 0.02))

	// 100 * 0.02 * 1.0 = 2 урона за секунду
	TickEffects(a, 1.0)
	if a.HP != 98 {
		t.Errorf("Expected HP 98 after poison tick, got %d", a.HP)
	}
}

func TestTickEffectsExpiry(t *testing.T) {
	a := makeAgent("hero", domain.StatBlock{MaxHP: 100, CritDamage: 150})
	a.ApplyEffect(domain.Stun(1.5))

	TickEffects(a, 1.0)
	if !a.HasEffect(domain.EffectStun) {
		t.Fatal("Stun should survive the first second")
	}

	TickEffects(a, 1.0)
	if a.HasEffect(domain.EffectStun) {
		t.Error("Stun should expire after 2 seconds of ticking")
	}
	if len(a.Effects) != 0 {
		t.Errorf("Expired effects should be removed, got %d", len(a.Effects))
	}
}

func TestTickEffectsTinyDtDealsNoDamage(t *testing.T) {
	a := makeAgent("hero", domain.StatBlock{MaxHP: 100, CritDamage: 150})
	a.ApplyEffect(domain.Burn(3.0, 0.04))

	// floor(100 * 0.04 * 0.1) = 0: микротик не режет HP
	TickEffects(a, 0.1)
	if a.HP != 100 {
		t.Errorf("Expected no damage on tiny dt, got HP %d", a.HP)
	}
}

func TestStunned(t *testing.T) {
	a := makeAgent("orc", domain.StatBlock{MaxHP: 50, CritDamage: 150})
	if Stunned(a) {
		t.Error("Fresh agent should not be stunned")
	}
	a.ApplyEffect(domain.Stun(2.0))
	if !Stunned(a) {
		t.Error("Agent with stun effect should be stunned")
	}
}

func TestFrozenSkip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	warm := makeAgent("orc", domain.StatBlock{MaxHP: 50, CritDamage: 150})
	for i := 0; i < 50; i++ {
		if FrozenSkip(warm, rng) {
			t.Fatal("Unfrozen agent should never skip")
		}
	}

	frozen := makeAgent("orc", domain.StatBlock{MaxHP: 50, CritDamage: 150})
	frozen.ApplyEffect(domain.Freeze(100))

	skips := 0
	for i := 0; i < 1000; i++ {
		if FrozenSkip(frozen, rng) {
			skips++
		}
	}
	// 50% с большим запасом на дисперсию
	if skips < 400 || skips > 600 {
		t.Errorf("Expected roughly half skips, got %d/1000", skips)
	}
}
