package systems

import (
	"math/rand"
	"testing"

	"github.com/g1tyx/idle-dungeon-runner/internal/domain"
)

func makeAgent(name string, stats domain.StatBlock) *domain.Agent {
	return &domain.Agent{
		ID:    name,
		Name:  name,
		Stats: stats,
		HP:    stats.MaxHP,
	}
}

func TestResolveAttackZeroDefense(t *testing.T) {
	attacker := makeAgent("hero", domain.StatBlock{Attack: 10, CritDamage: 150})
	defender := makeAgent("slime", domain.StatBlock{MaxHP: 100})

	rng := rand.New(rand.NewSource(1))
	result := ResolveAttack(attacker, defender, rng)

	// При нулевой защите урон равен атаке
	if result.Damage != 10 {
		t.Errorf("Expected 10 damage against zero defense, got %d", result.Damage)
	}
	if defender.HP != 90 {
		t.Errorf("Expected defender HP 90, got %d", defender.HP)
	}
}

func TestResolveAttackDefenseReduction(t *testing.T) {
	attacker := makeAgent("hero", domain.StatBlock{Attack: 50, CritDamage: 150})
	defender := makeAgent("golem", domain.StatBlock{MaxHP: 200, Defense: 100})

	rng := rand.New(rand.NewSource(1))
	result := ResolveAttack(attacker, defender, rng)

	// 50 * 100 / (100 + 100) = 25
	if result.Damage != 25 {
		t.Errorf("Expected 25 damage with 100 defense, got %d", result.Damage)
	}
}

func TestResolveAttackMinimumDamage(t *testing.T) {
	attacker := makeAgent("rat", domain.StatBlock{Attack: 1, CritDamage: 150})
	defender := makeAgent("tank", domain.StatBlock{MaxHP: 100, Defense: 1000})

	rng := rand.New(rand.NewSource(1))
	result := ResolveAttack(attacker, defender, rng)

	if result.Damage != 1 {
		t.Errorf("Expected minimum damage of 1, got %d", result.Damage)
	}
}

func TestResolveAttackGuaranteedEvasion(t *testing.T) {
	attacker := makeAgent("hero", domain.StatBlock{Attack: 10, CritDamage: 150})
	defender := makeAgent("ghost", domain.StatBlock{MaxHP: 50, Evasion: 100})

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		result := ResolveAttack(attacker, defender, rng)
		if !result.Evaded {
			t.Fatal("100 evasion should dodge every attack")
		}
		if result.Damage != 0 {
			t.Fatal("Evaded attack should deal no damage")
		}
	}
	if defender.HP != 50 {
		t.Errorf("Defender should be untouched, HP=%d", defender.HP)
	}
}

func TestResolveAttackGuaranteedCrit(t *testing.T) {
	attacker := makeAgent("assassin", domain.StatBlock{
		Attack: 10, CritChance: 100, CritDamage: 150,
	})
	defender := makeAgent("dummy", domain.StatBlock{MaxHP: 100})

	rng := rand.New(rand.NewSource(1))
	result := ResolveAttack(attacker, defender, rng)

	if !result.Crit {
		t.Fatal("100% crit chance should always crit")
	}
	// 10 * 1.5 = 15
	if result.Damage != 15 {
		t.Errorf("Expected crit damage 15, got %d", result.Damage)
	}
}

func TestResolveAttackScaledFalloff(t *testing.T) {
	attacker := makeAgent("mage", domain.StatBlock{Attack: 10, CritDamage: 150})
	defender := makeAgent("dummy", domain.StatBlock{MaxHP: 100})

	rng := rand.New(rand.NewSource(1))
	result := ResolveAttackScaled(attacker, defender, 0.7, rng)

	// floor(10 * 0.7) = 7
	if result.Damage != 7 {
		t.Errorf("Expected 7 damage at 0.7 scale, got %d", result.Damage)
	}
}

func TestResolveAttackShieldAbsorbsFirst(t *testing.T) {
	attacker := makeAgent("hero", domain.StatBlock{Attack: 10, CritDamage: 150})
	defender := makeAgent("golem", domain.StatBlock{MaxHP: 100})
	defender.Shield = 6

	rng := rand.New(rand.NewSource(1))
	ResolveAttack(attacker, defender, rng)

	if defender.Shield != 0 {
		t.Errorf("Shield should be consumed, got %d", defender.Shield)
	}
	// 10 урона: 6 в щит, 4 в HP
	if defender.HP != 96 {
		t.Errorf("Expected HP 96 after shield absorbed 6, got %d", defender.HP)
	}
}

func TestResolveAttackKill(t *testing.T) {
	attacker := makeAgent("hero", domain.StatBlock{Attack: 100, CritDamage: 150})
	defender := makeAgent("slime", domain.StatBlock{MaxHP: 10})

	rng := rand.New(rand.NewSource(1))
	result := ResolveAttack(attacker, defender, rng)

	if !result.Killed {
		t.Error("Expected the kill flag")
	}
	if defender.Alive() {
		t.Error("Defender should be dead")
	}
	if defender.HP != 0 {
		t.Errorf("Dead defender HP should clamp to 0, got %d", defender.HP)
	}
}
