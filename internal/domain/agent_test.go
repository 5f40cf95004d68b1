package domain

import "testing"

func TestTakeDamageShieldFirst(t *testing.T) {
	a := &Agent{Stats: StatBlock{MaxHP: 100}, HP: 100, Shield: 10}

	died := a.TakeDamage(4)
	if died {
		t.Fatal("Agent should survive a shielded hit")
	}
	if a.Shield != 6 || a.HP != 100 {
		t.Errorf("Expected shield 6 / HP 100, got %d / %d", a.Shield, a.HP)
	}

	a.TakeDamage(10)
	if a.Shield != 0 {
		t.Errorf("Shield should be drained, got %d", a.Shield)
	}
	if a.HP != 96 {
		t.Errorf("Overflow should hit HP: expected 96, got %d", a.HP)
	}
}

func TestTakeDamageKillClamps(t *testing.T) {
	a := &Agent{Stats: StatBlock{MaxHP: 10}, HP: 10}

	died := a.TakeDamage(50)
	if !died {
		t.Fatal("Lethal damage should report death")
	}
	if a.HP != 0 {
		t.Errorf("HP should clamp to 0, got %d", a.HP)
	}
	if a.Alive() {
		t.Error("Dead agent reports alive")
	}

	// Труп не получает урон повторно
	if a.TakeDamage(10) {
		t.Error("Corpse should not die twice")
	}
}

func TestHealCapsAtMax(t *testing.T) {
	a := &Agent{Stats: StatBlock{MaxHP: 100}, HP: 50}
	a.Heal(200)
	if a.HP != 100 {
		t.Errorf("Heal should cap at MaxHP, got %d", a.HP)
	}

	a.Dead = true
	a.HP = 0
	a.Heal(50)
	if a.HP != 0 {
		t.Error("Dead agents should not be healed")
	}
}

func TestApplyEffectRefreshesNotStacks(t *testing.T) {
	a := &Agent{Stats: StatBlock{MaxHP: 100}, HP: 100}

	a.ApplyEffect(Poison(2.0, 0.02))
	a.ApplyEffect(Poison(5.0, 0.03))

	if len(a.Effects) != 1 {
		t.Fatalf("Same-kind effect should refresh, got %d instances", len(a.Effects))
	}
	if a.Effects[0].Remaining != 5.0 {
		t.Errorf("Expected refreshed duration 5.0, got %f", a.Effects[0].Remaining)
	}
	if a.Effects[0].TickFraction != 0.03 {
		t.Errorf("Expected refreshed tick fraction 0.03, got %f", a.Effects[0].TickFraction)
	}

	// Разные виды сосуществуют
	a.ApplyEffect(Stun(1.0))
	if len(a.Effects) != 2 {
		t.Errorf("Different kinds should coexist, got %d", len(a.Effects))
	}
}

func TestPlayerBuffsRefreshAndExpire(t *testing.T) {
	p := &Player{}

	p.AddBuff(TimedBuff{Stage: ModifierStage{Name: "shrine", Op: ModifierMul, Attack: 0.1}, Remaining: 2})
	p.AddBuff(TimedBuff{Stage: ModifierStage{Name: "shrine", Op: ModifierMul, Attack: 0.2}, Remaining: 5})

	if len(p.Buffs) != 1 {
		t.Fatalf("Same-name buff should replace, got %d", len(p.Buffs))
	}
	if p.Buffs[0].Stage.Attack != 0.2 {
		t.Errorf("Expected replaced buff value 0.2, got %f", p.Buffs[0].Stage.Attack)
	}

	if expired := p.TickBuffs(1.0); expired {
		t.Error("Nothing should expire after 1 second")
	}
	if expired := p.TickBuffs(10.0); !expired {
		t.Error("Buff should expire and request a stat recompute")
	}
	if len(p.Buffs) != 0 {
		t.Errorf("Expired buffs should be removed, got %d", len(p.Buffs))
	}
}

func TestRemoveDeadMonsters(t *testing.T) {
	rs := &RunState{
		Monsters: []*Agent{
			{ID: "a"},
			{ID: "b", Dead: true},
			{ID: "c"},
			{ID: "d", Dead: true},
		},
	}

	rs.RemoveDeadMonsters()

	if len(rs.Monsters) != 2 {
		t.Fatalf("Expected 2 survivors, got %d", len(rs.Monsters))
	}
	for _, m := range rs.Monsters {
		if m.Dead {
			t.Errorf("Dead monster %s survived the sweep", m.ID)
		}
	}
}
