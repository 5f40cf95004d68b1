package systems

import (
	"math/rand"
	"testing"

	"github.com/g1tyx/idle-dungeon-runner/internal/domain"
)

func makeRunState() *domain.RunState {
	return &domain.RunState{
		Floor: 1,
		Grid:  openGrid(30, 30),
		Player: &domain.Player{
			Agent: domain.Agent{
				ID:    "player",
				Pos:   domain.Position{X: 5, Y: 5},
				Stats: domain.StatBlock{MaxHP: 100, Attack: 10, Speed: 1.0, CritDamage: 150},
				HP:    100,
			},
			Class: domain.ClassWarrior,
		},
		Phase: domain.PhaseCombat,
		Rng:   rand.New(rand.NewSource(1)),
	}
}

func TestSelectPlayerTargetExitFirst(t *testing.T) {
	rs := makeRunState()
	exit := domain.Position{X: 20, Y: 20}
	rs.ExitPos = &exit
	rs.Phase = domain.PhaseExitOpen
	rs.Monsters = append(rs.Monsters, makeAgent("slime", domain.StatBlock{MaxHP: 10, CritDamage: 150}))
	rs.Monsters[0].Pos = domain.Position{X: 6, Y: 5}

	target := SelectPlayerTarget(rs)
	if target.Kind != TargetExit {
		t.Fatalf("Open exit should win over everything, got kind %d", target.Kind)
	}
	if target.Pos != exit {
		t.Errorf("Expected exit position %v, got %v", exit, target.Pos)
	}
}

func TestSelectPlayerTargetCloseMonsterBeatsChest(t *testing.T) {
	rs := makeRunState()
	m := makeAgent("slime", domain.StatBlock{MaxHP: 10, CritDamage: 150})
	m.Pos = domain.Position{X: 6, Y: 5} // дистанция 1
	rs.Monsters = append(rs.Monsters, m)
	rs.Objects = append(rs.Objects, &domain.PlacedObject{
		Kind: domain.ObjectChest,
		Pos:  domain.Position{X: 5, Y: 6}, // тоже рядом
	})

	target := SelectPlayerTarget(rs)
	if target.Kind != TargetMonster {
		t.Fatalf("Monster within 2 cells should beat the chest, got kind %d", target.Kind)
	}
}

func TestSelectPlayerTargetChestBeatsFarMonster(t *testing.T) {
	rs := makeRunState()
	m := makeAgent("slime", domain.StatBlock{MaxHP: 10, CritDamage: 150})
	m.Pos = domain.Position{X: 25, Y: 25}
	rs.Monsters = append(rs.Monsters, m)
	rs.Objects = append(rs.Objects, &domain.PlacedObject{
		Kind: domain.ObjectChest,
		Pos:  domain.Position{X: 8, Y: 5},
	})

	target := SelectPlayerTarget(rs)
	if target.Kind != TargetChest {
		t.Fatalf("Unopened chest should beat a distant monster, got kind %d", target.Kind)
	}
}

func TestSelectPlayerTargetIgnoresOpenedChest(t *testing.T) {
	rs := makeRunState()
	m := makeAgent("slime", domain.StatBlock{MaxHP: 10, CritDamage: 150})
	m.Pos = domain.Position{X: 25, Y: 25}
	rs.Monsters = append(rs.Monsters, m)
	rs.Objects = append(rs.Objects, &domain.PlacedObject{
		Kind:   domain.ObjectChest,
		Pos:    domain.Position{X: 8, Y: 5},
		Opened: true,
	})

	target := SelectPlayerTarget(rs)
	if target.Kind != TargetMonster {
		t.Fatalf("Opened chest should be skipped, got kind %d", target.Kind)
	}
}

func TestSelectPlayerTargetNone(t *testing.T) {
	rs := makeRunState()
	target := SelectPlayerTarget(rs)
	if target.Kind != TargetNone {
		t.Fatalf("Empty floor should yield no target, got kind %d", target.Kind)
	}
}

func TestMonstersInRangeSortedAndLimited(t *testing.T) {
	rs := makeRunState()
	far := makeAgent("far", domain.StatBlock{MaxHP: 10, CritDamage: 150})
	far.Pos = domain.Position{X: 7, Y: 5} // дистанция 2
	near := makeAgent("near", domain.StatBlock{MaxHP: 10, CritDamage: 150})
	near.Pos = domain.Position{X: 6, Y: 5} // дистанция 1
	out := makeAgent("out", domain.StatBlock{MaxHP: 10, CritDamage: 150})
	out.Pos = domain.Position{X: 20, Y: 20}
	rs.Monsters = append(rs.Monsters, far, near, out)

	got := MonstersInRange(rs, 2, 0)
	if len(got) != 2 {
		t.Fatalf("Expected 2 monsters in range 2, got %d", len(got))
	}
	if got[0].ID != "near" || got[1].ID != "far" {
		t.Errorf("Expected nearest-first order, got [%s, %s]", got[0].ID, got[1].ID)
	}

	limited := MonstersInRange(rs, 2, 1)
	if len(limited) != 1 || limited[0].ID != "near" {
		t.Errorf("Limit 1 should keep only the nearest monster")
	}
}
