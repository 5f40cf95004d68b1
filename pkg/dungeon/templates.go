package dungeon

import (
	"math/rand"

	"github.com/g1tyx/idle-dungeon-runner/internal/domain"
	"github.com/g1tyx/idle-dungeon-runner/pkg/utils"
)

// MonsterTemplate определяет шаблон монстра. Статы базовые,
// масштабирование по этажу делает SpawnMonster.
type MonsterTemplate struct {
	Name     string
	Symbol   string
	Stats    domain.StatBlock
	MinFloor int // с какого этажа встречается
}

// SpawnMonster создает монстра из шаблона с масштабированием по этажу.
func (t MonsterTemplate) SpawnMonster(pos domain.Position, floor int, rng *rand.Rand) *domain.Agent {
	stats := t.Stats
	stats.MaxHP += floor * 6
	stats.Attack += floor
	stats.Defense += floor / 2

	return &domain.Agent{
		ID:     utils.GenerateDeterministicID(rng, "m_"),
		Name:   t.Name,
		Symbol: t.Symbol,
		Pos:    pos,
		Stats:  stats,
		HP:     stats.MaxHP,
		State:  domain.StatePatrol,
	}
}

// --- ОБЫЧНЫЕ МОНСТРЫ ---

var Slime = MonsterTemplate{
	Name:   "Слизь",
	Symbol: "s",
	Stats: domain.StatBlock{
		MaxHP: 18, Attack: 3, Defense: 1,
		Speed: 0.7, Evasion: 0, CritChance: 0, CritDamage: 150,
	},
}

var Skeleton = MonsterTemplate{
	Name:   "Скелет",
	Symbol: "k",
	Stats: domain.StatBlock{
		MaxHP: 24, Attack: 5, Defense: 2,
		Speed: 1.0, Evasion: 5, CritChance: 5, CritDamage: 150,
	},
}

var Orc = MonsterTemplate{
	Name:   "Свирепый Орк",
	Symbol: "O",
	Stats: domain.StatBlock{
		MaxHP: 40, Attack: 8, Defense: 4,
		Speed: 0.9, Evasion: 2, CritChance: 8, CritDamage: 160,
	},
	MinFloor: 3,
}

var Wraith = MonsterTemplate{
	Name:   "Призрак",
	Symbol: "W",
	Stats: domain.StatBlock{
		MaxHP: 30, Attack: 7, Defense: 1,
		Speed: 1.3, Evasion: 20, CritChance: 10, CritDamage: 150,
	},
	MinFloor: 6,
}

// --- ОСОБЫЕ ---

var StoneGolem = MonsterTemplate{
	Name:   "Каменный Голем",
	Symbol: "G",
	Stats: domain.StatBlock{
		MaxHP: 90, Attack: 12, Defense: 10,
		Speed: 0.6, Evasion: 0, CritChance: 0, CritDamage: 150,
	},
}

var DungeonLord = MonsterTemplate{
	Name:   "Владыка Подземелья",
	Symbol: "D",
	Stats: domain.StatBlock{
		MaxHP: 160, Attack: 16, Defense: 8,
		Speed: 0.8, Evasion: 5, CritChance: 15, CritDamage: 180,
	},
}

// MonsterTemplates — пул обычных монстров для спавна.
var MonsterTemplates = []MonsterTemplate{Slime, Skeleton, Orc, Wraith}

// PickTemplate выбирает случайный шаблон, доступный на этаже.
func PickTemplate(floor int, rng *rand.Rand) MonsterTemplate {
	var pool []MonsterTemplate
	for _, t := range MonsterTemplates {
		if floor >= t.MinFloor {
			pool = append(pool, t)
		}
	}
	if len(pool) == 0 {
		return Slime
	}
	return pool[rng.Intn(len(pool))]
}
