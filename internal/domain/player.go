package domain

// ClassSpec — боевой профиль класса игрока.
type ClassSpec struct {
	Name        string
	AttackRange int     // манхэттенская дальность атаки
	MaxTargets  int     // сколько целей бьет за удар
	Falloff     float64 // геометрический спад урона на 2-ю и далее цель
}

// Предустановленные классы. Провайдер статов снаружи может дать свои.
var (
	ClassWarrior = ClassSpec{Name: "warrior", AttackRange: 1, MaxTargets: 1, Falloff: 1.0}
	ClassRanger  = ClassSpec{Name: "ranger", AttackRange: 3, MaxTargets: 1, Falloff: 1.0}
	ClassMage    = ClassSpec{Name: "mage", AttackRange: 2, MaxTargets: 3, Falloff: 0.7}
)

// TimedBuff — временная стадия модификаторов (святилище, алтарь, додж).
// По истечении статы пересчитываются заново целиком.
type TimedBuff struct {
	Stage     ModifierStage
	Remaining float64
}

// Player — единственный на забег агент игрока.
// Базовые статы и статические стадии приходят от внешнего провайдера,
// эффективный StatBlock собирает systems.ComputeStats.
type Player struct {
	Agent

	Class ClassSpec
	Level int
	XP    int
	Gold  int

	// Снимок для персистенции: ядро формата не знает.
	Equipment []string
	Inventory []string

	Base         StatBlock       // базовый блок до модификаторов
	StaticStages []ModifierStage // класс, реликвии, синергии и т.д.
	Buffs        []TimedBuff     // временные стадии забега

	// ReviveCharges — сколько раз экипировка перехватит смерть (раз на забег).
	ReviveCharges int

	Cooldowns map[string]float64 // кулдауны навыков, сек
	DodgeCD   float64
}

// ModifierStages собирает полный упорядоченный список стадий:
// статические стадии провайдера, затем временные бафы забега.
func (p *Player) ModifierStages() []ModifierStage {
	stages := make([]ModifierStage, 0, len(p.StaticStages)+len(p.Buffs))
	stages = append(stages, p.StaticStages...)
	for i := range p.Buffs {
		stages = append(stages, p.Buffs[i].Stage)
	}
	return stages
}

// AddBuff вешает временный баф. Одноименный баф обновляется, не стакается.
func (p *Player) AddBuff(b TimedBuff) {
	for i := range p.Buffs {
		if p.Buffs[i].Stage.Name == b.Stage.Name {
			p.Buffs[i] = b
			return
		}
	}
	p.Buffs = append(p.Buffs, b)
}

// TickBuffs продвигает таймеры бафов. Возвращает true, если хоть один
// истек и статы надо пересчитать.
func (p *Player) TickBuffs(dt float64) bool {
	expired := false
	kept := p.Buffs[:0]
	for _, b := range p.Buffs {
		b.Remaining -= dt
		if b.Remaining > 0 {
			kept = append(kept, b)
		} else {
			expired = true
		}
	}
	p.Buffs = kept
	return expired
}
