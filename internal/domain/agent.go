package domain

// AIState — явное состояние конечного автомата монстра.
type AIState uint8

const (
	StatePatrol AIState = iota
	StateChase
	StateAttack
)

func (s AIState) String() string {
	switch s {
	case StatePatrol:
		return "patrol"
	case StateChase:
		return "chase"
	case StateAttack:
		return "attack"
	}
	return "unknown"
}

// Agent — игрок или монстр: позиция, производные статы и
// бухгалтерия ИИ. Монстрами владеет список активного этажа,
// игрок живет весь забег.
type Agent struct {
	ID     string
	Name   string
	Symbol string
	Pos    Position

	Stats  StatBlock
	HP     int
	Shield int // поглощает урон раньше HP

	Effects []StatusEffect

	// Бухгалтерия движения/атаки
	State        AIState
	MoveTimer    float64
	AttackTimer  float64
	Path         []Position // кэш пути до цели
	PatrolTarget *Position  // цель патруля, переигрывается по прибытии

	// Ролевые флаги
	IsBoss     bool
	IsElite    bool
	IsMiniBoss bool

	AbilityTimer float64 // кулдаун способности босса/мини-босса

	Dead bool
}

// Alive — жив ли агент.
func (a *Agent) Alive() bool {
	return !a.Dead
}

// TakeDamage наносит урон: сначала съедается щит, потом HP.
// Возвращает true, если агент погиб.
func (a *Agent) TakeDamage(amount int) bool {
	if a.Dead || amount <= 0 {
		return false
	}

	if a.Shield > 0 {
		if amount <= a.Shield {
			a.Shield -= amount
			return false
		}
		amount -= a.Shield
		a.Shield = 0
	}

	a.HP -= amount
	if a.HP <= 0 {
		a.HP = 0
		a.Dead = true
		return true
	}
	return false
}

// Heal лечит агента, не выше MaxHP. Трупы не лечим.
func (a *Agent) Heal(amount int) {
	if a.Dead || amount <= 0 {
		return
	}
	a.HP += amount
	if a.HP > a.Stats.MaxHP {
		a.HP = a.Stats.MaxHP
	}
}

// ApplyEffect накладывает эффект. Повторное наложение того же вида
// обновляет таймер существующего экземпляра, второго не появляется.
func (a *Agent) ApplyEffect(e StatusEffect) {
	for i := range a.Effects {
		if a.Effects[i].Kind == e.Kind {
			a.Effects[i].Remaining = e.Remaining
			a.Effects[i].TickFraction = e.TickFraction
			a.Effects[i].SpeedMult = e.SpeedMult
			return
		}
	}
	a.Effects = append(a.Effects, e)
}

// HasEffect — активен ли эффект данного вида.
func (a *Agent) HasEffect(kind EffectKind) bool {
	for i := range a.Effects {
		if a.Effects[i].Kind == kind {
			return true
		}
	}
	return false
}
