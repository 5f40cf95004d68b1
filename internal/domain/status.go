package domain

// EffectKind — вид статус-эффекта.
type EffectKind uint8

const (
	EffectPoison EffectKind = iota
	EffectBurn
	EffectFreeze
	EffectStun
)

// StatusEffect — таймерный эффект на агенте.
// На агенте живет не больше одного экземпляра каждого вида:
// повторное наложение обновляет длительность, а не стакается.
type StatusEffect struct {
	Kind         EffectKind
	Remaining    float64 // секунды игрового времени
	TickFraction float64 // доля MaxHP урона в секунду (яд/ожог)
	SpeedMult    float64 // множитель скорости (заморозка)
}

func (k EffectKind) String() string {
	switch k {
	case EffectPoison:
		return "poison"
	case EffectBurn:
		return "burn"
	case EffectFreeze:
		return "freeze"
	case EffectStun:
		return "stun"
	}
	return "unknown"
}

// Poison — стандартный яд: доля maxHP в секунду на duration секунд.
func Poison(duration, tickFraction float64) StatusEffect {
	return StatusEffect{Kind: EffectPoison, Remaining: duration, TickFraction: tickFraction}
}

// Burn — ожог, как яд, но обычно короче и злее.
func Burn(duration, tickFraction float64) StatusEffect {
	return StatusEffect{Kind: EffectBurn, Remaining: duration, TickFraction: tickFraction}
}

// Freeze — заморозка: 50% шанс пропустить действие на тик.
func Freeze(duration float64) StatusEffect {
	return StatusEffect{Kind: EffectFreeze, Remaining: duration, SpeedMult: 0.5}
}

// Stun — оглушение: атака подавляется полностью.
func Stun(duration float64) StatusEffect {
	return StatusEffect{Kind: EffectStun, Remaining: duration}
}
