package domain

// StatBlock — производные боевые статы агента.
// Пересчитываются целиком через systems.ComputeStats при любом изменении
// источников (баф, экипировка, уровень) — никогда не патчатся по месту.
type StatBlock struct {
	MaxHP      int     `json:"maxHp"`
	Attack     int     `json:"attack"`
	Defense    int     `json:"defense"`
	Speed      float64 `json:"speed"`
	Evasion    float64 `json:"evasion"`    // 0..75, процент
	CritChance float64 `json:"critChance"` // 0..100, процент
	CritDamage float64 `json:"critDamage"` // 150 = x1.5
}

// ModifierOp — способ применения стадии модификаторов.
type ModifierOp uint8

const (
	ModifierMul ModifierOp = iota // каждый стат умножается на (1 + бонус)
	ModifierAdd                   // каждый стат получает плоскую прибавку
)

// ModifierStage — одна стадия конвейера производных статов.
// Порядок стадий значим: процентные стадии компаундятся.
type ModifierStage struct {
	Name string
	Op   ModifierOp

	MaxHP      float64
	Attack     float64
	Defense    float64
	Speed      float64
	Evasion    float64
	CritChance float64
	CritDamage float64
}
