package domain

// Размеры этажа
const (
	MinSize    = 24
	MaxSize    = 60
	GrowthRate = 0.5 // прибавка стороны за этаж
)

// Параметры ИИ и темпа действий (нормализованные единицы времени)
const (
	ChaseRadius   = 10   // дальше — патруль
	MoveCadence   = 0.75 // один шаг за 0.75/speed
	AttackCadence = 1.0  // одна атака за 1.0/speed
)

// Клампы производных статов
const (
	MaxEvasion    = 75.0
	MaxCritChance = 100.0
)

// Фазы прогрессии этажа
const (
	SpawnDelay = 1.0 // секунды до спавна монстров на новом этаже
)
