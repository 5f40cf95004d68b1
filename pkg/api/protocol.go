package api

import "encoding/json"

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse — полный "снимок" симуляции для рендерера.
// Рассылается раз в тик; клиент только читает, мутаций нет.
type ServerResponse struct {
	Type  string  `json:"type"` // UPDATE / INIT / GAME_OVER
	Tick  float64 `json:"tick"` // игровое время, сек
	Floor int     `json:"floor"`
	Phase string  `json:"phase"`

	Grid    *GridMeta    `json:"grid,omitempty"`
	Tiles   []TileView   `json:"tiles,omitempty"`
	Agents  []AgentView  `json:"agents,omitempty"`
	Objects []ObjectView `json:"objects,omitempty"`
	Logs    []LogEntry   `json:"logs,omitempty"`
}

// GridMeta — размеры решетки, чтобы клиент подготовил канву.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView — DTO одной клетки карты.
type TileView struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Type   string `json:"type"`
	Symbol string `json:"symbol"`
	IsWall bool   `json:"isWall"`
}

// AgentView — DTO агента: позиция и поля, нужные для анимации.
type AgentView struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	X      int     `json:"x"`
	Y      int     `json:"y"`
	HP     int     `json:"hp"`
	MaxHP  int     `json:"maxHp"`
	Shield int     `json:"shield,omitempty"`
	HPFrac float64 `json:"hpFrac"`
	State  string  `json:"state,omitempty"`

	IsPlayer   bool `json:"isPlayer,omitempty"`
	IsBoss     bool `json:"isBoss,omitempty"`
	IsElite    bool `json:"isElite,omitempty"`
	IsMiniBoss bool `json:"isMiniBoss,omitempty"`

	Effects []string `json:"effects,omitempty"`
}

// ObjectView — DTO размещенного объекта.
type ObjectView struct {
	Kind     string `json:"kind"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Consumed bool   `json:"consumed"`
	Opened   bool   `json:"opened,omitempty"`
}

// LogEntry — одна запись игрового лога.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"` // INFO, COMBAT, LOOT, ERROR
	Timestamp int64  `json:"timestamp"`
}

// RunSnapshot — минимальное состояние забега для персистенции.
// Ядро отдает его как плоские данные и формата хранения не знает.
type RunSnapshot struct {
	RunID     string   `json:"runId"`
	Seed      int64    `json:"seed"`
	Floor     int      `json:"floor"`
	Level     int      `json:"level"`
	HP        int      `json:"hp"`
	MaxHP     int      `json:"maxHp"`
	Gold      int      `json:"gold"`
	Class     string   `json:"class"`
	Equipment []string `json:"equipment"`
	Inventory []string `json:"inventory"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand — корневой объект всех сообщений клиента.
type ClientCommand struct {
	Action  string          `json:"action"` // USE_SKILL, DODGE, SPEED
	Payload json.RawMessage `json:"payload"`
}

// SkillPayload — для USE_SKILL.
type SkillPayload struct {
	ID string `json:"id"`
}

// DodgePayload — для DODGE. Нулевое направление = случайное.
type DodgePayload struct {
	Dx int `json:"dx"`
	Dy int `json:"dy"`
}

// SpeedPayload — для SPEED (множитель 1/2/5).
type SpeedPayload struct {
	Mult float64 `json:"mult"`
}
