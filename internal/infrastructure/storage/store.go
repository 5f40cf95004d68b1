package storage

import (
	"time"

	"github.com/g1tyx/idle-dungeon-runner/pkg/api"
)

// Session — запись одного забега в хранилище.
type Session struct {
	ID         string     `json:"id"`
	Seed       int64      `json:"seed"`
	Class      string     `json:"class"`
	StartedAt  time.Time  `json:"started_at"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	FinalFloor int        `json:"final_floor"`
	FinalLevel int        `json:"final_level"`
	FinalGold  int        `json:"final_gold"`
	GameOver   bool       `json:"game_over"`
}

// TickRecord — периодическая телеметрия забега.
type TickRecord struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Clock     float64   `json:"clock"`
	Timestamp time.Time `json:"timestamp"`
	Floor     int       `json:"floor"`
	Level     int       `json:"level"`
	HP        int       `json:"hp"`
	MaxHP     int       `json:"max_hp"`
	Gold      int       `json:"gold"`
	Monsters  int       `json:"monsters"`
	Phase     string    `json:"phase"`
}

// Store — интерфейс персистенции забегов.
// Основная реализация — SQLite; бинарный архив снапшотов
// (SnapshotArchive) — отдельный оффлайн-формат.
type Store interface {
	StartSession(id string, seed int64, class string) error
	EndSession(id string, floor, level, gold int, gameOver bool) error
	LogTick(rec *TickRecord) error

	SaveSnapshot(snap *api.RunSnapshot) error
	LoadSnapshot(runID string) (*api.RunSnapshot, error)

	RecentSessions(limit int) ([]*Session, error)
	Close() error
}
