package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/g1tyx/idle-dungeon-runner/pkg/api"
)

// SQLiteStore хранит забеги в SQLite (драйвер без cgo).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite открывает базу и накатывает схему.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Один писатель — цикл симуляции; конкуренции по записи нет
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		class TEXT NOT NULL DEFAULT 'warrior',
		started_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		ended_at DATETIME,
		final_floor INTEGER DEFAULT 1,
		final_level INTEGER DEFAULT 1,
		final_gold INTEGER DEFAULT 0,
		game_over INTEGER DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS ticks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		clock REAL NOT NULL,
		timestamp DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		floor INTEGER NOT NULL,
		level INTEGER NOT NULL,
		hp INTEGER NOT NULL,
		max_hp INTEGER NOT NULL,
		gold INTEGER NOT NULL,
		monsters INTEGER DEFAULT 0,
		phase TEXT,
		FOREIGN KEY (session_id) REFERENCES sessions(id)
	);

	CREATE TABLE IF NOT EXISTS snapshots (
		run_id TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		saved_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_ticks_session ON ticks(session_id);
	CREATE INDEX IF NOT EXISTS idx_ticks_session_floor ON ticks(session_id, floor);
	CREATE INDEX IF NOT EXISTS idx_sessions_seed ON sessions(seed);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// StartSession создает запись забега.
func (s *SQLiteStore) StartSession(id string, seed int64, class string) error {
	_, err := s.db.Exec(
		`INSERT INTO sessions (id, seed, class, started_at) VALUES (?, ?, ?, ?)`,
		id, seed, normalizeClass(class), time.Now().UTC(),
	)
	return err
}

// GetSession возвращает забег по ID.
func (s *SQLiteStore) GetSession(id string) (*Session, error) {
	row := s.db.QueryRow(
		`SELECT id, seed, class, started_at, ended_at, final_floor,
		 final_level, final_gold, game_over
		 FROM sessions WHERE id = ?`, id,
	)

	var sess Session
	var endedAt sql.NullTime
	err := row.Scan(&sess.ID, &sess.Seed, &sess.Class, &sess.StartedAt, &endedAt,
		&sess.FinalFloor, &sess.FinalLevel, &sess.FinalGold, &sess.GameOver)
	if err != nil {
		return nil, err
	}
	if endedAt.Valid {
		sess.EndedAt = &endedAt.Time
	}
	return &sess, nil
}

// EndSession закрывает запись забега итоговыми цифрами.
func (s *SQLiteStore) EndSession(id string, floor, level, gold int, gameOver bool) error {
	_, err := s.db.Exec(
		`UPDATE sessions SET ended_at = ?, final_floor = ?, final_level = ?,
		 final_gold = ?, game_over = ?
		 WHERE id = ?`,
		time.Now().UTC(), floor, level, gold, gameOver, id,
	)
	return err
}

// LogTick пишет одну запись телеметрии.
func (s *SQLiteStore) LogTick(rec *TickRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO ticks (session_id, clock, timestamp, floor, level,
		 hp, max_hp, gold, monsters, phase)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.Clock, time.Now().UTC(), rec.Floor, rec.Level,
		rec.HP, rec.MaxHP, rec.Gold, rec.Monsters, rec.Phase,
	)
	return err
}

// SaveSnapshot сохраняет плоский снимок забега (JSON в TEXT-колонке;
// формат эволюционирует, жесткая схема тут только мешала бы).
func (s *SQLiteStore) SaveSnapshot(snap *api.RunSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO snapshots (run_id, data, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(run_id) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at`,
		snap.RunID, string(data), time.Now().UTC(),
	)
	return err
}

// LoadSnapshot читает снимок забега по ID.
func (s *SQLiteStore) LoadSnapshot(runID string) (*api.RunSnapshot, error) {
	row := s.db.QueryRow(`SELECT data FROM snapshots WHERE run_id = ?`, runID)

	var data string
	if err := row.Scan(&data); err != nil {
		return nil, err
	}

	var snap api.RunSnapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

// RecentSessions возвращает последние забеги.
func (s *SQLiteStore) RecentSessions(limit int) ([]*Session, error) {
	rows, err := s.db.Query(
		`SELECT id, seed, class, started_at, ended_at, final_floor,
		 final_level, final_gold, game_over
		 FROM sessions ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		var sess Session
		var endedAt sql.NullTime
		err := rows.Scan(&sess.ID, &sess.Seed, &sess.Class, &sess.StartedAt, &endedAt,
			&sess.FinalFloor, &sess.FinalLevel, &sess.FinalGold, &sess.GameOver)
		if err != nil {
			return nil, err
		}
		if endedAt.Valid {
			sess.EndedAt = &endedAt.Time
		}
		sessions = append(sessions, &sess)
	}
	return sessions, rows.Err()
}

// FloorSummary — агрегат по этажу для пост-анализа забега.
type FloorSummary struct {
	Floor   int     `json:"floor"`
	Ticks   int     `json:"ticks"`
	Seconds float64 `json:"seconds"`
	MinHP   int     `json:"min_hp"`
	EndGold int     `json:"end_gold"`
}

// FloorSummaries возвращает агрегаты телеметрии по этажам.
func (s *SQLiteStore) FloorSummaries(sessionID string) ([]*FloorSummary, error) {
	rows, err := s.db.Query(
		`SELECT floor, COUNT(*), MAX(clock) - MIN(clock), MIN(hp), MAX(gold)
		 FROM ticks WHERE session_id = ?
		 GROUP BY floor ORDER BY floor`, sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*FloorSummary
	for rows.Next() {
		var fs FloorSummary
		if err := rows.Scan(&fs.Floor, &fs.Ticks, &fs.Seconds, &fs.MinHP, &fs.EndGold); err != nil {
			return nil, err
		}
		summaries = append(summaries, &fs)
	}
	return summaries, rows.Err()
}

// ExportSessionJSON выгружает забег с телеметрией одним JSON.
func (s *SQLiteStore) ExportSessionJSON(sessionID string) ([]byte, error) {
	sess, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	summaries, err := s.FloorSummaries(sessionID)
	if err != nil {
		return nil, err
	}

	export := map[string]any{
		"session":   sess,
		"summaries": summaries,
	}
	return json.MarshalIndent(export, "", "  ")
}

// normalizeClass — защита от мусора в имени класса при импорте.
func normalizeClass(class string) string {
	switch strings.ToLower(strings.TrimSpace(class)) {
	case "ranger":
		return "ranger"
	case "mage":
		return "mage"
	default:
		return "warrior"
	}
}
