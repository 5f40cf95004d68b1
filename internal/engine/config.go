package engine

import (
	"os"
	"strconv"
	"time"

	"github.com/g1tyx/idle-dungeon-runner/pkg/utils"
)

// Config — параметры запуска симуляции и сервера.
type Config struct {
	Seed       int64
	TickPeriod time.Duration // период тика реального времени
	SpeedMult  float64       // множитель игрового времени (1/2/5)
	Port       string
	DBPath     string
	PlayerName string
	ClassName  string // warrior / ranger / mage
}

// NewConfig собирает конфигурацию из переменных окружения
// с разумными значениями по умолчанию.
func NewConfig() *Config {
	cfg := &Config{
		Seed:       time.Now().UnixNano(),
		TickPeriod: 50 * time.Millisecond,
		SpeedMult:  1.0,
		Port:       "8080",
		DBPath:     "runs.db",
		PlayerName: "Бродяга",
		ClassName:  "warrior",
	}

	if v := os.Getenv("SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
		} else {
			cfg.Seed = utils.StringToSeed(v)
		}
	}
	if v := os.Getenv("TICK_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TickPeriod = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PLAYER_NAME"); v != "" {
		cfg.PlayerName = v
	}
	if v := os.Getenv("PLAYER_CLASS"); v != "" {
		cfg.ClassName = v
	}

	return cfg
}
