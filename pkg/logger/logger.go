package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log — глобальный логгер симуляции. Это стандартный логгер logrus,
// так что пакеты могут писать и через logrus.WithFields напрямую.
var Log = logrus.StandardLogger()

// Init настраивает уровень и формат логирования из окружения.
// LOG_LEVEL: debug/info/warn/error (по умолчанию info).
// LOG_FORMAT: "json" для продакшена, иначе цветной текст.
func Init() {

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(os.Stdout)
}
