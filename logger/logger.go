package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogger configures logrus for JSON output on stdout. The level comes
// from LOG_LEVEL (default info).
func InitLogger() {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	logrus.Info("Logger initialized")
}
