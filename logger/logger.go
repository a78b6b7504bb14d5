// file: logger/logger.go

package logger

import (
	"os"

	"github.com/sirupsen/logrus"

	"go-bank-ledger/config"
)

// Log is the shared application logger. It must be initialized with Init()
// before any other package uses it.
var Log *logrus.Logger

// Init configures the package-level logger from the loaded application
// configuration. It falls back to info-level text output when the
// configuration holds unusable values.
func Init() {
	Log = logrus.New()
	Log.SetOutput(os.Stderr)

	cfg := config.AppConfig.Logging

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if cfg.Format == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
