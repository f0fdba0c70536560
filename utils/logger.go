package utils

import (
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

const gormSlowThreshold = 200 * time.Millisecond

// Log is the process-wide logger
var Log = logrus.StandardLogger()

// ConfigureLogger sets the level and switches to JSON output in production
func ConfigureLogger(level string, production bool, out io.Writer) {
	if out != nil {
		Log.SetOutput(out)
	}
	if production {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
		if level != "" {
			Log.WithField("level", level).Warn("unknown log level, using info")
		}
	}
	Log.SetLevel(lvl)
}

// GormLogger routes gorm's SQL log through logrus
func GormLogger(verbose bool) gormlogger.Interface {
	level := gormlogger.Warn
	if verbose {
		level = gormlogger.Info
	}
	return gormlogger.New(Log, gormlogger.Config{
		SlowThreshold:             gormSlowThreshold,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
