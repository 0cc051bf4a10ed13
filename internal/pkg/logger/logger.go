package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger
var Log = logrus.New()

type appNameHook struct {
	appName string
}

// Levels implements logrus.Hook interface.
func (h *appNameHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook interface.
func (h *appNameHook) Fire(entry *logrus.Entry) error {
	entry.Message = "[" + h.appName + "] " + entry.Message
	return nil
}

// Init configures Log from the given level name ("debug", "info", ...)
func Init(appName, level string) {
	InitWithOutput(appName, level, os.Stdout)
}

// InitWithOutput is Init writing to out
func InitWithOutput(appName, level string, out io.Writer) {
	Log.SetOutput(out)

	levelStr := strings.ToLower(strings.TrimSpace(level))
	if levelStr == "" {
		levelStr = "info"
	}
	lvl, err := logrus.ParseLevel(levelStr)
	if err != nil {
		Log.Warnf("⚠️ Invalid LOG_LEVEL '%s', defaulting to INFO", levelStr)
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	Log.ReplaceHooks(make(logrus.LevelHooks))
	Log.AddHook(&appNameHook{appName})
}
