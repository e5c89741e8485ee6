package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	log  *Logger
	once sync.Once
)

// Fields is re-exported so callers don't have to import logrus directly.
type Fields = logrus.Fields

// Logger wraps logrus so the rest of the module never touches it directly.
type Logger struct {
	*logrus.Logger
}

// Initialize sets up the shared logger. Logging is disabled unless
// DEBUG_CONFSTORE is set in the environment; a library stays quiet by
// default.
func Initialize() {
	once.Do(func() {
		log = &Logger{Logger: logrus.New()}
		log.SetOutput(io.Discard)
		log.SetLevel(logrus.PanicLevel)
		level := os.Getenv("DEBUG_CONFSTORE")
		if level == "" {
			return
		}
		log.SetOutput(os.Stderr)
		switch strings.ToLower(level) {
		case "warn":
			log.SetLevel(logrus.WarnLevel)
		case "error":
			log.SetLevel(logrus.ErrorLevel)
		default:
			log.SetLevel(logrus.DebugLevel)
		}
		log.WithField("level", log.GetLevel()).Debug("logging enabled")
	})
}

// GetLogger returns the shared module logger, initializing it on first use.
func GetLogger() *Logger {
	if log == nil {
		Initialize()
	}
	return log
}

func init() {
	Initialize()
}
