package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the shared application logger. It defaults to stderr so packages can
// log before Init runs (e.g. in tests).
var Log = logrus.New()

// Init configures the shared logger. When logFile is non-empty, output is
// duplicated to a size-rotated file.
func Init(logFile string, isProduction bool) {
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level := logrus.DebugLevel
	if isProduction {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if logFile == "" {
		Log.SetOutput(os.Stderr)
		return
	}

	rotator := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    50, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}

	Log.SetOutput(io.MultiWriter(os.Stderr, rotator))
}
