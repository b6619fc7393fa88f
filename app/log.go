package app

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logMaxSizeMB  = 5
	logMaxBackups = 3
	logMaxAgeDays = 30
)

// logFile is the rotating log opened by beforeAction.
var logFile io.Closer

// newLogger returns a JSON logger that writes to a rotating file at path.
func newLogger(path string, debug bool) (*slog.Logger, io.Closer) {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})

	return slog.New(h), w
}
