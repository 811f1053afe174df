// Package logutil configures the process-wide zerolog logger.
package logutil

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the global logger: console output, optional rotating file
// output, and the level parsed from cfg. Unknown levels fall back to info.
func Setup(level, file string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	var out io.Writer = console
	if file != "" {
		out = zerolog.MultiLevelWriter(console, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    20, // megabytes
			MaxBackups: 3,
			MaxAge:     30, // days
		})
	}

	log.Logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
