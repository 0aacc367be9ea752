// Package logging configures the global zerolog logger. The console is
// reserved for the reporting contract; diagnostics go to a rotating
// file, mirrored to stderr only in debug mode.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lakshaymaurya-felt/winsweep/internal/config"
)

// Setup wires the global logger per the log settings. The returned
// closer flushes the rotating file sink.
func Setup(cfg config.LogSettings, debug bool) io.Closer {
	rot := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Dir, "winsweep.log"),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     28,
		Compress:   true,
	}

	level := zerolog.InfoLevel
	writers := []io.Writer{rot}
	if debug {
		level = zerolog.DebugLevel
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		})
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().Timestamp().Logger()

	return rot
}
