// Package logger adapts zerolog to the Logger interface the rest of the
// module logs through.
package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/mohorko/zeeklog/core"
)

var _ core.Logger = (*Logger)(nil)

type Logger struct {
	zl zerolog.Logger
}

// New builds a console logger writing to w. Debug-level messages are
// dropped unless debug is set.
func New(w io.Writer, debug bool) *Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	zl := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().
		Logger()

	return &Logger{zl: zl}
}

func (l *Logger) Debug(msg string) {
	l.zl.Debug().Msg(msg)
}

func (l *Logger) Debugf(format string, args ...any) {
	l.zl.Debug().Msg(fmt.Sprintf(format, args...))
}

func (l *Logger) Info(msg string) {
	l.zl.Info().Msg(msg)
}

func (l *Logger) Infof(format string, args ...any) {
	l.zl.Info().Msg(fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(msg string) {
	l.zl.Warn().Msg(msg)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.zl.Warn().Msg(fmt.Sprintf(format, args...))
}

func (l *Logger) Error(msg string) {
	l.zl.Error().Msg(msg)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.zl.Error().Msg(fmt.Sprintf(format, args...))
}
