package log

import (
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config string to a Level. The bool is false for
// unrecognised names.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, true
	case "INFO":
		return LevelInfo, true
	case "WARN", "WARNING":
		return LevelWarn, true
	case "ERROR":
		return LevelError, true
	case "NONE", "OFF":
		return LevelNone, true
	default:
		return LevelInfo, false
	}
}

// Logger is safe for concurrent use; the level may change while other
// goroutines log.
type Logger struct {
	logger *log.Logger
	level  atomic.Int32
}

func New(out io.Writer, level Level) *Logger {
	l := &Logger{logger: log.New(out, "", log.Ltime|log.Lmicroseconds)}
	l.level.Store(int32(level))
	return l
}

func (l *Logger) enabled(level Level) bool {
	return Level(l.level.Load()) <= level
}

// Discard returns a logger that drops everything. Tests use it.
func Discard() *Logger {
	return New(io.Discard, LevelNone)
}

// Stderr returns an INFO logger on os.Stderr.
func Stderr() *Logger {
	return New(os.Stderr, LevelInfo)
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	if l.enabled(LevelDebug) {
		l.logger.Printf("DEBUG: "+format, v...)
	}
}

func (l *Logger) Infof(format string, v ...interface{}) {
	if l.enabled(LevelInfo) {
		l.logger.Printf("INFO: "+format, v...)
	}
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	if l.enabled(LevelWarn) {
		l.logger.Printf("WARN: "+format, v...)
	}
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	if l.enabled(LevelError) {
		l.logger.Printf("ERROR: "+format, v...)
	}
}

func (l *Logger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

func (l *Logger) Level() Level {
	return Level(l.level.Load())
}
