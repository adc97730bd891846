package logger

import (
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name to a Level. Unknown names fall back to INFO.
func ParseLevel(name string) Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// Logger writes leveled lines through one *log.Logger per level.
type Logger struct {
	level    Level
	mu       sync.Mutex
	debugLog *log.Logger
	infoLog  *log.Logger
	warnLog  *log.Logger
	errorLog *log.Logger
}

func New(level string) *Logger {
	return NewWithWriter(level, os.Stderr)
}

func NewWithWriter(level string, w io.Writer) *Logger {
	flags := log.LstdFlags | log.Lmicroseconds

	return &Logger{
		level:    ParseLevel(level),
		debugLog: log.New(w, "[DEBUG] ", flags),
		infoLog:  log.New(w, "[INFO] ", flags),
		warnLog:  log.New(w, "[WARN] ", flags),
		errorLog: log.New(w, "[ERROR] ", flags),
	}
}

func (l *Logger) Level() Level {
	return l.level
}

func (l *Logger) logf(lvl Level, out *log.Logger, format string, args ...interface{}) {
	if l.level > lvl {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	out.Printf(format, args...)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(DEBUG, l.debugLog, format, args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(INFO, l.infoLog, format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(WARN, l.warnLog, format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(ERROR, l.errorLog, format, args...)
}
