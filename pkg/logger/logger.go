package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Leveled logger shared by the todo service. Lines look like
// "2006-01-02T15:04:05Z07:00 [INFO] message".

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	}
	return "info"
}

// ParseLevel maps a case-insensitive level name to a Level; unknown names give info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	}
	return LevelInfo
}

var (
	mu     sync.RWMutex
	out    = log.New(os.Stdout, "", 0)
	level  = LevelInfo
	exitFn = os.Exit
)

// Init sets the global log level. Call early during startup.
func Init(l string) {
	mu.Lock()
	defer mu.Unlock()
	level = ParseLevel(l)
}

// SetOutput redirects log lines, mainly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = log.New(w, "", 0)
}

// LevelString returns the current level as text.
func LevelString() string {
	mu.RLock()
	defer mu.RUnlock()
	return level.String()
}

func enabled(l Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return l >= level
}

func write(l Level, format string, v ...interface{}) {
	mu.RLock()
	w := out
	mu.RUnlock()
	w.Printf("%s [%s] %s", time.Now().Format(time.RFC3339), strings.ToUpper(l.String()), fmt.Sprintf(format, v...))
}

func Debugf(format string, v ...interface{}) {
	if enabled(LevelDebug) {
		write(LevelDebug, format, v...)
	}
}

func Infof(format string, v ...interface{}) {
	if enabled(LevelInfo) {
		write(LevelInfo, format, v...)
	}
}

func Warnf(format string, v ...interface{}) {
	if enabled(LevelWarn) {
		write(LevelWarn, format, v...)
	}
}

func Errorf(format string, v ...interface{}) {
	if enabled(LevelError) {
		write(LevelError, format, v...)
	}
}

// Fatalf always logs and then exits the process with status 1.
func Fatalf(format string, v ...interface{}) {
	write(LevelFatal, format, v...)
	exitFn(1)
}
