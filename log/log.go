package log

import (
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Logger is the interface for logging.
type Logger interface {
	// Printf prints a formated message to the log.
	Printf(format string, v ...interface{})

	// Print prints a message to the log.
	Print(v ...interface{})

	// Fatalf prints a formated message and exits with status 1.
	Fatalf(format string, v ...interface{})

	// Fatal prints a message and exits with status 1.
	Fatal(v ...interface{})

	// Level returns the logging level.
	Level() Level
}

// Level represents the log level.
type Level int

const (
	// DebugLevel represents the debug-level.
	DebugLevel Level = iota
	// InfoLevel represents the info-level.
	InfoLevel
	// ErrorLevel represents the error-level.
	ErrorLevel
	// DisabledLevel represents that the logger is disabled.
	DisabledLevel
)

var levelNames = [...]string{"debug", "info", "error", "disabled"}

func (l Level) String() string {
	if l < DebugLevel || l > DisabledLevel {
		return "unknown"
	}
	return levelNames[l]
}

// ParseLevel returns the level with the given name.
func ParseLevel(name string) (Level, error) {
	name = strings.ToLower(name)
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return DisabledLevel, errors.Errorf("unknown log level %q", name)
}

var (
	// Debug is a debug-level logger.
	Debug = &logger{DebugLevel}
	// Info is an info-level logger.
	Info = &logger{InfoLevel}
	// Error is an error-level logger.
	Error = &logger{ErrorLevel}
)

var mu sync.RWMutex

var currentLogger = &defaultLogger{
	level:  InfoLevel,
	Logger: log.New(os.Stderr, "", log.Ldate|log.Ltime|log.LUTC),
}

type logger struct {
	level Level
}

// enabled returns the current logger if messages of level l pass through it.
func (l logger) enabled() (Logger, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return currentLogger, l.level >= currentLogger.level
}

func (l logger) Printf(format string, v ...interface{}) {
	if cLogger, ok := l.enabled(); ok {
		cLogger.Printf(format, v...)
	}
}

func (l logger) Print(v ...interface{}) {
	if cLogger, ok := l.enabled(); ok {
		cLogger.Print(v...)
	}
}

// Fatalf exits even when the level is filtered out.
func (l logger) Fatalf(format string, v ...interface{}) {
	if cLogger, ok := l.enabled(); ok {
		cLogger.Fatalf(format, v...)
	}
	os.Exit(1)
}

// Fatal exits even when the level is filtered out.
func (l logger) Fatal(v ...interface{}) {
	if cLogger, ok := l.enabled(); ok {
		cLogger.Fatal(v...)
	}
	os.Exit(1)
}

func (l logger) Level() Level {
	return l.level
}

type defaultLogger struct {
	level Level
	*log.Logger
}

func (l *defaultLogger) Level() Level {
	return l.level
}

// SetLevel sets the current logging level.
func SetLevel(level Level) {
	mu.Lock()
	currentLogger.level = level
	mu.Unlock()
}

// SetLevelByName sets the current logging level with a name.
// Unknown names leave the level unchanged.
func SetLevelByName(name string) {
	if level, err := ParseLevel(name); err == nil {
		SetLevel(level)
	}
}

// SetOutput sets the destination of the current logger.
func SetOutput(w io.Writer) {
	mu.Lock()
	currentLogger.SetOutput(w)
	mu.Unlock()
}

// CurrentLevel returns the current logging level.
func CurrentLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return currentLogger.level
}
