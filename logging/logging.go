// Package logging builds the logger of the wif command: a console writer on
// stderr and an optional rotated log file.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds the logging configuration.
type Config struct {
	Level      string // debug, info, warn, error or disabled
	Console    io.Writer
	FilePath   string // no log file if empty
	MaxSize    int    // megabytes
	MaxBackups int
	MaxAge     int // days
}

// DefaultConfig logs warnings on stderr and nothing to a file.
func DefaultConfig() Config {
	return Config{
		Level:      "warn",
		Console:    os.Stderr,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     30,
	}
}

// New creates a logger with the given configuration.
//
// The console output is human readable, the file gets one JSON object per
// event. The returned closer releases the log file.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	var writers []io.Writer
	if cfg.Console != nil {
		writers = append(writers, zerolog.ConsoleWriter{Out: cfg.Console, TimeFormat: time.Kitchen})
	}

	var closer io.Closer = nopCloser{}
	if cfg.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return zerolog.Nop(), nil, err
		}
		file := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
		}
		writers = append(writers, file)
		closer = file
	}

	if len(writers) == 0 {
		return zerolog.Nop(), closer, nil
	}
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(level).
		With().Timestamp().Logger()
	return logger, closer, nil
}

// ParseLevel parses a level name, the empty string is "warn".
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.WarnLevel, nil
	}
	return zerolog.ParseLevel(level)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
