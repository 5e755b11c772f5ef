// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cyclog provides a small leveled logger on top of the standard
// library's log package, for the driver and CLI to report progress
// without pulling in a structured-logging framework.
package cyclog

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Level is the severity of a log message.
type Level int

// Severity levels, least to most severe.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a config string to a Level, defaulting to LevelInfo for
// an unrecognized name.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

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
	default:
		return "UNKNOWN"
	}
}

// Logger is a leveled wrapper over *log.Logger, safe for concurrent use.
type Logger struct {
	mu  sync.Mutex
	min Level
	out *log.Logger
}

// New returns a Logger writing to w at or above min severity.
func New(w io.Writer, min Level) *Logger {
	return &Logger{min: min, out: log.New(w, "", log.LstdFlags)}
}

// Default returns a Logger writing to stderr at LevelInfo.
func Default() *Logger {
	return New(os.Stderr, LevelInfo)
}

// SetLevel changes the minimum severity that is emitted.
func (l *Logger) SetLevel(min Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.min = min
}

func (l *Logger) log(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.min {
		return
	}
	l.out.Output(3, fmt.Sprintf("%s %s", level, fmt.Sprintf(format, args...)))
}

// Debugf logs at LevelDebug.
func (l *Logger) Debugf(format string, args ...any) { l.log(LevelDebug, format, args...) }

// Infof logs at LevelInfo.
func (l *Logger) Infof(format string, args ...any) { l.log(LevelInfo, format, args...) }

// Warnf logs at LevelWarn.
func (l *Logger) Warnf(format string, args ...any) { l.log(LevelWarn, format, args...) }

// Errorf logs at LevelError.
func (l *Logger) Errorf(format string, args ...any) { l.log(LevelError, format, args...) }
