// Copyright 2023 The acquirecloud Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"fmt"
	"strings"
	"sync/atomic"
)

type (
	// Logger interface exposes some methods for application logging
	Logger interface {
		// Errorf prints Error-level messages
		Errorf(format string, args ...any)
		// Warnf prints Warn-level messages
		Warnf(format string, args ...any)
		// Infof prints Info-level messages
		Infof(format string, args ...any)
		// Debugf prints Debug-level messages
		Debugf(format string, args ...any)
		// Tracef prints Trace-level messages, the most verbose ones
		Tracef(format string, args ...any)
	}

	// Config struct allows to set the current logger settings
	Config struct {
		// NewLoggerF points to the function to construct new Logger
		NewLoggerF func(loggerName string) Logger
		// SetLevelF points to the function to set specific logger level
		SetLevelF func(lvl Level)
		// GetLevelF returns the current log level
		GetLevelF func() Level
	}

	// Level is one of ERROR, WARN, INFO, DEBUG, or TRACE
	Level int32
)

const (
	ERROR Level = iota
	WARN
	INFO
	DEBUG
	TRACE
)

var (
	loggerSettings atomic.Value
	levelNames     = map[Level]string{ERROR: "ERROR", WARN: "WARN", INFO: "INFO", DEBUG: "DEBUG", TRACE: "TRACE"}
)

func init() {
	SetConfig(Config{NewLoggerF: stdNewLogger, SetLevelF: stdSetLevel, GetLevelF: stdGetLevel})
}

// NewLogger returns a logger with the name, which is printed with every message
func NewLogger(loggerName string) Logger {
	return loggerSettings.Load().(Config).NewLoggerF(loggerName)
}

func SetLevel(lvl Level) {
	loggerSettings.Load().(Config).SetLevelF(lvl)
}

func GetLevel() Level {
	return loggerSettings.Load().(Config).GetLevelF()
}

func SetConfig(cfg Config) {
	loggerSettings.Store(cfg)
}

// ParseLevel turns the level name (case-insensitive) into the Level value
func ParseLevel(s string) (Level, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for l, n := range levelNames {
		if n == s {
			return l, nil
		}
	}
	return INFO, fmt.Errorf("unknown log level %q, expected one of ERROR, WARN, INFO, DEBUG, TRACE", s)
}

// String implements fmt.Stringer
func (l Level) String() string {
	if n, ok := levelNames[l]; ok {
		return n
	}
	return fmt.Sprintf("Level(%d)", int32(l))
}
