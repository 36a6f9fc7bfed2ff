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
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

type stdLogger struct {
	name string
}

var (
	stdMx     sync.Mutex
	stdWriter io.Writer = os.Stdout
	stdLevel            = int32(INFO)
)

// SetOutput replaces the writer of the default logging engine. It doesn't
// affect engines installed by SetConfig.
func SetOutput(w io.Writer) {
	stdMx.Lock()
	stdWriter = w
	stdMx.Unlock()
}

func stdNewLogger(name string) Logger {
	return &stdLogger{name: name}
}

func stdSetLevel(lvl Level) {
	atomic.StoreInt32(&stdLevel, int32(lvl))
}

func stdGetLevel() Level {
	return Level(atomic.LoadInt32(&stdLevel))
}

func (sl *stdLogger) Errorf(format string, args ...any) {
	sl.logf(ERROR, format, args...)
}

func (sl *stdLogger) Warnf(format string, args ...any) {
	sl.logf(WARN, format, args...)
}

func (sl *stdLogger) Infof(format string, args ...any) {
	sl.logf(INFO, format, args...)
}

func (sl *stdLogger) Debugf(format string, args ...any) {
	sl.logf(DEBUG, format, args...)
}

func (sl *stdLogger) Tracef(format string, args ...any) {
	sl.logf(TRACE, format, args...)
}

func (sl *stdLogger) logf(lvl Level, format string, args ...any) {
	if atomic.LoadInt32(&stdLevel) < int32(lvl) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	now := time.Now().Format("15:04:05.000000")
	stdMx.Lock()
	fmt.Fprintf(stdWriter, "[%s] %s\t%s: %s\n", now, lvl, sl.name, msg)
	stdMx.Unlock()
}
