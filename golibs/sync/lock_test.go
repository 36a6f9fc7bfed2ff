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

package sync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMutex_LockUnlock(t *testing.T) {
	m := NewMutex()
	m.Lock()
	assert.False(t, m.TryLock())
	m.Unlock()
	assert.True(t, m.TryLock())
	m.Unlock()
	assert.Panics(t, m.Unlock)
}

func TestMutex_LockWithCtx(t *testing.T) {
	m := NewMutex()
	assert.Nil(t, m.LockWithCtx(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, m.LockWithCtx(ctx), context.DeadlineExceeded)

	go func() {
		time.Sleep(10 * time.Millisecond)
		m.Unlock()
	}()
	assert.Nil(t, m.LockWithCtx(context.Background()))
	m.Unlock()
}

func TestMutex_LockWithClosedCtx(t *testing.T) {
	m := NewMutex()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Nil(t, m.LockWithCtx(ctx))
	assert.ErrorIs(t, m.LockWithCtx(ctx), context.Canceled)
}
