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
	"sync"
)

// Locker represents an object that supports sync.Locker and an
// extended functionality of locking with a context
type Locker interface {
	sync.Locker

	// TryLock tries to acquire the lock and return immediately whether the
	// attempt was successful or not
	TryLock() bool

	// LockWithCtx allows to lock Locker with a context. It will return nil if the locker is
	// locked successfully or ctx.Err() otherwise.
	LockWithCtx(ctx context.Context) error
}

// Mutex is the Locker which waiting for the lock may be interrupted by a
// context. The zero value is not usable, NewMutex must be used.
type Mutex struct {
	ch chan struct{}
}

var _ Locker = (*Mutex)(nil)

// NewMutex returns the unlocked Mutex
func NewMutex() *Mutex {
	return &Mutex{ch: make(chan struct{}, 1)}
}

func (m *Mutex) Lock() {
	m.ch <- struct{}{}
}

// Unlock releases the lock. It panics if the mutex is not locked.
func (m *Mutex) Unlock() {
	select {
	case <-m.ch:
	default:
		panic("sync: unlock of unlocked Mutex")
	}
}

func (m *Mutex) TryLock() bool {
	select {
	case m.ch <- struct{}{}:
		return true
	default:
		return false
	}
}

func (m *Mutex) LockWithCtx(ctx context.Context) error {
	// the lock wins if it is available and ctx is closed
	if m.TryLock() {
		return nil
	}
	select {
	case m.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
