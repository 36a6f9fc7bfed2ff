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

package context

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSignalsContext(t *testing.T) {
	ctx, cancel := NewSignalsContext(syscall.SIGUSR1)
	defer cancel()
	assert.Nil(t, ctx.Err())
	assert.Nil(t, syscall.Kill(syscall.Getpid(), syscall.SIGUSR1))
	<-ctx.Done()
	assert.NotNil(t, ctx.Err())
}

func TestNewSignalsContext_Cancel(t *testing.T) {
	ctx, cancel := NewSignalsContext(syscall.SIGUSR2)
	cancel()
	<-ctx.Done()
	assert.NotNil(t, ctx.Err())
}
