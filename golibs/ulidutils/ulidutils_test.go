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

package ulidutils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	prev := NewID()
	for i := 0; i < 1000; i++ {
		id := NewID()
		assert.True(t, id > prev)
		prev = id
	}
}

func TestParse(t *testing.T) {
	id := NewID()
	res, err := Parse(strings.ToLower(id))
	assert.Nil(t, err)
	assert.Equal(t, id, res)

	_, err = Parse("invalid")
	assert.NotNil(t, err)
}

func TestNewUUID(t *testing.T) {
	assert.Equal(t, 16, len(NewUUID()))
	assert.NotEqual(t, NewUUID(), NewUUID())
}
