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
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel(" debug ")
	assert.Nil(t, err)
	assert.Equal(t, DEBUG, l)

	l, err = ParseLevel("TRACE")
	assert.Nil(t, err)
	assert.Equal(t, TRACE, l)

	_, err = ParseLevel("verbose")
	assert.NotNil(t, err)
	assert.Equal(t, "WARN", WARN.String())
}

func TestStdLogger(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)
	old := GetLevel()
	defer SetLevel(old)

	SetLevel(INFO)
	log := NewLogger("test")
	log.Debugf("hidden %d", 1)
	assert.Equal(t, 0, buf.Len())

	log.Infof("shown %d", 2)
	assert.Contains(t, buf.String(), "INFO\ttest: shown 2\n")

	buf.Reset()
	SetLevel(TRACE)
	log.Tracef("trace")
	assert.Contains(t, buf.String(), "TRACE\ttest: trace")
}
