// Copyright 2024 The Solaris Authors
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

package trace

import (
	"context"
	"testing"

	"github.com/solarisdb/lrucache/golibs/errors"
	"github.com/solarisdb/lrucache/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	s, err := Parse(`
# capacity 2
CREATE 2
put 1 10 put 2 -20
get 1 -> 10
get 7 -> miss
get 3
state -> [(1,10), (2,-20)]
state -> []
stats -> hits 1 misses 2
reset
`)
	require.Nil(t, err)
	require.Equal(t, 10, len(s.Stmts))

	assert.Equal(t, 2, s.Stmts[0].Create.Capacity)
	assert.Equal(t, 3, s.Stmts[0].Pos.Line)
	assert.Equal(t, Put{Key: 2, Value: -20}, *s.Stmts[2].Put)
	assert.Equal(t, 10, *s.Stmts[3].Get.Expect.Value)
	assert.True(t, s.Stmts[4].Get.Expect.Miss)
	assert.Nil(t, s.Stmts[5].Get.Expect)
	assert.Equal(t, 2, len(s.Stmts[6].State.Expect.Pairs))
	assert.Equal(t, 0, len(s.Stmts[7].State.Expect.Pairs))
	assert.Equal(t, StatsExpect{Hits: 1, Misses: 2}, *s.Stmts[8].Stats.Expect)
	assert.NotNil(t, s.Stmts[9].Reset)

	var stmts []string
	for _, st := range s.Stmts {
		stmts = append(stmts, st.String())
	}
	assert.Equal(t, []string{"create 2", "put 1 10", "put 2 -20", "get 1 -> 10", "get 7 -> miss", "get 3",
		"state -> [(1,10), (2,-20)]", "state -> []", "stats -> hits 1 misses 2", "reset"}, stmts)
}

func TestParseErrors(t *testing.T) {
	for _, text := range []string{"create", "put 1", "get x", "state -> [(1)]", "delete 1", "stats -> hits 1"} {
		_, err := Parse(text)
		assert.ErrorIs(t, err, errors.ErrInvalid, text)
	}
}

func replay(t *testing.T, text string) Report {
	s, err := Parse(text)
	require.Nil(t, err)
	reg := registry.New(0)
	rep, err := Replay(context.Background(), reg, s)
	require.Nil(t, err)
	assert.Empty(t, reg.Handles())
	return rep
}

func TestReplay_Scenarios(t *testing.T) {
	rep := replay(t, `
create 2
put 1 10
put 2 20
get 1 -> 10
put 3 30
get 2 -> miss
get 3 -> 30
state -> [(3,30), (1,10)]
stats -> hits 2 misses 1
`)
	assert.True(t, rep.OK(), rep.String())

	rep = replay(t, `
create 1
put 1 10
put 2 20
get 1 -> miss
get 2 -> 20
`)
	assert.True(t, rep.OK(), rep.String())

	rep = replay(t, `
create 3
put 1 10
get 1
get 2
get 1
state -> [(1,10)]
reset
stats -> hits 0 misses 0
state -> [(1,10)]
`)
	assert.True(t, rep.OK(), rep.String())
}

func TestReplay_Peek(t *testing.T) {
	s, err := Parse("create 2 put 1 10 PEEK 1 -> 10 peek 3")
	require.Nil(t, err)
	assert.Equal(t, "peek 1 -> 10", s.Stmts[2].String())
	assert.Equal(t, "peek 3", s.Stmts[3].String())

	// peek neither promotes 1 nor counts as an access
	rep := replay(t, `
create 2
put 1 10
put 2 20
peek 1 -> 10
peek 5 -> miss
put 3 30
peek 1 -> miss
state -> [(3,30), (2,20)]
stats -> hits 0 misses 0
peek 2 -> 21
`)
	fails := rep.Failures()
	require.Equal(t, 1, len(fails), rep.String())
	assert.Equal(t, "peek 2 -> 21", fails[0].Stmt)
	assert.Equal(t, "20", fails[0].Result)
}

func TestReplay_Failures(t *testing.T) {
	rep := replay(t, `
create 2
put 1 10
get 1 -> 11
get 1 -> miss
get 2 -> 5
state -> [(2,20)]
stats -> hits 0 misses 0
`)
	assert.False(t, rep.OK())
	fails := rep.Failures()
	require.Equal(t, 5, len(fails))
	assert.Equal(t, 4, fails[0].Line)
	assert.Equal(t, "10", fails[0].Result)
	assert.Equal(t, "miss", fails[2].Result)
	assert.Equal(t, "[(1,10)]", fails[3].Result)
	assert.Contains(t, rep.String(), "FAIL")
}

func TestReplay_Errors(t *testing.T) {
	reg := registry.New(0)
	s, err := Parse("put 1 1")
	require.Nil(t, err)
	_, err = Replay(context.Background(), reg, s)
	assert.ErrorIs(t, err, errors.ErrInvalid)

	s, err = Parse("create 0")
	require.Nil(t, err)
	_, err = Replay(context.Background(), reg, s)
	assert.ErrorIs(t, err, errors.ErrInvalid)

	s, err = Parse("create 1 create 2 put 1 1")
	require.Nil(t, err)
	rep, err := Replay(context.Background(), reg, s)
	assert.Nil(t, err)
	assert.Equal(t, 3, len(rep.Steps))
	assert.Empty(t, reg.Handles())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Replay(ctx, reg, s)
	assert.ErrorIs(t, err, context.Canceled)
}
