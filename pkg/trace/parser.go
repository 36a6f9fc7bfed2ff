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
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/solarisdb/lrucache/golibs/errors"
)

type (
	// Script is the AST root, a list of statements executed one by one
	Script struct {
		Stmts []*Stmt `parser:"@@*"`
	}

	// Stmt is one operation of the script
	Stmt struct {
		Pos lexer.Position

		Create *Create `parser:"  @@"`
		Put    *Put    `parser:"| @@"`
		Get    *Get    `parser:"| @@"`
		Peek   *Peek   `parser:"| @@"`
		Reset  *Reset  `parser:"| @@"`
		State  *State  `parser:"| @@"`
		Stats  *Stats  `parser:"| @@"`
	}

	// Create makes a new cache, the previous one (if any) is destroyed
	Create struct {
		Capacity int `parser:"\"create\" @Int"`
	}

	// Put stores a key-value pair
	Put struct {
		Key   int `parser:"\"put\" @Int"`
		Value int `parser:"@Int"`
	}

	// Get reads the key and optionally checks the result
	Get struct {
		Key    int        `parser:"\"get\" @Int"`
		Expect *GetExpect `parser:"( \"->\" @@ )?"`
	}

	// Peek reads the key like Get, but leaves the recency order and the
	// counters as they are
	Peek struct {
		Key    int        `parser:"\"peek\" @Int"`
		Expect *GetExpect `parser:"( \"->\" @@ )?"`
	}

	// GetExpect is either "miss" or the value expected
	GetExpect struct {
		Miss  bool `parser:"  @\"miss\""`
		Value *int `parser:"| @Int"`
	}

	// Reset zeroes the hit/miss counters
	Reset struct {
		Keyword string `parser:"@\"reset\""`
	}

	// State reads the cache state and optionally compares it with the pairs
	// expected, from the most recently used to the least recently used one
	State struct {
		Expect *StateExpect `parser:"\"state\" ( \"->\" @@ )?"`
	}

	// StateExpect is the list of pairs like [(1,10), (2,20)]
	StateExpect struct {
		Pairs []*Pair `parser:"\"[\" ( @@ ( \",\" @@ )* )? \"]\""`
	}

	// Pair is one key-value pair
	Pair struct {
		Key   int `parser:"\"(\" @Int"`
		Value int `parser:"\",\" @Int \")\""`
	}

	// Stats reads the counters and optionally checks them
	Stats struct {
		Expect *StatsExpect `parser:"\"stats\" ( \"->\" @@ )?"`
	}

	// StatsExpect contains the counters expected
	StatsExpect struct {
		Hits   uint64 `parser:"\"hits\" @Int"`
		Misses uint64 `parser:"\"misses\" @Int"`
	}
)

var (
	traceLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: `comment`, Pattern: `#[^\n]*`},
		{Name: `Keyword`, Pattern: `(?i)\b(create|put|get|peek|reset|state|stats|miss|hits|misses)\b`},
		{Name: `Int`, Pattern: `[-+]?\d+`},
		{Name: `Punct`, Pattern: `->|[\[\](),]`},
		{Name: `whitespace`, Pattern: `\s+`},
	})

	parser = participle.MustBuild[Script](
		participle.Lexer(traceLexer),
		participle.CaseInsensitive("Keyword"),
	)
)

// Parse builds the Script AST from the text. Statements are separated by
// whitespace, '#' starts a comment up to the end of the line:
//
//	create 2
//	put 1 10
//	get 1 -> 10
//	get 5 -> miss
//	peek 1 -> 10
//	state -> [(1,10)]
//	stats -> hits 1 misses 1
//	reset
func Parse(text string) (*Script, error) {
	s, err := parser.ParseString("", text)
	if err != nil {
		return nil, fmt.Errorf("could not parse the script: %s: %w", err, errors.ErrInvalid)
	}
	return s, nil
}

// String returns the statement in the script syntax
func (s *Stmt) String() string {
	switch {
	case s.Create != nil:
		return fmt.Sprintf("create %d", s.Create.Capacity)
	case s.Put != nil:
		return fmt.Sprintf("put %d %d", s.Put.Key, s.Put.Value)
	case s.Get != nil:
		if s.Get.Expect == nil {
			return fmt.Sprintf("get %d", s.Get.Key)
		}
		return fmt.Sprintf("get %d -> %s", s.Get.Key, s.Get.Expect)
	case s.Peek != nil:
		if s.Peek.Expect == nil {
			return fmt.Sprintf("peek %d", s.Peek.Key)
		}
		return fmt.Sprintf("peek %d -> %s", s.Peek.Key, s.Peek.Expect)
	case s.Reset != nil:
		return "reset"
	case s.State != nil:
		if s.State.Expect == nil {
			return "state"
		}
		return "state -> " + s.State.Expect.String()
	case s.Stats != nil:
		if s.Stats.Expect == nil {
			return "stats"
		}
		return "stats -> " + s.Stats.Expect.String()
	}
	return "<empty>"
}

// failed returns true if the read result doesn't match the expectation
func (ge *GetExpect) failed(v int, found bool) bool {
	if ge == nil {
		return false
	}
	if ge.Miss || ge.Value == nil {
		return found
	}
	return !found || v != *ge.Value
}

func (ge *GetExpect) String() string {
	if ge.Miss || ge.Value == nil {
		return "miss"
	}
	return fmt.Sprint(*ge.Value)
}

func (se *StateExpect) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range se.Pairs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "(%d,%d)", p.Key, p.Value)
	}
	sb.WriteString("]")
	return sb.String()
}

func (se *StatsExpect) String() string {
	return fmt.Sprintf("hits %d misses %d", se.Hits, se.Misses)
}
