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
	"fmt"
	"strings"

	"github.com/solarisdb/lrucache/golibs/errors"
	"github.com/solarisdb/lrucache/golibs/logging"
	"github.com/solarisdb/lrucache/pkg/registry"
)

type (
	// Step is the record of one executed statement
	Step struct {
		Line   int    `json:"line"`
		Stmt   string `json:"stmt"`
		Result string `json:"result"`
		// Failed is true if the statement had an expectation and the result
		// doesn't match it
		Failed bool `json:"failed,omitempty"`
	}

	// Report contains the steps of the replay
	Report struct {
		Steps []Step `json:"steps"`
	}
)

// Failures returns the steps which expectations were not met
func (r Report) Failures() []Step {
	var res []Step
	for _, s := range r.Steps {
		if s.Failed {
			res = append(res, s)
		}
	}
	return res
}

// OK returns true if all the expectations of the script are met
func (r Report) OK() bool {
	return len(r.Failures()) == 0
}

// String returns the human-readable report, one line per step
func (r Report) String() string {
	var sb strings.Builder
	for _, s := range r.Steps {
		mark := "ok"
		if s.Failed {
			mark = "FAIL"
		}
		fmt.Fprintf(&sb, "%4d: %-32s %-4s %s\n", s.Line, s.Stmt, mark, s.Result)
	}
	return sb.String()
}

// Replay executes the script statements against a cache created in the
// registry by the script. The script must start with the create statement,
// the cache is destroyed when Replay returns. A failed expectation doesn't
// stop the replay, it is reported in the Step. The error is returned if a
// statement could not be executed.
func Replay(ctx context.Context, reg *registry.Registry, s *Script) (Report, error) {
	log := logging.NewLogger("trace.Replay")
	var (
		res Report
		h   registry.Handle
	)
	defer func() {
		if h != "" {
			_ = reg.Destroy(h)
		}
	}()

	for _, st := range s.Stmts {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		step := Step{Line: st.Pos.Line, Stmt: st.String()}
		if st.Create != nil {
			if h != "" {
				_ = reg.Destroy(h)
				h = ""
			}
			nh, err := reg.Create(st.Create.Capacity)
			if err != nil {
				return res, fmt.Errorf("line %d: %w", step.Line, err)
			}
			h = nh
			step.Result = string(h)
			res.Steps = append(res.Steps, step)
			continue
		}
		if h == "" {
			return res, fmt.Errorf("line %d: %q is called before create: %w", step.Line, step.Stmt, errors.ErrInvalid)
		}
		if err := execStmt(reg, h, st, &step); err != nil {
			return res, fmt.Errorf("line %d: %w", step.Line, err)
		}
		if step.Failed {
			log.Debugf("line %d: %s failed: %s", step.Line, step.Stmt, step.Result)
		}
		res.Steps = append(res.Steps, step)
	}
	return res, nil
}

func execStmt(reg *registry.Registry, h registry.Handle, st *Stmt, step *Step) error {
	switch {
	case st.Put != nil:
		if err := reg.Put(h, st.Put.Key, st.Put.Value); err != nil {
			return err
		}
		step.Result = "stored"
	case st.Get != nil:
		v, found, err := reg.Get(h, st.Get.Key)
		if err != nil {
			return err
		}
		step.Result = readResult(v, found)
		step.Failed = st.Get.Expect.failed(v, found)
	case st.Peek != nil:
		v, found, err := reg.Peek(h, st.Peek.Key)
		if err != nil {
			return err
		}
		step.Result = readResult(v, found)
		step.Failed = st.Peek.Expect.failed(v, found)
	case st.Reset != nil:
		if err := reg.ResetStats(h); err != nil {
			return err
		}
		step.Result = "counters reset"
	case st.State != nil:
		snap, err := reg.Snapshot(h)
		if err != nil {
			return err
		}
		actual := &StateExpect{Pairs: make([]*Pair, len(snap.Items))}
		for i, it := range snap.Items {
			actual.Pairs[i] = &Pair{Key: it.Key, Value: it.Value}
		}
		step.Result = actual.String()
		if st.State.Expect != nil {
			step.Failed = st.State.Expect.String() != step.Result
		}
	case st.Stats != nil:
		snap, err := reg.Snapshot(h)
		if err != nil {
			return err
		}
		actual := StatsExpect{Hits: snap.Hits, Misses: snap.Misses}
		step.Result = fmt.Sprintf("%s ratio %.2f%%", actual.String(), snap.HitRatio)
		if exp := st.Stats.Expect; exp != nil {
			step.Failed = *exp != actual
		}
	default:
		return fmt.Errorf("unknown statement: %w", errors.ErrUnimplemented)
	}
	return nil
}

func readResult(v int, found bool) string {
	if found {
		return fmt.Sprint(v)
	}
	return "miss"
}
