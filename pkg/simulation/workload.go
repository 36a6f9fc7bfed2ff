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

package simulation

import (
	"fmt"
	"math"
	"time"

	"github.com/solarisdb/lrucache/golibs/errors"
	"golang.org/x/exp/rand"
)

// Workload describes a stream of cache requests which keys follow a power law
// distribution. Alpha=1 gives uniformly distributed keys, smaller values skew
// the stream to the small keys.
type Workload struct {
	// Requests is the number of requests in the stream
	Requests int `json:"requests"`
	// KeyRange is the biggest key, the keys are in [1, KeyRange]
	KeyRange int `json:"keyRange"`
	// Alpha is the distribution parameter
	Alpha float64 `json:"alpha"`
	// Seed makes the stream reproducible, 0 means a time-based seed
	Seed uint64 `json:"seed"`
}

const (
	DefaultRequests = 1000
	DefaultKeyRange = 200
	DefaultAlpha    = 1.0
)

// DefaultWorkload returns the workload with the default parameters
func DefaultWorkload() Workload {
	return Workload{Requests: DefaultRequests, KeyRange: DefaultKeyRange, Alpha: DefaultAlpha}
}

// WithDefaults returns the copy of w where zero parameters are replaced by
// the default values
func (w Workload) WithDefaults() Workload {
	if w.Requests == 0 {
		w.Requests = DefaultRequests
	}
	if w.KeyRange == 0 {
		w.KeyRange = DefaultKeyRange
	}
	if w.Alpha == 0 {
		w.Alpha = DefaultAlpha
	}
	return w
}

// Check returns ErrInvalid if the workload parameters are out of range
func (w Workload) Check() error {
	if w.Requests < 1 {
		return fmt.Errorf("requests=%d must be positive: %w", w.Requests, errors.ErrInvalid)
	}
	if w.KeyRange < 1 {
		return fmt.Errorf("keyRange=%d must be positive: %w", w.KeyRange, errors.ErrInvalid)
	}
	if !(w.Alpha > 0) || math.IsInf(w.Alpha, 0) {
		return fmt.Errorf("alpha=%v must be a positive number: %w", w.Alpha, errors.ErrInvalid)
	}
	return nil
}

// Keys generates the key stream of the workload. The keys are
// int(u^(1/alpha) * KeyRange) + 1 for u uniformly distributed in [0, 1).
func (w Workload) Keys() ([]int, error) {
	if err := w.Check(); err != nil {
		return nil, err
	}
	seed := w.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rnd := rand.New(rand.NewSource(seed))
	res := make([]int, w.Requests)
	for i := range res {
		res[i] = int(math.Pow(rnd.Float64(), 1.0/w.Alpha)*float64(w.KeyRange)) + 1
	}
	return res, nil
}

// String implements fmt.Stringer
func (w Workload) String() string {
	return fmt.Sprintf("{requests=%d, keyRange=%d, alpha=%g, seed=%d}", w.Requests, w.KeyRange, w.Alpha, w.Seed)
}
