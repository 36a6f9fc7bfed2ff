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

package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/solarisdb/lrucache/golibs/container/iterable"
	"github.com/solarisdb/lrucache/golibs/container/lru"
	"github.com/solarisdb/lrucache/golibs/errors"
	"github.com/solarisdb/lrucache/golibs/logging"
	csync "github.com/solarisdb/lrucache/golibs/sync"
	"github.com/solarisdb/lrucache/golibs/ulidutils"
	"golang.org/x/exp/slices"
)

type (
	// Handle is an opaque identifier of a cache owned by the Registry
	Handle string

	// Registry owns the caches created through it and gives access to them by
	// their handles. A cache is used by one goroutine at a time: every operation
	// holds the lock of the handle while it touches the cache.
	Registry struct {
		lock      sync.Mutex
		caches    map[Handle]*holder
		maxCaches int
		logger    logging.Logger
	}

	// Item is one key-value pair of a cache state
	Item struct {
		Key   int `json:"key"`
		Value int `json:"value"`
	}

	// Info is the short description of an alive cache
	Info struct {
		Handle   Handle `json:"handle"`
		Capacity int    `json:"capacity"`
		Size     int    `json:"size"`
	}

	// Snapshot is a consistent view of one cache taken under its lock
	Snapshot struct {
		Handle    Handle  `json:"handle"`
		Capacity  int     `json:"capacity"`
		Size      int     `json:"size"`
		Hits      uint64  `json:"hits"`
		Misses    uint64  `json:"misses"`
		Evictions uint64  `json:"evictions"`
		HitRatio  float64 `json:"hitRatio"`
		// Items are ordered from the most recently used to the least recently used one
		Items []Item `json:"items"`
	}

	// Cache is the cache type the registry manages
	Cache = lru.Cache[int, int]

	holder struct {
		lock      *csync.Mutex
		cache     *Cache
		destroyed bool
	}
)

// ErrInvalidHandle is returned for a handle which was never created or which
// is destroyed already
var ErrInvalidHandle = fmt.Errorf("invalid cache handle: %w", errors.ErrNotExist)

// New creates the Registry. maxCaches limits the number of caches alive at the
// same time, 0 means no limit.
func New(maxCaches int) *Registry {
	r := new(Registry)
	r.caches = make(map[Handle]*holder)
	r.maxCaches = maxCaches
	r.logger = logging.NewLogger("registry")
	return r
}

// Create makes the new cache with the capacity provided and returns its handle.
// The caller owns the cache and must call Destroy when it's not needed anymore.
func (r *Registry) Create(capacity int) (Handle, error) {
	h := Handle(ulidutils.NewID())
	c, err := lru.NewCache[int, int](capacity, func(k, v int) {
		r.logger.Tracef("cache %s evicted key=%d value=%d", h, k, v)
	})
	if err != nil {
		return "", err
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	if r.caches == nil {
		return "", fmt.Errorf("the registry is closed: %w", errors.ErrClosed)
	}
	if r.maxCaches > 0 && len(r.caches) >= r.maxCaches {
		return "", fmt.Errorf("could not create more than %d caches: %w", r.maxCaches, errors.ErrExhausted)
	}
	r.caches[h] = &holder{lock: csync.NewMutex(), cache: c}
	r.logger.Debugf("created cache %s with capacity=%d", h, capacity)
	return h, nil
}

// Destroy releases the cache. The handle is invalid after the call.
func (r *Registry) Destroy(h Handle) error {
	h, err := checkHandle(h)
	if err != nil {
		return err
	}
	r.lock.Lock()
	hl, ok := r.caches[h]
	if ok {
		delete(r.caches, h)
	}
	r.lock.Unlock()
	if !ok {
		return errors.Wrapf(ErrInvalidHandle, "destroy %q", h)
	}

	hl.lock.Lock()
	hl.destroyed = true
	hl.cache = nil
	hl.lock.Unlock()
	r.logger.Debugf("destroyed cache %s", h)
	return nil
}

// Exec runs f over the cache of the handle. The cache is locked for the call
// duration, so f may run several operations which nobody else interleaves.
// f must not keep the cache reference after it returns.
func (r *Registry) Exec(h Handle, f func(c *Cache) error) error {
	return r.ExecContext(context.Background(), h, f)
}

// ExecContext is Exec, which stops waiting for the cache lock when ctx is closed
func (r *Registry) ExecContext(ctx context.Context, h Handle, f func(c *Cache) error) error {
	h, err := checkHandle(h)
	if err != nil {
		return err
	}
	r.lock.Lock()
	hl, ok := r.caches[h]
	r.lock.Unlock()
	if !ok {
		return errors.Wrapf(ErrInvalidHandle, "cache %q", h)
	}

	if err := hl.lock.LockWithCtx(ctx); err != nil {
		return fmt.Errorf("cache %q is busy: %w", h, err)
	}
	defer hl.lock.Unlock()
	// Destroy could win the race after the holder was taken from the map
	if hl.destroyed {
		return errors.Wrapf(ErrInvalidHandle, "cache %q", h)
	}
	return f(hl.cache)
}

// Get returns the value for the key. found is false if the key is not cached,
// the value is meaningful only if found is true.
func (r *Registry) Get(h Handle, key int) (value int, found bool, err error) {
	err = r.Exec(h, func(c *Cache) error {
		value, found = c.Get(key)
		return nil
	})
	return
}

// Peek returns the value for the key like Get does, but it neither changes
// the recency order nor counts the access
func (r *Registry) Peek(h Handle, key int) (value int, found bool, err error) {
	err = r.Exec(h, func(c *Cache) error {
		value, found = c.Peek(key)
		return nil
	})
	return
}

// Put stores the value for the key
func (r *Registry) Put(h Handle, key, value int) error {
	return r.Exec(h, func(c *Cache) error {
		c.Put(key, value)
		return nil
	})
}

// Hits returns the hits counter of the cache
func (r *Registry) Hits(h Handle) (res uint64, err error) {
	err = r.Exec(h, func(c *Cache) error {
		res = c.Hits()
		return nil
	})
	return
}

// Misses returns the misses counter of the cache
func (r *Registry) Misses(h Handle) (res uint64, err error) {
	err = r.Exec(h, func(c *Cache) error {
		res = c.Misses()
		return nil
	})
	return
}

// ResetStats zeroes the cache counters
func (r *Registry) ResetStats(h Handle) error {
	return r.Exec(h, func(c *Cache) error {
		c.ResetStats()
		return nil
	})
}

// StateSize returns the number of entries in the cache
func (r *Registry) StateSize(h Handle) (res int, err error) {
	err = r.Exec(h, func(c *Cache) error {
		res = c.Len()
		return nil
	})
	return
}

// State fills outKeys and outValues with the cache entries from the most
// recently used to the least recently used one and returns the number of
// entries written. Both buffers must be at least StateSize long, otherwise
// nothing is written and ErrInvalid is returned. Nothing is written after the
// last entry.
func (r *Registry) State(h Handle, outKeys, outValues []int) (n int, err error) {
	err = r.Exec(h, func(c *Cache) error {
		size := c.Len()
		if len(outKeys) < size || len(outValues) < size {
			return fmt.Errorf("the buffers of %d keys and %d values cannot hold %d entries: %w",
				len(outKeys), len(outValues), size, errors.ErrInvalid)
		}
		it := c.Iterator()
		defer it.Close()
		for ; it.HasNext(); n++ {
			e, _ := it.Next()
			outKeys[n] = e.Key
			outValues[n] = e.Value
		}
		return nil
	})
	return
}

// Snapshot returns the counters and the state of the cache taken at once
func (r *Registry) Snapshot(h Handle) (Snapshot, error) {
	var res Snapshot
	err := r.Exec(h, func(c *Cache) error {
		st := c.Stats()
		res = Snapshot{
			Handle:    h,
			Capacity:  c.Capacity(),
			Size:      c.Len(),
			Hits:      st.Hits,
			Misses:    st.Misses,
			Evictions: st.Evictions,
			HitRatio:  st.HitRatio(),
			Items:     make([]Item, 0, c.Len()),
		}
		for _, e := range iterable.Collect(c.Iterator()) {
			res.Items = append(res.Items, Item{Key: e.Key, Value: e.Value})
		}
		return nil
	})
	return res, err
}

// Handles returns the handles of the alive caches in the order of creation
func (r *Registry) Handles() []Handle {
	r.lock.Lock()
	defer r.lock.Unlock()
	res := make([]Handle, 0, len(r.caches))
	for h := range r.caches {
		res = append(res, h)
	}
	slices.Sort(res)
	return res
}

// List returns the descriptions of the alive caches in the order of creation.
// A cache destroyed while the list is built is skipped.
func (r *Registry) List() []Info {
	hs := r.Handles()
	res := make([]Info, 0, len(hs))
	for _, h := range hs {
		err := r.Exec(h, func(c *Cache) error {
			res = append(res, Info{Handle: h, Capacity: c.Capacity(), Size: c.Len()})
			return nil
		})
		if err != nil {
			r.logger.Debugf("skipping cache %s in the list: %v", h, err)
		}
	}
	return res
}

// Shutdown implements linker.Shutdowner
func (r *Registry) Shutdown() {
	if err := r.Close(); err != nil {
		r.logger.Warnf("could not close the registry: %v", err)
	}
}

// Close destroys all the caches. Create returns ErrClosed after the call.
func (r *Registry) Close() error {
	r.lock.Lock()
	caches := r.caches
	r.caches = nil
	r.lock.Unlock()
	if caches == nil {
		return fmt.Errorf("the registry is already closed: %w", errors.ErrClosed)
	}
	for _, hl := range caches {
		hl.lock.Lock()
		hl.destroyed = true
		hl.cache = nil
		hl.lock.Unlock()
	}
	r.logger.Infof("registry is closed, %d cache(s) destroyed", len(caches))
	return nil
}

// checkHandle returns the handle in the canonical form the registry issues it
func checkHandle(h Handle) (Handle, error) {
	id, err := ulidutils.Parse(string(h))
	if err != nil {
		return h, errors.Wrapf(ErrInvalidHandle, "malformed handle: %s", err)
	}
	return Handle(id), nil
}
