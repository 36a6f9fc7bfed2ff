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

package iterable

// sliceIterator walks over a slice it owns
type sliceIterator[V any] struct {
	vals []V
}

var _ Iterator[int] = (*sliceIterator[int])(nil)

// NewSliceIterator returns the Iterator over the vals. The iterator takes the
// ownership of the slice, so the caller must not modify it after the call.
func NewSliceIterator[V any](vals []V) Iterator[V] {
	return &sliceIterator[V]{vals: vals}
}

func (si *sliceIterator[V]) HasNext() bool {
	return len(si.vals) > 0
}

func (si *sliceIterator[V]) Next() (V, bool) {
	if len(si.vals) == 0 {
		return *new(V), false
	}
	v := si.vals[0]
	si.vals = si.vals[1:]
	return v, true
}

func (si *sliceIterator[V]) Close() error {
	si.vals = nil
	return nil
}

// Collect reads all the values left in the iterator and closes it
func Collect[V any](it Iterator[V]) []V {
	defer it.Close()
	var res []V
	for it.HasNext() {
		if v, ok := it.Next(); ok {
			res = append(res, v)
		}
	}
	return res
}
