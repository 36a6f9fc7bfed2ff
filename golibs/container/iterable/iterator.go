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

// Package iterable contains the Iterator contract used to walk over the
// container elements without exposing the container internals.
package iterable

// Iterator moves over a sequence of elements once. HasNext reports whether
// Next will return an element, Next returns it and shifts the iterator.
// Close must be called when the iterator is not needed anymore, the
// iterator must not be used after the call.
type Iterator[V any] interface {
	HasNext() bool

	// Next returns the next element and true, or the zero value and false if
	// there are no elements left
	Next() (V, bool)

	Close() error
}
