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

// Package ulidutils generates the identifiers used for cache handles and
// request tracing. ULIDs are sortable by the creation time, so the handles
// listed in order read as the order the caches were created.
package ulidutils

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// New returns new ulid.ULID.
func New() ulid.ULID {
	return ulid.Make()
}

// NewUUID returns the new ULID value presented as uuid.UUID
func NewUUID() uuid.UUID {
	return uuid.UUID(New())
}

// NewID returns the new ULID in its canonical string form. An ID returned
// earlier is lexicographically less than the one returned after it.
func NewID() string {
	return New().String()
}

// Parse checks the id is a valid ULID string and returns it in the canonical
// (upper case) form
func Parse(id string) (string, error) {
	uID, err := ulid.ParseStrict(id)
	if err != nil {
		return "", fmt.Errorf("could not parse ULID=%q: %w", id, err)
	}
	return uID.String(), nil
}
