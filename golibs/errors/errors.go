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

package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/status"
)

var (
	// ErrExist is returned when the object already exists
	ErrExist = errors.New("already exists")
	// ErrNotExist is returned when the object is not found, or it is not available anymore
	ErrNotExist = errors.New("not exist")
	// ErrInvalid is returned when the input parameters (configuration, arguments etc.) are not valid
	ErrInvalid = errors.New("invalid argument")
	// ErrNotAuthorized is returned when the operation is not allowed for the caller
	ErrNotAuthorized = errors.New("not authorized")
	// ErrInternal indicates an internal problem, which is not caused by the caller
	ErrInternal = errors.New("internal error")
	// ErrDataLoss indicates that the data is corrupted or lost
	ErrDataLoss = errors.New("data loss")
	// ErrExhausted is returned when a limit is reached
	ErrExhausted = errors.New("resources exhausted")
	// ErrUnimplemented is returned when the functionality is not supported
	ErrUnimplemented = errors.New("unimplemented")
	// ErrConflict is returned when the object state doesn't allow to perform the operation
	ErrConflict = errors.New("conflict")
	// ErrCanceled is returned when the operation is canceled by the caller
	ErrCanceled = errors.New("canceled")
	// ErrCommunication is returned when a remote party could not be reached
	ErrCommunication = errors.New("communication error")
	// ErrClosed is returned when an operation is called on a closed object
	ErrClosed = errors.New("closed")
)

// Is works as the standard errors.Is, but it also recognizes the gRPC status
// errors and compares their codes with the general error target.
func Is(err, target error) bool {
	if errors.Is(err, target) {
		return true
	}
	if _, ok := status.FromError(err); ok && err != nil {
		return FromGRPCError(err) == target
	}
	return false
}

// Wrapf returns an error which message is formatted by format and args and which
// wraps the err, so Is(result, err) is true.
func Wrapf(err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
