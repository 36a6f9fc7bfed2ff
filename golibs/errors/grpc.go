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
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// codeMapping binds a general error to the status code the cache service
// reports it with. The table is walked in order, so an error wrapping several
// general errors gets the code of the first one listed.
type codeMapping struct {
	code codes.Code
	err  error
}

var mappings = []codeMapping{
	{codes.InvalidArgument, ErrInvalid},     // capacity, workload, handle format
	{codes.NotFound, ErrNotExist},           // unknown or destroyed handle
	{codes.ResourceExhausted, ErrExhausted}, // the caches limit
	{codes.Unavailable, ErrClosed},          // the registry is closed by the server shutdown
	{codes.AlreadyExists, ErrExist},
	{codes.FailedPrecondition, ErrConflict},
	{codes.PermissionDenied, ErrNotAuthorized},
	{codes.DataLoss, ErrDataLoss},
	{codes.Unimplemented, ErrUnimplemented},
	{codes.Canceled, ErrCanceled},
	{codes.Internal, ErrInternal},
}

// received lists the codes the client may get, but the service never sends
// for a general error
var received = map[codes.Code]error{
	codes.OK:               nil,
	codes.Unknown:          ErrCommunication,
	codes.DeadlineExceeded: ErrCommunication,
	codes.Unauthenticated:  ErrNotAuthorized,
}

// FromGRPCError turns the status error returned by the cache service into one
// of the general errors. Codes with no general error become ErrInternal.
func FromGRPCError(err error) error {
	code := status.Code(err)
	if e, ok := received[code]; ok {
		return e
	}
	for _, m := range mappings {
		if m.code == code {
			return m.err
		}
	}
	return ErrInternal
}

// FromGRPCErrorWithMsg is FromGRPCError, which keeps the status message. The
// result reads as the error the server reported (the handle, the capacity
// etc.) and still matches the general error with errors.Is.
func FromGRPCErrorWithMsg(err error) error {
	gerr := FromGRPCError(err)
	if gerr == nil {
		return nil
	}
	if st, ok := status.FromError(err); ok && st.Message() != "" {
		return fmt.Errorf("%s: %w", st.Message(), gerr)
	}
	return gerr
}

// GRPCStatusCode returns the code the service reports the err with. The
// context errors are reported as the deadline and the cancellation codes, so
// a busy cache which could not be locked in time reads as DeadlineExceeded.
func GRPCStatusCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	if code := status.Code(err); code != codes.Unknown {
		return code
	}
	for _, m := range mappings {
		if errors.Is(err, m.err) {
			return m.code
		}
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	}
	return codes.Internal
}

// GRPCWrap is applied to every error a CacheService method returns:
//
//	return nil, errors.GRPCWrap(err)
//
// Status errors pass as is, any other error becomes the status with the
// GRPCStatusCode(err) code and the err text as the message.
func GRPCWrap(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(GRPCStatusCode(err), err.Error())
}
