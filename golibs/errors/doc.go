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

/*
Package errors defines the general classes of errors shared by the cache
packages. Callers wrap one of the global error variables with the context of
the failure (fmt.Errorf("...: %w", errors.ErrInvalid)), and the class survives
any number of wraps, so the API layer can translate it to a status code.

The gRPC helpers convert a general error into a code-based status error on the
server side and back into the general error on the client side.
*/
package errors
