/*
   Copyright 2025 The Oxiderr Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import (
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/cdumay/oxiderr-derive/kind"
)

// AsError is the uniform contract of generated error types.
//
// Every type emitted by the error-type generator implements AsError, which is
// what lets transport adapters, loggers and conversion helpers handle any
// generated error without knowing its concrete type.
//
// Implementations are value types with builder-style mutators; the accessors
// below return snapshots and must have no side effects.
type AsError interface {
	error

	// Kind returns the classification record the type is bound to. The value
	// is a per-type constant: identical for every instance of a given type.
	Kind() kind.Kind

	// Class returns the "<side>::<kind-name>::<type-name>" lineage string.
	// It is computed once at construction and never recomputed.
	Class() string

	// Message returns the current human-readable message.
	Message() string

	// Details returns a copy of the structured detail payload, or nil when
	// no details are attached.
	Details() map[string]*structpb.Value
}

// ClassedError represents an error that exposes a class path without
// committing to the full AsError contract.
//
// The class answers "where in the taxonomy does this error live?" and is the
// primary matching key for log scrapers and the transport mapper.
type ClassedError interface {
	error

	// Class returns the classification lineage string. The returned value
	// MUST be a complete three-segment "<side>::<kind>::<type>" path.
	Class() string
}

// DetailedError represents an error that exposes structured details. This is
// especially useful at boundaries that want to forward payloads (origin
// chains, validation data) without understanding them.
//
// Implementations SHOULD return a map that is safe for the caller to iterate
// over and that will not be modified by the callee. Returning nil is allowed
// and simply means "no extra details".
type DetailedError interface {
	error

	// Details returns the structured details of the error. May return nil.
	Details() map[string]*structpb.Value
}

// CausedError represents an error that exposes its underlying cause.
//
// While Go 1.13 introduced errors.Unwrap, having this interface in apis lets
// us work with wrapped errors even in places where we don't want to depend on
// errors.As / errors.Is directly, or where we want to keep the contract
// explicit.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this error, if any.
	// May return nil.
	Cause() error
}
