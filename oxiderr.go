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

package oxiderr

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/cdumay/oxiderr-derive/kind"
)

// OriginKey is the reserved detail key under which Convert-style constructors
// embed the serialized, details-stripped copy of the error they converted
// from. Re-converting an error always overwrites this entry, which bounds
// origin nesting to exactly one extra level per conversion.
const OriginKey = "origin"

// Error is the generic cross-boundary error container.
//
// Generated error types (see compiler/gen) are small, strongly-typed values;
// Error is their untyped counterpart, used when an error has to cross a
// boundary where the concrete type is not known: transport adapters, logs,
// and most importantly the Convert constructors of generated types, which
// take an *Error and reclassify it.
//
// It carries:
//   - Kind: the classification record of the error (required);
//   - Class: the "<side>::<kind-name>::<type-name>" lineage string, computed
//     once at construction and never recomputed;
//   - Message: human-oriented description (what went wrong);
//   - Details: optional structured payload keyed by string;
//   - Cause: wrapped underlying error for debugging / unwrapping.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances can
// be safely shared and modified in a functional style.
type Error struct {
	// Kind is the classification record of the error. Every Error must carry
	// one; New fills it in.
	Kind kind.Kind

	// Class encodes the classification lineage of the error as
	// "<side>::<kind-name>::<type-name>". It is fixed at construction.
	Class string

	// Message is a human-readable explanation. This is what should end up in
	// logs or in the "message" field of a transport error response.
	Message string

	// Details is an optional, shallow map of extra structured fields. Values
	// use the protobuf Struct model so that they survive JSON/proto
	// round-trips unchanged. The map is treated as immutable:
	// WithDetail/WithDetails always copy it.
	Details map[string]*structpb.Value

	// Cause holds the wrapped underlying error (if any). This is used for
	// errors.Is / errors.As and for debugging in lower layers. It is not part
	// of the serialized form.
	Cause error
}

// New is the constructor for Error.
//
// Usage:
//
//	return oxiderr.New(kind.Unavailable,
//	    oxiderr.WithMessageOption("storage is down"),
//	    oxiderr.WithDetailOption("host", structpb.NewStringValue("db:5432")),
//	)
//
// The class is computed from the kind with the kind's own name as the
// trailing segment; the message defaults to the kind description. It always
// returns a *new* Error and applies all provided options in order.
func New(k kind.Kind, opts ...Option) *Error {
	e := &Error{
		Kind:    k,
		Class:   FormatClass(k, k.Name()),
		Message: k.Description(),
	}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// FormatClass builds the canonical class path for an error classified under
// k with the given trailing type-name segment:
//
//	<side>::<kind-name>::<type-name>
//
// Generated constructors call this with their own type name; New calls it
// with the kind name itself.
func FormatClass(k kind.Kind, typeName string) string {
	return k.Side() + "::" + k.Name() + "::" + typeName
}

// Error implements the built-in error interface.
//
// The format is:
//
//	[<message-id>] <class> (<code>): <message>
//
// which is the same shape generated types render, with the full class path in
// place of the bare type name. This keeps container-level and typed errors
// scannable by the same tooling.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("[%s] %s (%d): %s", e.Kind.MessageID(), e.Class, e.Kind.Code(), e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// Clone returns an independent copy of e.
//
// The details map is reallocated and every value is deep-copied with
// proto.Clone, so mutating the clone (including nilling out its Details, as
// the Convert algorithm does) can never be observed through the original.
func (e *Error) Clone() *Error {
	if e == nil {
		return nil
	}
	cp := *e
	if e.Details != nil {
		m := make(map[string]*structpb.Value, len(e.Details))
		for k, v := range e.Details {
			m[k] = proto.Clone(v).(*structpb.Value)
		}
		cp.Details = m
	}
	return &cp
}

// WithMessage returns a shallow copy of e with a replaced human message.
// Useful when you want to keep the Kind/Class but present the message in a
// different context.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithDetail returns a shallow copy of e with one extra key/value in Details.
//
// The method always copies the map to preserve immutability. This prevents
// surprising modifications across goroutines or shared error values.
func (e *Error) WithDetail(k string, v *structpb.Value) *Error {
	cp := *e
	// No details yet: create a new single-entry map.
	if len(cp.Details) == 0 {
		cp.Details = map[string]*structpb.Value{k: v}
		return &cp
	}
	// Copy existing details and add one more.
	m := make(map[string]*structpb.Value, len(cp.Details)+1)
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	m[k] = v
	cp.Details = m
	return &cp
}

// WithDetails returns a shallow copy of e with all provided kv merged into
// Details.
//
// If the Error already has Details, both maps are copied and merged, with kv
// taking precedence on key conflicts.
func (e *Error) WithDetails(kv map[string]*structpb.Value) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]*structpb.Value, len(cp.Details)+len(kv))
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	cp.Details = m
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause
// attached. If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
