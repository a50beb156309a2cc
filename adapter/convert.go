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

// Package adapter bridges generated error types and the runtime container to
// the transport-neutral shapes in apis.
package adapter

import (
	oxiderr "github.com/cdumay/oxiderr-derive"
	"github.com/cdumay/oxiderr-derive/apis"
)

// ToError rebuilds a generated error as a runtime container. This is the
// input side of the generated Convert functions: a value crossing a module
// boundary is lifted into *oxiderr.Error here, travels, and is re-typed by
// Convert<T> on the other side.
func ToError(e apis.AsError) *oxiderr.Error {
	if e == nil {
		return nil
	}
	return &oxiderr.Error{
		Kind:    e.Kind(),
		Class:   e.Class(),
		Message: e.Message(),
		Details: e.Details(),
	}
}

// ToView converts a classified error into a public ErrorView. This function
// performs no automatic redaction or filtering; it exposes exactly what the
// error instance contains, with structured details lowered to plain Go
// values. It is up to the caller or API layer to redact sensitive fields.
func ToView(e apis.AsError) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	k := e.Kind()
	v := apis.ErrorView{
		Class:     e.Class(),
		MessageID: k.MessageID(),
		Code:      k.Code(),
		Message:   e.Message(),
	}
	if ds := e.Details(); len(ds) > 0 {
		out := make(map[string]any, len(ds))
		for key, val := range ds {
			out[key] = val.AsInterface()
		}
		v.Details = out
	}
	return v
}

// ToDescriptor converts a classified error together with its resolved
// transport status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries both the taxonomy identity (class, message ID,
// code) and the concrete transport statuses (HTTP and gRPC).
func ToDescriptor(e apis.AsError, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	k := e.Kind()
	return apis.ErrorDescriptor{
		Class:      e.Class(),
		MessageID:  k.MessageID(),
		Code:       k.Code(),
		Message:    e.Message(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
	}
}
