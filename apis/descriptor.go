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

// ErrorDescriptor is a flat, transport-friendly description of a classified
// error together with its resolved transport statuses.
//
// This type intentionally uses plain strings and ints (not the internal kind
// value type) so that it can live in the public "apis" layer and be used by
// adapters (HTTP, gRPC), structured logging and message-bus propagation.
type ErrorDescriptor struct {
	// Class is the full "<side>::<kind-name>::<type-name>" lineage string.
	Class string `json:"class"`

	// MessageID is the machine-friendly message identifier of the kind.
	MessageID string `json:"message_id"`

	// Code is the numeric code of the kind.
	Code int `json:"code"`

	// Message is an optional human-friendly message.
	Message string `json:"message,omitempty"`

	// HTTPStatus is the HTTP status resolved for this error.
	// A value of 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the gRPC status code (as integer) resolved for this error.
	// A value of 0 means "not resolved" (note: 0 is also codes.OK, which an
	// error never maps to).
	GRPCCode int `json:"grpc_code,omitempty"`
}
