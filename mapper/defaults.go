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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"github.com/cdumay/oxiderr-derive/kind"
)

// httpToGRPC maps well-known HTTP statuses to canonical gRPC codes. It backs
// the kind-derived tier: a kind whose numeric code is an HTTP status gets its
// gRPC side from this table.
//
// The choices follow the common REST-to-gRPC conventions; integrators needing
// a different policy register overrides or class rules instead of editing
// this table.
var httpToGRPC = map[int]codes.Code{
	http.StatusBadRequest:          codes.InvalidArgument,
	http.StatusUnauthorized:        codes.Unauthenticated,
	http.StatusForbidden:           codes.PermissionDenied,
	http.StatusNotFound:            codes.NotFound,
	http.StatusRequestTimeout:      codes.DeadlineExceeded,
	http.StatusConflict:            codes.AlreadyExists,
	http.StatusGone:                codes.NotFound, // gRPC has no 410; NotFound is the closest practical choice.
	http.StatusPreconditionFailed:  codes.FailedPrecondition,
	http.StatusTooManyRequests:     codes.ResourceExhausted,
	499:                            codes.Canceled, // non-standard nginx "client closed request"
	http.StatusInternalServerError: codes.Internal,
	http.StatusNotImplemented:      codes.Unimplemented,
	http.StatusBadGateway:          codes.Unavailable,
	http.StatusServiceUnavailable:  codes.Unavailable,
	http.StatusGatewayTimeout:      codes.DeadlineExceeded,
}

// grpcForHTTP resolves a gRPC code for an HTTP status, falling back to
// range-based defaults for statuses the table does not name.
func grpcForHTTP(status int) (codes.Code, bool) {
	if c, ok := httpToGRPC[status]; ok {
		return c, true
	}
	switch {
	case status >= 400 && status < 500:
		return codes.InvalidArgument, true
	case status >= 500 && status < 600:
		return codes.Internal, true
	}
	return codes.Unknown, false
}

// kindHTTPStatus returns the HTTP status derived from the kind's numeric
// code, when the code is inside the valid HTTP range.
func kindHTTPStatus(k kind.Kind) (int, bool) {
	if c := k.Code(); c >= 100 && c <= 599 {
		return c, true
	}
	return 0, false
}
