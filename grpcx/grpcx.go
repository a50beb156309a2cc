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

// Package grpcx adapts classified errors to gRPC statuses.
package grpcx

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"

	oxiderr "github.com/cdumay/oxiderr-derive"
	"github.com/cdumay/oxiderr-derive/adapter"
	"github.com/cdumay/oxiderr-derive/apis"
)

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// classified errors escaping a handler into gRPC statuses.
//
// Both generated error types (apis.AsError) and runtime containers
// (*oxiderr.Error) are recognized, anywhere in the unwrap chain; anything
// else passes through untouched. The provided apis.Mapper resolves the
// error's kind and class into the transport status.
//
// The serialized container is attached to the status as a structpb.Struct
// detail, so clients keep the full class/kind/details payload across the
// wire. If serialization or attachment fails, the bare status is returned.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		ce := classify(err)
		if ce == nil {
			// Not ours; return as-is.
			return nil, err
		}

		st := m.Status(ce.Kind, ce.Class)
		base := gstatus.New(st.GRPC, ce.Message)

		if v, serr := ce.ToValue(); serr == nil {
			if s := v.GetStructValue(); s != nil {
				if detail, aerr := anypb.New(s); aerr == nil {
					if with, derr := base.WithDetails(detail); derr == nil {
						return nil, with.Err()
					}
				}
			}
		}
		return nil, base.Err()
	}
}

// classify normalizes any classified error into the runtime container.
func classify(err error) *oxiderr.Error {
	var oe *oxiderr.Error
	if errors.As(err, &oe) {
		return oe
	}
	var ae apis.AsError
	if errors.As(err, &ae) {
		return adapter.ToError(ae)
	}
	return nil
}

// ExtractDetail pulls the serialized container out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractDetail(err error) (*structpb.Struct, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if s, ok := d.(*structpb.Struct); ok {
			return s, true
		}
	}
	return nil, false
}
