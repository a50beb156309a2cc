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

package grpcx

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	oxiderr "github.com/cdumay/oxiderr-derive"
	"github.com/cdumay/oxiderr-derive/kind"
	"github.com/cdumay/oxiderr-derive/mapper"
)

var ioKind = kind.New("IoError", "Err-00003", 400, "IO error")

func interceptOne(t *testing.T, handlerErr error) error {
	t.Helper()
	m, err := mapper.New()
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	icpt := UnaryServerInterceptor(m)
	handler := func(ctx context.Context, req any) (any, error) { return nil, handlerErr }
	_, err = icpt(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)
	return err
}

func TestInterceptorMapsContainer(t *testing.T) {
	src := oxiderr.New(ioKind).
		WithMessage("read failed").
		WithDetail("path", structpb.NewStringValue("/tmp/x"))

	err := interceptOne(t, src)
	st, ok := gstatus.FromError(err)
	if !ok {
		t.Fatalf("not a gRPC status: %v", err)
	}
	if st.Code() != codes.InvalidArgument {
		t.Errorf("Code = %v, want %v", st.Code(), codes.InvalidArgument)
	}
	if st.Message() != "read failed" {
		t.Errorf("Message = %q, want %q", st.Message(), "read failed")
	}

	detail, ok := ExtractDetail(err)
	if !ok {
		t.Fatal("no serialized container attached")
	}
	fields := detail.GetFields()
	if got := fields["class"].GetStringValue(); got != "Client::IoError::IoError" {
		t.Errorf("class = %q, want %q", got, "Client::IoError::IoError")
	}
	if got := fields["details"].GetStructValue().GetFields()["path"].GetStringValue(); got != "/tmp/x" {
		t.Errorf("details.path = %q, want %q", got, "/tmp/x")
	}
}

func TestInterceptorHonorsMapperOverrides(t *testing.T) {
	m, err := mapper.New(mapper.WithGRPCOverride("IoError", codes.NotFound))
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	icpt := UnaryServerInterceptor(m)
	handler := func(ctx context.Context, req any) (any, error) {
		return nil, oxiderr.New(ioKind)
	}
	_, err = icpt(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)
	if got := gstatus.Code(err); got != codes.NotFound {
		t.Errorf("Code = %v, want %v", got, codes.NotFound)
	}
}

func TestInterceptorPassesThroughForeignErrors(t *testing.T) {
	plain := errors.New("boom")
	if err := interceptOne(t, plain); !errors.Is(err, plain) {
		t.Errorf("foreign error was rewritten: %v", err)
	}
}

func TestInterceptorPassesThroughSuccess(t *testing.T) {
	m, err := mapper.New()
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	icpt := UnaryServerInterceptor(m)
	handler := func(ctx context.Context, req any) (any, error) { return "ok", nil }
	resp, err := icpt(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)
	if err != nil || resp != "ok" {
		t.Errorf("intercepted success = (%v, %v), want (ok, nil)", resp, err)
	}
}

func TestExtractDetailOnForeignError(t *testing.T) {
	if _, ok := ExtractDetail(errors.New("boom")); ok {
		t.Error("ExtractDetail found a container in a foreign error")
	}
	if _, ok := ExtractDetail(nil); ok {
		t.Error("ExtractDetail found a container in nil")
	}
}
