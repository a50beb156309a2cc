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

package adapter

import (
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/cdumay/oxiderr-derive/apis"
	"github.com/cdumay/oxiderr-derive/kind"
)

var ioKind = kind.New("IoError", "Err-00003", 400, "IO error")

// fakeErr is a minimal stand-in for a generated error type.
type fakeErr struct {
	class   string
	message string
	details map[string]*structpb.Value
}

func (e fakeErr) Error() string                       { return e.message }
func (e fakeErr) Kind() kind.Kind                     { return ioKind }
func (e fakeErr) Class() string                       { return e.class }
func (e fakeErr) Message() string                     { return e.message }
func (e fakeErr) Details() map[string]*structpb.Value { return e.details }

var _ apis.AsError = fakeErr{}

func TestToError(t *testing.T) {
	src := fakeErr{
		class:   "Client::IoError::FileRead",
		message: "read failed",
		details: map[string]*structpb.Value{"path": structpb.NewStringValue("/tmp/x")},
	}
	e := ToError(src)
	if e == nil {
		t.Fatal("ToError returned nil")
	}
	if e.Kind != ioKind {
		t.Errorf("Kind = %v, want %v", e.Kind, ioKind)
	}
	if e.Class != src.class || e.Message != src.message {
		t.Errorf("Class/Message = %q/%q, want %q/%q", e.Class, e.Message, src.class, src.message)
	}
	if got := e.Details["path"].GetStringValue(); got != "/tmp/x" {
		t.Errorf("Details[path] = %q, want %q", got, "/tmp/x")
	}

	if ToError(nil) != nil {
		t.Error("ToError(nil) != nil")
	}
}

func TestToView(t *testing.T) {
	src := fakeErr{
		class:   "Client::IoError::FileRead",
		message: "read failed",
		details: map[string]*structpb.Value{"attempt": structpb.NewNumberValue(3)},
	}
	v := ToView(src)
	if v.Class != src.class || v.MessageID != "Err-00003" || v.Code != 400 || v.Message != "read failed" {
		t.Errorf("unexpected view: %+v", v)
	}
	// details are lowered to plain Go values
	if got, ok := v.Details["attempt"].(float64); !ok || got != 3 {
		t.Errorf("Details[attempt] = %v, want float64(3)", v.Details["attempt"])
	}

	if got := ToView(fakeErr{class: "C::K::T"}); got.Details != nil {
		t.Errorf("empty details should stay nil, got %v", got.Details)
	}
}

func TestToDescriptor(t *testing.T) {
	src := fakeErr{class: "Client::IoError::FileRead", message: "read failed"}
	d := ToDescriptor(src, apis.Status{HTTP: 404, GRPC: codes.NotFound})
	want := apis.ErrorDescriptor{
		Class:      "Client::IoError::FileRead",
		MessageID:  "Err-00003",
		Code:       400,
		Message:    "read failed",
		HTTPStatus: 404,
		GRPCCode:   int(codes.NotFound),
	}
	if d != want {
		t.Errorf("ToDescriptor = %+v, want %+v", d, want)
	}

	if got := ToDescriptor(nil, apis.Status{}); got != (apis.ErrorDescriptor{}) {
		t.Errorf("ToDescriptor(nil) = %+v, want zero", got)
	}
}
