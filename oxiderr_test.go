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
	"errors"
	"testing"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/cdumay/oxiderr-derive/kind"
)

func TestError_Defaults(t *testing.T) {
	e := New(kind.IoError)

	if e.Class != "Client::IoError::IoError" {
		t.Fatalf("Class = %q", e.Class)
	}
	if e.Message != "IO error" {
		t.Fatalf("Message = %q", e.Message)
	}
	if e.Details != nil {
		t.Fatal("Details must be absent by default")
	}
}

func TestError_Display(t *testing.T) {
	e := New(kind.IoError, WithMessageOption("No such file or directory"))
	want := "[Err-00003] Client::IoError::IoError (400): No such file or directory"
	if got := e.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestError_Immutability_CopyOnWrite(t *testing.T) {
	e1 := New(kind.ValidationError).WithDetail("k1", structpb.NewNumberValue(1))
	e2 := e1.WithDetail("k2", structpb.NewNumberValue(2))

	if len(e1.Details) != 1 || len(e2.Details) != 2 {
		t.Fatal("details size mismatch")
	}
	if _, ok := e1.Details["k2"]; ok {
		t.Fatal("original mutated")
	}
}

func TestError_WithMessage_Overwrites(t *testing.T) {
	e := New(kind.UnknownError).WithMessage("first").WithMessage("second")
	if e.Message != "second" {
		t.Fatalf("Message = %q, want %q", e.Message, "second")
	}
}

func TestError_WithDetails_Merge(t *testing.T) {
	e := New(kind.ValidationError).WithDetails(map[string]*structpb.Value{
		"a": structpb.NewNumberValue(1),
	})
	e2 := e.WithDetails(map[string]*structpb.Value{
		"a": structpb.NewNumberValue(3),
		"b": structpb.NewNumberValue(2),
	})
	if e.Details["a"].GetNumberValue() != 1 {
		t.Fatal("original mutated")
	}
	if e2.Details["a"].GetNumberValue() != 3 || e2.Details["b"].GetNumberValue() != 2 {
		t.Fatal("merge failed")
	}
}

func TestError_WithCause_Unwrap(t *testing.T) {
	root := errors.New("root")
	e := New(kind.InternalError).WithCause(root)
	if !errors.Is(e, root) {
		t.Fatal("errors.Is failed")
	}
	if errors.Unwrap(e) != root {
		t.Fatal("Unwrap failed")
	}
}

func TestError_Clone_Independence(t *testing.T) {
	e := New(kind.IoError, WithDetailOption("path", structpb.NewStringValue("/tmp/x")))
	c := e.Clone()

	c.Details = nil
	c.Message = "changed"

	if e.Details == nil || e.Details["path"].GetStringValue() != "/tmp/x" {
		t.Fatal("clone shared details with original")
	}
	if e.Message == "changed" {
		t.Fatal("clone shared message with original")
	}
}

func TestFormatClass(t *testing.T) {
	tests := []struct {
		k        kind.Kind
		typeName string
		want     string
	}{
		{kind.IoError, "FileNotExists", "Client::IoError::FileNotExists"},
		{kind.UnknownError, "Unexpected", "Server::UnknownError::Unexpected"},
		{kind.New("Odd", "Err-99999", 0, "odd"), "X", "Unknown::Odd::X"},
	}
	for _, tt := range tests {
		if got := FormatClass(tt.k, tt.typeName); got != tt.want {
			t.Errorf("FormatClass(%s, %s) = %q, want %q", tt.k.Name(), tt.typeName, got, tt.want)
		}
	}
}
