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
	"testing"

	"google.golang.org/grpc/codes"

	"github.com/cdumay/oxiderr-derive/kind"
)

var (
	ioKind      = kind.New("IoError", "Err-00003", 400, "IO error")
	notFound    = kind.New("NotFound", "Err-00005", 404, "Not found")
	timeoutKind = kind.New("Timeout", "Err-00010", 504, "Timeout")
	oddKind     = kind.New("Odd", "Err-09999", 42, "code outside the HTTP range")
)

func TestKindDerivedDefaults(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		name     string
		k        kind.Kind
		wantHTTP int
		wantGRPC codes.Code
	}{
		{"io maps through code", ioKind, 400, codes.InvalidArgument},
		{"not found", notFound, 404, codes.NotFound},
		{"timeout", timeoutKind, 504, codes.DeadlineExceeded},
		{"non-http code falls back", oddKind, http.StatusInternalServerError, codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class := tt.k.Side() + "::" + tt.k.Name() + "::Whatever"
			if got := m.HTTPStatus(tt.k, class); got != tt.wantHTTP {
				t.Errorf("HTTPStatus = %d, want %d", got, tt.wantHTTP)
			}
			if got := m.GRPCStatus(tt.k, class); got != tt.wantGRPC {
				t.Errorf("GRPCStatus = %v, want %v", got, tt.wantGRPC)
			}
		})
	}
}

func TestOverrideBeatsEverything(t *testing.T) {
	m, err := New(
		WithHTTPOverride("IoError", http.StatusTeapot),
		WithGRPCOverride("IoError", codes.DataLoss),
		WithHTTPClassRule("Client::IoError", http.StatusNotFound),
		WithGRPCClassRule("Client::IoError", codes.NotFound),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	st := m.Status(ioKind, "Client::IoError::FileRead")
	if st.HTTP != http.StatusTeapot {
		t.Errorf("HTTP = %d, want %d", st.HTTP, http.StatusTeapot)
	}
	if st.GRPC != codes.DataLoss {
		t.Errorf("GRPC = %v, want %v", st.GRPC, codes.DataLoss)
	}
}

func TestClassRuleBeatsKindDerived(t *testing.T) {
	m, err := New(
		WithHTTPClassRule("Client::IoError::FileNotExists", http.StatusGone),
		WithGRPCClassRule("Client::IoError::FileNotExists", codes.NotFound),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := m.HTTPStatus(ioKind, "Client::IoError::FileNotExists"); got != http.StatusGone {
		t.Errorf("HTTPStatus = %d, want %d", got, http.StatusGone)
	}
	// a sibling type of the same kind is untouched by the rule
	if got := m.HTTPStatus(ioKind, "Client::IoError::FileRead"); got != 400 {
		t.Errorf("HTTPStatus sibling = %d, want 400", got)
	}
	if got := m.GRPCStatus(ioKind, "Client::IoError::FileNotExists"); got != codes.NotFound {
		t.Errorf("GRPCStatus = %v, want %v", got, codes.NotFound)
	}
}

func TestLongestRuleWins(t *testing.T) {
	m, err := New(
		WithHTTPClassRule("Client", http.StatusBadRequest),
		WithHTTPClassRule("Client::IoError", http.StatusNotFound),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := m.HTTPStatus(ioKind, "Client::IoError::FileRead"); got != http.StatusNotFound {
		t.Errorf("HTTPStatus = %d, want %d", got, http.StatusNotFound)
	}
	if got := m.HTTPStatus(ioKind, "Client::ValidationError::BadInput"); got != http.StatusBadRequest {
		t.Errorf("HTTPStatus = %d, want %d", got, http.StatusBadRequest)
	}
}

func TestWildcardRule(t *testing.T) {
	m, err := New(
		WithHTTPClassRule("*::Timeout", http.StatusServiceUnavailable),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := m.HTTPStatus(timeoutKind, "Server::Timeout"); got != http.StatusServiceUnavailable {
		t.Errorf("HTTPStatus = %d, want %d", got, http.StatusServiceUnavailable)
	}
}

func TestCustomFallback(t *testing.T) {
	m, err := New(WithFallback(http.StatusBadGateway, codes.Unavailable))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := m.HTTPStatus(oddKind, "Unknown::Odd::Thing"); got != http.StatusBadGateway {
		t.Errorf("HTTPStatus = %d, want %d", got, http.StatusBadGateway)
	}
	if got := m.GRPCStatus(oddKind, "Unknown::Odd::Thing"); got != codes.Unavailable {
		t.Errorf("GRPCStatus = %v, want %v", got, codes.Unavailable)
	}
}

func TestInvalidRulePattern(t *testing.T) {
	for _, pattern := range []string{"", "*", "Client::", "client paths"} {
		if _, err := New(WithHTTPClassRule(pattern, 400)); err == nil {
			t.Errorf("New with pattern %q succeeded, want error", pattern)
		}
	}
}

func TestSnapshotIsolation(t *testing.T) {
	overrides := []Option{WithHTTPOverride("IoError", 404)}
	m, err := New(overrides...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// building another mapper with more options must not leak into the first
	_, err = New(append(overrides, WithHTTPOverride("IoError", 410))...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(ioKind, "Client::IoError::FileRead"); got != 404 {
		t.Errorf("HTTPStatus = %d, want 404", got)
	}
}
