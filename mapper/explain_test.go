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
)

// Explain output is consumed by humans and by a few troubleshooting scripts,
// so the exact line format is pinned here.
func TestExplainGolden(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		class string
		want  string
	}{
		{
			name:  "override tier",
			opts:  []Option{WithHTTPOverride("IoError", http.StatusTeapot), WithGRPCOverride("IoError", codes.DataLoss)},
			class: "Client::IoError::FileRead",
			want: `kind="IoError" class="Client::IoError::FileRead"
http: source=override -> 418
grpc: source=override -> DATA_LOSS(15)`,
		},
		{
			name:  "rule tier",
			opts:  []Option{WithHTTPClassRule("Client::IoError", http.StatusNotFound), WithGRPCClassRule("Client::*", codes.NotFound)},
			class: "Client::IoError::FileNotExists",
			want: `kind="IoError" class="Client::IoError::FileNotExists"
http: source=rule pattern="Client::IoError" -> 404
grpc: source=rule pattern="Client::*" -> NOT_FOUND(5)`,
		},
		{
			name:  "kind tier",
			opts:  nil,
			class: "Client::IoError::FileRead",
			want: `kind="IoError" class="Client::IoError::FileRead"
http: source=kind -> 400
grpc: source=kind -> INVALID_ARGUMENT(3)`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.opts...)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := m.Explain(ioKind, tt.class); got != tt.want {
				t.Errorf("Explain mismatch:\n got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestExplainFallbackTier(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := `kind="Odd" class="Unknown::Odd::Thing"
http: source=fallback -> 500
grpc: source=fallback -> INTERNAL(13)`
	if got := m.Explain(oddKind, "Unknown::Odd::Thing"); got != want {
		t.Errorf("Explain mismatch:\n got:\n%s\nwant:\n%s", got, want)
	}
}
