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

package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/protobuf/types/known/structpb"

	oxiderr "github.com/cdumay/oxiderr-derive"
	"github.com/cdumay/oxiderr-derive/kind"
	"github.com/cdumay/oxiderr-derive/mapper"
)

var notFoundKind = kind.New("NotFound", "Err-00005", 404, "Not found")

func newWriter(t *testing.T, opts ...mapper.Option) Writer {
	t.Helper()
	m, err := mapper.New(opts...)
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	return Writer{Mapper: m}
}

func TestWrite(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()

	e := oxiderr.New(notFoundKind).
		WithMessage("no such user").
		WithDetail("user_id", structpb.NewStringValue("u-42"))
	w.Write(rec, e)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if got := body["class"]; got != "Client::NotFound::NotFound" {
		t.Errorf("class = %v", got)
	}
	if got := body["message"]; got != "no such user" {
		t.Errorf("message = %v", got)
	}
	details, ok := body["details"].(map[string]any)
	if !ok || details["user_id"] != "u-42" {
		t.Errorf("details = %v", body["details"])
	}
	kindObj, ok := body["kind"].(map[string]any)
	if !ok || kindObj["message_id"] != "Err-00005" {
		t.Errorf("kind = %v", body["kind"])
	}
}

func TestWriteUsesMapperRules(t *testing.T) {
	w := newWriter(t, mapper.WithHTTPOverride("NotFound", http.StatusGone))
	rec := httptest.NewRecorder()

	w.Write(rec, oxiderr.New(notFoundKind))
	if rec.Code != http.StatusGone {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusGone)
	}
}

func TestWriteNilError(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()

	w.Write(rec, nil)
	if rec.Body.Len() != 0 {
		t.Errorf("body written for nil error: %q", rec.Body.String())
	}
}

func TestWriteSerializationFailure(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()

	e := oxiderr.New(notFoundKind).WithMessage("bad \xff payload")
	w.Write(rec, e)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}
