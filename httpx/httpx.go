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

// Package httpx adapts classified errors to HTTP responses.
package httpx

import (
	"net/http"

	"google.golang.org/protobuf/encoding/protojson"

	oxiderr "github.com/cdumay/oxiderr-derive"
	"github.com/cdumay/oxiderr-derive/adapter"
	"github.com/cdumay/oxiderr-derive/apis"
)

// Writer is a thin adapter that knows how to turn a classified error into an
// HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write serializes the error's container form and writes it to the response
// writer. The HTTP status is resolved via the Mapper.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the error is exposed as-is. Higher-level handlers should apply policies
// if needed.
//
// IMPORTANT: the body goes through protojson over the structpb form, so
// nested structured details serialize exactly the way they travel over gRPC.
func (w Writer) Write(rw http.ResponseWriter, err *oxiderr.Error) {
	if err == nil {
		return
	}

	st := w.Mapper.Status(err.Kind, err.Class)
	rw.Header().Set("Content-Type", "application/json")

	v, serr := err.ToValue()
	if serr != nil {
		// The payload cannot be represented; report the failure instead of
		// sending a half-serialized body.
		rw.WriteHeader(http.StatusInternalServerError)
		_, _ = rw.Write([]byte(`{"message":"error serialization failed"}`))
		return
	}

	rw.WriteHeader(st.HTTP)
	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
	}).Marshal(v.GetStructValue())
	_, _ = rw.Write(b)
}

// WriteAs renders a generated error type through the same path as Write.
func (w Writer) WriteAs(rw http.ResponseWriter, e apis.AsError) {
	w.Write(rw, adapter.ToError(e))
}
