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
)

type classRule struct {
	// pattern is the raw, "::"-separated class-path pattern (may contain "*").
	// It is validated when the per-transport trie is built.
	pattern string
	// val is the numeric transport status to apply when this pattern matches.
	// For HTTP this is the final value; for gRPC the builder stores ints and
	// converts to codes.Code at freeze time.
	val int
}

type builder struct {
	// httpOverride holds exact per-kind HTTP overrides, keyed by kind name.
	httpOverride map[string]int
	// grpcOverride holds exact per-kind gRPC overrides as ints; converted in New().
	grpcOverride map[string]int

	// httpRules holds class-path LPM rules for HTTP, compiled into a segment
	// trie when the snapshot is frozen.
	httpRules []classRule
	// grpcRules holds class-path LPM rules for gRPC.
	grpcRules []classRule

	// global fallbacks used when no tier can decide.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder with the hard fallbacks pre-set.
func newBuilder() *builder {
	return &builder{
		httpOverride: make(map[string]int),
		grpcOverride: make(map[string]int),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
