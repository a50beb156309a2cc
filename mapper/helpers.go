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
	"strings"

	"google.golang.org/grpc/codes"
)

// freezeHTTPOverrides makes an immutable copy of the HTTP overrides map.
// Used when finalizing the mapper so later mutations to the builder cannot
// affect the snapshot.
func freezeHTTPOverrides(src map[string]int) map[string]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPCOverrides makes an immutable copy of the gRPC overrides map,
// converting builder-style int values into typed gRPC codes.
func freezeGRPCOverrides(src map[string]int) map[string]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

// normalizePattern canonicalizes a user-supplied class-path pattern before
// trie insertion. Only surrounding whitespace is stripped; structural
// validation happens in the trie.
func normalizePattern(raw string) string {
	return strings.TrimSpace(raw)
}

// grpcName renders a gRPC code the way Explain prints it, e.g. "NOT_FOUND(5)".
func grpcName(c codes.Code) string {
	return strings.ToUpper(snakeCase(c.String()))
}

// snakeCase converts the camel-case codes.Code string into snake case,
// matching the canonical gRPC status names.
func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' && i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return b.String()
}
