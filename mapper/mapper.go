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
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"

	"github.com/cdumay/oxiderr-derive/apis"
	"github.com/cdumay/oxiderr-derive/kind"
	"github.com/cdumay/oxiderr-derive/mapper/internal/classtrie"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained mapper instance; no shared
// references to user-provided structures remain.
//
// Build process overview:
//
//  1. Apply user-provided options (overrides, class rules, fallback).
//  2. Compile class rules into per-transport segment tries supporting
//     longest-prefix-match with '*' as a single-segment wildcard.
//  3. Freeze all maps into fresh copies.
//
// Errors returned from this function indicate invalid class-rule patterns.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	var httpTrie *classtrie.Trie[int]
	if len(b.httpRules) > 0 {
		httpTrie = classtrie.New[int]()
		for _, r := range b.httpRules {
			p := normalizePattern(r.pattern)
			if err := httpTrie.Insert(p, r.val); err != nil {
				return nil, fmt.Errorf("mapper: invalid HTTP class rule %q: %w", r.pattern, err)
			}
		}
	}

	var grpcTrie *classtrie.Trie[codes.Code]
	if len(b.grpcRules) > 0 {
		grpcTrie = classtrie.New[codes.Code]()
		for _, r := range b.grpcRules {
			p := normalizePattern(r.pattern)
			if err := grpcTrie.Insert(p, codes.Code(r.val)); err != nil {
				return nil, fmt.Errorf("mapper: invalid gRPC class rule %q: %w", r.pattern, err)
			}
		}
	}

	m := &mapper{
		httpOverride: freezeHTTPOverrides(b.httpOverride),
		grpcOverride: freezeGRPCOverrides(b.grpcOverride),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}
	return m, nil
}

// mapper is an immutable mapper implementation combining per-kind exact
// overrides, class-path segment tries, and kind-derived defaults. Lookups
// are O(depth) and safe for concurrent use once constructed.
type mapper struct {
	// httpOverride holds explicit HTTP statuses for specific kind names.
	// These take precedence over every other tier.
	httpOverride map[string]int

	// grpcOverride holds explicit gRPC statuses for specific kind names.
	grpcOverride map[string]codes.Code

	// httpTrie resolves HTTP statuses by longest-prefix-match over the class
	// path ("::"-separated, with "*" for one-segment wildcards). Nil when no
	// rules were registered.
	httpTrie *classtrie.Trie[int]

	// grpcTrie resolves gRPC statuses by class-path LPM.
	grpcTrie *classtrie.Trie[codes.Code]

	// fallbackHTTP is used when no tier decides.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when no tier decides.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given kind and class.
//
// Resolution order (highest to lowest):
//  1. exact per-kind override (explicitly registered by kind name);
//  2. longest-prefix-match rule on the class path;
//  3. the kind's numeric code, when it is itself a valid HTTP status;
//  4. configured fallback.
func (m *mapper) HTTPStatus(k kind.Kind, class string) int {
	// 1. Fast path: exact override for this kind.
	if v, ok := m.httpOverride[k.Name()]; ok {
		return v
	}

	// 2. Class-path LPM.
	if v, ok := m.httpTrie.Match(class); ok {
		return v
	}

	// 3. Kind-derived default.
	if v, ok := kindHTTPStatus(k); ok {
		return v
	}

	// 4. Fallback: HTTP must never be zero.
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given kind and class.
// Uses the same precedence as HTTPStatus, but returns gRPC codes; the
// kind-derived tier goes through the canonical HTTP-to-gRPC table.
func (m *mapper) GRPCStatus(k kind.Kind, class string) codes.Code {
	// 1. Exact override.
	if v, ok := m.grpcOverride[k.Name()]; ok {
		return v
	}

	// 2. Class-path LPM.
	if v, ok := m.grpcTrie.Match(class); ok {
		return v
	}

	// 3. Kind-derived default.
	if s, ok := kindHTTPStatus(k); ok {
		if v, ok := grpcForHTTP(s); ok {
			return v
		}
	}

	// 4. Fallback.
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps HTTP/gRPC decisions consistent for a single logical error.
func (m *mapper) Status(k kind.Kind, class string) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(k, class),
		GRPC: m.GRPCStatus(k, class),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular (kind, class) pair.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, rule, kind, or fallback) and, for rule matches, which pattern
// was used.
//
// Example output:
//
//	kind="IoError" class="Client::IoError::FileNotExists"
//	http: source=rule pattern="Client::IoError" -> 404
//	grpc: source=kind -> NOT_FOUND(5)
//
// Notes:
//   - source is one of override, rule, kind, fallback
//   - pattern is the rule as it was stored in the trie (may contain "*")
func (m *mapper) Explain(k kind.Kind, class string) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "kind=%q class=%q\n", k.Name(), class)
	_, _ = fmt.Fprintln(&b, m.explainHTTP(k, class))
	_, _ = fmt.Fprintln(&b, m.explainGRPC(k, class))
	return strings.TrimSuffix(b.String(), "\n")
}

// explainHTTP formats the line describing how the HTTP status was chosen.
func (m *mapper) explainHTTP(k kind.Kind, class string) string {
	if v, ok := m.httpOverride[k.Name()]; ok {
		return fmt.Sprintf("http: source=override -> %d", v)
	}
	if v, ok, pat := m.httpTrie.MatchWithPattern(class); ok {
		return fmt.Sprintf("http: source=rule pattern=%q -> %d", pat, v)
	}
	if v, ok := kindHTTPStatus(k); ok {
		return fmt.Sprintf("http: source=kind -> %d", v)
	}
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

// explainGRPC formats the line describing how the gRPC status was chosen.
func (m *mapper) explainGRPC(k kind.Kind, class string) string {
	if v, ok := m.grpcOverride[k.Name()]; ok {
		return fmt.Sprintf("grpc: source=override -> %s(%d)", grpcName(v), int(v))
	}
	if v, ok, pat := m.grpcTrie.MatchWithPattern(class); ok {
		return fmt.Sprintf("grpc: source=rule pattern=%q -> %s(%d)", pat, grpcName(v), int(v))
	}
	if s, ok := kindHTTPStatus(k); ok {
		if v, ok := grpcForHTTP(s); ok {
			return fmt.Sprintf("grpc: source=kind -> %s(%d)", grpcName(v), int(v))
		}
	}
	return fmt.Sprintf("grpc: source=fallback -> %s(%d)", grpcName(m.fallbackGRPC), int(m.fallbackGRPC))
}
