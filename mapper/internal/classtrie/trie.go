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

package classtrie

import (
	"errors"
	"strings"
)

// Separator joins class-path segments, e.g. "Client::IoError::FileNotExists".
const Separator = "::"

// Trie is a segment-aware prefix index for "::"-separated class paths.
// Each node represents one segment; the wildcard "*" matches exactly one
// segment. The trie supports longest-prefix-match with segment boundaries,
// so a more specific rule wins over a shorter one.
type Trie[T any] struct {
	// children contains next segments, including "*" for a single-segment wildcard.
	children map[string]*Trie[T]
	// hasVal marks that this node carries a value for the prefix ending here.
	hasVal bool
	val    T
	// pattern is the canonical pattern (with '*' if a wildcard was used) for
	// this node, set only when hasVal=true. MatchWithPattern reports it for
	// diagnostics, so lookups never rebuild pattern strings.
	pattern string
}

// ErrInvalidPattern is returned when inserting a pattern that is empty, has
// empty or malformed segments, or consists only of wildcards.
var ErrInvalidPattern = errors.New("classtrie: invalid pattern")

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert adds a class-path pattern to the trie and associates it with val.
//
// Examples:
//
//	"Client"
//	"Client::IoError"
//	"*::IoError::FileRead"
//
// The wildcard "*" matches exactly one segment. A pattern made only of "*"
// segments is rejected, because it would catch everything. Returns
// ErrInvalidPattern on malformed input.
func (t *Trie[T]) Insert(pattern string, val T) error {
	if t == nil {
		return ErrInvalidPattern
	}
	segs, ok := splitAndValidate(pattern, true)
	if !ok || len(segs) == 0 {
		return ErrInvalidPattern
	}
	allWild := true
	for _, s := range segs {
		if s != "*" {
			allWild = false
			break
		}
	}
	if allWild {
		return ErrInvalidPattern
	}

	cur := t
	for _, s := range segs {
		child, exists := cur.children[s]
		if !exists {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	if cur.pattern == "" {
		cur.pattern = pattern
	}
	return nil
}

// Match finds the best (deepest) pattern match for a full class path and
// returns (value, true) on success. Both exact segment matches and "*"
// wildcard branches are explored. An invalid class path matches nothing.
func (t *Trie[T]) Match(class string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(class)
	return v, ok
}

// MatchWithPattern is Match plus the stored rule pattern of the winning node,
// for use in diagnostics.
func (t *Trie[T]) MatchWithPattern(class string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	segs, ok := splitAndValidate(class, false)
	if !ok {
		return zero, false, ""
	}

	bestDepth := -1
	var (
		bestVal T
		bestPat string
	)
	var dfs func(n *Trie[T], idx, depth int)
	dfs = func(n *Trie[T], idx, depth int) {
		if n.hasVal && depth > bestDepth {
			bestDepth = depth
			bestVal = n.val
			bestPat = n.pattern
		}
		if idx >= len(segs) {
			return
		}
		if next, ok := n.children[segs[idx]]; ok {
			dfs(next, idx+1, depth+1)
		}
		if next, ok := n.children["*"]; ok {
			dfs(next, idx+1, depth+1)
		}
	}
	dfs(t, 0, 0)

	if bestDepth < 0 {
		return zero, false, ""
	}
	return bestVal, true, bestPat
}

// splitAndValidate splits a "::"-separated string into segments and validates
// each one. When allowWildcard=true, a segment that is exactly "*" is
// accepted. Returns (segments, true) on success, or (nil, false) on invalid
// input.
//
// Note: an empty string is treated as an empty (but valid) segment list so
// callers can match against "".
func splitAndValidate(s string, allowWildcard bool) ([]string, bool) {
	if s == "" {
		return []string{}, true
	}
	segs := strings.Split(s, Separator)
	for _, seg := range segs {
		if !validSegment(seg, allowWildcard) {
			return nil, false
		}
	}
	return segs, true
}

// validSegment reports whether seg is a valid trie segment.
// Rules:
//   - empty segments are invalid;
//   - when allowWildcard=true, the segment "*" is allowed;
//   - otherwise the segment must match: [A-Za-z][A-Za-z0-9_]*
//
// Class paths are built from Go identifiers (side, kind name, type name), so
// the segment alphabet mirrors exported identifier syntax.
func validSegment(seg string, allowWildcard bool) bool {
	if seg == "" {
		return false
	}
	if allowWildcard && seg == "*" {
		return true
	}
	if !isAlpha(seg[0]) {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if isAlpha(c) || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
