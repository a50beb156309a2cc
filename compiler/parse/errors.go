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

package parse

import (
	"errors"
	"fmt"
	"go/token"
)

// ErrMalformedEntry is the sentinel every *SyntaxError matches, so callers
// can detect "this is a grammar problem" without inspecting the struct.
var ErrMalformedEntry = errors.New("parse: malformed entry")

// SyntaxError reports a structural violation of the input grammar at a
// specific token.
//
// One SyntaxError fails the whole batch: parsing never resumes after the
// first malformed entry and never produces partial definition lists.
type SyntaxError struct {
	// Pos locates the offending token (file, line, column).
	Pos token.Position

	// Expected describes the construct the grammar required at Pos,
	// e.g. `","`, "identifier", "string literal".
	Expected string

	// Got describes the token actually found.
	Got string
}

// Error implements the error interface.
//
// The format is:
//
//	<file>:<line>:<col>: expected <construct>, found <token>
//
// which is the shape Go programmers already know from the go compiler.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: expected %s, found %s", e.Pos, e.Expected, e.Got)
}

// Is reports whether the target matches the sentinel for grammar errors.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrMalformedEntry
}
