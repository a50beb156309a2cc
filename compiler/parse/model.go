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

import "go/token"

// KindDef is one parsed kind-entry. It is immutable once returned by
// ParseKinds and is consumed exactly once by the kind emitter.
type KindDef struct {
	// Name is the source identifier of the kind, e.g. "IoError". The emitter
	// stringifies it verbatim into the emitted tuple, so the embedded name
	// always matches the binding's own name.
	Name string

	// Message is the message-ID display string, e.g. "Err-00001".
	Message string

	// Code is the numeric code. Non-negative by construction: the grammar
	// has no place for a sign token.
	Code int

	// Description is the human-readable description of the kind.
	Description string

	// Pos is the position of the entry's identifier in the source.
	Pos token.Position
}

// ErrorDef is one parsed error-entry: the generated type's name and a
// reference to the kind it is classified under.
type ErrorDef struct {
	// Name is the name of the error type to generate.
	Name string

	// KindRef is the type-path expression referencing a kind definition.
	// It may be a bare identifier ("IoError") or a qualified path
	// ("kinds.IoError"). Resolution is deferred: the parser only checks
	// that the path is syntactically valid.
	KindRef string

	// Pos is the position of the entry's identifier in the source.
	Pos token.Position
}
