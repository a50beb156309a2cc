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

package kind

import "fmt"

// Kind is the immutable classification record shared by zero or more concrete
// error types.
//
// It is a 4-tuple of:
//   - name: the stable identifier of the kind, e.g. "IoError";
//   - messageID: the machine-friendly message identifier, e.g. "Err-00001".
//     This is what log scrapers and support tooling match on;
//   - code: the numeric code of the kind. Codes follow the HTTP status space
//     by convention (400-499 client side, 500+ server side), which is also
//     how Side() classifies them;
//   - description: the human-readable default description. Error types
//     classified under this kind use it as their default message.
//
// A Kind is defined once (usually by generated code, see compiler/gen) and
// never mutated: all fields are unexported and only reachable through
// accessors. Kinds are plain values and safe to copy, compare and share
// between goroutines.
type Kind struct {
	name        string
	messageID   string
	code        int
	description string
}

// Sides of the error classification, as reported by Kind.Side.
//
// The side is the first segment of a generated error's class path
// ("<side>::<kind-name>::<type-name>") and tells the reader which party is
// responsible for the failure.
const (
	// SideClient marks kinds with codes in the 400-499 range.
	SideClient = "Client"

	// SideServer marks kinds with codes of 500 and above.
	SideServer = "Server"

	// SideUnknown marks kinds whose code falls outside both ranges.
	// Such kinds are legal but unusual; taxonomies normally stick to the
	// HTTP-like code space.
	SideUnknown = "Unknown"
)

// New builds a Kind value. It is the single construction path for kinds and
// the function the kind emitter binds generated kind definitions to.
//
// New performs no validation: the generator guarantees the name matches the
// source identifier, and messageID/description are free-form display strings.
func New(name, messageID string, code int, description string) Kind {
	return Kind{
		name:        name,
		messageID:   messageID,
		code:        code,
		description: description,
	}
}

// Name returns the stable identifier of the kind, e.g. "IoError".
// For generated kinds this always equals the name of the emitted binding.
func (k Kind) Name() string { return k.name }

// MessageID returns the machine-friendly message identifier, e.g. "Err-00001".
func (k Kind) MessageID() string { return k.messageID }

// Code returns the numeric code of the kind.
func (k Kind) Code() int { return k.code }

// Description returns the human-readable default description of the kind.
func (k Kind) Description() string { return k.description }

// Side classifies the kind by its numeric code:
//
//	400-499 -> SideClient
//	>= 500  -> SideServer
//	other   -> SideUnknown
//
// The result is the leading segment of generated class paths.
func (k Kind) Side() string {
	switch {
	case k.code >= 400 && k.code < 500:
		return SideClient
	case k.code >= 500:
		return SideServer
	default:
		return SideUnknown
	}
}

// String renders the kind for logs and diagnostics.
//
// The format is "<name> [<messageID>] (<code>)". It is intentionally distinct
// from the display format of error instances so that a kind printed on its
// own cannot be confused with a rendered error.
func (k Kind) String() string {
	return fmt.Sprintf("%s [%s] (%d)", k.name, k.messageID, k.code)
}
