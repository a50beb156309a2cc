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

// Package kind defines the host representation of error kinds.
//
// A "kind" is the immutable classification record behind every concrete
// error type: a stable identifier, a message ID, a numeric code and a
// human-readable description. Kinds are what the kind emitter in
// compiler/gen binds its output to, and what generated error types hold as
// their per-type classification constant.
//
// The package is intentionally tiny: one value type, its accessors, and a
// standard catalog of common kinds. It has no dependencies and can be
// imported from anywhere, including generated code.
package kind
