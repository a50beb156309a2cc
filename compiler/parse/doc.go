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

// Package parse turns taxonomy source text into definition lists.
//
// Two grammars are supported, both token-compatible with Go source (the
// tokenizer is the standard library go/scanner):
//
//	kind-list   ::= kind-entry (',' kind-entry)* ','?
//	kind-entry  ::= IDENT '=' '(' STRING ',' INT ',' STRING ')'
//
//	error-list  ::= error-entry (','? error-entry)*
//	error-entry ::= IDENT '=' TYPE-PATH
//
// ParseKinds and ParseErrors validate structure only. They deliberately do
// not resolve type paths, reject duplicate identifiers, or perform any other
// cross-entry semantic check: those collisions surface when the emitted code
// is compiled. A malformed entry aborts the whole batch with a *SyntaxError
// pointing at the offending token; there is no partial output.
package parse
