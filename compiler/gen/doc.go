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

// Package gen emits Go source from parsed taxonomy definitions.
//
// The generator has two passes. The kind pass turns a kind-list into a
// catalog of kind.Kind bindings. The error pass turns an error-list into
// concrete error types, each implementing the apis.AsError contract:
// constructor with kind defaults, value-receiver SetMessage/SetDetails
// builders, a Convert function that wraps a runtime *oxiderr.Error with its
// serialized form embedded under the origin detail key, and a fixed display
// format.
//
// Emission uses github.com/dave/jennifer, so imports in the output are
// tracked automatically and files render gofmt-clean without a separate
// formatting step.
package gen
