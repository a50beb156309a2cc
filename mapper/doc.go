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

// Package mapper resolves error kinds and class paths into transport
// statuses for HTTP and gRPC.
//
// A mapper is built once from options and frozen into an immutable snapshot;
// lookups are read-only and safe for concurrent use. Resolution runs four
// tiers, highest first:
//
//  1. exact per-kind override, registered by kind name;
//  2. longest-prefix-match over the "::"-separated class path, with "*"
//     matching a single segment;
//  3. the kind's own numeric code, when it is a valid HTTP status (the gRPC
//     side derives from it through a canonical HTTP-to-gRPC table);
//  4. the configured fallback (500 / codes.Internal unless changed).
//
// Explain reports which tier decided a given lookup, for use in tests and
// troubleshooting.
package mapper
