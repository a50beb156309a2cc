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

// Standard kind catalog.
//
// These kinds cover the failure classes that almost every service ends up
// defining. They are declared in exactly the shape the kind emitter produces,
// so projects can mix hand-picked standard kinds with generated ones in the
// same taxonomy.
//
// The numeric codes follow the HTTP status space: this is what makes Side()
// meaningful and what the default transport mapping in mapper/ builds on.
var (
	// UnknownError is the fallback kind for failures that no more specific
	// kind describes. Use it when classifying an error at a boundary where
	// nothing better is known.
	UnknownError = New("UnknownError", "Err-00001", 500, "Unexpected error")

	// InternalError marks failures inside the service itself: broken
	// invariants, impossible states, bugs. The root cause is typically
	// attached as the error cause, not exposed to callers.
	InternalError = New("InternalError", "Err-00002", 500, "Internal error")

	// IoError marks failures of input/output operations: files, sockets,
	// pipes. The concrete syscall error usually becomes the error message.
	IoError = New("IoError", "Err-00003", 400, "IO error")

	// ValidationError marks client input that violates a structural or
	// semantic invariant: bad format, out-of-range value, missing field.
	ValidationError = New("ValidationError", "Err-00004", 400, "Validation error")

	// NotFound marks lookups of entities that do not exist in the current
	// scope: by ID, name, key or reference.
	NotFound = New("NotFound", "Err-00005", 404, "Resource not found")

	// NotAllowed marks operations the caller is not permitted to perform,
	// even though the caller is known and the input is well-formed.
	NotAllowed = New("NotAllowed", "Err-00006", 403, "Operation not allowed")

	// ConfigurationError marks invalid or missing runtime configuration.
	// These are deployment problems, not caller problems, hence server side.
	ConfigurationError = New("ConfigurationError", "Err-00007", 500, "Configuration error")

	// NotImplemented marks functionality that is declared but not built yet.
	NotImplemented = New("NotImplemented", "Err-00008", 501, "Not implemented")

	// Unavailable marks a temporarily unreachable downstream dependency:
	// database outages, network partitions, draining backends.
	Unavailable = New("Unavailable", "Err-00009", 503, "Service unavailable")

	// Timeout marks operations that could not complete within their time
	// budget. The cause is often context.DeadlineExceeded.
	Timeout = New("Timeout", "Err-00010", 504, "Operation timed out")
)
