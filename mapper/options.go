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
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPOverride registers an exact HTTP status for the given kind name.
// Overrides take precedence over every other tier, including class rules.
func WithHTTPOverride(kindName string, status int) Option {
	return func(b *builder) { b.httpOverride[kindName] = status }
}

// WithGRPCOverride registers an exact gRPC status for the given kind name.
// Overrides take precedence over every other tier, including class rules.
func WithGRPCOverride(kindName string, c codes.Code) Option {
	return func(b *builder) { b.grpcOverride[kindName] = int(c) }
}

// WithHTTPClassRule adds an HTTP longest-prefix-match rule over the class
// path ("::"-separated). A more specific pattern wins. Use "*" to match a
// single segment.
func WithHTTPClassRule(pattern string, status int) Option {
	return func(b *builder) { b.httpRules = append(b.httpRules, classRule{pattern, status}) }
}

// WithGRPCClassRule adds a gRPC longest-prefix-match rule over the class
// path ("::"-separated). A more specific pattern wins. Use "*" to match a
// single segment.
func WithGRPCClassRule(pattern string, c codes.Code) Option {
	return func(b *builder) { b.grpcRules = append(b.grpcRules, classRule{pattern, int(c)}) }
}

// WithFallback replaces the last-resort statuses used when no override, no
// class rule, and no kind-derived status applies.
func WithFallback(httpStatus int, grpcCode codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = httpStatus
		b.fallbackGRPC = grpcCode
	}
}
