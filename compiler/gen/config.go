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

package gen

// DefaultRuntime is the import path of the runtime module the emitted code
// links against.
const DefaultRuntime = "github.com/cdumay/oxiderr-derive"

// structpbPkg is the structured-value package used for detail payloads in the
// emitted code.
const structpbPkg = "google.golang.org/protobuf/types/known/structpb"

// Config holds code generation settings.
type Config struct {
	// Package is the package name of the emitted files.
	Package string

	// Runtime is the import path of the runtime module root. The kind and
	// apis packages are resolved under it.
	Runtime string

	// Header is an extra comment placed above the generated-code marker at
	// the top of each emitted file.
	Header string

	// KindImports maps qualified kind-reference prefixes to import paths.
	// An error-entry "E = kinds.IoError" resolves through KindImports["kinds"].
	KindImports map[string]string
}

func (c *Config) kindPackage() string { return c.Runtime + "/kind" }
func (c *Config) apisPackage() string { return c.Runtime + "/apis" }

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		Package:     "taxonomy",
		Runtime:     DefaultRuntime,
		KindImports: make(map[string]string),
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Option configures code generation.
type Option func(*Config) error

// WithPackage sets the package name of the emitted files.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithRuntime sets the import path of the runtime module the emitted code
// links against. The default is DefaultRuntime.
func WithRuntime(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewConfigError("Runtime", nil, "runtime import path cannot be empty")
		}
		c.Runtime = path
		return nil
	}
}

// WithHeader sets an extra file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithKindImport registers an import path for a qualified kind-reference
// prefix, e.g. WithKindImport("kinds", "example.com/app/kinds").
func WithKindImport(alias, path string) Option {
	return func(c *Config) error {
		if alias == "" {
			return NewConfigError("KindImports", path, "alias cannot be empty")
		}
		if path == "" {
			return NewConfigError("KindImports", alias, "import path cannot be empty")
		}
		c.KindImports[alias] = path
		return nil
	}
}
