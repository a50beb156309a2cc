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

// Command oxiderrgen compiles taxonomy source files into Go packages.
//
// Usage:
//
//	oxiderrgen -kinds kinds.oxt -errors errors.oxt -pkg fileops -out ./fileops
//
// At least one of -kinds or -errors is required. Qualified kind references in
// the error-list resolve through repeatable -map alias=importpath flags.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cdumay/oxiderr-derive/compiler/gen"
	"github.com/cdumay/oxiderr-derive/compiler/parse"
)

func main() {
	var (
		kindsPath  = flag.String("kinds", "", "path to the kind-list source file")
		errorsPath = flag.String("errors", "", "path to the error-list source file")
		pkg        = flag.String("pkg", "taxonomy", "package name of the generated files")
		out        = flag.String("out", ".", "output directory")
		runtimeMod = flag.String("runtime", gen.DefaultRuntime, "import path of the runtime module")
		header     = flag.String("header", "", "extra header comment for generated files")
	)
	var mappings []gen.Option
	flag.Func("map", "kind package mapping as alias=importpath (repeatable)", func(v string) error {
		alias, path, ok := strings.Cut(v, "=")
		if !ok {
			return fmt.Errorf("expected alias=importpath, got %q", v)
		}
		mappings = append(mappings, gen.WithKindImport(alias, path))
		return nil
	})
	flag.Parse()

	if *kindsPath == "" && *errorsPath == "" {
		fmt.Fprintln(os.Stderr, "oxiderrgen: at least one of -kinds or -errors is required")
		flag.Usage()
		os.Exit(2)
	}

	opts := append([]gen.Option{
		gen.WithPackage(*pkg),
		gen.WithRuntime(*runtimeMod),
		gen.WithHeader(*header),
	}, mappings...)

	if err := run(*kindsPath, *errorsPath, *out, opts); err != nil {
		fmt.Fprintln(os.Stderr, "oxiderrgen:", err)
		os.Exit(1)
	}
}

func run(kindsPath, errorsPath, out string, opts []gen.Option) error {
	var (
		kinds []parse.KindDef
		errs  []parse.ErrorDef
	)
	if kindsPath != "" {
		src, err := os.ReadFile(kindsPath)
		if err != nil {
			return err
		}
		if kinds, err = parse.ParseKinds(kindsPath, src); err != nil {
			return err
		}
	}
	if errorsPath != "" {
		src, err := os.ReadFile(errorsPath)
		if err != nil {
			return err
		}
		if errs, err = parse.ParseErrors(errorsPath, src); err != nil {
			return err
		}
	}

	g, err := gen.New(opts...)
	if err != nil {
		return err
	}
	return g.Generate(context.Background(), out, kinds, errs)
}
