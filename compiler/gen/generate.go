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

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"

	"github.com/cdumay/oxiderr-derive/compiler/parse"
)

// KindsFileName and ErrorsFileName are the file names Generate writes under
// the output directory.
const (
	KindsFileName  = "kinds.go"
	ErrorsFileName = "errors.go"
)

// Generator emits taxonomy code from parsed definitions.
type Generator struct {
	cfg *Config
}

// New creates a Generator with the given options applied over defaults.
func New(opts ...Option) (*Generator, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg}, nil
}

// Generate renders the kind catalog and the error types under outDir as
// kinds.go and errors.go. An empty definition list skips its file entirely.
// File writes run in parallel; the first failure wins.
//
// Either both files are rendered or none is written: rendering happens
// in-memory before any file is touched, so a resolution failure in the error
// pass never leaves a half-written output directory behind.
func (g *Generator) Generate(ctx context.Context, outDir string, kinds []parse.KindDef, errs []parse.ErrorDef) error {
	var files []renderedFile
	if len(kinds) > 0 {
		buf, err := render(g.KindFile(kinds), KindsFileName)
		if err != nil {
			return err
		}
		files = append(files, renderedFile{name: KindsFileName, src: buf})
	}
	if len(errs) > 0 {
		f, err := g.ErrorFile(errs)
		if err != nil {
			return err
		}
		buf, err := render(f, ErrorsFileName)
		if err != nil {
			return err
		}
		files = append(files, renderedFile{name: ErrorsFileName, src: buf})
	}
	if len(files) == 0 {
		return nil
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	errg, _ := errgroup.WithContext(ctx)
	for _, rf := range files {
		errg.Go(func() error {
			return os.WriteFile(filepath.Join(outDir, rf.name), rf.src, 0o644)
		})
	}
	return errg.Wait()
}

type renderedFile struct {
	name string
	src  []byte
}

// render materializes a jennifer file. A render failure here means an emitted
// construct was structurally invalid, which is a generator bug, but it is
// still reported as an error rather than a panic.
func render(f *jen.File, name string) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, NewGenerationError(name, "render failed", err)
	}
	return buf.Bytes(), nil
}

// newFile creates an output file shell with the generated-code marker and
// stable import aliases for the runtime packages.
func (g *Generator) newFile() *jen.File {
	f := jen.NewFile(g.cfg.Package)
	if g.cfg.Header != "" {
		f.HeaderComment(g.cfg.Header)
	}
	f.HeaderComment("Code generated by oxiderrgen. DO NOT EDIT.")
	f.ImportName(g.cfg.Runtime, "oxiderr")
	f.ImportName(g.cfg.kindPackage(), "kind")
	f.ImportName(g.cfg.apisPackage(), "apis")
	f.ImportName(structpbPkg, "structpb")
	return f
}
