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
	"github.com/dave/jennifer/jen"

	"github.com/cdumay/oxiderr-derive/compiler/parse"
)

// KindFile emits the kind catalog as a single in-memory file: one package-level
// binding per definition, in input order.
//
// The definition's own identifier is stringified into the emitted tuple, so
// the name a kind reports at runtime always matches the name it is bound to.
// Duplicate identifiers are emitted as-is and fail later, when the output is
// compiled.
func (g *Generator) KindFile(defs []parse.KindDef) *jen.File {
	f := g.newFile()
	f.Var().DefsFunc(func(grp *jen.Group) {
		for _, d := range defs {
			grp.Id(d.Name).Op("=").Qual(g.cfg.kindPackage(), "New").Call(
				jen.Lit(d.Name),
				jen.Lit(d.Message),
				jen.Lit(d.Code),
				jen.Lit(d.Description),
			)
		}
	})
	return f
}
