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
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/cdumay/oxiderr-derive/compiler/parse"
)

// ErrorFile emits one concrete error type per definition into a single
// in-memory file. Each type satisfies the apis.AsError contract; the compile
// guard at the end of each block makes a contract drift a build failure in
// the emitted package rather than a runtime surprise.
func (g *Generator) ErrorFile(defs []parse.ErrorDef) (*jen.File, error) {
	f := g.newFile()
	for _, d := range defs {
		kindExpr, err := g.kindExpr(d)
		if err != nil {
			return nil, err
		}
		g.errorType(f, d, kindExpr)
	}
	return f, nil
}

// kindExpr resolves a kind reference into the expression the emitted code
// uses to name it. Bare identifiers stay local; qualified paths resolve
// through Config.KindImports.
func (g *Generator) kindExpr(d parse.ErrorDef) (*jen.Statement, error) {
	i := strings.LastIndex(d.KindRef, ".")
	if i < 0 {
		return jen.Id(d.KindRef), nil
	}
	alias, name := d.KindRef[:i], d.KindRef[i+1:]
	path, ok := g.cfg.KindImports[alias]
	if !ok {
		return nil, NewGenerationError(d.Name,
			fmt.Sprintf("no import mapping for kind package %q in reference %q", alias, d.KindRef), nil)
	}
	return jen.Qual(path, name), nil
}

// errorType emits the full definition block for one error type.
func (g *Generator) errorType(f *jen.File, d parse.ErrorDef, kindExpr *jen.Statement) {
	name := d.Name
	kindVar := name + "Kind"
	runtime := g.cfg.Runtime
	detailsType := func() *jen.Statement {
		return jen.Map(jen.String()).Op("*").Qual(structpbPkg, "Value")
	}

	f.Commentf("%s is the kind %s is classified under.", kindVar, name)
	f.Var().Id(kindVar).Op("=").Add(kindExpr)

	f.Commentf("%s is an error classified under the %s kind.", name, d.KindRef)
	f.Type().Id(name).Struct(
		jen.Id("class").String(),
		jen.Id("message").String(),
		jen.Id("details").Add(detailsType()),
	)

	f.Commentf("New%s returns a %s carrying the kind's default message and no details.", name, name)
	f.Func().Id("New"+name).Params().Id(name).Block(
		jen.Return(jen.Id(name).Values(jen.Dict{
			jen.Id("class"):   jen.Qual(runtime, "FormatClass").Call(jen.Id(kindVar), jen.Lit(name)),
			jen.Id("message"): jen.Id(kindVar).Dot("Description").Call(),
		})),
	)

	f.Commentf("Convert%s rebuilds err as a %s. The source's details move to the new", name, name)
	f.Comment("instance, and the source itself, serialized without its details, is stored")
	f.Comment("under the origin key, replacing any detail already using that key.")
	f.Func().Id("Convert"+name).
		Params(jen.Id("err").Op("*").Qual(runtime, "Error")).
		Params(jen.Id(name), jen.Error()).
		Block(
			jen.Id("clone").Op(":=").Id("err").Dot("Clone").Call(),
			jen.Id("merged").Op(":=").Make(detailsType(), jen.Len(jen.Id("clone").Dot("Details")).Op("+").Lit(1)),
			jen.For(jen.List(jen.Id("k"), jen.Id("v")).Op(":=").Range().Id("clone").Dot("Details")).Block(
				jen.Id("merged").Index(jen.Id("k")).Op("=").Id("v"),
			),
			jen.Id("clone").Dot("Details").Op("=").Nil(),
			jen.List(jen.Id("origin"), jen.Id("serr")).Op(":=").Id("clone").Dot("ToValue").Call(),
			jen.If(jen.Id("serr").Op("!=").Nil()).Block(
				jen.Return(jen.Id(name).Values(), jen.Id("serr")),
			),
			jen.Id("merged").Index(jen.Qual(runtime, "OriginKey")).Op("=").Id("origin"),
			jen.Id("e").Op(":=").Id("New"+name).Call(),
			jen.Id("e").Dot("details").Op("=").Id("merged"),
			jen.Return(jen.Id("e"), jen.Nil()),
		)

	f.Comment("SetMessage replaces the instance message and returns the updated value.")
	f.Func().Params(jen.Id("e").Id(name)).Id("SetMessage").Params(jen.Id("message").String()).Id(name).Block(
		jen.Id("e").Dot("message").Op("=").Id("message"),
		jen.Return(jen.Id("e")),
	)

	f.Comment("SetDetails replaces the detail map and returns the updated value.")
	f.Func().Params(jen.Id("e").Id(name)).Id("SetDetails").Params(jen.Id("details").Add(detailsType())).Id(name).Block(
		jen.Id("e").Dot("details").Op("=").Id("details"),
		jen.Return(jen.Id("e")),
	)

	f.Commentf("Kind returns the kind %s is classified under.", name)
	f.Func().Params(jen.Id(name)).Id("Kind").Params().Qual(g.cfg.kindPackage(), "Kind").Block(
		jen.Return(jen.Id(kindVar)),
	)

	f.Comment("Class returns the classification path of the error.")
	f.Func().Params(jen.Id("e").Id(name)).Id("Class").Params().String().Block(
		jen.Return(jen.Id("e").Dot("class")),
	)

	f.Comment("Message returns the instance message.")
	f.Func().Params(jen.Id("e").Id(name)).Id("Message").Params().String().Block(
		jen.Return(jen.Id("e").Dot("message")),
	)

	f.Comment("Details returns a copy of the detail map, or nil when there are none.")
	f.Func().Params(jen.Id("e").Id(name)).Id("Details").Params().Add(detailsType()).Block(
		jen.If(jen.Id("e").Dot("details").Op("==").Nil()).Block(
			jen.Return(jen.Nil()),
		),
		jen.Id("out").Op(":=").Make(detailsType(), jen.Len(jen.Id("e").Dot("details"))),
		jen.For(jen.List(jen.Id("k"), jen.Id("v")).Op(":=").Range().Id("e").Dot("details")).Block(
			jen.Id("out").Index(jen.Id("k")).Op("=").Id("v"),
		),
		jen.Return(jen.Id("out")),
	)

	f.Comment("Error implements the error interface.")
	f.Func().Params(jen.Id("e").Id(name)).Id("Error").Params().String().Block(
		jen.Return(jen.Qual("fmt", "Sprintf").Call(
			jen.Lit("[%s] %s (%d): %s"),
			jen.Id(kindVar).Dot("MessageID").Call(),
			jen.Lit(name),
			jen.Id(kindVar).Dot("Code").Call(),
			jen.Id("e").Dot("message"),
		)),
	)

	f.Var().Id("_").Qual(g.cfg.apisPackage(), "AsError").Op("=").Id(name).Values()
}
