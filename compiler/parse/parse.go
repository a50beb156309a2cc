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

package parse

import (
	"go/scanner"
	"go/token"
	"strconv"
)

// ParseKinds parses a kind-list:
//
//	IoError    = ("Err-00001", 400, "IO error"),
//	Unexpected = ("Err-00002", 500, "Unexpected error"),
//
// Entries are comma-separated; the trailing comma is optional. The returned
// slice preserves input order and keeps duplicates as-is. Any structural
// violation aborts the whole batch with a *SyntaxError.
func ParseKinds(filename string, src []byte) ([]KindDef, error) {
	p := newParser(filename, src)
	var defs []KindDef
	for p.tok != token.EOF {
		d, err := p.kindEntry()
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
		switch p.tok {
		case token.COMMA:
			p.next()
		case token.EOF:
			// last entry without trailing comma
		default:
			return nil, p.errorf(`","`)
		}
	}
	return defs, nil
}

// ParseErrors parses an error-list:
//
//	FileRead      = IoError
//	FileNotExists = kinds.IoError,
//
// Comma separators are optional everywhere; the list is terminated by end of
// input. Empty input is a valid zero-entry result. Kind references are kept
// as unresolved path strings; resolving them is the job of the Go compiler
// that later builds the emitted code.
func ParseErrors(filename string, src []byte) ([]ErrorDef, error) {
	p := newParser(filename, src)
	var defs []ErrorDef
	for p.tok != token.EOF {
		pos, name, err := p.expect(token.IDENT, "identifier")
		if err != nil {
			return nil, err
		}
		if _, _, err := p.expect(token.ASSIGN, `"="`); err != nil {
			return nil, err
		}
		ref, err := p.typePath()
		if err != nil {
			return nil, err
		}
		defs = append(defs, ErrorDef{Name: name, KindRef: ref, Pos: pos})
		if p.tok == token.COMMA {
			p.next()
		}
	}
	return defs, nil
}

// parser wraps a go/scanner with one-token lookahead over the taxonomy
// grammars. One parser instance owns one source buffer; there is no state
// shared between invocations.
type parser struct {
	file    *token.File
	s       scanner.Scanner
	pos     token.Pos
	tok     token.Token
	lit     string
	scanErr *SyntaxError
}

func newParser(filename string, src []byte) *parser {
	p := &parser{}
	fset := token.NewFileSet()
	p.file = fset.AddFile(filename, fset.Base(), len(src))
	p.s.Init(p.file, src, p.onScanError, 0)
	p.next()
	return p
}

// onScanError records the first tokenizer-level failure (unterminated string,
// illegal character). It wins over any later structural error, since the
// structural error is usually a consequence of it.
func (p *parser) onScanError(pos token.Position, msg string) {
	if p.scanErr == nil {
		p.scanErr = &SyntaxError{Pos: pos, Expected: "valid token", Got: msg}
	}
}

// next advances to the next significant token.
//
// go/scanner inserts a synthetic semicolon at line ends after literal-like
// tokens; the taxonomy grammars treat newlines as plain whitespace, so those
// synthetic semicolons are skipped. An explicit ";" in the input is NOT
// skipped and fails whatever construct it interrupts.
func (p *parser) next() {
	for {
		p.pos, p.tok, p.lit = p.s.Scan()
		if p.tok == token.SEMICOLON && p.lit == "\n" {
			continue
		}
		return
	}
}

func (p *parser) position() token.Position { return p.file.Position(p.pos) }

// errorf builds the batch-failing error for the current token.
func (p *parser) errorf(expected string) *SyntaxError {
	if p.scanErr != nil {
		return p.scanErr
	}
	return &SyntaxError{Pos: p.position(), Expected: expected, Got: p.describe()}
}

// describe renders the current token for error messages.
func (p *parser) describe() string {
	switch {
	case p.tok == token.EOF:
		return "end of input"
	case p.lit != "":
		return strconv.Quote(p.lit)
	default:
		return strconv.Quote(p.tok.String())
	}
}

// expect consumes the current token if it matches tok, returning its position
// and literal, or fails with expected in the message.
func (p *parser) expect(tok token.Token, expected string) (token.Position, string, error) {
	if p.tok != tok {
		return token.Position{}, "", p.errorf(expected)
	}
	pos, lit := p.position(), p.lit
	p.next()
	return pos, lit, nil
}

// kindEntry parses exactly one IDENT '=' '(' STRING ',' INT ',' STRING ')'.
func (p *parser) kindEntry() (KindDef, error) {
	var (
		d   KindDef
		err error
	)
	d.Pos, d.Name, err = p.expect(token.IDENT, "identifier")
	if err != nil {
		return d, err
	}
	if _, _, err = p.expect(token.ASSIGN, `"="`); err != nil {
		return d, err
	}
	if _, _, err = p.expect(token.LPAREN, `"("`); err != nil {
		return d, err
	}
	if d.Message, err = p.stringLit("message string literal"); err != nil {
		return d, err
	}
	if _, _, err = p.expect(token.COMMA, `","`); err != nil {
		return d, err
	}
	if d.Code, err = p.intLit("code integer literal"); err != nil {
		return d, err
	}
	if _, _, err = p.expect(token.COMMA, `","`); err != nil {
		return d, err
	}
	if d.Description, err = p.stringLit("description string literal"); err != nil {
		return d, err
	}
	if _, _, err = p.expect(token.RPAREN, `")"`); err != nil {
		return d, err
	}
	return d, nil
}

// stringLit consumes a STRING token and unquotes it.
func (p *parser) stringLit(expected string) (string, error) {
	if p.tok != token.STRING {
		return "", p.errorf(expected)
	}
	s, err := strconv.Unquote(p.lit)
	if err != nil {
		return "", p.errorf(expected)
	}
	p.next()
	return s, nil
}

// intLit consumes an INT token. All Go integer literal forms are accepted
// (decimal, hex, octal, binary, with underscores).
func (p *parser) intLit(expected string) (int, error) {
	if p.tok != token.INT {
		return 0, p.errorf(expected)
	}
	n, err := strconv.ParseInt(p.lit, 0, 64)
	if err != nil {
		return 0, p.errorf(expected)
	}
	p.next()
	return int(n), nil
}

// typePath parses IDENT ('.' IDENT)* into an unresolved path string.
func (p *parser) typePath() (string, error) {
	_, seg, err := p.expect(token.IDENT, "type path")
	if err != nil {
		return "", err
	}
	path := seg
	for p.tok == token.PERIOD {
		p.next()
		_, seg, err = p.expect(token.IDENT, `identifier after "."`)
		if err != nil {
			return "", err
		}
		path += "." + seg
	}
	return path, nil
}
