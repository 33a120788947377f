/*
 * ECAL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package parser is a recursive-descent parser turning a lexer.Tokenizer
into ast.Node trees, one top-level expression per Parse call.
*/
package parser

import (
	"strconv"

	"github.com/AnnaPipko/Lisp-interpreter/ast"
	"github.com/AnnaPipko/Lisp-interpreter/lexer"
	"github.com/AnnaPipko/Lisp-interpreter/util"
)

/*
Parser builds one ast.Node tree per Parse call from a shared
Tokenizer. Like the Tokenizer it wraps, it holds exactly one token of
lookahead: Parse loads a fresh token before descending, and whatever
token is current when it returns is left for the next Parse call to
skip past.
*/
type Parser struct {
	tok *lexer.Tokenizer
}

/*
New builds a Parser reading tokens from tok.
*/
func New(tok *lexer.Tokenizer) *Parser {
	return &Parser{tok: tok}
}

/*
Parse reads and builds exactly one top-level expression.
*/
func (p *Parser) Parse() (ast.Node, error) {
	if err := p.tok.Advance(); err != nil {
		return nil, err
	}
	return p.expression()
}

func (p *Parser) expression() (ast.Node, error) {
	tk := p.tok.Current()

	switch tk.Kind {
	case lexer.NUMBER:
		n, err := strconv.ParseInt(tk.Lexeme, 10, 64)
		if err != nil {
			return nil, util.NewSyntaxErrorAt("invalid number "+tk.Lexeme, tk.Pos)
		}
		return ast.NewConst(ast.NewInt(n)), nil

	case lexer.BOOL:
		return ast.NewConst(ast.NewBool(tk.Lexeme == "#t")), nil

	case lexer.NAME:
		return ast.NewVar(tk.Lexeme), nil

	case lexer.QUOTE:
		if err := p.tok.Advance(); err != nil {
			return nil, err
		}
		held, err := p.expression()
		if err != nil {
			return nil, err
		}
		return ast.NewQuote(held), nil

	case lexer.LPAREN:
		return p.list()

	default:
		return nil, util.NewSyntaxErrorAt("unexpectable token "+tk.Lexeme, tk.Pos)
	}
}

/*
list parses the body of a parenthesised form. The opening '(' is
expected to be the current token on entry; the closing ')' (or the
')' that follows a dotted tail) is left as the current token on
return, unconsumed, matching the one-token-lookahead contract shared
with Tokenizer.
*/
func (p *Parser) list() (ast.Node, error) {
	if err := p.tok.Advance(); err != nil {
		return nil, err
	}
	if p.tok.Current().Kind == lexer.RPAREN {
		return ast.Empty, nil
	}

	var items []ast.Node

	first, err := p.expression()
	if err != nil {
		return nil, err
	}
	items = append(items, first)

	if err := p.tok.Advance(); err != nil {
		return nil, err
	}

	for {
		k := p.tok.Current().Kind
		if k == lexer.END || k == lexer.RPAREN || k == lexer.DOT {
			break
		}
		n, err := p.expression()
		if err != nil {
			return nil, err
		}
		items = append(items, n)

		if err := p.tok.Advance(); err != nil {
			return nil, err
		}
	}

	tk := p.tok.Current()

	var tail ast.Node
	switch tk.Kind {
	case lexer.END:
		return nil, util.NewSyntaxErrorAt(") or . expected", tk.Pos)

	case lexer.DOT:
		if err := p.tok.Advance(); err != nil {
			return nil, err
		}
		t, err := p.expression()
		if err != nil {
			return nil, err
		}
		tail = t

		if err := p.tok.Advance(); err != nil {
			return nil, err
		}
		if p.tok.Current().Kind != lexer.RPAREN {
			return nil, util.NewSyntaxErrorAt("invalid pair", p.tok.Current().Pos)
		}

	default: // RPAREN
		tail = ast.Empty
	}

	result := tail
	for i := len(items) - 1; i >= 0; i-- {
		result = ast.NewPair(items[i], result)
	}
	return result, nil
}
