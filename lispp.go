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
Package lispp is the single entry point of a minimalist Scheme-like
Lisp interpreter: construct an Interpreter over a byte input and
output, then call Run repeatedly, once per top-level form.
*/
package lispp

import (
	"fmt"
	"io"

	"github.com/AnnaPipko/Lisp-interpreter/interpreter"
	"github.com/AnnaPipko/Lisp-interpreter/lexer"
	"github.com/AnnaPipko/Lisp-interpreter/parser"
	"github.com/AnnaPipko/Lisp-interpreter/scope"
)

/*
Interpreter ties a Tokenizer, a Parser and a global Scope to a single
output stream. It holds all mutable session state: definitions made by
one Run call are visible to the next.
*/
type Interpreter struct {
	tok   *lexer.Tokenizer
	p     *parser.Parser
	scope *scope.Scope
	out   io.Writer
}

/*
New builds an Interpreter reading from in and printing results to out.
*/
func New(in io.Reader, out io.Writer) *Interpreter {
	tok := lexer.New(in)
	return &Interpreter{
		tok:   tok,
		p:     parser.New(tok),
		scope: interpreter.NewGlobalScope(),
		out:   out,
	}
}

/*
HasMore reports whether a token is currently waiting in the input
without consuming it - a driver reading a finite script uses this to
decide when to stop calling Run.
*/
func (i *Interpreter) HasMore() bool {
	return i.tok.HasMore()
}

/*
Run parses exactly one top-level expression and evaluates it. If the
result prints as a non-empty string, it is written to the output as
"     >> <form>\n".
*/
func (i *Interpreter) Run() error {
	node, err := i.p.Parse()
	if err != nil {
		return err
	}

	v, err := node.Evaluate(i.scope)
	if err != nil {
		return err
	}

	if s := v.Print(); s != "" {
		fmt.Fprintf(i.out, "     >> %s\n", s)
	}
	return nil
}
