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
Package interpreter supplies the global scope of a lispp session: the
special forms (define, set!, lambda, quote, if, and, or) that receive
their arguments unevaluated, and the value-level primitive table
(arithmetic, comparison, predicates, pairs and lists, eval) that
evaluates every argument before running.
*/
package interpreter

import (
	"github.com/AnnaPipko/Lisp-interpreter/ast"
	"github.com/AnnaPipko/Lisp-interpreter/util"
)

/*
builtinFunc is the shape every special form and primitive implements:
given the unevaluated argument nodes of a call and the scope it was
called from, produce a Value or fail.
*/
type builtinFunc func(args []ast.Node, callerScope ast.Scope) (ast.Value, error)

/*
Builtin adapts a builtinFunc to ast.Func so it can live in a scope
exactly like a Lambda does.
*/
type Builtin struct {
	name string
	fn   builtinFunc
}

/*
NewBuiltin names and wraps fn.
*/
func NewBuiltin(name string, fn builtinFunc) *Builtin {
	return &Builtin{name: name, fn: fn}
}

func (b *Builtin) Kind() ast.Kind { return ast.KindBuiltin }
func (b *Builtin) Print() string  { return b.name }

func (b *Builtin) Evaluate(sc ast.Scope) (ast.Value, error) {
	return ast.Value{}, util.NewSyntaxError("function is not self evaluating")
}

func (b *Builtin) Apply(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	return b.fn(args, callerScope)
}

var _ ast.Func = (*Builtin)(nil)

/*
evalAll evaluates every argument node under callerScope, in order,
stopping at the first error - the shared first step of every
value-level primitive (as opposed to a special form, which inspects
its argument nodes unevaluated).
*/
func evalAll(args []ast.Node, callerScope ast.Scope) ([]ast.Value, error) {
	vals := make([]ast.Value, len(args))
	for i, a := range args {
		v, err := a.Evaluate(callerScope)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

/*
requireArgCount gates the arity of a value-level primitive: a mismatch
is a RuntimeError. Callers check the count before evaluating any
argument.
*/
func requireArgCount(name string, args []ast.Node, want int) error {
	if len(args) != want {
		return util.NewRuntimeError("wrong number of arguments in " + name)
	}
	return nil
}

/*
requireFormArgCount gates the arity of a special form, where a
mismatch is a shape violation in the source text and so a SyntaxError.
*/
func requireFormArgCount(name string, args []ast.Node, want int) error {
	if len(args) != want {
		return util.NewSyntaxError("wrong number of arguments in " + name)
	}
	return nil
}

func requireInt(name string, v ast.Value) (int64, error) {
	if !v.IsInt() {
		return 0, util.NewRuntimeError("required number in " + name)
	}
	return v.Int(), nil
}
