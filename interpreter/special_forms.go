/*
 * ECAL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package interpreter

import (
	"github.com/AnnaPipko/Lisp-interpreter/ast"
	"github.com/AnnaPipko/Lisp-interpreter/util"
)

/*
defineForm binds a name to a value in the calling scope, in two
shapes: (define name expr) evaluates expr and binds the result, while
(define (name params...) body...) is shorthand for binding name to a
lambda over params closing over the calling scope.
*/
func defineForm(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	if len(args) < 2 {
		return ast.Value{}, util.NewSyntaxError("expected 2 arguments in define")
	}

	if pair, ok := args[0].(*ast.Pair); ok {
		nameNode, ok := pair.Car().(ast.Symbol)
		if !ok {
			return ast.Value{}, util.NewSyntaxError("invalid function declaration")
		}
		params, err := paramNames(pair.Cdr())
		if err != nil {
			return ast.Value{}, err
		}
		body := ast.NewFuncList(args[1:])
		lambda := ast.NewLambda(params, body, callerScope)
		callerScope.Define(nameNode.Name(), ast.NewNodeValue(lambda))
		return ast.Value{}, nil
	}

	nameNode, ok := args[0].(ast.Symbol)
	if !ok {
		return ast.Value{}, util.NewSyntaxError("variable name expected in define")
	}
	if len(args) != 2 {
		return ast.Value{}, util.NewSyntaxError("expected 2 arguments in define")
	}
	v, err := args[1].Evaluate(callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	callerScope.Define(nameNode.Name(), v)
	return ast.Value{}, nil
}

/*
setForm rebinds an already-defined name. It is a NameError to set! a
name that was never defined.
*/
func setForm(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	if err := requireFormArgCount("set!", args, 2); err != nil {
		return ast.Value{}, err
	}
	nameNode, ok := args[0].(ast.Symbol)
	if !ok {
		return ast.Value{}, util.NewSyntaxError("variable name expected in set!")
	}
	v, err := args[1].Evaluate(callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	if err := callerScope.Assign(nameNode.Name(), v); err != nil {
		return ast.Value{}, err
	}
	return v, nil
}

/*
lambdaForm builds a Lambda closing over the calling scope:
(lambda (params...) body...).
*/
func lambdaForm(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	if len(args) < 2 {
		return ast.Value{}, util.NewSyntaxError("expected at least 2 arguments in lambda")
	}
	params, err := paramNames(args[0])
	if err != nil {
		return ast.Value{}, err
	}
	body := ast.NewFuncList(args[1:])
	return ast.NewNodeValue(ast.NewLambda(params, body, callerScope)), nil
}

/*
paramNames reads a lambda's parameter list node into a slice of
names. A node that is not a Pair - for example Empty, or a bare name -
is treated as a zero-parameter list. Any parameter list that is
improper, or names something other than a Var, is a SyntaxError per
the shared "invalid function declaration" wording define and lambda
both raise on a malformed parameter list.
*/
func paramNames(n ast.Node) ([]string, error) {
	pair, ok := n.(*ast.Pair)
	if !ok {
		return nil, nil
	}
	items, tail := pair.Elements()
	if tail.Kind() != ast.KindEmpty {
		return nil, util.NewSyntaxError("invalid function declaration")
	}
	names := make([]string, len(items))
	for i, it := range items {
		sym, ok := it.(ast.Symbol)
		if !ok {
			return nil, util.NewSyntaxError("invalid function declaration")
		}
		names[i] = sym.Name()
	}
	return names, nil
}

/*
quoteForm returns its single argument node unevaluated, as a Value.
*/
func quoteForm(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	if err := requireFormArgCount("quote", args, 1); err != nil {
		return ast.Value{}, err
	}
	return ast.NewNodeValue(args[0]), nil
}

/*
ifForm evaluates the condition and then at most one branch, per
lispp's truthiness rule (everything but #f is true). The else branch
is optional: with a false condition and no third argument, if returns
the Undefined value, which prints as nothing.
*/
func ifForm(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return ast.Value{}, util.NewSyntaxError("expected 2 or 3 arguments in if")
	}
	cond, err := args[0].Evaluate(callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	if cond.Truthy() {
		return args[1].Evaluate(callerScope)
	}
	if len(args) == 3 {
		return args[2].Evaluate(callerScope)
	}
	return ast.Value{}, nil
}

/*
andForm evaluates its arguments left to right, short-circuiting on the
first false value; with no arguments it is #t.
*/
func andForm(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	result := ast.NewBool(true)
	for _, a := range args {
		v, err := a.Evaluate(callerScope)
		if err != nil {
			return ast.Value{}, err
		}
		if !v.Truthy() {
			return v, nil
		}
		result = v
	}
	return result, nil
}

/*
orForm evaluates its arguments left to right, short-circuiting on the
first true value; with no arguments it is #f.
*/
func orForm(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	for _, a := range args {
		v, err := a.Evaluate(callerScope)
		if err != nil {
			return ast.Value{}, err
		}
		if v.Truthy() {
			return v, nil
		}
	}
	return ast.NewBool(false), nil
}
