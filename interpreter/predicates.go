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
)

func notOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	if err := requireArgCount("not", args, 1); err != nil {
		return ast.Value{}, err
	}
	v, err := args[0].Evaluate(callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	return ast.NewBool(!v.Truthy()), nil
}

func nullOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	if err := requireArgCount("null?", args, 1); err != nil {
		return ast.Value{}, err
	}
	v, err := args[0].Evaluate(callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	return ast.NewBool(v.IsNode() && v.AsNode().Kind() == ast.KindEmpty), nil
}

func pairOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	if err := requireArgCount("pair?", args, 1); err != nil {
		return ast.Value{}, err
	}
	v, err := args[0].Evaluate(callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	_, ok := v.AsNode().(*ast.Pair)
	return ast.NewBool(v.IsNode() && ok), nil
}

func numberOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	if err := requireArgCount("number?", args, 1); err != nil {
		return ast.Value{}, err
	}
	v, err := args[0].Evaluate(callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	return ast.NewBool(v.IsInt()), nil
}

func booleanOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	if err := requireArgCount("boolean?", args, 1); err != nil {
		return ast.Value{}, err
	}
	v, err := args[0].Evaluate(callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	return ast.NewBool(v.IsBool()), nil
}

func symbolOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	if err := requireArgCount("symbol?", args, 1); err != nil {
		return ast.Value{}, err
	}
	v, err := args[0].Evaluate(callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	_, ok := v.AsNode().(ast.Symbol)
	return ast.NewBool(v.IsNode() && ok), nil
}

func listOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	if err := requireArgCount("list?", args, 1); err != nil {
		return ast.Value{}, err
	}
	v, err := args[0].Evaluate(callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	return ast.NewBool(v.IsNode() && ast.IsProperList(v.AsNode())), nil
}

func eqOpIdentity(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	if err := requireArgCount("eq?", args, 2); err != nil {
		return ast.Value{}, err
	}
	vals, err := evalAll(args, callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	return ast.NewBool(vals[0].IdentityEqual(vals[1])), nil
}

func equalOpStructural(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	if err := requireArgCount("equal?", args, 2); err != nil {
		return ast.Value{}, err
	}
	vals, err := evalAll(args, callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	return ast.NewBool(vals[0].StructEqual(vals[1])), nil
}
