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

/*
chain applies cmp pairwise over args, left to right, the way a
mathematician would read "1 < 2 < 3": every adjacent pair must satisfy
cmp. Fewer than two arguments trivially satisfies the chain.
*/
func chain(name string, args []ast.Node, callerScope ast.Scope, cmp func(a, b int64) bool) (ast.Value, error) {
	ints, err := intArgs(name, args, callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	for i := 1; i < len(ints); i++ {
		if !cmp(ints[i-1], ints[i]) {
			return ast.NewBool(false), nil
		}
	}
	return ast.NewBool(true), nil
}

func eqOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	return chain("=", args, callerScope, func(a, b int64) bool { return a == b })
}

func ltOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	return chain("<", args, callerScope, func(a, b int64) bool { return a < b })
}

func gtOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	return chain(">", args, callerScope, func(a, b int64) bool { return a > b })
}

func leOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	return chain("<=", args, callerScope, func(a, b int64) bool { return a <= b })
}

func geOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	return chain(">=", args, callerScope, func(a, b int64) bool { return a >= b })
}

/*
integerEqualOp is a strict two-argument numeric equality check,
distinct from the variadic chained = above.
*/
func integerEqualOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	if err := requireArgCount("integer-equal?", args, 2); err != nil {
		return ast.Value{}, err
	}
	ints, err := intArgs("integer-equal?", args, callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	return ast.NewBool(ints[0] == ints[1]), nil
}
