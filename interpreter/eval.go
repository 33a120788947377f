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
evalOp evaluates its single argument, converts the result back to a
Node (wrapping a plain Int or Bool in a Const, passing quoted data
through unchanged), and evaluates that node a second time under the
same calling scope.
*/
func evalOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	if err := requireArgCount("eval", args, 1); err != nil {
		return ast.Value{}, err
	}
	v, err := args[0].Evaluate(callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	n, err := ast.NodeFromValue(v)
	if err != nil {
		return ast.Value{}, err
	}
	return n.Evaluate(callerScope)
}
