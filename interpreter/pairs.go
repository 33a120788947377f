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

func requirePair(name string, v ast.Value) (*ast.Pair, error) {
	if v.IsNode() {
		if p, ok := v.AsNode().(*ast.Pair); ok {
			return p, nil
		}
	}
	return nil, util.NewRuntimeError("required pair in " + name)
}

func consOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	if err := requireArgCount("cons", args, 2); err != nil {
		return ast.Value{}, err
	}
	vals, err := evalAll(args, callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	carNode, err := ast.NodeFromValue(vals[0])
	if err != nil {
		return ast.Value{}, err
	}
	cdrNode, err := ast.NodeFromValue(vals[1])
	if err != nil {
		return ast.Value{}, err
	}
	return ast.NewNodeValue(ast.NewPair(carNode, cdrNode)), nil
}

func carOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	if err := requireArgCount("car", args, 1); err != nil {
		return ast.Value{}, err
	}
	vals, err := evalAll(args, callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	p, err := requirePair("car", vals[0])
	if err != nil {
		return ast.Value{}, err
	}
	return ast.ValueFromNode(p.Car()), nil
}

func cdrOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	if err := requireArgCount("cdr", args, 1); err != nil {
		return ast.Value{}, err
	}
	vals, err := evalAll(args, callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	p, err := requirePair("cdr", vals[0])
	if err != nil {
		return ast.Value{}, err
	}
	return ast.ValueFromNode(p.Cdr()), nil
}

func setCarOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	if err := requireArgCount("set-car!", args, 2); err != nil {
		return ast.Value{}, err
	}
	vals, err := evalAll(args, callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	p, err := requirePair("set-car!", vals[0])
	if err != nil {
		return ast.Value{}, err
	}
	n, err := ast.NodeFromValue(vals[1])
	if err != nil {
		return ast.Value{}, err
	}
	p.SetCar(n)
	return ast.Value{}, nil
}

func setCdrOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	if err := requireArgCount("set-cdr!", args, 2); err != nil {
		return ast.Value{}, err
	}
	vals, err := evalAll(args, callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	p, err := requirePair("set-cdr!", vals[0])
	if err != nil {
		return ast.Value{}, err
	}
	n, err := ast.NodeFromValue(vals[1])
	if err != nil {
		return ast.Value{}, err
	}
	p.SetCdr(n)
	return ast.Value{}, nil
}

/*
listOpBuild builds a fresh proper list out of its (already evaluated)
arguments.
*/
func listOpBuild(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	vals, err := evalAll(args, callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	nodes := make([]ast.Node, len(vals))
	for i, v := range vals {
		n, err := ast.NodeFromValue(v)
		if err != nil {
			return ast.Value{}, err
		}
		nodes[i] = n
	}
	return ast.NewNodeValue(ast.ListFromNodes(nodes)), nil
}

func listElements(name string, v ast.Value) ([]ast.Node, error) {
	if v.IsNode() && v.AsNode().Kind() == ast.KindEmpty {
		return nil, nil
	}
	p, err := requirePair(name, v)
	if err != nil {
		return nil, err
	}
	items, tail := p.Elements()
	if tail.Kind() != ast.KindEmpty {
		return nil, util.NewRuntimeError("required proper list in " + name)
	}
	return items, nil
}

func listRefOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	if err := requireArgCount("list-ref", args, 2); err != nil {
		return ast.Value{}, err
	}
	vals, err := evalAll(args, callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	items, err := listElements("list-ref", vals[0])
	if err != nil {
		return ast.Value{}, err
	}
	idx, err := requireInt("list-ref", vals[1])
	if err != nil {
		return ast.Value{}, err
	}
	if idx < 0 || int(idx) >= len(items) {
		return ast.Value{}, util.NewRuntimeError("index out of range in list-ref")
	}
	return ast.ValueFromNode(items[idx]), nil
}

func listTailOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	if err := requireArgCount("list-tail", args, 2); err != nil {
		return ast.Value{}, err
	}
	vals, err := evalAll(args, callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	items, err := listElements("list-tail", vals[0])
	if err != nil {
		return ast.Value{}, err
	}
	idx, err := requireInt("list-tail", vals[1])
	if err != nil {
		return ast.Value{}, err
	}
	if idx < 0 || int(idx) > len(items) {
		return ast.Value{}, util.NewRuntimeError("index out of range in list-tail")
	}
	return ast.NewNodeValue(ast.ListFromNodes(items[idx:])), nil
}
