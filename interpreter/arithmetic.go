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

func intArgs(name string, args []ast.Node, callerScope ast.Scope) ([]int64, error) {
	vals, err := evalAll(args, callerScope)
	if err != nil {
		return nil, err
	}
	ints := make([]int64, len(vals))
	for i, v := range vals {
		n, err := requireInt(name, v)
		if err != nil {
			return nil, err
		}
		ints[i] = n
	}
	return ints, nil
}

/*
addOp sums its arguments; with no arguments the identity is 0.
*/
func addOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	ints, err := intArgs("+", args, callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	var total int64
	for _, n := range ints {
		total += n
	}
	return ast.NewInt(total), nil
}

/*
subOp with one argument negates it; with more, subtracts every
argument after the first from the first.
*/
func subOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	ints, err := intArgs("-", args, callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	if len(ints) == 0 {
		return ast.Value{}, util.NewRuntimeError("expected at least 1 argument in -")
	}
	if len(ints) == 1 {
		return ast.NewInt(-ints[0]), nil
	}
	total := ints[0]
	for _, n := range ints[1:] {
		total -= n
	}
	return ast.NewInt(total), nil
}

/*
mulOp multiplies its arguments; with no arguments the identity is 1.
*/
func mulOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	ints, err := intArgs("*", args, callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	total := int64(1)
	for _, n := range ints {
		total *= n
	}
	return ast.NewInt(total), nil
}

/*
divOp with one argument is the integer reciprocal (only sensible for
1 or -1, otherwise it truncates to 0); with more, divides the first
argument by each following argument in turn. Division by zero is a
RuntimeError.
*/
func divOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	ints, err := intArgs("/", args, callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	if len(ints) == 0 {
		return ast.Value{}, util.NewRuntimeError("expected at least 1 argument in /")
	}
	if len(ints) == 1 {
		if ints[0] == 0 {
			return ast.Value{}, util.NewRuntimeError("division by zero")
		}
		return ast.NewInt(1 / ints[0]), nil
	}
	total := ints[0]
	for _, n := range ints[1:] {
		if n == 0 {
			return ast.Value{}, util.NewRuntimeError("division by zero")
		}
		total /= n
	}
	return ast.NewInt(total), nil
}

/*
minOp/maxOp require at least one argument.
*/
func minOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	ints, err := intArgs("min", args, callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	if len(ints) == 0 {
		return ast.Value{}, util.NewRuntimeError("expected at least 1 argument in min")
	}
	m := ints[0]
	for _, n := range ints[1:] {
		if n < m {
			m = n
		}
	}
	return ast.NewInt(m), nil
}

func maxOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	ints, err := intArgs("max", args, callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	if len(ints) == 0 {
		return ast.Value{}, util.NewRuntimeError("expected at least 1 argument in max")
	}
	m := ints[0]
	for _, n := range ints[1:] {
		if n > m {
			m = n
		}
	}
	return ast.NewInt(m), nil
}

/*
absOp takes exactly one argument.
*/
func absOp(args []ast.Node, callerScope ast.Scope) (ast.Value, error) {
	if err := requireArgCount("abs", args, 1); err != nil {
		return ast.Value{}, err
	}
	ints, err := intArgs("abs", args, callerScope)
	if err != nil {
		return ast.Value{}, err
	}
	n := ints[0]
	if n < 0 {
		n = -n
	}
	return ast.NewInt(n), nil
}
