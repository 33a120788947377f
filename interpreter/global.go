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
	"devt.de/krotik/common/errorutil"

	"github.com/AnnaPipko/Lisp-interpreter/ast"
	"github.com/AnnaPipko/Lisp-interpreter/scope"
)

/*
registrations lists every name bound in a fresh global scope: the
special forms (which see their arguments unevaluated) followed by the
value-level primitives (which evaluate every argument first).
*/
var registrations = []struct {
	name string
	fn   builtinFunc
}{
	// Special forms.
	{"define", defineForm},
	{"set!", setForm},
	{"lambda", lambdaForm},
	{"quote", quoteForm},
	{"if", ifForm},
	{"and", andForm},
	{"or", orForm},

	// Arithmetic.
	{"+", addOp},
	{"-", subOp},
	{"*", mulOp},
	{"/", divOp},
	{"min", minOp},
	{"max", maxOp},
	{"abs", absOp},

	// Comparison.
	{"=", eqOp},
	{"<", ltOp},
	{">", gtOp},
	{"<=", leOp},
	{">=", geOp},
	{"integer-equal?", integerEqualOp},

	// Predicates.
	{"not", notOp},
	{"null?", nullOp},
	{"pair?", pairOp},
	{"number?", numberOp},
	{"boolean?", booleanOp},
	{"symbol?", symbolOp},
	{"list?", listOp},
	{"eq?", eqOpIdentity},
	{"equal?", equalOpStructural},

	// Pairs and lists.
	{"cons", consOp},
	{"car", carOp},
	{"cdr", cdrOp},
	{"set-car!", setCarOp},
	{"set-cdr!", setCdrOp},
	{"list", listOpBuild},
	{"list-ref", listRefOp},
	{"list-tail", listTailOp},

	// Reflection.
	{"eval", evalOp},
}

/*
NewGlobalScope builds a fresh scope with every special form and
primitive bound under its canonical name.
*/
func NewGlobalScope() *scope.Scope {
	g := scope.New()
	seen := make(map[string]bool, len(registrations))

	for _, r := range registrations {
		errorutil.AssertTrue(!seen[r.name], "duplicate builtin registration: "+r.name)
		seen[r.name] = true
		g.Define(r.name, ast.NewNodeValue(NewBuiltin(r.name, r.fn)))
	}

	return g
}
