/*
 * ECAL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package ast

import (
	"strings"

	"github.com/AnnaPipko/Lisp-interpreter/util"
)

/*
Kind identifies the concrete shape of a Node.
*/
type Kind int

/*
Node kinds.
*/
const (
	KindEmpty Kind = iota
	KindConst
	KindVar
	KindQuote
	KindPair
	KindFuncList
	KindLambda
	KindBuiltin
)

/*
Node is any element of the AST. Evaluate interprets the node under a
scope; Print renders it the way quoted data or a REPL result is
displayed.
*/
type Node interface {
	Kind() Kind
	Evaluate(sc Scope) (Value, error)
	Print() string
}

/*
Symbol is implemented by Var nodes, giving access to the bound name
without exposing the concrete type.
*/
type Symbol interface {
	Node
	Name() string
}

/*
Func is a Node that can be applied to a list of unevaluated argument
nodes. Lambdas and builtins implement it; evaluating a Func node
directly (rather than applying it) is a SyntaxError, since a bare
function has no sensible value of its own beyond being callable.
*/
type Func interface {
	Node
	Apply(args []Node, callerScope Scope) (Value, error)
}

/*
Scope is the lookup and binding surface a Node needs during
evaluation. It is declared here, rather than in package scope, purely
to avoid an import cycle: Value and Node need a scope type, but the
concrete scope implementation needs Value and Node. scope.Scope is
the sole implementation.
*/
type Scope interface {
	Lookup(name string) (Value, error)
	Define(name string, v Value)
	Assign(name string, v Value) error
	NewChild() Scope
	Concat(other Scope) Scope
}

/*
emptyNode is the empty list, (). It is immutable and has no payload,
so a single shared instance is safe to hand out everywhere; eq?
additionally special-cases KindEmpty so two Emptys compare equal
regardless of identity.
*/
type emptyNode struct{}

func (e *emptyNode) Kind() Kind { return KindEmpty }

func (e *emptyNode) Evaluate(sc Scope) (Value, error) {
	return Value{}, util.NewRuntimeError("() is not self evaluating")
}

func (e *emptyNode) Print() string { return "()" }

/*
Empty is the empty list node.
*/
var Empty Node = &emptyNode{}

/*
constNode wraps an already-computed Value (an Int or a Bool) so it can
sit inside the AST; evaluating it just returns that Value.
*/
type constNode struct{ v Value }

/*
NewConst builds a self-evaluating literal node.
*/
func NewConst(v Value) Node {
	return &constNode{v: v}
}

func (c *constNode) Kind() Kind { return KindConst }

func (c *constNode) Evaluate(sc Scope) (Value, error) {
	return c.v, nil
}

func (c *constNode) Print() string { return c.v.Print() }

/*
varNode is a bare name reference; evaluating it looks the name up in
the current scope.
*/
type varNode struct{ name string }

/*
NewVar builds a variable-reference node.
*/
func NewVar(name string) Node {
	return &varNode{name: name}
}

func (v *varNode) Kind() Kind     { return KindVar }
func (v *varNode) Name() string   { return v.name }
func (v *varNode) Print() string  { return v.name }

func (v *varNode) Evaluate(sc Scope) (Value, error) {
	return sc.Lookup(v.name)
}

/*
quoteNode wraps a held node so that evaluating it returns the node
itself, unevaluated, as a Value.
*/
type quoteNode struct{ held Node }

/*
NewQuote builds a quote node.
*/
func NewQuote(held Node) Node {
	return &quoteNode{held: held}
}

func (q *quoteNode) Kind() Kind { return KindQuote }

func (q *quoteNode) Evaluate(sc Scope) (Value, error) {
	return NewNodeValue(q.held), nil
}

func (q *quoteNode) Print() string { return "'" + q.held.Print() }

/*
Pair is a cons cell, the building block of every lispp list. Car and
Cdr are mutable through SetCar/SetCdr for set-car!/set-cdr!.
*/
type Pair struct {
	car, cdr Node
}

/*
NewPair conses car onto cdr.
*/
func NewPair(car, cdr Node) *Pair {
	return &Pair{car: car, cdr: cdr}
}

func (p *Pair) Kind() Kind   { return KindPair }
func (p *Pair) Car() Node    { return p.car }
func (p *Pair) Cdr() Node    { return p.cdr }
func (p *Pair) SetCar(n Node) { p.car = n }
func (p *Pair) SetCdr(n Node) { p.cdr = n }

/*
Elements flattens the spine of the pair, returning the car of every
link in order together with the final non-Pair tail (Empty for a
proper list, or an arbitrary node for an improper one).
*/
func (p *Pair) Elements() ([]Node, Node) {
	var items []Node
	var cur Node = p
	for {
		pp, ok := cur.(*Pair)
		if !ok {
			return items, cur
		}
		items = append(items, pp.car)
		cur = pp.cdr
	}
}

/*
Evaluate applies the operator in car to the argument nodes in cdr: the
car is evaluated to a callable Func, the cdr is flattened into an
argument list (a dotted cdr is a SyntaxError - you cannot call a
function with an improper argument list), and the Func decides for
itself which arguments to evaluate.
*/
func (p *Pair) Evaluate(sc Scope) (Value, error) {
	fv, err := p.car.Evaluate(sc)
	if err != nil {
		return Value{}, err
	}

	fn, ok := fv.AsFunc()
	if !ok {
		return Value{}, util.NewRuntimeError(fv.Print() + " is not self evaluating")
	}

	var args []Node
	var tail Node = Empty
	if cdrPair, ok := p.cdr.(*Pair); ok {
		args, tail = cdrPair.Elements()
	} else if p.cdr.Kind() != KindEmpty {
		tail = p.cdr
	}

	if tail.Kind() != KindEmpty {
		return Value{}, util.NewSyntaxError("dotted pair is not self evaluating")
	}

	return fn.Apply(args, sc)
}

func (p *Pair) Print() string {
	items, tail := p.Elements()

	var b strings.Builder
	b.WriteByte('(')
	for i, it := range items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(it.Print())
	}
	if tail.Kind() != KindEmpty {
		b.WriteString(" . ")
		b.WriteString(tail.Print())
	}
	b.WriteByte(')')
	return b.String()
}

/*
IsProperList reports whether n is Empty or a Pair whose flattened tail
is Empty.
*/
func IsProperList(n Node) bool {
	if n.Kind() == KindEmpty {
		return true
	}
	p, ok := n.(*Pair)
	if !ok {
		return false
	}
	_, tail := p.Elements()
	return tail.Kind() == KindEmpty
}

/*
ListFromNodes builds a proper list out of items, right to left.
*/
func ListFromNodes(items []Node) Node {
	var result Node = Empty
	for i := len(items) - 1; i >= 0; i-- {
		result = NewPair(items[i], result)
	}
	return result
}

/*
FuncList is a sequence of body forms evaluated in order, such as a
lambda or define body; its value is that of the last form.
*/
type FuncList struct{ body []Node }

/*
NewFuncList builds a FuncList out of one or more body forms. Callers
are expected to only ever build a non-empty FuncList - lambda and
define both require at least one body expression.
*/
func NewFuncList(body []Node) *FuncList {
	return &FuncList{body: body}
}

func (f *FuncList) Kind() Kind { return KindFuncList }

func (f *FuncList) Evaluate(sc Scope) (Value, error) {
	var last Value
	for _, n := range f.body {
		v, err := n.Evaluate(sc)
		if err != nil {
			return Value{}, err
		}
		last = v
	}
	return last, nil
}

func (f *FuncList) Print() string {
	parts := make([]string, len(f.body))
	for i, n := range f.body {
		parts[i] = n.Print()
	}
	return strings.Join(parts, " ")
}

/*
Lambda is a user-defined function: a parameter list, a body, and the
scope that was active where the lambda was created (its closure).
*/
type Lambda struct {
	params   []string
	body     Node
	captured Scope
}

/*
NewLambda builds a lambda closing over the scope active at creation
time.
*/
func NewLambda(params []string, body Node, captured Scope) *Lambda {
	return &Lambda{params: params, body: body, captured: captured}
}

func (l *Lambda) Kind() Kind    { return KindLambda }
func (l *Lambda) Params() []string { return l.params }
func (l *Lambda) Print() string { return "#lambda" }

func (l *Lambda) Evaluate(sc Scope) (Value, error) {
	return Value{}, util.NewSyntaxError("function is not self evaluating")
}

/*
Apply binds args to the lambda's parameters and evaluates its body.
Arguments are evaluated under a scope that chains the captured scope
in front of the caller's scope, so a lambda can see its own free
variables before falling through to whatever called it; the bindings
then go into a fresh frame parented on the captured scope, and that
frame is itself chained in front of the caller's scope before the body
runs - giving the body visibility into both the closure and the
caller.
*/
func (l *Lambda) Apply(args []Node, callerScope Scope) (Value, error) {
	if len(args) != len(l.params) {
		return Value{}, util.NewSyntaxError("wrong number of arguments to lambda")
	}

	fullScope := l.captured.Concat(callerScope)
	newScope := l.captured.NewChild()

	for i, pname := range l.params {
		v, err := args[i].Evaluate(fullScope)
		if err != nil {
			return Value{}, err
		}
		newScope.Define(pname, v)
	}

	bodyScope := newScope.Concat(callerScope)
	return l.body.Evaluate(bodyScope)
}
