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
Package ast defines the data model shared by the lispp parser and
evaluator: the tagged Value union and the AST Node union. The two are
mutually recursive (a Value can hold a Node, and every Node evaluates
to a Value) and therefore live together in one package to keep the
dependency graph acyclic; a Scope is declared here only as an
interface, implemented by the separate scope package.
*/
package ast

import (
	"strconv"

	"github.com/AnnaPipko/Lisp-interpreter/util"
)

/*
Tag identifies which variant of Value is populated.
*/
type Tag int

/*
Value variants. Undefined is the zero value and marks "no value",
never itself a visible result of a well-typed evaluation.
*/
const (
	Undefined Tag = iota
	IntTag
	BoolTag
	NodeTag
)

/*
Value is a small tagged union over the four kinds of thing lispp
expressions evaluate to: nothing (Undefined), a machine integer, a
boolean, or an AST node (used for quoted data, lambdas, and
builtins). It is a value type - copying a Value is cheap and safe.
*/
type Value struct {
	tag Tag
	i   int64
	b   bool
	n   Node
}

/*
NewInt wraps an integer as a Value.
*/
func NewInt(i int64) Value {
	return Value{tag: IntTag, i: i}
}

/*
NewBool wraps a boolean as a Value.
*/
func NewBool(b bool) Value {
	return Value{tag: BoolTag, b: b}
}

/*
NewNodeValue wraps an AST node as a Value. This is how quoted data,
lambdas, and builtins travel as first-class values.
*/
func NewNodeValue(n Node) Value {
	return Value{tag: NodeTag, n: n}
}

/*
Tag reports which variant is populated.
*/
func (v Value) Tag() Tag {
	return v.tag
}

/*
IsInt, IsBool and IsNode report the populated variant.
*/
func (v Value) IsInt() bool  { return v.tag == IntTag }
func (v Value) IsBool() bool { return v.tag == BoolTag }
func (v Value) IsNode() bool { return v.tag == NodeTag }

/*
Int returns the integer payload. The caller must have checked IsInt.
*/
func (v Value) Int() int64 {
	return v.i
}

/*
Bool returns the boolean payload. The caller must have checked IsBool.
*/
func (v Value) Bool() bool {
	return v.b
}

/*
AsNode returns the node payload. The caller must have checked IsNode.
*/
func (v Value) AsNode() Node {
	return v.n
}

/*
AsFunc returns the node payload as a Func, if it is callable.
*/
func (v Value) AsFunc() (Func, bool) {
	if v.tag != NodeTag {
		return nil, false
	}
	f, ok := v.n.(Func)
	return f, ok
}

/*
Truthy implements lispp's truthiness rule: every value is true except
the boolean #f.
*/
func (v Value) Truthy() bool {
	return !(v.tag == BoolTag && !v.b)
}

/*
Print renders a Value the way the REPL prints a top-level result.
*/
func (v Value) Print() string {
	switch v.tag {
	case IntTag:
		return strconv.FormatInt(v.i, 10)
	case BoolTag:
		if v.b {
			return "#t"
		}
		return "#f"
	case NodeTag:
		return v.n.Print()
	default:
		return ""
	}
}

/*
StructEqual implements equal?: structural recursive equality. Pairs
compare element-wise and a proper list is never equal to an improper
one; Vars compare by name; Ints and Bools compare by value.
*/
func (v Value) StructEqual(other Value) bool {
	if v.tag != other.tag {
		return false
	}
	switch v.tag {
	case Undefined:
		return true
	case IntTag:
		return v.i == other.i
	case BoolTag:
		return v.b == other.b
	case NodeTag:
		return structEqualNode(v.n, other.n)
	}
	return false
}

/*
IdentityEqual implements eq?: reference equality for nodes, with
three exceptions that make it usable at all - Ints and Bools compare
by value, Vars compare by name, and two empty lists are always eq?
regardless of how they were produced.
*/
func (v Value) IdentityEqual(other Value) bool {
	if v.tag != other.tag {
		return false
	}
	switch v.tag {
	case Undefined:
		return true
	case IntTag:
		return v.i == other.i
	case BoolTag:
		return v.b == other.b
	case NodeTag:
		if v.n.Kind() == KindEmpty && other.n.Kind() == KindEmpty {
			return true
		}
		if vv, ok := v.n.(Symbol); ok {
			if ov, ok2 := other.n.(Symbol); ok2 {
				return vv.Name() == ov.Name()
			}
			return false
		}
		return v.n == other.n
	}
	return false
}

/*
NodeFromValue promotes a Value to a Node for contexts that need one
(e.g. storing an evaluated argument in a cons cell, or handing a value
back to eval for a second evaluation). Ints and
Bools are wrapped in a fresh Const; a Node value passes through
unchanged; Undefined has no sensible Node form.
*/
func NodeFromValue(v Value) (Node, error) {
	switch v.tag {
	case IntTag, BoolTag:
		return NewConst(v), nil
	case NodeTag:
		return v.n, nil
	default:
		return nil, util.NewRuntimeError("unexpectable argument type")
	}
}

/*
ValueFromNode is the inverse of NodeFromValue: it reads a stored AST
node back out as a Value, unwrapping a Const back to its plain
Int/Bool payload so data pulled out of a cons cell (car, cdr,
list-ref) can be used directly, and wrapping anything else
(Pair, Var, Quote, Lambda, Builtin) as a NodeTag value.
*/
func ValueFromNode(n Node) Value {
	if c, ok := n.(*constNode); ok {
		return c.v
	}
	return NewNodeValue(n)
}
