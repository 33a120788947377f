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

import "testing"

/*
fakeScope is a minimal map-backed Scope used to exercise Node
evaluation without depending on package scope (which in turn depends
on ast - a real scope is exercised end to end in package scope and in
package interpreter instead).
*/
type fakeScope struct {
	table  map[string]Value
	parent *fakeScope
}

func newFakeScope() *fakeScope {
	return &fakeScope{table: map[string]Value{}}
}

func (s *fakeScope) Lookup(name string) (Value, error) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.table[name]; ok {
			return v, nil
		}
	}
	return Value{}, errUndefined(name)
}

func (s *fakeScope) Define(name string, v Value) { s.table[name] = v }

func (s *fakeScope) Assign(name string, v Value) error {
	for cur := s; cur != nil; cur = cur.parent {
		if _, ok := cur.table[name]; ok {
			cur.table[name] = v
			return nil
		}
	}
	return errUndefined(name)
}

func (s *fakeScope) NewChild() Scope { return &fakeScope{table: map[string]Value{}, parent: s} }

func (s *fakeScope) Concat(other Scope) Scope {
	o, ok := other.(*fakeScope)
	if !ok {
		return s
	}
	return concatFake(s, o)
}

func concatFake(a, b *fakeScope) *fakeScope {
	if a == nil {
		return b
	}
	return &fakeScope{table: a.table, parent: concatFake(a.parent, b)}
}

type undefinedErr string

func (e undefinedErr) Error() string { return "undefined: " + string(e) }

func errUndefined(name string) error { return undefinedErr(name) }

func TestConstEvaluatesToItself(t *testing.T) {
	c := NewConst(NewInt(42))
	v, err := c.Evaluate(newFakeScope())
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsInt() || v.Int() != 42 {
		t.Errorf("got %v, want Int(42)", v)
	}
}

func TestVarLooksUpScope(t *testing.T) {
	sc := newFakeScope()
	sc.Define("x", NewInt(7))

	v, err := NewVar("x").Evaluate(sc)
	if err != nil {
		t.Fatal(err)
	}
	if v.Int() != 7 {
		t.Errorf("got %v, want 7", v)
	}

	if _, err := NewVar("y").Evaluate(sc); err == nil {
		t.Error("expected an error looking up an undefined name")
	}
}

func TestQuoteDoesNotEvaluateHeldNode(t *testing.T) {
	held := NewVar("undefined-name")
	q := NewQuote(held)

	v, err := q.Evaluate(newFakeScope())
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsNode() || v.AsNode() != held {
		t.Errorf("quote should yield the held node unevaluated, got %v", v)
	}
}

func TestPairPrintProperAndImproper(t *testing.T) {
	proper := NewPair(NewConst(NewInt(1)), NewPair(NewConst(NewInt(2)), Empty))
	if got := proper.Print(); got != "(1 2)" {
		t.Errorf("got %q, want (1 2)", got)
	}

	improper := NewPair(NewConst(NewInt(1)), NewConst(NewInt(2)))
	if got := improper.Print(); got != "(1 . 2)" {
		t.Errorf("got %q, want (1 . 2)", got)
	}
}

func TestIsProperList(t *testing.T) {
	proper := NewPair(NewConst(NewInt(1)), Empty)
	improper := NewPair(NewConst(NewInt(1)), NewConst(NewInt(2)))

	if !IsProperList(Empty) {
		t.Error("Empty should be a proper list")
	}
	if !IsProperList(proper) {
		t.Error("(1) should be a proper list")
	}
	if IsProperList(improper) {
		t.Error("(1 . 2) should not be a proper list")
	}
}

func TestStructEqualVsIdentityEqual(t *testing.T) {
	a := NewNodeValue(NewPair(NewConst(NewInt(1)), NewPair(NewConst(NewInt(2)), Empty)))
	b := NewNodeValue(NewPair(NewConst(NewInt(1)), NewPair(NewConst(NewInt(2)), Empty)))

	if !a.StructEqual(b) {
		t.Error("two separately-built (1 2) lists should be equal?")
	}
	if a.IdentityEqual(b) {
		t.Error("two separately-allocated pairs should not be eq?")
	}

	emptyA := NewNodeValue(Empty)
	emptyB := NewNodeValue(Empty)
	if !emptyA.IdentityEqual(emptyB) {
		t.Error("two empty lists should always be eq?")
	}

	properList := NewNodeValue(NewPair(NewConst(NewInt(1)), NewPair(NewConst(NewInt(2)), Empty)))
	dottedList := NewNodeValue(NewPair(NewConst(NewInt(1)), NewConst(NewInt(2))))
	if properList.StructEqual(dottedList) {
		t.Error("a proper list should never be equal? to an improper one")
	}
}

func TestLambdaApplyBindsParamsAndEvaluatesBody(t *testing.T) {
	captured := newFakeScope()
	body := NewVar("x")
	lambda := NewLambda([]string{"x"}, body, captured)

	caller := newFakeScope()
	arg := NewConst(NewInt(9))

	v, err := lambda.Apply([]Node{arg}, caller)
	if err != nil {
		t.Fatal(err)
	}
	if v.Int() != 9 {
		t.Errorf("got %v, want 9", v)
	}
}

func TestLambdaApplyArityMismatch(t *testing.T) {
	lambda := NewLambda([]string{"x", "y"}, NewVar("x"), newFakeScope())
	if _, err := lambda.Apply([]Node{NewConst(NewInt(1))}, newFakeScope()); err == nil {
		t.Error("expected a SyntaxError for an arity mismatch")
	}
}
