/*
 * ECAL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package scope

import (
	"testing"

	"github.com/AnnaPipko/Lisp-interpreter/ast"
)

func TestDefineAndLookup(t *testing.T) {
	s := New()
	s.Define("x", ast.NewInt(1))

	v, err := s.Lookup("x")
	if err != nil {
		t.Fatal(err)
	}
	if v.Int() != 1 {
		t.Errorf("got %v, want 1", v)
	}

	if _, err := s.Lookup("y"); err == nil {
		t.Error("expected NameError looking up an undefined name")
	}
}

func TestChildSeesParentBindings(t *testing.T) {
	parent := New()
	parent.Define("x", ast.NewInt(1))

	child := parent.NewChild()
	v, err := child.Lookup("x")
	if err != nil {
		t.Fatal(err)
	}
	if v.Int() != 1 {
		t.Errorf("got %v, want 1", v)
	}
}

func TestAssignRebindsNearestFrame(t *testing.T) {
	parent := New()
	parent.Define("x", ast.NewInt(1))

	child := parent.NewChild()
	if err := child.Assign("x", ast.NewInt(2)); err != nil {
		t.Fatal(err)
	}

	v, _ := parent.Lookup("x")
	if v.Int() != 2 {
		t.Errorf("assigning through a child scope should update the parent binding, got %v", v)
	}

	if err := child.Assign("never-defined", ast.NewInt(9)); err == nil {
		t.Error("expected NameError assigning an undefined name")
	}
}

func TestConcatFallsThroughToSecondScope(t *testing.T) {
	a := New()
	a.Define("x", ast.NewInt(1))

	b := New()
	b.Define("y", ast.NewInt(2))

	combined := a.Concat(b)

	if v, err := combined.Lookup("x"); err != nil || v.Int() != 1 {
		t.Errorf("expected x=1 from the first scope, got %v, %v", v, err)
	}
	if v, err := combined.Lookup("y"); err != nil || v.Int() != 2 {
		t.Errorf("expected y=2 falling through to the second scope, got %v, %v", v, err)
	}
}

func TestConcatSharesTablesWithOriginalScope(t *testing.T) {
	a := New()
	a.Define("x", ast.NewInt(1))
	b := New()

	combined := a.Concat(b)
	if err := combined.Assign("x", ast.NewInt(42)); err != nil {
		t.Fatal(err)
	}

	v, _ := a.Lookup("x")
	if v.Int() != 42 {
		t.Errorf("mutating through the concatenation should be visible in the original scope, got %v", v)
	}
}

var _ ast.Scope = (*Scope)(nil)
