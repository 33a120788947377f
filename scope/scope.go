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
Package scope provides the concrete lexical environment lispp
evaluates against: a chain of name/value frames implementing
ast.Scope.
*/
package scope

import (
	"devt.de/krotik/common/errorutil"

	"github.com/AnnaPipko/Lisp-interpreter/ast"
	"github.com/AnnaPipko/Lisp-interpreter/util"
)

/*
Scope is one frame of a parent-linked environment chain. Lookup and
Assign walk from the frame outward to the root; Define always binds in
this frame only.
*/
type Scope struct {
	table  map[string]ast.Value
	parent *Scope
}

/*
New creates an empty root scope, typically used as the global scope.
*/
func New() *Scope {
	return &Scope{table: map[string]ast.Value{}}
}

/*
Lookup searches this frame and then each parent in turn.
*/
func (s *Scope) Lookup(name string) (ast.Value, error) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.table[name]; ok {
			return v, nil
		}
	}
	return ast.Value{}, util.NewNameError("undefined name " + name)
}

/*
Define binds name to v in this frame, shadowing any same-named binding
in a parent frame.
*/
func (s *Scope) Define(name string, v ast.Value) {
	errorutil.AssertTrue(s.table != nil, "scope used before initialisation")
	s.table[name] = v
}

/*
Assign rebinds the nearest existing binding of name, searching this
frame and then each parent in turn. It is a NameError to assign to a
name that was never defined.
*/
func (s *Scope) Assign(name string, v ast.Value) error {
	for cur := s; cur != nil; cur = cur.parent {
		if _, ok := cur.table[name]; ok {
			cur.table[name] = v
			return nil
		}
	}
	return util.NewNameError("undefined name " + name)
}

/*
NewChild returns a fresh, empty frame parented on s.
*/
func (s *Scope) NewChild() ast.Scope {
	return &Scope{table: map[string]ast.Value{}, parent: s}
}

/*
Concat builds a chain that looks like s's own frame chain but whose
deepest link points at other instead of nil: each frame of the result
shares its table with the corresponding frame of s, so a Define
through the concatenation is visible through s as well, and lookups
that fall off the end of s's chain continue into other.
*/
func (s *Scope) Concat(other ast.Scope) ast.Scope {
	ob, ok := other.(*Scope)
	if !ok {
		return s
	}
	return concatChain(s, ob)
}

func concatChain(a, b *Scope) *Scope {
	if a == nil {
		return b
	}
	return &Scope{table: a.table, parent: concatChain(a.parent, b)}
}

var _ ast.Scope = (*Scope)(nil)
