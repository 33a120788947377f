/*
 * ECAL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"strings"
	"testing"

	"github.com/AnnaPipko/Lisp-interpreter/ast"
	"github.com/AnnaPipko/Lisp-interpreter/lexer"
)

func mustParse(t *testing.T, src string) ast.Node {
	t.Helper()
	p := New(lexer.New(strings.NewReader(src)))
	n, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return n
}

func TestParseAtoms(t *testing.T) {
	if got := mustParse(t, "42").Print(); got != "42" {
		t.Errorf("got %q, want 42", got)
	}
	if got := mustParse(t, "-7").Print(); got != "-7" {
		t.Errorf("got %q, want -7", got)
	}
	if got := mustParse(t, "#t").Print(); got != "#t" {
		t.Errorf("got %q, want #t", got)
	}
	if got := mustParse(t, "foo").Print(); got != "foo" {
		t.Errorf("got %q, want foo", got)
	}
}

func TestParseProperList(t *testing.T) {
	n := mustParse(t, "(+ 1 2)")
	if got := n.Print(); got != "(+ 1 2)" {
		t.Errorf("got %q, want (+ 1 2)", got)
	}
}

func TestParseEmptyList(t *testing.T) {
	n := mustParse(t, "()")
	if n.Kind() != ast.KindEmpty {
		t.Errorf("expected KindEmpty, got %v", n.Kind())
	}
}

func TestParseDottedPair(t *testing.T) {
	n := mustParse(t, "(1 . 2)")
	if got := n.Print(); got != "(1 . 2)" {
		t.Errorf("got %q, want (1 . 2)", got)
	}
}

func TestParseQuote(t *testing.T) {
	n := mustParse(t, "'(a b)")
	if got := n.Print(); got != "'(a b)" {
		t.Errorf("got %q, want '(a b)", got)
	}
}

func TestParseNestedList(t *testing.T) {
	n := mustParse(t, "(define (f x) (+ x 1))")
	if got := n.Print(); got != "(define (f x) (+ x 1))" {
		t.Errorf("got %q, want (define (f x) (+ x 1))", got)
	}
}

func TestParseUnterminatedListIsSyntaxError(t *testing.T) {
	p := New(lexer.New(strings.NewReader("(+ 1 2")))
	if _, err := p.Parse(); err == nil {
		t.Error("expected a SyntaxError for an unterminated list")
	}
}

func TestParseSuccessiveTopLevelForms(t *testing.T) {
	tok := lexer.New(strings.NewReader("(+ 1 2) (+ 3 4)"))
	p := New(tok)

	first, err := p.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if got := first.Print(); got != "(+ 1 2)" {
		t.Errorf("got %q, want (+ 1 2)", got)
	}

	second, err := p.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if got := second.Print(); got != "(+ 3 4)" {
		t.Errorf("got %q, want (+ 3 4)", got)
	}
}

func TestDump(t *testing.T) {
	n := mustParse(t, "(+ 1 2)")
	out := Dump(n)
	if !strings.Contains(out, "Pair") {
		t.Errorf("expected Dump output to mention Pair, got %q", out)
	}
}
