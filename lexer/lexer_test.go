/*
 * ECAL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package lexer

import (
	"strings"
	"testing"
)

func kinds(t *testing.T, src string) []Kind {
	tok := New(strings.NewReader(src))
	var got []Kind
	for {
		if err := tok.Advance(); err != nil {
			t.Fatalf("Advance() on %q: %v", src, err)
		}
		got = append(got, tok.Current().Kind)
		if tok.Current().Kind == END {
			break
		}
	}
	return got
}

func TestBasicTokens(t *testing.T) {
	tok := New(strings.NewReader("(+ 1 -2 #t #f foo . 'x)"))

	want := []struct {
		kind   Kind
		lexeme string
	}{
		{LPAREN, "("},
		{NAME, "+"},
		{NUMBER, "1"},
		{NUMBER, "-2"},
		{BOOL, "#t"},
		{BOOL, "#f"},
		{NAME, "foo"},
		{DOT, "."},
		{QUOTE, "'"},
		{NAME, "x"},
		{RPAREN, ")"},
		{END, ""},
	}

	for i, w := range want {
		if err := tok.Advance(); err != nil {
			t.Fatalf("token %d: %v", i, err)
		}
		got := tok.Current()
		if got.Kind != w.kind || got.Lexeme != w.lexeme {
			t.Errorf("token %d: got {%v %q}, want {%v %q}", i, got.Kind, got.Lexeme, w.kind, w.lexeme)
		}
	}
}

func TestSignAlone(t *testing.T) {
	k := kinds(t, "(- +)")
	want := []Kind{LPAREN, NAME, NAME, RPAREN, END}
	if len(k) != len(want) {
		t.Fatalf("got %v, want %v", k, want)
	}
	for i := range want {
		if k[i] != want[i] {
			t.Errorf("position %d: got %v, want %v", i, k[i], want[i])
		}
	}
}

func TestInvalidSignedName(t *testing.T) {
	tok := New(strings.NewReader("+abc"))
	if err := tok.Advance(); err == nil {
		t.Error("expected a SyntaxError for +abc, got nil")
	}
}

func TestHasMore(t *testing.T) {
	tok := New(strings.NewReader("   "))
	if tok.HasMore() {
		t.Error("HasMore should be false on whitespace-only input")
	}

	tok = New(strings.NewReader("  42"))
	if !tok.HasMore() {
		t.Error("HasMore should be true when a token is waiting")
	}
}

func TestDividerRunsAreSkipped(t *testing.T) {
	k := kinds(t, "   12   \n\t 34  ")
	want := []Kind{NUMBER, NUMBER, END}
	if len(k) != len(want) {
		t.Fatalf("got %v, want %v", k, want)
	}
}
