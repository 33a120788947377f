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
	"bufio"
	"io"

	"devt.de/krotik/common/stringutil"

	"github.com/AnnaPipko/Lisp-interpreter/util"
)

/*
terminators lists the single-character bytes that end a name/number
token and never combine with surrounding characters.
*/
var terminators = []string{"(", ")", ".", "'"}

func isDivider(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isTerminator(b byte) bool {
	return stringutil.IndexOf(string(b), terminators) != -1
}

/*
Tokenizer reads lispp source one byte at a time and exposes a single
token of lookahead. It is pull-based: construct it, then call Advance
once to load the first token before consulting Current.
*/
type Tokenizer struct {
	r       *bufio.Reader
	current Token
	line    int
	col     int
}

/*
New wraps r in a Tokenizer. The underlying reader may yield more bytes
after returning io.EOF (e.g. a growing in-memory buffer fed by a REPL)
- the Tokenizer never latches a permanent end-of-stream state itself.
*/
func New(r io.Reader) *Tokenizer {
	return &Tokenizer{r: bufio.NewReader(r), line: 1, col: 1}
}

/*
Current returns the token loaded by the most recent Advance call.
*/
func (t *Tokenizer) Current() Token {
	return t.current
}

func (t *Tokenizer) peekByte() (byte, bool) {
	bs, err := t.r.Peek(1)
	if err != nil || len(bs) == 0 {
		return 0, false
	}
	return bs[0], true
}

func (t *Tokenizer) readByte() byte {
	b, _ := t.r.ReadByte()
	if b == '\n' {
		t.line++
		t.col = 1
	} else {
		t.col++
	}
	return b
}

func (t *Tokenizer) skipDividers() {
	for {
		b, ok := t.peekByte()
		if !ok || !isDivider(b) {
			return
		}
		t.readByte()
	}
}

/*
HasMore reports whether a non-divider byte is currently available
without consuming it. A command-line driver uses this to decide
whether calling Advance would load a real token or run straight into
END.
*/
func (t *Tokenizer) HasMore() bool {
	t.skipDividers()
	_, ok := t.peekByte()
	return ok
}

/*
Advance consumes and discards any current token, then loads the next
one into Current. It returns a SyntaxError if the next bytes cannot
form any valid token.
*/
func (t *Tokenizer) Advance() error {
	t.skipDividers()

	line, col := t.line, t.col

	b, ok := t.peekByte()
	if !ok {
		t.current = Token{Kind: END, Pos: util.Pos{Line: line, Col: col}}
		return nil
	}

	switch b {
	case '(':
		t.readByte()
		t.current = Token{Kind: LPAREN, Lexeme: "(", Pos: util.Pos{Line: line, Col: col}}
		return nil
	case ')':
		t.readByte()
		t.current = Token{Kind: RPAREN, Lexeme: ")", Pos: util.Pos{Line: line, Col: col}}
		return nil
	case '\'':
		t.readByte()
		t.current = Token{Kind: QUOTE, Lexeme: "'", Pos: util.Pos{Line: line, Col: col}}
		return nil
	case '.':
		t.readByte()
		t.current = Token{Kind: DOT, Lexeme: ".", Pos: util.Pos{Line: line, Col: col}}
		return nil
	}

	if b == '+' || b == '-' {
		return t.advanceSigned(line, col)
	}

	return t.advanceWord(line, col)
}

/*
advanceSigned handles the three ways a leading + or - can resolve: a
bare NAME token (+ or - used as an operator), the start of a negative
or explicitly-positive NUMBER, or a SyntaxError if nothing sensible
follows.
*/
func (t *Tokenizer) advanceSigned(line, col int) error {
	sign := t.readByte()

	next, ok := t.peekByte()
	if !ok || isDivider(next) || isTerminator(next) {
		t.current = Token{Kind: NAME, Lexeme: string(sign), Pos: util.Pos{Line: line, Col: col}}
		return nil
	}

	if !isDigit(next) {
		return util.NewSyntaxErrorAt("variable name starting with +/-", util.Pos{Line: line, Col: col})
	}

	lex := []byte{sign}
	for {
		nb, ok := t.peekByte()
		if !ok || !isDigit(nb) {
			break
		}
		lex = append(lex, t.readByte())
	}
	t.current = Token{Kind: NUMBER, Lexeme: string(lex), Pos: util.Pos{Line: line, Col: col}}
	return nil
}

/*
advanceWord accumulates a maximal run of non-divider, non-terminator
bytes and classifies it as a NUMBER (all digits), a BOOL (#t or #f),
or a NAME (anything else).
*/
func (t *Tokenizer) advanceWord(line, col int) error {
	var lex []byte
	allDigits := true

	for {
		nb, ok := t.peekByte()
		if !ok || isDivider(nb) || isTerminator(nb) {
			break
		}
		c := t.readByte()
		if !isDigit(c) {
			allDigits = false
		}
		lex = append(lex, c)
	}

	s := string(lex)
	pos := util.Pos{Line: line, Col: col}

	switch {
	case allDigits:
		t.current = Token{Kind: NUMBER, Lexeme: s, Pos: pos}
	case s == "#t" || s == "#f":
		t.current = Token{Kind: BOOL, Lexeme: s, Pos: pos}
	default:
		t.current = Token{Kind: NAME, Lexeme: s, Pos: pos}
	}
	return nil
}
