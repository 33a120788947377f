/*
 * ECAL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package lispp

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunPrintsResult(t *testing.T) {
	var out bytes.Buffer
	interp := New(strings.NewReader("(+ 1 2)"), &out)

	if err := interp.Run(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "     >> 3\n" {
		t.Errorf("got %q, want %q", got, "     >> 3\n")
	}
}

func TestRunSuppressesEmptyResult(t *testing.T) {
	var out bytes.Buffer
	interp := New(strings.NewReader("(define x 1)"), &out)

	if err := interp.Run(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "" {
		t.Errorf("define should print nothing, got %q", got)
	}
}

func TestRunPersistsStateAcrossCalls(t *testing.T) {
	var out bytes.Buffer
	interp := New(strings.NewReader("(define x 10) (* x 2)"), &out)

	if err := interp.Run(); err != nil {
		t.Fatal(err)
	}
	if err := interp.Run(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "     >> 20\n" {
		t.Errorf("got %q, want %q", got, "     >> 20\n")
	}
}

func TestRunReportsErrors(t *testing.T) {
	var out bytes.Buffer
	interp := New(strings.NewReader("(undefined-name)"), &out)

	err := interp.Run()
	if err == nil {
		t.Fatal("expected an error evaluating an undefined name")
	}
	if !strings.HasPrefix(err.Error(), "NameError:") {
		t.Errorf("got %q, want a NameError", err.Error())
	}
}

func TestHasMore(t *testing.T) {
	interp := New(strings.NewReader("  "), &bytes.Buffer{})
	if interp.HasMore() {
		t.Error("HasMore should be false on whitespace-only input")
	}
}
