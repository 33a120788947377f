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
Command lispp is the command-line driver for the lispp interpreter: an
interactive console by default, or non-interactive execution of a
script file given with -file.
*/
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"

	"devt.de/krotik/common/fileutil"
	"devt.de/krotik/common/termutil"

	lispp "github.com/AnnaPipko/Lisp-interpreter"
	"github.com/AnnaPipko/Lisp-interpreter/util"
)

func main() {
	file := flag.String("file", "", "Run a lispp source file instead of starting the console")
	flag.Parse()

	var err error
	if *file != "" {
		err = runFile(*file)
	} else {
		err = runConsole()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

/*
runFile evaluates every top-level form in path in order, printing
errors as they occur and continuing with the next form.
*/
func runFile(path string) error {
	if ok, _ := fileutil.PathExists(path); !ok {
		return fmt.Errorf("file not found: %v", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	interp := lispp.New(strings.NewReader(string(content)), os.Stdout)

	for interp.HasMore() {
		if runErr := interp.Run(); runErr != nil {
			fmt.Println("     >> " + runErr.Error())
		}
	}
	return nil
}

/*
runConsole starts an interactive read-eval-print loop. Each line is
appended to a growing buffer that the interpreter reads from, and Run
is called once per line. A form split across lines is not continued:
Run reports a SyntaxError as soon as it reaches the end of the buffer
without the closing paren, and the tokens it read are consumed.
*/
func runConsole() error {
	var buf bytes.Buffer
	history := util.NewMemoryLogger(100)

	interp := lispp.New(&buf, os.Stdout)

	term, err := termutil.NewConsoleLineTerminal(os.Stdout)
	if err != nil {
		return err
	}

	term, err = termutil.AddHistoryMixin(term, "", func(s string) bool {
		trimmed := strings.TrimSpace(s)
		return trimmed == "q" || trimmed == "quit"
	})
	if err != nil {
		return err
	}

	fmt.Println("Lispp prompt")
	fmt.Println("For exit press Ctrl+D")
	fmt.Println()
	fmt.Println("Type 'q' or 'quit' to exit the shell and ':history' to show recent forms")
	fmt.Println()

	if err := term.StartTerm(); err != nil {
		return err
	}
	defer term.StopTerm()

	fmt.Print("Lispp>> ")
	line, err := term.NextLine()

	for err == nil {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "q" || trimmed == "quit":
			return nil

		case trimmed == ":history":
			for _, entry := range history.Slice() {
				fmt.Println(entry)
			}

		default:
			buf.WriteString(line)
			buf.WriteString("\n")

			if runErr := interp.Run(); runErr != nil {
				fmt.Println("     >> " + runErr.Error())
				history.LogError(trimmed + " -> " + runErr.Error())
			} else {
				history.LogInfo(trimmed)
			}
		}

		fmt.Print("Lispp>> ")
		line, err = term.NextLine()
	}

	return nil
}
