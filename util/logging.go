/*
 * ECAL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

import (
	"fmt"

	"devt.de/krotik/common/datautil"
)

/*
Logger is a minimal logging interface for the REPL driver. The
evaluator core never logs (errors unwind to the caller of Run()
instead) - this interface exists only for the command-line driver's
:history command.
*/
type Logger interface {

	/*
		LogInfo adds a new info log message.
	*/
	LogInfo(m ...interface{})

	/*
		LogError adds a new error log message.
	*/
	LogError(m ...interface{})
}

/*
MemoryLogger collects log messages in a RingBuffer in memory. The REPL
driver keeps one of these around to answer its :history command.
*/
type MemoryLogger struct {
	*datautil.RingBuffer
}

/*
NewMemoryLogger returns a new memory logger instance which keeps the
last size entries.
*/
func NewMemoryLogger(size int) *MemoryLogger {
	return &MemoryLogger{datautil.NewRingBuffer(size)}
}

/*
LogInfo adds a new info log message.
*/
func (ml *MemoryLogger) LogInfo(m ...interface{}) {
	ml.RingBuffer.Add(fmt.Sprint(m...))
}

/*
LogError adds a new error log message.
*/
func (ml *MemoryLogger) LogError(m ...interface{}) {
	ml.RingBuffer.Add(fmt.Sprintf("error: %v", fmt.Sprint(m...)))
}

/*
Slice returns the contents of the current log as a slice.
*/
func (ml *MemoryLogger) Slice() []string {
	sl := ml.RingBuffer.Slice()
	ret := make([]string, len(sl))
	for i, lm := range sl {
		ret[i] = lm.(string)
	}
	return ret
}
