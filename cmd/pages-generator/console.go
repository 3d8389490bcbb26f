package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// logLevel orders console verbosity.
type logLevel int

const (
	levelDebug logLevel = iota
	levelInfo
	levelWarn
	levelError
)

// levelMarks pairs each level with its terminal emoji and its plain tag.
var levelMarks = map[logLevel][2]string{
	levelDebug: {"🔍", "DEBUG"},
	levelInfo:  {"✅", "INFO"},
	levelWarn:  {"⚠️", "WARN"},
	levelError: {"❌", "ERROR"},
}

// consoleLogger writes human-oriented log lines: emoji markers when the
// destination is an interactive terminal, plain level tags otherwise, so
// CI logs stay grep-friendly.
type consoleLogger struct {
	mu    sync.Mutex
	out   io.Writer
	level logLevel
	emoji bool
}

func newConsoleLogger(out io.Writer, level logLevel) *consoleLogger {
	return &consoleLogger{
		out:   out,
		level: level,
		emoji: isTerminal(out),
	}
}

// isTerminal reports whether the writer is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

func (l *consoleLogger) log(level logLevel, msg string, args ...any) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	marks := levelMarks[level]
	if l.emoji {
		fmt.Fprintf(l.out, "%s %s", marks[0], msg)
	} else {
		fmt.Fprintf(l.out, "%s %s", marks[1], msg)
	}

	for i := 0; i < len(args); i++ {
		if i+1 < len(args) {
			fmt.Fprintf(l.out, " %v=%v", args[i], args[i+1])
			i++
		} else {
			fmt.Fprintf(l.out, " %v=%%MISSING%%", args[i])
		}
	}

	fmt.Fprintf(l.out, "\n")
}

func (l *consoleLogger) Debug(msg string, args ...any) { l.log(levelDebug, msg, args...) }
func (l *consoleLogger) Info(msg string, args ...any)  { l.log(levelInfo, msg, args...) }
func (l *consoleLogger) Warn(msg string, args ...any)  { l.log(levelWarn, msg, args...) }
func (l *consoleLogger) Error(msg string, args ...any) { l.log(levelError, msg, args...) }
