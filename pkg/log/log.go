package log

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

type coloredPrint struct {
	color  *color.Color
	output io.Writer
}

func (c *coloredPrint) Log(a string, args ...any) {
	if !strings.HasSuffix(a, "\n") {
		a = a + "\n"
	}
	c.color.Fprintf(c.output, a, args...)
}

// Log prints leveled, colored lines. Warnings and errors go to stderr,
// everything else to stdout.
type Log struct {
	warning coloredPrint
	err     coloredPrint
	info    coloredPrint
	success coloredPrint
	debug   coloredPrint
	verbose bool
}

func New() *Log {
	return NewWithWriters(os.Stdout, os.Stderr)
}

// NewWithWriters builds a logger whose plain levels write to out and whose
// warning and error levels write to errOut.
func NewWithWriters(out, errOut io.Writer) *Log {
	return &Log{
		warning: coloredPrint{color.New(color.FgYellow), errOut},
		err:     coloredPrint{color.New(color.FgHiRed), errOut},
		info:    coloredPrint{color.New(color.FgCyan), out},
		success: coloredPrint{color.New(color.FgGreen), out},
		debug:   coloredPrint{color.New(), out},
	}
}

// SetVerbose enables Debug output.
func (l *Log) SetVerbose(v bool) {
	l.verbose = v
}

// DisableColor turns off ANSI colors for every logger in the process.
func DisableColor() {
	color.NoColor = true
}

func (l *Log) Info(a string, args ...any) {
	l.info.Log(a, args...)
}

func (l *Log) Success(a string, args ...any) {
	l.success.Log(a, args...)
}

func (l *Log) Warn(a string, args ...any) {
	l.warning.Log(a, args...)
}

func (l *Log) Error(a string, args ...any) {
	l.err.Log(a, args...)
}

func (l *Log) Debug(a string, args ...any) {
	if !l.verbose {
		return
	}
	l.debug.Log(a, args...)
}
