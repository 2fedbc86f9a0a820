package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

type Logger struct {
	out     io.Writer
	err     io.Writer
	json    bool
	quiet   bool
	verbose bool
}

func DefaultLogger() Logger {
	return Logger{
		out: os.Stdout,
		err: os.Stderr,
	}
}

// NewLogger returns a logger writing human output to out and diagnostics to err.
//
// When json is set, the out stream is reserved for API output,
// so Info messages are dropped (Debug messages still go to err if verbose).
// When quiet is set, Info messages are dropped as well.
func NewLogger(out, err io.Writer, json, quiet, verbose bool) Logger {
	return Logger{
		out:     out,
		err:     err,
		json:    json,
		quiet:   quiet,
		verbose: verbose,
	}
}

type ctxKey struct{}

// WithContext returns a new context carrying this logger.
func (l Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, &l)
}

// Ctx returns the logger stored in ctx,
// or a default logger using the process's stdout and stderr if there is none.
func Ctx(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	l := DefaultLogger()
	return &l
}

func (l *Logger) Verbose() bool {
	return l.verbose
}

// Json reports whether stdout is reserved for JSON API output.
func (l *Logger) Json() bool {
	return l.json
}

func (l *Logger) Out(f string, args ...interface{}) {
	fmt.Fprintf(l.out, f+"\n", args...)
}

func (l *Logger) OutRaw(s string) {
	fmt.Fprintf(l.out, "%s", s)
}

func (l *Logger) Info(tag string, f string, args ...interface{}) {
	if l.quiet || l.json {
		return
	}
	print(l.err, color.New(color.FgHiGreen), tag, f, args...)
}

func (l *Logger) Debug(tag string, f string, args ...interface{}) {
	if l.verbose {
		print(l.err, color.New(color.FgGreen), tag, f, args...)
	}
}

func print(w io.Writer, tagColor *color.Color, tag, f string, args ...interface{}) {
	str := fmt.Sprintf(f, args...)
	for _, line := range strings.Split(str, "\n") {
		if tag == "" {
			fmt.Fprintf(w, "%s\n", color.WhiteString(line))
			continue
		}
		fmt.Fprintf(w, "%s  %s\n",
			tagColor.Sprint(tag),
			color.WhiteString(line))
	}
}
