package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Logger emits human-oriented chatter on the error stream, leaving the
// output stream free for the payload of whatever command is running
// (or for machine-readable output when json mode is on).
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

// WithContext returns a new context with this logger attached.
func (l Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// Ctx returns the logger attached to the context,
// or the default logger if the context has none.
func Ctx(ctx context.Context) Logger {
	if l, ok := ctx.Value(ctxKey{}).(Logger); ok {
		return l
	}
	return DefaultLogger()
}

// Out writes to the output stream, unconditionally.
func (l Logger) Out(f string, args ...interface{}) {
	fmt.Fprintf(l.out, f+"\n", args...)
}

func (l Logger) OutRaw(s string) {
	fmt.Fprintf(l.out, "%s", s)
}

func (l Logger) Info(tag string, f string, args ...interface{}) {
	if l.quiet {
		return
	}
	l.print(color.New(color.FgHiGreen), tag, f, args...)
}

func (l Logger) Debug(tag string, f string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.print(color.New(color.FgGreen), tag, f, args...)
}

func (l Logger) print(tagColor *color.Color, tag, f string, args ...interface{}) {
	str := fmt.Sprintf(f, args...)
	for _, line := range strings.Split(str, "\n") {
		if l.json {
			// json mode keeps stdout machine-clean and drops color on stderr.
			fmt.Fprintf(l.err, "%s  %s\n", tag, line)
			continue
		}
		fmt.Fprintf(l.err, "%s  %s\n",
			tagColor.Sprint(tag),
			color.WhiteString(line))
	}
}

// Writer adapts the logger into an io.Writer, for handing to subprocesses
// and libraries that want to stream their progress through us.
type Writer struct {
	pipe io.Writer
	tag  string
}

func (l Logger) InfoWriter(tag string) *Writer {
	return &Writer{
		pipe: l.err,
		tag:  tag,
	}
}

func (w *Writer) Write(data []byte) (n int, err error) {
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		fmt.Fprintf(w.pipe, "%s  %s\n",
			color.HiYellowString(w.tag),
			color.HiWhiteString(line))
	}
	return len(data), nil
}
