package cli

import (
	"fmt"
	"io"
	"sort"
)

// Notifier shows transient success and error messages and per-field form
// errors.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	FieldErrors(fields map[string][]string)
}

type terminalNotifier struct {
	w io.Writer
}

// NewTerminalNotifier writes notifications as plain lines to w.
func NewTerminalNotifier(w io.Writer) Notifier {
	return &terminalNotifier{w: w}
}

func (n *terminalNotifier) Success(msg string) {
	if msg == "" {
		return
	}
	fmt.Fprintf(n.w, "✔ %s\n", msg)
}

func (n *terminalNotifier) Error(msg string) {
	fmt.Fprintf(n.w, "✘ %s\n", msg)
}

func (n *terminalNotifier) FieldErrors(fields map[string][]string) {
	names := make([]string, 0, len(fields))
	for f := range fields {
		names = append(names, f)
	}
	sort.Strings(names)

	for _, f := range names {
		for _, msg := range fields[f] {
			fmt.Fprintf(n.w, "  %s: %s\n", f, msg)
		}
	}
}
