package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	foundColor   = color.New(color.FgGreen, color.Bold)
	missingColor = color.New(color.FgRed)
	headerColor  = color.New(color.FgCyan)
)

// report prints one query result line: "<query> <subject>: found|missing [detail]".
func report(out io.Writer, query, subject string, ok bool, detail string) {
	status := missingColor.Sprint("missing")
	if ok {
		status = foundColor.Sprint("found")
	}
	if detail != "" {
		fmt.Fprintf(out, "%s %s: %s %s\n", query, subject, status, detail)
		return
	}
	fmt.Fprintf(out, "%s %s: %s\n", query, subject, status)
}

func section(out io.Writer, format string, args ...any) {
	fmt.Fprintln(out, headerColor.Sprintf(format, args...))
}
