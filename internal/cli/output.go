package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// OutputFormatter handles formatted output to the console.
type OutputFormatter struct {
	out    io.Writer
	errOut io.Writer
}

// NewOutputFormatterWithWriters creates an OutputFormatter with custom writers.
func NewOutputFormatterWithWriters(out, errOut io.Writer) *OutputFormatter {
	return &OutputFormatter{
		out:    out,
		errOut: errOut,
	}
}

// Success prints a success message with an [OK] prefix.
func (o *OutputFormatter) Success(format string, args ...any) {
	fmt.Fprintf(o.out, "[OK] %s\n", fmt.Sprintf(format, args...))
}

// Info prints an informational message.
func (o *OutputFormatter) Info(format string, args ...any) {
	fmt.Fprintf(o.out, "%s\n", fmt.Sprintf(format, args...))
}

// Warn prints a warning message to the error stream.
func (o *OutputFormatter) Warn(format string, args ...any) {
	fmt.Fprintf(o.errOut, "[WARN] %s\n", fmt.Sprintf(format, args...))
}

// JSON outputs data as indented JSON.
func (o *OutputFormatter) JSON(data any) error {
	encoder := json.NewEncoder(o.out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(data)
}

// Raw writes s unchanged.
func (o *OutputFormatter) Raw(s string) {
	fmt.Fprint(o.out, s)
}

// Table prints rows under headers in aligned columns.
func (o *OutputFormatter) Table(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(o.out, 0, 0, 2, ' ', 0)

	if len(headers) > 0 {
		fmt.Fprintln(w, strings.Join(headers, "\t"))
		separators := make([]string, len(headers))
		for i, h := range headers {
			separators[i] = strings.Repeat("-", len(h))
		}
		fmt.Fprintln(w, strings.Join(separators, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}
