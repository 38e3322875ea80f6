// Package output provides terminal output formatting for the console.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Printer handles formatted output. Tables and notices go to out; errors
// and warnings go to err so they survive piping.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// NewPrinter creates a printer writing to stdout/stderr.
func NewPrinter(useColors bool) *Printer {
	return &Printer{out: os.Stdout, err: os.Stderr, useColors: useColors}
}

// NewPrinterWithWriters creates a printer with custom writers, for tests.
func NewPrinterWithWriters(out, err io.Writer, useColors bool) *Printer {
	return &Printer{out: out, err: err, useColors: useColors}
}

// Out exposes the output writer for table rendering.
func (p *Printer) Out() io.Writer {
	return p.out
}

// Info prints an informational message.
func (p *Printer) Info(format string, args ...any) {
	if p.useColors {
		color.New(color.FgCyan).Fprintf(p.out, format+"\n", args...)
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Success prints a success notice.
func (p *Printer) Success(format string, args ...any) {
	if p.useColors {
		color.New(color.FgGreen).Fprintf(p.out, "✓ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.out, "[OK] "+format+"\n", args...)
}

// Warning prints a transient warning notice.
func (p *Printer) Warning(format string, args ...any) {
	if p.useColors {
		color.New(color.FgYellow).Fprintf(p.err, "⚠ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.err, "[WARN] "+format+"\n", args...)
}

// Error prints a transient error notice. Page mutations funnel their
// failures here instead of propagating.
func (p *Printer) Error(format string, args ...any) {
	if p.useColors {
		color.New(color.FgRed).Fprintf(p.err, "✗ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.err, "[ERROR] "+format+"\n", args...)
}

// Print prints a plain message.
func (p *Printer) Print(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Header prints a page title.
func (p *Printer) Header(title string) {
	if p.useColors {
		color.New(color.FgWhite, color.Bold).Fprintf(p.out, "\n%s\n", title)
	} else {
		fmt.Fprintf(p.out, "\n%s\n", title)
	}
	fmt.Fprintln(p.out, strings.Repeat("─", len([]rune(title))))
}
